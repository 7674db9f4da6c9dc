package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/motioncore/assets"
	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/systems"
	"github.com/automoto/motioncore/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Broad-phase cell size in pixels.
const spaceCellSize = 16

// ArenaScene runs one level: the player, its bullets, the patrolling drones
// and the walls they move among.
type ArenaScene struct {
	ecs   *ecs.ECS
	level string
	now   func() time.Time
	once  sync.Once
	err   error
}

// NewArenaScene creates a scene for the named level under assets/levels.
func NewArenaScene(level string) *ArenaScene {
	return &ArenaScene{level: level, now: time.Now}
}

// Update samples the clock and runs one tick of every system.
func (as *ArenaScene) Update() error {
	as.once.Do(func() { as.err = as.configure() })
	if as.err != nil {
		return as.err
	}

	systems.AdvanceTick(as.ecs, as.now())
	as.ecs.Update()
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Intent first, then motion, then everything that reads positions.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateDrones)
	ecs.AddSystem(systems.UpdateBullets)
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateBulletHits)
	ecs.AddSystem(systems.UpdateAnimation)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = ecs
	return populate(as.ecs, as.level, assets.NewSpriteLoader())
}

// populate loads the level and spawns everything in it.
func populate(e *ecs.ECS, level string, sprites *assets.SpriteLoader) error {
	data, err := assets.LoadLevel(level)
	if err != nil {
		return fmt.Errorf("load level %s: %w", level, err)
	}

	factory.CreateTick(e)
	factory.CreateInput(e)
	factory.CreateSpace(e, data.MapWidth, data.MapHeight, spaceCellSize, spaceCellSize)

	bounds, err := body.NewRect(0, 0, float64(data.MapWidth), float64(data.MapHeight))
	if err != nil {
		return fmt.Errorf("level %s bounds: %w", level, err)
	}
	factory.CreateLevel(e, level, bounds)

	for i, w := range data.Walls {
		hitbox, err := factory.WallShape(w)
		if err != nil {
			log.Printf("Warning: skipping wall %d in %s: %v", i, level, err)
			continue
		}
		if _, err := factory.CreateWall(e, hitbox); err != nil {
			return err
		}
	}

	sheets, err := playerSheets(sprites)
	if err != nil {
		return err
	}
	spawn := data.SpawnPoints[0]
	if _, err := factory.CreatePlayer(e, gamemath.Position{X: spawn.X, Y: spawn.Y}, sheets); err != nil {
		return err
	}

	droneFrames, err := sprites.Frames("drone/moving")
	if err != nil {
		return err
	}
	for _, ds := range data.DroneSpawns {
		if _, err := factory.CreateDrone(e, gamemath.Position{X: ds.X, Y: ds.Y}, droneFrames); err != nil {
			return err
		}
	}

	log.Printf("Loaded %s: %d walls, %d drones", level, len(data.Walls), len(data.DroneSpawns))
	return nil
}

func playerSheets(sprites *assets.SpriteLoader) (map[components.Sheet][]*ebiten.Image, error) {
	idle, err := sprites.Frames("player/idle")
	if err != nil {
		return nil, err
	}
	moving, err := sprites.Frames("player/moving")
	if err != nil {
		return nil, err
	}
	return map[components.Sheet][]*ebiten.Image{
		components.SheetIdle:   idle,
		components.SheetMoving: moving,
	}, nil
}
