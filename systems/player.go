package systems

import (
	"log"
	"time"

	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Unit direction per movement action.
var moveDirections = [...]struct {
	action cfg.ActionID
	dir    gamemath.Vector
}{
	{cfg.ActionMoveLeft, gamemath.Vector{X: -1}},
	{cfg.ActionMoveRight, gamemath.Vector{X: 1}},
	{cfg.ActionMoveUp, gamemath.Vector{Y: -1}},
	{cfg.ActionMoveDown, gamemath.Vector{Y: 1}},
}

type shot struct {
	origin   *gamemath.Position
	velocity gamemath.Vector
}

// UpdatePlayer turns held directions into forces and fires bullets toward the
// cursor while the fire cooldown allows. With AutoFire off a shot needs a
// fresh press. Must run after UpdateInput and
// before UpdateMotion.
func UpdatePlayer(ecs *ecs.ECS) {
	tickEntry, ok := components.Tick.First(ecs.World)
	if !ok {
		return
	}
	tick := components.Tick.Get(tickEntry)

	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	// Spawning while iterating players would mutate the world mid-query.
	var shots []shot
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		if s, fired := updateSinglePlayer(playerEntry, input, tick); fired {
			shots = append(shots, s)
		}
	})

	for _, s := range shots {
		if _, err := factory.CreateBullet(ecs, s.origin, s.velocity, tick.Now); err != nil {
			log.Printf("Warning: could not spawn bullet: %v", err)
		}
	}
}

func updateSinglePlayer(playerEntry *donburi.Entry, input *components.InputData, tick *components.TickData) (shot, bool) {
	player := components.Player.Get(playerEntry)
	motion := components.Motion.Get(playerEntry)

	player.Moving = handleMovementInput(input, player, motion, tick.Delta)

	if playerEntry.HasComponent(components.Animation) {
		updatePlayerAnimation(components.Animation.Get(playerEntry), player.Moving)
	}

	if !fireRequested(input) {
		return shot{}, false
	}
	return handleFireInput(input, player, motion, tick.Now)
}

func fireRequested(input *components.InputData) bool {
	if cfg.Player.AutoFire {
		return input.Pressed(cfg.ActionFire)
	}
	return input.JustPressed(cfg.ActionFire)
}

// handleMovementInput submits one velocity force per held direction and
// reports whether any was held.
func handleMovementInput(input *components.InputData, player *components.PlayerData, motion *components.MotionData, delta float64) bool {
	moving := false
	for _, m := range moveDirections {
		if !input.Pressed(m.action) {
			continue
		}
		motion.Submit(physics.Velocity(m.dir.Scale(player.Sensitivity), delta))
		moving = true
	}
	return moving
}

func handleFireInput(input *components.InputData, player *components.PlayerData, motion *components.MotionData, now time.Time) (shot, bool) {
	if !player.Fire.TryFire(now) {
		return shot{}, false
	}
	player.ShotsFired++

	pos := motion.Position()
	target := gamemath.Position{X: input.CursorX, Y: input.CursorY}
	velocity := gamemath.AimVelocity(pos, target, cfg.Bullet.AimDivisor, cfg.Bullet.ReferenceRate)

	// The bullet gets its own copy so later player motion cannot drag it.
	return shot{origin: pos.Copy(), velocity: velocity}, true
}

func updatePlayerAnimation(animData *components.AnimationData, moving bool) {
	if moving {
		animData.SetSheet(components.SheetMoving)
	} else {
		animData.SetSheet(components.SheetIdle)
	}
}
