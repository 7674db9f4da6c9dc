package systems

import (
	"testing"
	"time"

	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/physics"
	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/automoto/motioncore/systems/factory"
	"github.com/automoto/motioncore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const eps = 1e-6

var epoch = time.Unix(1_700_000_000, 0)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateTick(e)
	factory.CreateInput(e)
	factory.CreateSpace(e, 640, 480, 16, 16)
	bounds, err := body.NewRect(0, 0, 640, 480)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	factory.CreateLevel(e, "test", bounds)
	return e
}

// Nil frames keep the tests free of GPU images; only indices are checked.
func testSheets() map[components.Sheet][]*ebiten.Image {
	return map[components.Sheet][]*ebiten.Image{
		components.SheetIdle:   {nil},
		components.SheetMoving: {nil, nil, nil},
	}
}

func spawnPlayer(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	p, err := factory.CreatePlayer(e, gamemath.Position{X: x, Y: y}, testSheets())
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	return p
}

func input(e *ecs.ECS) *components.InputData {
	entry, _ := components.Input.First(e.World)
	return components.Input.Get(entry)
}

func bulletEntries(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Bullet.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

// runTick drives the gameplay systems in scene order without polling devices.
func runTick(e *ecs.ECS, now time.Time) {
	AdvanceTick(e, now)
	UpdatePlayer(e)
	UpdateDrones(e)
	UpdateBullets(e)
	UpdateMotion(e)
	UpdateObjects(e)
	UpdateBulletHits(e)
	UpdateAnimation(e)
}

func positionOf(entry *donburi.Entry) gamemath.Position {
	return components.Motion.Get(entry).Position()
}

func TestAdvanceTick(t *testing.T) {
	e := newTestWorld(t)

	tick := AdvanceTick(e, at(0))
	if tick.Delta != 0 || tick.Count != 1 {
		t.Fatalf("first tick: delta %v count %d, want 0 and 1", tick.Delta, tick.Count)
	}

	tick = AdvanceTick(e, at(16))
	if !gamemath.ApproxEqual(tick.Delta, 0.016, eps) {
		t.Errorf("delta = %v, want 0.016", tick.Delta)
	}
	if tick.Count != 2 || !tick.Now.Equal(at(16)) {
		t.Errorf("count %d now %v", tick.Count, tick.Now)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name    string
		held    []cfg.ActionID
		wantX   float64
		wantY   float64
		sheet   components.Sheet
		dtMilli int
	}{
		{"idle", nil, 100, 100, components.SheetIdle, 100},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, 130, 100, components.SheetMoving, 100},
		{"left and up", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveUp}, 70, 70, components.SheetMoving, 100},
		{"opposites cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, 100, 100, components.SheetMoving, 100},
		{"half the time half the distance", []cfg.ActionID{cfg.ActionMoveDown}, 100, 115, components.SheetMoving, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			p := spawnPlayer(t, e, 100, 100)
			runTick(e, at(0))

			in := input(e)
			for _, a := range tt.held {
				in.Current[a] = true
			}
			runTick(e, at(tt.dtMilli))

			pos := positionOf(p)
			if !gamemath.ApproxEqual(pos.X, tt.wantX, eps) || !gamemath.ApproxEqual(pos.Y, tt.wantY, eps) {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
			if got := components.Animation.Get(p).CurrentSheet; got != tt.sheet {
				t.Errorf("sheet = %q, want %q", got, tt.sheet)
			}
		})
	}
}

func TestPlayerMovementIsFrameRateIndependent(t *testing.T) {
	distance := func(stepMs, steps int) float64 {
		e := newTestWorld(t)
		p := spawnPlayer(t, e, 0, 0)
		runTick(e, at(0))
		input(e).Current[cfg.ActionMoveRight] = true
		for i := 1; i <= steps; i++ {
			runTick(e, at(i*stepMs))
		}
		return positionOf(p).X
	}

	coarse := distance(100, 10)
	fine := distance(10, 100)
	if !gamemath.ApproxEqual(coarse, fine, 1e-6) {
		t.Errorf("10 x 100ms moved %v, 100 x 10ms moved %v", coarse, fine)
	}
	if !gamemath.ApproxEqual(coarse, cfg.Player.Sensitivity, 1e-6) {
		t.Errorf("one second moved %v, want %v", coarse, cfg.Player.Sensitivity)
	}
}

func TestFireRespectsCooldown(t *testing.T) {
	e := newTestWorld(t)
	p := spawnPlayer(t, e, 100, 100)
	in := input(e)
	in.Current[cfg.ActionFire] = true
	in.CursorX, in.CursorY = 200, 100

	// 100ms cooldown sampled every 50ms fires on every other tick.
	for i := 0; i < 5; i++ {
		runTick(e, at(i*50))
	}

	player := components.Player.Get(p)
	if player.ShotsFired != 3 {
		t.Errorf("ShotsFired = %d, want 3", player.ShotsFired)
	}
	if got := len(bulletEntries(e)); got != 3 {
		t.Errorf("bullets = %d, want 3", got)
	}
}

func TestSemiAutoFireNeedsFreshPress(t *testing.T) {
	restoreConfig(t)
	cfg.Player.AutoFire = false

	e := newTestWorld(t)
	p := spawnPlayer(t, e, 100, 100)
	in := input(e)
	in.CursorX, in.CursorY = 200, 100

	// Rolls the frames forward the way UpdateInput does. Ticks are further
	// apart than the cooldown so only the press edge gates firing.
	frame := func(ms int, held bool) {
		in.Previous = in.Current
		in.Current[cfg.ActionFire] = held
		runTick(e, at(ms))
	}

	frame(0, true)
	frame(200, true)
	frame(400, true)
	if got := components.Player.Get(p).ShotsFired; got != 1 {
		t.Fatalf("holding fire shot %d times, want 1", got)
	}

	frame(600, false)
	frame(800, true)
	if got := components.Player.Get(p).ShotsFired; got != 2 {
		t.Errorf("a fresh press left ShotsFired at %d, want 2", got)
	}
}

func TestPlayerStaysInLevel(t *testing.T) {
	e := newTestWorld(t)
	p := spawnPlayer(t, e, 630, 5)
	runTick(e, at(0))

	in := input(e)
	in.Current[cfg.ActionMoveRight] = true
	in.Current[cfg.ActionMoveUp] = true
	runTick(e, at(100))

	if pos := positionOf(p); pos.X != 640 || pos.Y != 0 {
		t.Errorf("player at (%v, %v), want clamped to (640, 0)", pos.X, pos.Y)
	}
}

func TestFireAimsAtCursor(t *testing.T) {
	e := newTestWorld(t)
	spawnPlayer(t, e, 100, 100)
	in := input(e)
	in.Current[cfg.ActionFire] = true
	in.CursorX, in.CursorY = 150, 80

	runTick(e, at(0))

	bullets := bulletEntries(e)
	if len(bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(bullets))
	}
	v := components.Bullet.Get(bullets[0]).Velocity
	wantX := 50 / cfg.Bullet.AimDivisor * cfg.Bullet.ReferenceRate
	wantY := -20 / cfg.Bullet.AimDivisor * cfg.Bullet.ReferenceRate
	if !gamemath.ApproxEqual(v.X, wantX, eps) || !gamemath.ApproxEqual(v.Y, wantY, eps) {
		t.Errorf("velocity = %+v, want (%v, %v)", v, wantX, wantY)
	}
}

func TestBulletDoesNotFollowPlayer(t *testing.T) {
	e := newTestWorld(t)
	p := spawnPlayer(t, e, 100, 100)
	in := input(e)
	in.Current[cfg.ActionFire] = true
	// Cursor on the player: the bullet has zero velocity.
	in.CursorX, in.CursorY = 100, 100
	runTick(e, at(0))

	in.Current[cfg.ActionFire] = false
	in.Current[cfg.ActionMoveRight] = true
	runTick(e, at(100))

	if got := positionOf(p).X; !gamemath.ApproxEqual(got, 130, eps) {
		t.Fatalf("player X = %v, want 130", got)
	}
	bullets := bulletEntries(e)
	if len(bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(bullets))
	}
	if pos := positionOf(bullets[0]); pos.X != 100 || pos.Y != 100 {
		t.Errorf("bullet moved with the player to (%v, %v)", pos.X, pos.Y)
	}
}

func TestBulletLifetime(t *testing.T) {
	e := newTestWorld(t)
	origin := gamemath.Position{X: 320, Y: 240}
	if _, err := factory.CreateBullet(e, origin.Copy(), gamemath.Vector{}, at(0)); err != nil {
		t.Fatalf("CreateBullet: %v", err)
	}

	life := int(cfg.Bullet.Lifetime / time.Millisecond)
	runTick(e, at(0))
	runTick(e, at(life-1))
	if got := len(bulletEntries(e)); got != 1 {
		t.Fatalf("bullet gone before its lifetime: %d left", got)
	}
	runTick(e, at(life))
	if got := len(bulletEntries(e)); got != 0 {
		t.Errorf("bullet outlived its lifetime: %d left", got)
	}
}

func TestBulletHits(t *testing.T) {
	tests := []struct {
		name  string
		pos   gamemath.Position
		alive bool
	}{
		{"open floor", gamemath.Position{X: 400, Y: 100}, true},
		{"overlapping wall", gamemath.Position{X: 199, Y: 100}, false},
		{"near but clear", gamemath.Position{X: 196, Y: 100}, true},
		{"outside level", gamemath.Position{X: -50, Y: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			wall, err := body.NewRect(200, 0, 20, 480)
			if err != nil {
				t.Fatalf("NewRect: %v", err)
			}
			if _, err := factory.CreateWall(e, wall); err != nil {
				t.Fatalf("CreateWall: %v", err)
			}
			if _, err := factory.CreateBullet(e, tt.pos.Copy(), gamemath.Vector{}, at(0)); err != nil {
				t.Fatalf("CreateBullet: %v", err)
			}

			UpdateBulletHits(e)

			if alive := len(bulletEntries(e)) == 1; alive != tt.alive {
				t.Errorf("alive = %v, want %v", alive, tt.alive)
			}
		})
	}
}

func TestWallIgnoresForces(t *testing.T) {
	e := newTestWorld(t)
	hitbox, err := body.NewRect(10, 10, 20, 20)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	w, err := factory.CreateWall(e, hitbox)
	if err != nil {
		t.Fatalf("CreateWall: %v", err)
	}

	runTick(e, at(0))
	components.Motion.Get(w).Submit(physics.Force{Vector: gamemath.Vector{X: 50, Y: 50}})
	runTick(e, at(100))

	if got := components.Motion.Get(w).Hitbox(); !got.Equal(hitbox) {
		t.Errorf("wall moved to %+v", got)
	}
}

func TestDronePatrol(t *testing.T) {
	e := newTestWorld(t)
	frames := []*ebiten.Image{nil, nil}
	d, err := factory.CreateDrone(e, gamemath.Position{X: 100, Y: 300}, frames)
	if err != nil {
		t.Fatalf("CreateDrone: %v", err)
	}

	legMs := int(cfg.Drone.Duration * 1000)
	step := legMs / 4
	runTick(e, at(0))
	for i := 1; i <= 4; i++ {
		runTick(e, at(i*step))
	}
	pos := positionOf(d)
	if !gamemath.ApproxEqual(pos.X, 100+cfg.Drone.Distance, 0.01) || pos.Y != 300 {
		t.Errorf("after one leg drone at (%v, %v), want (%v, 300)", pos.X, pos.Y, 100+cfg.Drone.Distance)
	}

	for i := 5; i <= 8; i++ {
		runTick(e, at(i*step))
	}
	if pos := positionOf(d); !gamemath.ApproxEqual(pos.X, 100, 0.01) {
		t.Errorf("after a full patrol drone at X=%v, want 100", pos.X)
	}
}

func TestUpdateAnimationUsesTickTime(t *testing.T) {
	e := newTestWorld(t)
	p := spawnPlayer(t, e, 100, 100)
	input(e).Current[cfg.ActionMoveRight] = true

	period := 1000 / cfg.Animation.PlayerFPS
	runTick(e, at(0))
	anim := components.Animation.Get(p)
	if anim.CurrentSheet != components.SheetMoving || anim.CurrentAnimation.Index() != 0 {
		t.Fatalf("sheet %q index %d, want moving 0", anim.CurrentSheet, anim.CurrentAnimation.Index())
	}

	runTick(e, at(period-1))
	if anim.CurrentAnimation.Index() != 0 {
		t.Errorf("advanced before a full period: index %d", anim.CurrentAnimation.Index())
	}
	runTick(e, at(period))
	if anim.CurrentAnimation.Index() != 1 {
		t.Errorf("index = %d after one period, want 1", anim.CurrentAnimation.Index())
	}
}

func TestControlsHintShowsFireMode(t *testing.T) {
	restoreConfig(t)
	for _, tt := range []struct {
		auto bool
		want string
	}{
		{true, "WASD move  click fire (auto)"},
		{false, "WASD move  click fire (semi)"},
	} {
		cfg.Player.AutoFire = tt.auto
		if got := controlsHint(); got != tt.want {
			t.Errorf("controlsHint() = %q, want %q", got, tt.want)
		}
	}
}
