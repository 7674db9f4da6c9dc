package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the arena uses.
const Default ecs.LayerID = 0

// Config contains window and loop settings.
type Config struct {
	Width    int
	Height   int
	Scale    float64
	TickRate int    // ebiten ticks per second
	Level    string // level file under assets/levels
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement: per-second rate multiplied by delta before it becomes a force
	Sensitivity float64

	// Combat
	FireCooldown time.Duration
	AutoFire     bool // hold to repeat; off fires once per press

	// Physics
	Mass float64 // scalar encoding, negative = immovable

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	Color color.RGBA
}

// BulletConfig contains projectile configuration values
type BulletConfig struct {
	Radius float64
	Mass   float64

	// Aim: the cursor offset is divided by AimDivisor to get the per-step
	// displacement, then scaled by ReferenceRate steps per second.
	AimDivisor    float64
	ReferenceRate float64

	Lifetime time.Duration
	Color    color.RGBA
}

// AnimationConfig contains sprite playback settings
type AnimationConfig struct {
	PlayerFPS int
	DroneFPS  int
}

// DroneConfig contains the patrolling drone settings
type DroneConfig struct {
	Radius   float64
	Mass     float64
	Distance float64 // patrol span in pixels
	Duration float32 // seconds per leg
}

// WallConfig contains settings for level geometry
type WallConfig struct {
	Color color.RGBA
}

// HUDConfig contains text overlay settings
type HUDConfig struct {
	Margin    int
	LineSpace int
	FontSize  float64
	TextColor color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Animation AnimationConfig
var Drone DroneConfig
var Wall WallConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange   = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Slate    = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	LightRed = color.RGBA{R: 255, G: 60, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   480,
		Scale:    1.5,
		TickRate: 60,
		Level:    "arena.tmx",
	}

	Player = PlayerConfig{
		Sensitivity:     300,
		FireCooldown:    100 * time.Millisecond,
		AutoFire:        true,
		Mass:            1,
		CollisionWidth:  10,
		CollisionHeight: 10,
		Color:           Gold,
	}

	Bullet = BulletConfig{
		Radius:        3,
		Mass:          0.05,
		AimDivisor:    10,
		ReferenceRate: 60,
		Lifetime:      2 * time.Second,
		Color:         Orange,
	}

	Animation = AnimationConfig{
		PlayerFPS: 8,
		DroneFPS:  12,
	}

	Drone = DroneConfig{
		Radius:   8,
		Mass:     4,
		Distance: 160,
		Duration: 2,
	}

	Wall = WallConfig{
		Color: Slate,
	}

	HUD = HUDConfig{
		Margin:    8,
		LineSpace: 14,
		FontSize:  11,
		TextColor: White,
	}
}
