package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Bullet = donburi.NewTag().SetName("Bullet")
	Wall   = donburi.NewTag().SetName("Wall")
	Drone  = donburi.NewTag().SetName("Drone")
)

// Resolv tags for broad-phase queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvBullet = "Bullet"
	ResolvDrone  = "Drone"
)
