package components

import (
	"time"

	"github.com/automoto/motioncore/shared/gamemath"
	"github.com/yohamta/donburi"
)

type BulletData struct {
	Velocity gamemath.Vector // pixels per second
	Expires  time.Time
}

var Bullet = donburi.NewComponentType[BulletData]()
