package components

import (
	"github.com/automoto/motioncore/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Sheet names a frame set an entity can switch between.
type Sheet string

const (
	SheetIdle   Sheet = "idle"
	SheetMoving Sheet = "moving"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation[*ebiten.Image]
	CurrentSheet     Sheet
	Sheets           map[Sheet][]*ebiten.Image
}

// SetSheet swaps the playing frame set, restarting playback. Asking for the
// sheet already playing, or one the entity does not have, does nothing.
func (a *AnimationData) SetSheet(sheet Sheet) {
	if a.CurrentSheet == sheet || a.CurrentAnimation == nil {
		return
	}
	frames, ok := a.Sheets[sheet]
	if !ok {
		return
	}
	if err := a.CurrentAnimation.ChangeFrameSet(frames); err != nil {
		return
	}
	a.CurrentSheet = sheet
}

// Frame returns the image to draw, or nil without an animation.
func (a *AnimationData) Frame() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
