package components

import (
	cfg "github.com/automoto/motioncore/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions plus the cursor position in world coordinates. JustPressed is
// computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	CursorX  float64
	CursorY  float64
}

func (in *InputData) Pressed(action cfg.ActionID) bool {
	return in.Current[action]
}

func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
