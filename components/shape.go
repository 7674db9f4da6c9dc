package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ShapeStyleData is how the renderer fills an entity's hitbox when it has no
// animation frame to draw.
type ShapeStyleData struct {
	Color color.RGBA
}

var ShapeStyle = donburi.NewComponentType[ShapeStyleData]()
