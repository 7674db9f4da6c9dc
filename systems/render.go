package systems

import (
	"image/color"

	"github.com/automoto/motioncore/body"
	"github.com/automoto/motioncore/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

const outlineWidth = 2

// DrawArena renders every entity with a shape style. Animated entities draw
// their current frame centred on the hitbox; the rest fill the hitbox.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	components.ShapeStyle.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Motion) {
			return
		}
		hitbox := components.Motion.Get(e).Hitbox()

		if e.HasComponent(components.Animation) {
			if img := components.Animation.Get(e).Frame(); img != nil {
				drawFrame(screen, img, hitbox.Bounds())
				return
			}
		}

		style := components.ShapeStyle.Get(e)
		drawShape(screen, hitbox, style.Color)
	})
}

func drawFrame(screen, img *ebiten.Image, bounds body.Rect) {
	center := bounds.Center()
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(center.X-float64(w)/2, center.Y-float64(h)/2)
	screen.DrawImage(img, drawOp)
}

func drawShape(screen *ebiten.Image, s body.Shape, clr color.RGBA) {
	switch shape := s.(type) {
	case body.Rect:
		vector.DrawFilledRect(screen,
			float32(shape.X), float32(shape.Y),
			float32(shape.W), float32(shape.H),
			clr, false)
	case body.Circle:
		vector.DrawFilledCircle(screen,
			float32(shape.X), float32(shape.Y), float32(shape.R),
			clr, true)
	case body.Polygon:
		pts := shape.Points
		for i, p := range pts {
			q := pts[(i+1)%len(pts)]
			vector.StrokeLine(screen,
				float32(p.X), float32(p.Y), float32(q.X), float32(q.Y),
				outlineWidth, clr, true)
		}
	}
}
