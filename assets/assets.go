package assets

import (
	"embed"
	"fmt"
	"image/color"
	"path"

	"github.com/automoto/motioncore/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevel parses an embedded level by file name.
func LoadLevel(name string) (*leveldata.LevelData, error) {
	return leveldata.Load(assetFS, path.Join("levels", name))
}

// SpriteDef describes how to render the frames of one sprite id.
type SpriteDef struct {
	Frames int
	Size   int
	Body   color.RGBA
	Accent color.RGBA
}

// Sprites maps sprite ids to their definitions. The game ships no sprite
// sheets, so frames are painted at load time.
var Sprites = map[string]SpriteDef{
	"player/idle":   {Frames: 4, Size: 16, Body: colornames.Gold, Accent: colornames.Darkgoldenrod},
	"player/moving": {Frames: 6, Size: 16, Body: colornames.Gold, Accent: colornames.Orangered},
	"drone/moving":  {Frames: 6, Size: 16, Body: colornames.Indianred, Accent: colornames.White},
}

// SpriteLoader resolves sprite ids to frames and caches them.
type SpriteLoader struct {
	cache map[string][]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[string][]*ebiten.Image),
	}
}

// Frames returns the frame set for id, painting it on first use.
func (l *SpriteLoader) Frames(id string) ([]*ebiten.Image, error) {
	if frames, ok := l.cache[id]; ok {
		return frames, nil
	}
	def, ok := Sprites[id]
	if !ok {
		return nil, fmt.Errorf("unknown sprite %q", id)
	}

	frames := make([]*ebiten.Image, def.Frames)
	for i := range frames {
		frames[i] = paintFrame(def, i)
	}
	l.cache[id] = frames
	return frames, nil
}

// paintFrame draws a square body with an accent block that steps around the
// border, one position per frame.
func paintFrame(def SpriteDef, index int) *ebiten.Image {
	size := float32(def.Size)
	img := ebiten.NewImage(def.Size, def.Size)
	vector.DrawFilledRect(img, 0, 0, size, size, def.Body, false)

	dot := size / 4
	steps := float32(def.Frames)
	t := float32(index) / steps
	x := t * (size - dot)
	y := (size - dot) / 2
	if index%2 == 1 {
		y = size - dot - x/2
	}
	vector.DrawFilledRect(img, x, y, dot, dot, def.Accent, false)
	return img
}
