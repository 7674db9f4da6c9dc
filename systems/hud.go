package systems

import (
	"fmt"

	"github.com/automoto/motioncore/components"
	cfg "github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/fonts"
	"github.com/automoto/motioncore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hudLines is reused between frames to avoid allocating the slice.
var hudLines = make([]string, 0, 6)

// DrawHUD renders the clock and player readouts in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	hudLines = hudLines[:0]

	if tickEntry, ok := components.Tick.First(ecs.World); ok {
		tick := components.Tick.Get(tickEntry)
		hudLines = append(hudLines,
			fmt.Sprintf("tick %d  dt %.1fms  tps %.0f", tick.Count, tick.Delta*1000, ebiten.ActualTPS()))

		if playerEntry, ok := components.Player.First(ecs.World); ok {
			hudLines = appendPlayerLines(hudLines, playerEntry, tick)
		}
	}

	bullets := 0
	tags.Bullet.Each(ecs.World, func(*donburi.Entry) { bullets++ })
	hudLines = append(hudLines, fmt.Sprintf("bullets %d", bullets))

	face := fonts.HUD.Get()
	for i, line := range hudLines {
		y := cfg.HUD.Margin + (i+1)*cfg.HUD.LineSpace
		text.Draw(screen, line, face, cfg.HUD.Margin, y, cfg.HUD.TextColor)
	}

	if fonts.Loaded(fonts.HUDSmall) {
		y := cfg.HUD.Margin + (len(hudLines)+1)*cfg.HUD.LineSpace
		text.Draw(screen, controlsHint(), fonts.HUDSmall.Get(), cfg.HUD.Margin, y, cfg.HUD.TextColor)
	}
}

func controlsHint() string {
	mode := "auto"
	if !cfg.Player.AutoFire {
		mode = "semi"
	}
	return fmt.Sprintf("WASD move  click fire (%s)", mode)
}

func appendPlayerLines(lines []string, playerEntry *donburi.Entry, tick *components.TickData) []string {
	player := components.Player.Get(playerEntry)
	pos := components.Motion.Get(playerEntry).Position()
	lines = append(lines,
		fmt.Sprintf("pos %.1f, %.1f", pos.X, pos.Y),
		fmt.Sprintf("shots %d  cooldown %v", player.ShotsFired, player.Fire.Remaining(tick.Now)),
	)
	if anim := components.Animation.Get(playerEntry); anim.CurrentAnimation != nil {
		lines = append(lines, fmt.Sprintf("%s frame %d/%d @ %dfps",
			anim.CurrentSheet, anim.CurrentAnimation.Index()+1, anim.CurrentAnimation.Len(), anim.CurrentAnimation.FPS()))
	}
	return lines
}
