package main

import (
	"flag"
	"log"

	"github.com/automoto/motioncore/config"
	"github.com/automoto/motioncore/fonts"
	"github.com/automoto/motioncore/scenes"
	"github.com/automoto/motioncore/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(level string) *Game {
	return &Game{scene: scenes.NewArenaScene(level)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", config.C.Level, "level file under assets/levels")
	scale := flag.Float64("scale", 0, "window scale (0 keeps the saved or default scale)")
	save := flag.Bool("save", true, "persist tunables on exit")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("motioncore"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if err := systems.ApplySavedSettings(saved); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	if *scale > 0 {
		config.C.Scale = *scale
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle("motioncore")
	ebiten.SetTPS(config.C.TickRate)
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))

	if err := ebiten.RunGame(NewGame(*level)); err != nil {
		log.Fatal(err)
	}

	if *save {
		if err := systems.SaveCurrentSettings(); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	}
}
