package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/HarunOYusuf/Game-Feel/internal/application/game"
	"github.com/HarunOYusuf/Game-Feel/internal/application/scene/playing"
	"github.com/HarunOYusuf/Game-Feel/internal/application/system"
	"github.com/HarunOYusuf/Game-Feel/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("config", "cmd/game/configs", "config directory")
	stageName := flag.String("stage", "demo", "stage to load")
	flag.Parse()

	loader := config.NewLoader(*configDir)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	stageCfg, err := loader.LoadStage(*stageName)
	if err != nil {
		log.Fatalf("failed to load stage: %v", err)
	}
	stage := system.LoadStage(stageCfg)

	sandbox, err := playing.New(cfg.Movement, stage)
	if err != nil {
		log.Fatalf("failed to create scene: %v", err)
	}

	display := cfg.Movement.Display
	g := game.New(sandbox, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Game Feel - " + stageCfg.Name)
	ebiten.SetTPS(display.Framerate)

	log.Printf("stage %q loaded (%dx%d tiles)", stageCfg.ID, stage.Width, stage.Height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
