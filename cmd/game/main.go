package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/girders/internal/application/game"
	"github.com/younwookim/girders/internal/application/scene/playing"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headless and log the result")
	stageFlag := flag.String("stage", "classic", "Stage to load from configs/stages")
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")

	if *replayFlag != "" {
		result, err := runReplay(loader, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replay finished: %s", result)
		return
	}

	cfg, err := loader.LoadGame(*stageFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	scene, err := playing.New(cfg, cfg.Stage, *recordFlag, *seedFlag)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(display.TickMillis())

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(cfg.Stage.Name)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
