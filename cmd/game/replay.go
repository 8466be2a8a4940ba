package main

import (
	"fmt"
	"log"

	"github.com/younwookim/girders/internal/application/replay"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

const defaultStage = "classic"

// runReplay loads a recording and runs it against the stage it was recorded
// on without opening a window
func runReplay(loader *config.Loader, path string) (replay.Result, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Result{}, err
	}

	stage := data.Stage
	if stage == "" {
		stage = defaultStage
	}

	cfg, err := loader.LoadGame(stage)
	if err != nil {
		return replay.Result{}, fmt.Errorf("failed to load config: %w", err)
	}

	if data.Version != replay.Version {
		log.Printf("Replay version %q differs from %q", data.Version, replay.Version)
	}
	log.Printf("Replaying %s: %d frames on %s (seed: %d)", path, len(data.Frames), stage, data.Seed)

	return replay.Run(cfg, cfg.Stage, *data)
}
