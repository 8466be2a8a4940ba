package replay

import (
	"fmt"

	"github.com/younwookim/girders/internal/application/system"
	"github.com/younwookim/girders/internal/domain/entity"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

// Result summarizes a headless replay run
type Result struct {
	Frames  int
	Spawns  int
	Hits    int
	Barrels int // barrels alive at the end

	FinalX     float64
	FinalY     float64
	FinalState entity.PlayerState
}

// String formats the result for log output
func (r Result) String() string {
	return fmt.Sprintf("frames=%d spawns=%d hits=%d barrels=%d player=(%.1f, %.1f) %s",
		r.Frames, r.Spawns, r.Hits, r.Barrels, r.FinalX, r.FinalY, r.FinalState)
}

// Run replays the recorded input against the stage without rendering
func Run(cfg *config.GameConfig, stage *config.StageConfig, data ReplayData) (Result, error) {
	session, err := system.NewSession(cfg, stage, data.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build stage %s: %w", data.Stage, err)
	}

	replayer := NewReplayer(data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		session.Step(input)
	}

	return Result{
		Frames:     session.Frame,
		Spawns:     session.Spawns,
		Hits:       session.Hits,
		Barrels:    len(session.Level.Barrels),
		FinalX:     session.Player.X,
		FinalY:     session.Player.Y,
		FinalState: session.Player.State,
	}, nil
}
