package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/girders/internal/application/system"
)

// Replayer feeds recorded ticks back as InputState, one per call
type Replayer struct {
	data ReplayData
	next int
}

// NewReplayer positions a replayer on the first recorded tick
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay reads a run written by the playing scene's recorder
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay %s: %w", filename, err)
	}

	return &data, nil
}

// GetInput returns the next tick's input. ok is false once every recorded
// tick has been consumed.
func (r *Replayer) GetInput() (in system.InputState, ok bool) {
	if r.next >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	in = r.data.Frames[r.next].Input()
	r.next++
	return in, true
}

// CurrentFrame returns how many ticks have been consumed
func (r *Replayer) CurrentFrame() int {
	return r.next
}

// TotalFrames returns the recorded tick count
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the level seed of the recorded run
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset rewinds to the first tick
func (r *Replayer) Reset() {
	r.next = 0
}

// CreateTestReplayData builds a classic-stage run of frames ticks, each
// holding input.
func CreateTestReplayData(frames int, input system.InputState) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Stage:     "classic",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = NewFrameInput(i, input)
	}

	return data
}
