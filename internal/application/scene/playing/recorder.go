package playing

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/girders/internal/application/replay"
	"github.com/younwookim/girders/internal/application/system"
)

// ErrNoFrames is returned by Save before the first tick was recorded
var ErrNoFrames = errors.New("no frames to save")

// Recorder captures the per-tick input of one run together with its seed
// and stage, which is all replay.Run needs to reproduce it.
type Recorder struct {
	data      replay.ReplayData
	recording bool
}

// NewRecorder starts recording a run of stage seeded with seed
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // one minute of ticks
		},
		recording: true,
	}
}

// RecordFrame appends the input applied on the next tick
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(len(r.data.Frames), input))
}

// Save writes the run as indented JSON to filename
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	out, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := os.WriteFile(filename, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write replay %s: %w", filename, err)
	}
	return nil
}

// Stop ends the recording; later ticks are ignored
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording reports whether ticks are still being captured
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded ticks
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the recorded run
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename names a replay file after the local time, used when no
// -record path was given
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
