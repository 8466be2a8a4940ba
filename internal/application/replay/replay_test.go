package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/girders/internal/application/system"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

func loadTestGame(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadGame("classic")
	require.NoError(t, err)
	return cfg
}

func TestFrameInput_OmitsReleasedKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, R: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"r":true}`, string(data))
}

func TestFrameInput_RoundTripsInputState(t *testing.T) {
	in := system.InputState{Left: true, Up: true, Jump: true}

	fi := NewFrameInput(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Stage:   "classic",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, U: true, D: true},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Jump: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Up: true, Down: true}, input)

	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_Accessors(t *testing.T) {
	data := CreateTestReplayData(10, system.InputState{})
	data.Seed = 99999
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(99999), replayer.Seed())
	assert.Equal(t, "classic", replayer.Stage())
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, system.InputState{Right: true}))

	for i := 0; i < 3; i++ {
		_, ok := replayer.GetInput()
		require.True(t, ok)
	}
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Right)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, system.InputState{Left: true})

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Len(t, data.Frames, 60)
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "frame number mismatch at index %d", i)
		assert.True(t, frame.L)
	}
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	want := CreateTestReplayData(4, system.InputState{Jump: true})
	raw, err := json.Marshal(want)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	got, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, want.Seed, got.Seed)
	assert.Equal(t, want.Frames, got.Frames)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"malformed json", bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := LoadReplay(tt.path)
			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	cfg := loadTestGame(t)

	data := CreateTestReplayData(600, system.InputState{})
	for i := range data.Frames {
		data.Frames[i].R = i%240 < 100
		data.Frames[i].J = i%75 == 0
	}

	a, err := Run(cfg, cfg.Stage, data)
	require.NoError(t, err)
	b, err := Run(cfg, cfg.Stage, data)
	require.NoError(t, err)

	assert.Equal(t, 600, a.Frames)
	assert.GreaterOrEqual(t, a.Spawns, 1)
	assert.Equal(t, a, b)
}

func TestRun_InvalidStage(t *testing.T) {
	cfg := loadTestGame(t)
	stage := *cfg.Stage
	stage.Platforms = nil

	_, err := Run(cfg, &stage, CreateTestReplayData(1, system.InputState{}))
	assert.ErrorIs(t, err, system.ErrNoPlatforms)
}

func TestResult_String(t *testing.T) {
	r := Result{Frames: 10, Spawns: 2, Hits: 1, FinalX: 100, FinalY: 700}

	assert.Contains(t, r.String(), "frames=10 spawns=2 hits=1")
	assert.Contains(t, r.String(), "(100.0, 700.0)")
}
