package main

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/girders/internal/application/replay"
	"github.com/younwookim/girders/internal/application/system"
	"github.com/younwookim/girders/internal/infrastructure/config"
)

// createTestLoader reads the embedded configs
func createTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)
	return config.NewFSLoader(fsys, "configs")
}

func writeReplay(t *testing.T, data replay.ReplayData) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replay.json")
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestEmbeddedConfigs(t *testing.T) {
	loader := createTestLoader(t)

	for _, stage := range []string{"classic", "connected"} {
		t.Run(stage, func(t *testing.T) {
			cfg, err := loader.LoadGame(stage)
			require.NoError(t, err)
			assert.Equal(t, stage, cfg.Stage.ID)
			assert.Len(t, cfg.Stage.Platforms, 6)
		})
	}
}

func TestRunReplay(t *testing.T) {
	data := replay.CreateTestReplayData(240, system.InputState{Right: true})
	path := writeReplay(t, data)

	result, err := runReplay(createTestLoader(t), path)
	require.NoError(t, err)

	assert.Equal(t, 240, result.Frames)
	assert.Equal(t, 1, result.Spawns, "one throw after 2s at 60 TPS")
	assert.Greater(t, result.FinalX, 100.0)
}

func TestRunReplay_DefaultsToClassic(t *testing.T) {
	data := replay.CreateTestReplayData(10, system.InputState{})
	data.Stage = ""
	path := writeReplay(t, data)

	result, err := runReplay(createTestLoader(t), path)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Frames)
}

func TestRunReplay_Deterministic(t *testing.T) {
	data := replay.CreateTestReplayData(900, system.InputState{})
	for i := range data.Frames {
		data.Frames[i].L = i%300 >= 200
		data.Frames[i].R = i%300 < 120
		data.Frames[i].J = i%45 == 0
	}
	path := writeReplay(t, data)
	loader := createTestLoader(t)

	a, err := runReplay(loader, path)
	require.NoError(t, err)
	b, err := runReplay(loader, path)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunReplay_Errors(t *testing.T) {
	unknown := replay.CreateTestReplayData(1, system.InputState{})
	unknown.Stage = "missing"

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json")},
		{"unknown stage", writeReplay(t, unknown)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runReplay(createTestLoader(t), tt.path)
			assert.Error(t, err)
		})
	}
}
