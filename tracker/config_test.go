package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pointerfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
emitPropertyName: Spawn
vectorPropertyName: Target
triggerButtonIndex: 1
planeMode: viewpoint
planeY: 1.5
viewpointPlaneDistance: 6
convertToLocalSpace: true
enableDiagnostics: true
diagnosticsIntervalSeconds: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		EmitPropertyName:           "Spawn",
		VectorPropertyName:         "Target",
		TriggerButtonIndex:         1,
		PlaneMode:                  ViewpointPlane,
		PlaneY:                     1.5,
		ViewpointPlaneDistance:     6,
		ConvertToLocalSpace:        true,
		EnableDiagnostics:          true,
		DiagnosticsIntervalSeconds: 2,
	}, cfg)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "planeY: -2\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.PlaneY = -2
	assert.Equal(t, want, cfg)
}

func TestLoadClampsDistance(t *testing.T) {
	path := writeConfig(t, "planeMode: camera\nviewpointPlaneDistance: -3\ndiagnosticsIntervalSeconds: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ViewpointPlane, cfg.PlaneMode)
	assert.Equal(t, float32(MinViewpointDistance), cfg.ViewpointPlaneDistance)
	assert.Equal(t, float32(MinDiagnosticsInterval), cfg.DiagnosticsIntervalSeconds)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown plane mode", "planeMode: sideways\n"},
		{"negative button", "triggerButtonIndex: -1\n"},
		{"malformed", "planeY: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlaneModeString(t *testing.T) {
	assert.Equal(t, "world", WorldPlane.String())
	assert.Equal(t, "viewpoint", ViewpointPlane.String())
	assert.Equal(t, "PlaneMode(7)", PlaneMode(7).String())

	mode, err := ParsePlaneMode("viewpoint")
	require.NoError(t, err)
	assert.Equal(t, ViewpointPlane, mode)

	_, err = ParsePlaneMode("World")
	assert.Error(t, err)
}
