package main

import (
	"testing"
	"time"

	"github.com/g3n/demos/pointerfx/effect"
	"github.com/g3n/demos/pointerfx/input"
	"github.com/g3n/demos/pointerfx/tracker"
	"github.com/g3n/engine/camera"
	"github.com/g3n/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newControls(t *testing.T) (*Controls, *tracker.Tracker, *effect.Emitter) {
	t.Helper()
	cam := camera.New(1)
	cam.SetPosition(0, 5, -5)

	emitter := effect.NewEmitter(effect.DefaultEmitterConfig())
	poller := input.NewPoller(core.NewDispatcher())
	poller.SetViewport(800, 600)

	tr, err := tracker.New(tracker.Default(), poller, cam, emitter)
	require.NoError(t, err)
	return NewControls(tr, emitter), tr, emitter
}

func TestControlsApplyBetweenFrames(t *testing.T) {
	c, tr, _ := newControls(t)

	cfg := c.TogglePlaneMode()
	assert.Equal(t, tracker.ViewpointPlane, cfg.PlaneMode)

	// Nothing changes until the next frame starts
	assert.Equal(t, tracker.WorldPlane, tr.Config().PlaneMode)
	assert.Equal(t, tracker.ViewpointPlane, c.Config().PlaneMode)

	c.Apply()
	assert.Equal(t, tracker.ViewpointPlane, tr.Config().PlaneMode)

	tr.Update(16 * time.Millisecond)

	c.TogglePlaneMode()
	c.Apply()
	assert.Equal(t, tracker.WorldPlane, tr.Config().PlaneMode)
}

func TestControlsLocalSpaceFollowsEmitter(t *testing.T) {
	c, tr, emitter := newControls(t)
	require.False(t, emitter.LocalSpace())

	c.ToggleLocalSpace()
	assert.False(t, emitter.LocalSpace())

	c.Apply()
	assert.True(t, tr.Config().ConvertToLocalSpace)
	assert.True(t, emitter.LocalSpace())

	c.ToggleLocalSpace()
	c.Apply()
	assert.False(t, tr.Config().ConvertToLocalSpace)
	assert.False(t, emitter.LocalSpace())
}

func TestControlsTogglesAccumulate(t *testing.T) {
	c, tr, _ := newControls(t)

	c.ToggleDiagnostics()
	c.ToggleLocalSpace()
	c.TogglePlaneMode()
	c.Apply()

	cfg := tr.Config()
	assert.True(t, cfg.EnableDiagnostics)
	assert.True(t, cfg.ConvertToLocalSpace)
	assert.Equal(t, tracker.ViewpointPlane, cfg.PlaneMode)

	// Applying with nothing queued is a no-op
	c.Apply()
	assert.Equal(t, cfg, tr.Config())
}

func TestLabels(t *testing.T) {
	cfg := tracker.Default()
	assert.Equal(t, "Plane: world", planeLabel(cfg))
	cfg.PlaneMode = tracker.ViewpointPlane
	assert.Equal(t, "Plane: viewpoint", planeLabel(cfg))

	assert.Equal(t, "Local ON", onOffLabel("Local", true))
	assert.Equal(t, "Diagnostics OFF", onOffLabel("Diagnostics", false))
}
