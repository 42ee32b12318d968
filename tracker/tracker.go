// Package tracker projects the mouse cursor onto a reference plane every frame
// and forwards the hit point and an emit flag to an effect target.
package tracker

import (
	"errors"
	"log"
	"reflect"
	"time"

	"github.com/g3n/demos/pointerfx/camera"
	"github.com/g3n/engine/math32"
)

// Input is polled once per frame.
type Input interface {
	CursorPosition() (x, y float32)
	ButtonHeld(button int) bool
	ViewportSize() (width, height int)
}

// Viewpoint supplies the matrices used to unproject the cursor.
// camera.ICamera satisfies it.
type Viewpoint interface {
	camera.Projector
}

// EffectTarget accepts named property writes. Names it does not expose are ignored.
type EffectTarget interface {
	SetFloat(name string, value float32)
	SetVector3(name string, value math32.Vector3)
	MatrixWorld() math32.Matrix4
}

// Frame is the outcome of one Update.
type Frame struct {
	Emit     float32
	Plane    Plane
	Hit      bool
	Distance float32
	World    math32.Vector3
	Sent     math32.Vector3
}

type Tracker struct {
	cfg    Config
	input  Input
	view   Viewpoint
	target EffectTarget

	enabled    bool
	elapsed    float32
	poseFailed bool
	last       Frame
}

// New builds a tracker. When the effect target or viewpoint is missing, as an
// untyped or typed nil, the returned tracker is disabled and the error wraps
// ErrMissingEffectTarget, ErrMissingViewpoint or both.
func New(cfg Config, input Input, view Viewpoint, target EffectTarget) (*Tracker, error) {
	t := &Tracker{
		cfg:    cfg.Sanitize(),
		input:  input,
		view:   view,
		target: target,
	}
	if isNil(input) {
		t.input = idleInput{}
	}

	var errs []error
	if isNil(target) {
		log.Printf("tracker: %v, disabling", ErrMissingEffectTarget)
		errs = append(errs, ErrMissingEffectTarget)
	}
	if isNil(view) {
		log.Printf("tracker: %v, disabling", ErrMissingViewpoint)
		errs = append(errs, ErrMissingViewpoint)
	}
	if err := t.cfg.Validate(); err != nil {
		log.Printf("tracker: invalid config: %v, disabling", err)
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return t, errors.Join(errs...)
	}

	t.enabled = true
	return t, nil
}

func (t *Tracker) Enabled() bool { return t.enabled }

func (t *Tracker) Config() Config { return t.cfg }

// Last returns the most recent frame written to the target.
func (t *Tracker) Last() Frame { return t.last }

// Reconfigure replaces the configuration between frames.
func (t *Tracker) Reconfigure(cfg Config) error {
	cfg = cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return err
	}
	t.cfg = cfg
	t.elapsed = 0
	return nil
}

// Update runs one frame. It writes the emit flag and the pointer position to
// the effect target exactly once each, unless the tracker is disabled.
func (t *Tracker) Update(dt time.Duration) Frame {
	if !t.enabled {
		return Frame{}
	}

	var f Frame
	if t.input.ButtonHeld(t.cfg.TriggerButtonIndex) {
		f.Emit = 1
	}

	var ok bool
	if f.Plane, ok = t.plane(); ok {
		f.World, f.Distance, f.Hit = t.cast(f.Plane)
	}

	f.Sent = f.World
	if f.Hit && t.cfg.ConvertToLocalSpace {
		world := t.target.MatrixWorld()
		local, err := ToLocal(&world, f.World)
		if err != nil {
			// Degenerate target transform; treat as a miss.
			f.Hit = false
			local = math32.Vector3{}
		}
		f.Sent = local
	}
	if !f.Hit {
		f.World = math32.Vector3{}
		f.Sent = math32.Vector3{}
	}

	t.target.SetFloat(t.cfg.EmitPropertyName, f.Emit)
	t.target.SetVector3(t.cfg.VectorPropertyName, f.Sent)

	t.last = f
	t.trace(f, float32(dt.Seconds()))
	return f
}

// plane builds this frame's reference plane. It reports false when the
// viewpoint pose cannot be read; the frame is then a miss.
func (t *Tracker) plane() (Plane, bool) {
	if t.cfg.PlaneMode != ViewpointPlane {
		return WorldPlaneAt(t.cfg.PlaneY), true
	}
	position, forward, err := camera.Pose(t.view)
	if err != nil {
		if !t.poseFailed {
			log.Printf("tracker: viewpoint pose unavailable: %v", err)
		}
		t.poseFailed = true
		return Plane{}, false
	}
	if t.poseFailed {
		log.Printf("tracker: viewpoint pose recovered")
		t.poseFailed = false
	}
	return ViewpointPlaneAt(position, forward, t.cfg.ViewpointPlaneDistance), true
}

func (t *Tracker) cast(p Plane) (math32.Vector3, float32, bool) {
	x, y := t.input.CursorPosition()
	w, h := t.input.ViewportSize()
	ray, err := camera.NewRayFromMouse(t.view, x, y, w, h)
	if err != nil {
		return math32.Vector3{}, 0, false
	}
	return p.Intersect(ray)
}

func (t *Tracker) trace(f Frame, dt float32) {
	if !t.cfg.EnableDiagnostics {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.cfg.DiagnosticsIntervalSeconds {
		return
	}
	t.elapsed -= t.cfg.DiagnosticsIntervalSeconds
	if t.elapsed >= t.cfg.DiagnosticsIntervalSeconds {
		// long stall; don't replay the missed lines
		t.elapsed = 0
	}
	log.Printf("tracker: hit=%t t=%.3f world=(%.3f, %.3f, %.3f) sent=(%.3f, %.3f, %.3f) plane=%v local=%t",
		f.Hit, f.Distance,
		f.World.X, f.World.Y, f.World.Z,
		f.Sent.X, f.Sent.Y, f.Sent.Z,
		t.cfg.PlaneMode, t.cfg.ConvertToLocalSpace)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

type idleInput struct{}

func (idleInput) CursorPosition() (float32, float32) { return 0, 0 }
func (idleInput) ButtonHeld(int) bool                { return false }
func (idleInput) ViewportSize() (int, int)           { return 0, 0 }
