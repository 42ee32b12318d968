package camera

import (
	"errors"

	"github.com/g3n/engine/math32"
)

// Projector is the part of camera.ICamera needed to cast rays.
type Projector interface {
	ProjMatrix(m *math32.Matrix4)
	ViewMatrix(m *math32.Matrix4)
}

var ErrEmptyViewport = errors.New("viewport has zero size")

// NewRayFromMouse unprojects the window coordinate (x, y) into a world-space ray.
// The origin lies on the near plane and the direction is normalized.
func NewRayFromMouse(cam Projector, x, y float32, width, height int) (*math32.Ray, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyViewport
	}

	// Mouse position in normalized device coordinates
	ndcX := x/float32(width)*2 - 1
	ndcY := -(y/float32(height)*2 - 1)

	projMatrix := &math32.Matrix4{}
	viewMatrix := &math32.Matrix4{}
	cam.ProjMatrix(projMatrix)
	cam.ViewMatrix(viewMatrix)

	viewProjMatrix := &math32.Matrix4{}
	viewProjMatrix.MultiplyMatrices(projMatrix, viewMatrix)

	invViewProjMatrix := &math32.Matrix4{}
	if err := invViewProjMatrix.GetInverse(viewProjMatrix); err != nil {
		return nil, err
	}

	near, ok := unproject(invViewProjMatrix, ndcX, ndcY, -1)
	if !ok {
		return nil, errors.New("near point at infinity")
	}
	far, ok := unproject(invViewProjMatrix, ndcX, ndcY, 1)
	if !ok {
		return nil, errors.New("far point at infinity")
	}

	direction := far.Sub(near)
	if direction.Length() == 0 {
		return nil, errors.New("degenerate ray direction")
	}
	direction.Normalize()

	return math32.NewRay(near, direction), nil
}

func unproject(inv *math32.Matrix4, x, y, z float32) (*math32.Vector3, bool) {
	p := math32.NewVector4(x, y, z, 1)
	p.ApplyMatrix4(inv)
	if p.W == 0 {
		return nil, false
	}
	return math32.NewVector3(p.X/p.W, p.Y/p.W, p.Z/p.W), true
}

// Pose returns the world position and normalized forward direction of the camera.
// The camera looks down its local -Z axis.
func Pose(cam Projector) (position, forward math32.Vector3, err error) {
	viewMatrix := &math32.Matrix4{}
	cam.ViewMatrix(viewMatrix)

	world := &math32.Matrix4{}
	if err = world.GetInverse(viewMatrix); err != nil {
		return position, forward, err
	}

	position.Set(world[12], world[13], world[14])
	forward.Set(-world[8], -world[9], -world[10])
	if forward.Length() == 0 {
		return position, forward, errors.New("camera has no forward axis")
	}
	forward.Normalize()
	return position, forward, nil
}
