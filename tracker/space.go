package tracker

import (
	"fmt"

	"github.com/g3n/engine/math32"
)

// ToLocal maps a world-space point into the frame whose world matrix is world.
func ToLocal(world *math32.Matrix4, p math32.Vector3) (math32.Vector3, error) {
	var inv math32.Matrix4
	if err := inv.GetInverse(world); err != nil {
		return math32.Vector3{}, fmt.Errorf("effect target transform is not invertible: %w", err)
	}
	p.ApplyMatrix4(&inv)
	return p, nil
}

// ToWorld maps a point in the frame whose world matrix is world into world space.
func ToWorld(world *math32.Matrix4, p math32.Vector3) math32.Vector3 {
	p.ApplyMatrix4(world)
	return p
}
