package tracker

import (
	"github.com/g3n/engine/math32"
)

// parallelEpsilon is the smallest |dir·normal| treated as a crossing.
const parallelEpsilon = 1e-6

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Normal math32.Vector3
	Point  math32.Vector3
}

// NewPlane normalizes normal.
func NewPlane(normal, point math32.Vector3) Plane {
	normal.Normalize()
	return Plane{Normal: normal, Point: point}
}

// WorldPlaneAt is the horizontal plane y = planeY.
func WorldPlaneAt(planeY float32) Plane {
	return NewPlane(*math32.NewVector3(0, 1, 0), *math32.NewVector3(0, planeY, 0))
}

// ViewpointPlaneAt faces a viewer at position looking along forward, distance units ahead.
func ViewpointPlaneAt(position, forward math32.Vector3, distance float32) Plane {
	forward.Normalize()
	point := forward.Clone().MultiplyScalar(distance).Add(&position)
	return Plane{Normal: forward, Point: *point}
}

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(v math32.Vector3) float32 {
	return v.Sub(&p.Point).Dot(&p.Normal)
}

// Intersect solves origin + t*dir on the plane. ok is false when the ray is
// parallel to the plane or the crossing lies behind the origin; point is then
// the origin of the coordinate system. t is reported either way.
func (p Plane) Intersect(ray *math32.Ray) (point math32.Vector3, t float32, ok bool) {
	origin := ray.Origin()
	dir := ray.Direction()

	denom := dir.Dot(&p.Normal)
	if math32.Abs(denom) < parallelEpsilon {
		return point, 0, false
	}

	t = p.Point.Clone().Sub(&origin).Dot(&p.Normal) / denom
	if t < 0 {
		return point, t, false
	}

	point = *dir.Clone().MultiplyScalar(t).Add(&origin)
	return point, t, true
}
