package tracker

import (
	"github.com/g3n/engine/math32"
)

type fakeInput struct {
	x, y          float32
	width, height int
	held          map[int]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{x: 400, y: 300, width: 800, height: 600, held: map[int]bool{}}
}

func (in *fakeInput) CursorPosition() (float32, float32) { return in.x, in.y }
func (in *fakeInput) ButtonHeld(b int) bool              { return in.held[b] }
func (in *fakeInput) ViewportSize() (int, int)           { return in.width, in.height }

// fakeView is a perspective viewpoint built directly from eye and target.
type fakeView struct {
	eye    math32.Vector3
	target math32.Vector3
	fov    float32
	aspect float32
	near   float32
	far    float32
	// broken yields a singular view matrix, as a camera with zero scale would.
	broken bool
}

func newFakeView(eye, target math32.Vector3) *fakeView {
	return &fakeView{eye: eye, target: target, fov: 60, aspect: 800.0 / 600.0, near: 0.3, far: 1000}
}

func (v *fakeView) forward() math32.Vector3 {
	f := v.target
	f.Sub(&v.eye).Normalize()
	return f
}

func (v *fakeView) world() math32.Matrix4 {
	f := v.forward()
	right := f.Clone().Cross(math32.NewVector3(0, 1, 0)).Normalize()
	up := right.Clone().Cross(&f).Normalize()
	return math32.Matrix4{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		-f.X, -f.Y, -f.Z, 0,
		v.eye.X, v.eye.Y, v.eye.Z, 1,
	}
}

func (v *fakeView) ViewMatrix(m *math32.Matrix4) {
	if v.broken {
		*m = math32.Matrix4{}
		return
	}
	world := v.world()
	if err := m.GetInverse(&world); err != nil {
		panic(err)
	}
}

func (v *fakeView) ProjMatrix(m *math32.Matrix4) {
	f := 1 / math32.Tan(v.fov*math32.Pi/360)
	*m = math32.Matrix4{
		f / v.aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (v.far + v.near) / (v.near - v.far), -1,
		0, 0, 2 * v.far * v.near / (v.near - v.far), 0,
	}
}

// fakeTarget exposes a fixed set of property names, like an effect graph.
type fakeTarget struct {
	world   math32.Matrix4
	floats  map[string]float32
	vectors map[string]math32.Vector3
	writes  int
}

func newFakeTarget() *fakeTarget {
	ft := &fakeTarget{
		floats:  map[string]float32{DefaultEmitPropertyName: 0},
		vectors: map[string]math32.Vector3{DefaultVectorPropertyName: {}},
	}
	ft.world.Identity()
	return ft
}

func (ft *fakeTarget) SetFloat(name string, value float32) {
	ft.writes++
	if _, ok := ft.floats[name]; ok {
		ft.floats[name] = value
	}
}

func (ft *fakeTarget) SetVector3(name string, value math32.Vector3) {
	ft.writes++
	if _, ok := ft.vectors[name]; ok {
		ft.vectors[name] = value
	}
}

func (ft *fakeTarget) MatrixWorld() math32.Matrix4 { return ft.world }

// pose builds a world matrix rotating by angle around Y, scaling uniformly and translating.
func pose(angle, scale float32, translation math32.Vector3) math32.Matrix4 {
	c := math32.Cos(angle) * scale
	s := math32.Sin(angle) * scale
	return math32.Matrix4{
		c, 0, -s, 0,
		0, scale, 0, 0,
		s, 0, c, 0,
		translation.X, translation.Y, translation.Z, 1,
	}
}
