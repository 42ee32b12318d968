// Package effect implements a small particle emitter driven by named properties.
package effect

import (
	"log"
	"math/rand"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/geometry"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/material"
	"github.com/g3n/engine/math32"
)

// EmitterConfig describes the properties an emitter exposes and how it spawns.
type EmitterConfig struct {
	EmitProperty     string
	PositionProperty string
	// LocalSpace interprets the position property in the emitter's own frame.
	LocalSpace bool
	Rate       float32 // particles per second while emitting
	Lifespan   float32 // seconds
	Speed      float32
	MaxCount   int
	Color      string
}

func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		EmitProperty:     "Emit",
		PositionProperty: "MouseWorld",
		Rate:             60,
		Lifespan:         1.5,
		Speed:            1.0,
		MaxCount:         512,
		Color:            "Cyan",
	}
}

type Particle struct {
	Position math32.Vector3 // emitter local space
	Velocity math32.Vector3
	Lifespan float32
	Elapsed  float32
	Mesh     *graphic.Mesh
}

// Emitter is a particle system on a scene node. Its properties are written by
// name; names it does not declare are ignored.
type Emitter struct {
	*core.Node
	cfg       EmitterConfig
	floats    map[string]float32
	vectors   map[string]math32.Vector3
	particles []*Particle
	pending   float32
	meshes    bool
	rng       *rand.Rand
}

// NewEmitter creates an emitter. Particle meshes are only built once the
// emitter is attached with AttachTo.
func NewEmitter(cfg EmitterConfig) *Emitter {
	e := &Emitter{
		Node:    core.NewNode(),
		cfg:     cfg,
		floats:  map[string]float32{cfg.EmitProperty: 0},
		vectors: map[string]math32.Vector3{cfg.PositionProperty: {}},
		rng:     rand.New(rand.NewSource(1)),
	}
	return e
}

// AttachTo adds the emitter to the scene and enables particle meshes.
func (e *Emitter) AttachTo(scene *core.Node) {
	scene.Add(e)
	e.meshes = true
}

// DeclareFloat exposes an extra scalar property.
func (e *Emitter) DeclareFloat(name string, value float32) { e.floats[name] = value }

func (e *Emitter) DeclareVector3(name string, value math32.Vector3) { e.vectors[name] = value }

func (e *Emitter) SetFloat(name string, value float32) {
	if _, ok := e.floats[name]; ok {
		e.floats[name] = value
	}
}

func (e *Emitter) SetVector3(name string, value math32.Vector3) {
	if _, ok := e.vectors[name]; ok {
		e.vectors[name] = value
	}
}

func (e *Emitter) Float(name string) (float32, bool) {
	v, ok := e.floats[name]
	return v, ok
}

func (e *Emitter) Vector3(name string) (math32.Vector3, bool) {
	v, ok := e.vectors[name]
	return v, ok
}

// MatrixWorld returns the up to date world transform of the emitter node.
func (e *Emitter) MatrixWorld() math32.Matrix4 {
	e.UpdateMatrixWorld()
	return e.Node.MatrixWorld()
}

// SetLocalSpace switches how the position property is interpreted. Live
// particles keep their current positions.
func (e *Emitter) SetLocalSpace(local bool) { e.cfg.LocalSpace = local }

func (e *Emitter) LocalSpace() bool { return e.cfg.LocalSpace }

func (e *Emitter) Particles() []*Particle { return e.particles }

func (e *Emitter) Emitting() bool { return e.floats[e.cfg.EmitProperty] > 0 }

// SpawnPosition is the position property expressed in emitter local space.
func (e *Emitter) SpawnPosition() math32.Vector3 {
	p := e.vectors[e.cfg.PositionProperty]
	if e.cfg.LocalSpace {
		return p
	}
	world := e.MatrixWorld()
	var inv math32.Matrix4
	if err := inv.GetInverse(&world); err != nil {
		log.Printf("emitter: world transform not invertible: %v", err)
		return math32.Vector3{}
	}
	p.ApplyMatrix4(&inv)
	return p
}

// Update ages particles, retires expired ones and spawns new ones while emitting.
func (e *Emitter) Update(deltaTime float32) {
	var alive []*Particle
	for _, p := range e.particles {
		p.Elapsed += deltaTime
		if p.Elapsed >= p.Lifespan {
			if p.Mesh != nil {
				e.Remove(p.Mesh)
			}
			continue
		}
		p.Position.Add(p.Velocity.Clone().MultiplyScalar(deltaTime))
		if p.Mesh != nil {
			p.Mesh.SetPositionVec(&p.Position)
		}
		alive = append(alive, p)
	}
	e.particles = alive

	if !e.Emitting() {
		e.pending = 0
		return
	}

	e.pending += e.cfg.Rate * deltaTime
	origin := e.SpawnPosition()
	for e.pending >= 1 {
		e.pending--
		if e.cfg.MaxCount > 0 && len(e.particles) >= e.cfg.MaxCount {
			continue
		}
		e.particles = append(e.particles, e.spawn(origin))
	}
}

func (e *Emitter) spawn(position math32.Vector3) *Particle {
	p := &Particle{
		Position: position,
		Velocity: *e.direction().MultiplyScalar(e.cfg.Speed),
		Lifespan: e.cfg.Lifespan,
	}
	if e.meshes {
		sphereGeom := geometry.NewSphere(0.05, 8, 8)
		sphereMat := material.NewStandard(math32.NewColor(e.cfg.Color))
		p.Mesh = graphic.NewMesh(sphereGeom, sphereMat)
		p.Mesh.SetPositionVec(&p.Position)
		e.Add(p.Mesh)
	}
	return p
}

// direction returns a random unit vector biased upwards.
func (e *Emitter) direction() *math32.Vector3 {
	d := math32.NewVector3(
		(e.rng.Float32()-0.5)*1.0,
		1,
		(e.rng.Float32()-0.5)*1.0,
	)
	return d.Normalize()
}
