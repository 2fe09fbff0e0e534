package scene

import (
	"github.com/flux2d/flux2d/internal/core/geom"
	"github.com/flux2d/flux2d/internal/core/observability/log"
)

// DefaultGravity is the downward acceleration applied to bodies with
// gravity enabled, before gravityScale, when the owning scene does not
// override it.
const DefaultGravity = 9.8

// RigidBody gives an entity velocity-based motion. Integration runs in
// Update as part of the normal component pass, which keeps it in the same
// simulation step as collision handling.
type RigidBody struct {
	baseComponent

	Velocity     geom.Vector2
	Acceleration geom.Vector2
	UseGravity   bool
	IsKinematic  bool
	GravityScale float64

	mass float64
	drag float64
}

func NewRigidBody() *RigidBody {
	return &RigidBody{
		baseComponent: newBase(),
		GravityScale:  1,
		mass:          1,
	}
}

func (rb *RigidBody) Kind() Kind { return KindRigidBody }

func (rb *RigidBody) Mass() float64 { return rb.mass }

// SetMass rejects non-positive masses, keeping the prior value.
func (rb *RigidBody) SetMass(m float64) {
	if m <= 0 {
		corelog().Warn("rigidbody mass must be positive, keeping previous",
			log.Float64("rejected", m), log.Float64("mass", rb.mass))
		return
	}
	rb.mass = m
}

func (rb *RigidBody) Drag() float64 { return rb.drag }

// SetDrag rejects negative drag, keeping the prior value.
func (rb *RigidBody) SetDrag(d float64) {
	if d < 0 {
		corelog().Warn("rigidbody drag must be non-negative, keeping previous",
			log.Float64("rejected", d), log.Float64("drag", rb.drag))
		return
	}
	rb.drag = d
}

// Update integrates one tick: gravity into acceleration, acceleration into
// velocity, drag damping, velocity into position, then the acceleration
// accumulator resets. Kinematic bodies skip all of it.
func (rb *RigidBody) Update(dt float64) {
	if rb.IsKinematic {
		return
	}

	if rb.UseGravity {
		rb.Acceleration.Y += rb.gravity() * rb.GravityScale
	}

	rb.Velocity = rb.Velocity.Add(rb.Acceleration.Scale(dt))
	rb.Velocity = rb.Velocity.Scale(1 - rb.drag*dt)

	if t := rb.transform(); t != nil {
		t.Position = t.Position.Add(rb.Velocity.Scale(dt))
	}

	rb.Acceleration = geom.Zero2
}

// AddForce accumulates acceleration for the current tick (a = F/m).
func (rb *RigidBody) AddForce(force geom.Vector2) {
	rb.Acceleration = rb.Acceleration.Add(force.Scale(1 / rb.mass))
}

func (rb *RigidBody) Serialize() Record {
	return Record{
		"velocity":     vectorRecord(rb.Velocity),
		"acceleration": vectorRecord(rb.Acceleration),
		"mass":         rb.mass,
		"drag":         rb.drag,
		"useGravity":   rb.UseGravity,
		"isKinematic":  rb.IsKinematic,
		"gravityScale": rb.GravityScale,
	}
}

func (rb *RigidBody) Deserialize(rec Record) {
	rb.Velocity = recordVector(rec, "velocity", rb.Velocity)
	rb.Acceleration = recordVector(rec, "acceleration", rb.Acceleration)
	if m := recordFloat(rec, "mass", rb.mass); m > 0 {
		rb.mass = m
	}
	if d := recordFloat(rec, "drag", rb.drag); d >= 0 {
		rb.drag = d
	}
	rb.UseGravity = recordBool(rec, "useGravity", rb.UseGravity)
	rb.IsKinematic = recordBool(rec, "isKinematic", rb.IsKinematic)
	rb.GravityScale = recordFloat(rec, "gravityScale", rb.GravityScale)
}

func (rb *RigidBody) Clone() Component {
	clone := NewRigidBody()
	clone.Velocity = rb.Velocity
	clone.Acceleration = rb.Acceleration
	clone.UseGravity = rb.UseGravity
	clone.IsKinematic = rb.IsKinematic
	clone.GravityScale = rb.GravityScale
	clone.mass = rb.mass
	clone.drag = rb.drag
	return clone
}

func (rb *RigidBody) transform() *Transform {
	if rb.owner == nil {
		return nil
	}
	return rb.owner.Transform()
}

func (rb *RigidBody) gravity() float64 {
	if rb.owner != nil {
		if s := rb.owner.Scene(); s != nil {
			return s.Gravity
		}
	}
	return DefaultGravity
}
