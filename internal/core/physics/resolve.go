package physics

import "github.com/flux2d/flux2d/internal/core/scene"

// resolve applies the coarse minimum-translation response to an
// intersecting non-trigger pair. Entities without a rigid body, and
// kinematic bodies, never move; when both sides are immovable nothing
// happens.
func (w *World) resolve(p pair) {
	if p.a.IsTrigger || p.b.IsTrigger {
		return
	}

	rbA := rigidBodyOf(p.a)
	rbB := rigidBodyOf(p.b)
	movableA := rbA != nil && !rbA.IsKinematic
	movableB := rbB != nil && !rbB.IsKinematic
	if !movableA && !movableB {
		return
	}

	c := contactFor(p.a, p.b)
	if c.depth <= 0 {
		return
	}

	switch {
	case movableA && movableB:
		// Split displacement evenly; swap velocities with damping. This is
		// an approximate momentum exchange, not an impulse solve.
		half := c.normal.Scale(c.depth / 2)
		p.a.Owner().Transform().Translate(half.Scale(-1))
		p.b.Owner().Transform().Translate(half)
		rbA.Velocity, rbB.Velocity =
			rbB.Velocity.Scale(exchangeDamping),
			rbA.Velocity.Scale(exchangeDamping)

	case movableA:
		p.a.Owner().Transform().Translate(c.normal.Scale(-c.depth))
		rbA.Velocity = rbA.Velocity.Reflect(c.normal).Scale(bounceDamping)

	default:
		p.b.Owner().Transform().Translate(c.normal.Scale(c.depth))
		rbB.Velocity = rbB.Velocity.Reflect(c.normal).Scale(bounceDamping)
	}
}

func rigidBodyOf(c *scene.Collider) *scene.RigidBody {
	owner := c.Owner()
	if owner == nil {
		return nil
	}
	if rb := owner.GetComponent(scene.KindRigidBody); rb != nil {
		return rb.(*scene.RigidBody)
	}
	return nil
}
