package physics

import (
	"math"

	"github.com/flux2d/flux2d/internal/core/geom"
	"github.com/flux2d/flux2d/internal/core/scene"
)

// contact is the minimum-translation result of a narrow-phase test: a unit
// normal pointing from a toward b and the penetration depth along it.
type contact struct {
	normal geom.Vector2
	depth  float64
}

// intersects runs the shape-pair overlap test in world space.
func intersects(a, b *scene.Collider) bool {
	switch {
	case a.Shape == scene.ShapeBox && b.Shape == scene.ShapeBox:
		return boxBoxOverlap(a, b)
	case a.Shape == scene.ShapeCircle && b.Shape == scene.ShapeCircle:
		return circleCircleOverlap(a, b)
	case a.Shape == scene.ShapeBox:
		return boxCircleOverlap(a, b)
	default:
		return boxCircleOverlap(b, a)
	}
}

// boxBoxOverlap is an axis-aligned test on each axis independently.
func boxBoxOverlap(a, b *scene.Collider) bool {
	ca, cb := a.Center(), b.Center()
	return math.Abs(cb.X-ca.X) < (a.Width+b.Width)/2 &&
		math.Abs(cb.Y-ca.Y) < (a.Height+b.Height)/2
}

func circleCircleOverlap(a, b *scene.Collider) bool {
	return a.Center().Distance(b.Center()) < a.Radius+b.Radius
}

// boxCircleOverlap compares the circle center to its closest point on the
// box, squared to avoid the sqrt.
func boxCircleOverlap(box, circle *scene.Collider) bool {
	closest := closestPointOnBox(box, circle.Center())
	return closest.DistanceSquared(circle.Center()) < circle.Radius*circle.Radius
}

func closestPointOnBox(box *scene.Collider, p geom.Vector2) geom.Vector2 {
	c := box.Center()
	return geom.V2(
		math.Max(c.X-box.Width/2, math.Min(p.X, c.X+box.Width/2)),
		math.Max(c.Y-box.Height/2, math.Min(p.Y, c.Y+box.Height/2)),
	)
}

// contactFor computes the minimum-translation contact for an intersecting
// pair, normal pointing from a toward b.
func contactFor(a, b *scene.Collider) contact {
	switch {
	case a.Shape == scene.ShapeBox && b.Shape == scene.ShapeBox:
		return boxBoxContact(a, b)
	case a.Shape == scene.ShapeCircle && b.Shape == scene.ShapeCircle:
		return circleCircleContact(a, b)
	case a.Shape == scene.ShapeBox:
		return boxCircleContact(a, b, false)
	default:
		return boxCircleContact(b, a, true)
	}
}

// boxBoxContact pushes along the axis of least overlap.
func boxBoxContact(a, b *scene.Collider) contact {
	ca, cb := a.Center(), b.Center()
	dx := cb.X - ca.X
	dy := cb.Y - ca.Y
	overlapX := (a.Width+b.Width)/2 - math.Abs(dx)
	overlapY := (a.Height+b.Height)/2 - math.Abs(dy)

	if overlapX < overlapY {
		n := geom.V2(1, 0)
		if dx < 0 {
			n = geom.V2(-1, 0)
		}
		return contact{normal: n, depth: overlapX}
	}
	n := geom.V2(0, 1)
	if dy < 0 {
		n = geom.V2(0, -1)
	}
	return contact{normal: n, depth: overlapY}
}

// circleCircleContact pushes along the center-to-center direction scaled by
// penetration depth. Coincident centers fall back to an arbitrary axis.
func circleCircleContact(a, b *scene.Collider) contact {
	delta := b.Center().Sub(a.Center())
	if delta.IsZero() {
		return contact{normal: geom.V2(1, 0), depth: a.Radius + b.Radius}
	}
	dist := delta.Magnitude()
	return contact{
		normal: delta.Scale(1 / dist),
		depth:  a.Radius + b.Radius - dist,
	}
}

// boxCircleContact pushes the circle away from its closest point on the
// box. flipped reports that the original pair order was (circle, box), in
// which case the normal is negated to stay a→b.
func boxCircleContact(box, circle *scene.Collider, flipped bool) contact {
	center := circle.Center()
	closest := closestPointOnBox(box, center)
	delta := center.Sub(closest)

	var n geom.Vector2
	var depth float64
	if delta.IsZero() {
		// Center inside the box: push out along the least-overlap axis of
		// the box relative to the center.
		c := contact{}
		dxLeft := center.X - (box.Center().X - box.Width/2)
		dxRight := (box.Center().X + box.Width/2) - center.X
		dyTop := center.Y - (box.Center().Y - box.Height/2)
		dyBottom := (box.Center().Y + box.Height/2) - center.Y
		minPen := math.Min(math.Min(dxLeft, dxRight), math.Min(dyTop, dyBottom))
		switch minPen {
		case dxLeft:
			c = contact{normal: geom.V2(-1, 0), depth: dxLeft + circle.Radius}
		case dxRight:
			c = contact{normal: geom.V2(1, 0), depth: dxRight + circle.Radius}
		case dyTop:
			c = contact{normal: geom.V2(0, -1), depth: dyTop + circle.Radius}
		default:
			c = contact{normal: geom.V2(0, 1), depth: dyBottom + circle.Radius}
		}
		n, depth = c.normal, c.depth
	} else {
		dist := delta.Magnitude()
		n = delta.Scale(1 / dist)
		depth = circle.Radius - dist
	}

	if flipped {
		n = n.Scale(-1)
	}
	return contact{normal: n, depth: depth}
}
