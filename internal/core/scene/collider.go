package scene

import "github.com/flux2d/flux2d/internal/core/geom"

// ColliderShape selects the collision geometry.
type ColliderShape uint8

const (
	ShapeBox ColliderShape = iota
	ShapeCircle
)

func (s ColliderShape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Collider is the collision volume of an entity. Its world-space center is
// the owning transform position plus the local offset. Trigger colliders
// report overlap events but receive no physical push-back.
type Collider struct {
	baseComponent

	Shape     ColliderShape
	Width     float64 // box only
	Height    float64 // box only
	Radius    float64 // circle only
	Offset    geom.Vector2
	IsTrigger bool
}

func NewBoxCollider(width, height float64) *Collider {
	return &Collider{
		baseComponent: newBase(),
		Shape:         ShapeBox,
		Width:         width,
		Height:        height,
	}
}

func NewCircleCollider(radius float64) *Collider {
	return &Collider{
		baseComponent: newBase(),
		Shape:         ShapeCircle,
		Radius:        radius,
	}
}

func (c *Collider) Kind() Kind { return KindCollider }

// Center returns the world-space collider center. Falls back to the bare
// offset when detached.
func (c *Collider) Center() geom.Vector2 {
	if c.owner == nil {
		return c.Offset
	}
	return c.owner.Transform().Position.Add(c.Offset)
}

func (c *Collider) Serialize() Record {
	return Record{
		"shape":     c.Shape.String(),
		"width":     c.Width,
		"height":    c.Height,
		"radius":    c.Radius,
		"offset":    vectorRecord(c.Offset),
		"isTrigger": c.IsTrigger,
	}
}

func (c *Collider) Deserialize(rec Record) {
	switch recordString(rec, "shape", c.Shape.String()) {
	case "circle":
		c.Shape = ShapeCircle
	case "box":
		c.Shape = ShapeBox
	}
	c.Width = recordFloat(rec, "width", c.Width)
	c.Height = recordFloat(rec, "height", c.Height)
	c.Radius = recordFloat(rec, "radius", c.Radius)
	c.Offset = recordVector(rec, "offset", c.Offset)
	c.IsTrigger = recordBool(rec, "isTrigger", c.IsTrigger)
}

func (c *Collider) Clone() Component {
	clone := &Collider{
		baseComponent: newBase(),
		Shape:         c.Shape,
		Width:         c.Width,
		Height:        c.Height,
		Radius:        c.Radius,
		Offset:        c.Offset,
		IsTrigger:     c.IsTrigger,
	}
	return clone
}
