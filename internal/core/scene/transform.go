package scene

import (
	"math"

	"github.com/flux2d/flux2d/internal/core/geom"
)

// Transform places an entity in 2D space. Every entity owns exactly one and
// it can never be removed.
type Transform struct {
	baseComponent

	Position geom.Vector2
	rotation float64 // degrees, kept in [0,360)
	Scale    geom.Vector2
}

func NewTransform() *Transform {
	return &Transform{
		baseComponent: newBase(),
		Scale:         geom.V2(1, 1),
	}
}

func (t *Transform) Kind() Kind { return KindTransform }

// Rotation returns the rotation in degrees, normalized to [0,360).
func (t *Transform) Rotation() float64 { return t.rotation }

// SetRotation stores deg normalized to [0,360). Negative input wraps.
func (t *Transform) SetRotation(deg float64) {
	t.rotation = normalizeDegrees(deg)
}

// Translate offsets the position by delta.
func (t *Transform) Translate(delta geom.Vector2) {
	t.Position = t.Position.Add(delta)
}

// Matrix returns the local TRS matrix. Scale may be negative to express
// flips; it is passed through unclamped.
func (t *Transform) Matrix() geom.Matrix {
	return geom.TRS(t.Position, t.rotation, t.Scale)
}

func (t *Transform) Serialize() Record {
	return Record{
		"position": vectorRecord(t.Position),
		"rotation": t.rotation,
		"scale":    vectorRecord(t.Scale),
	}
}

func (t *Transform) Deserialize(rec Record) {
	t.Position = recordVector(rec, "position", t.Position)
	t.SetRotation(recordFloat(rec, "rotation", t.rotation))
	t.Scale = recordVector(rec, "scale", t.Scale)
}

func (t *Transform) Clone() Component {
	clone := NewTransform()
	clone.Position = t.Position
	clone.rotation = t.rotation
	clone.Scale = t.Scale
	return clone
}

// copyFrom overwrites values in place. Used when cloning an entity so the
// clone keeps its implicit transform instead of gaining a second one.
func (t *Transform) copyFrom(src *Transform) {
	t.Position = src.Position
	t.rotation = src.rotation
	t.Scale = src.Scale
}

func normalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
