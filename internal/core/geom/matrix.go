package geom

import "math"

// Matrix is a 2x3 affine transform in row-major order:
//
//	| A C Tx |
//	| B D Ty |
//
// It maps local points into a parent space. Renderers consume it as the
// world transform of a drawable.
type Matrix struct {
	A, B, C, D, Tx, Ty float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// TRS composes translate * rotate * scale, with rotation in degrees.
// This is the conventional order for scene-graph node transforms.
func TRS(translation Vector2, rotationDeg float64, scale Vector2) Matrix {
	rad := rotationDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Matrix{
		A:  cos * scale.X,
		B:  sin * scale.X,
		C:  -sin * scale.Y,
		D:  cos * scale.Y,
		Tx: translation.X,
		Ty: translation.Y,
	}
}

// Mul returns m * o, applying o first.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A:  m.A*o.A + m.C*o.B,
		B:  m.B*o.A + m.D*o.B,
		C:  m.A*o.C + m.C*o.D,
		D:  m.B*o.C + m.D*o.D,
		Tx: m.A*o.Tx + m.C*o.Ty + m.Tx,
		Ty: m.B*o.Tx + m.D*o.Ty + m.Ty,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p Vector2) Vector2 {
	return Vector2{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// Translation returns the translation part.
func (m Matrix) Translation() Vector2 {
	return Vector2{X: m.Tx, Y: m.Ty}
}
