package geom

import (
	"fmt"
	"math"
)

// Vector2 is a 2D value-type vector. All operations return new values; a
// Vector2 is never mutated in place, so it is safe to share by copy.
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// V2 is a shorthand constructor.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero2 is the zero vector.
var Zero2 = Vector2{}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Mul multiplies component-wise. Used for applying non-uniform scale.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// MagnitudeSquared avoids the sqrt when only comparisons are needed.
func (v Vector2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vector2) Normalize() Vector2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2{}
	}
	inv := 1.0 / mag
	return Vector2{X: v.X * inv, Y: v.Y * inv}
}

func (v Vector2) Distance(o Vector2) float64 {
	return v.Sub(o).Magnitude()
}

func (v Vector2) DistanceSquared(o Vector2) float64 {
	return v.Sub(o).MagnitudeSquared()
}

// Reflect returns v reflected off a surface with the given unit normal:
// v' = v - 2*dot(v, n)*n.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	d := 2 * v.Dot(normal)
	return Vector2{X: v.X - d*normal.X, Y: v.Y - d*normal.Y}
}

// ClampMagnitude limits the vector to maxMag while preserving direction.
func (v Vector2) ClampMagnitude(maxMag float64) Vector2 {
	mag := v.Magnitude()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

// IsZero reports exact zero on both axes.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%.4g, %.4g)", v.X, v.Y)
}
