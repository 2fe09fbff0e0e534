package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector2_Arithmetic(t *testing.T) {
	t.Run("Add Sub Scale", func(t *testing.T) {
		a := V2(1, 2)
		b := V2(3, -4)

		require.Equal(t, V2(4, -2), a.Add(b))
		require.Equal(t, V2(-2, 6), a.Sub(b))
		require.Equal(t, V2(2, 4), a.Scale(2))
	})

	t.Run("Dot", func(t *testing.T) {
		require.Equal(t, 11.0, V2(1, 2).Dot(V2(3, 4)))
		require.Equal(t, 0.0, V2(1, 0).Dot(V2(0, 1)))
	})

	t.Run("Value equality", func(t *testing.T) {
		require.Equal(t, V2(5, 10), V2(5, 10))
		require.NotEqual(t, V2(5, 10), V2(10, 5))
	})
}

func TestVector2_Magnitude(t *testing.T) {
	require.Equal(t, 5.0, V2(3, 4).Magnitude())
	require.Equal(t, 25.0, V2(3, 4).MagnitudeSquared())
	require.Equal(t, 0.0, Zero2.Magnitude())
}

func TestVector2_Normalize(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		n := V2(3, 4).Normalize()
		require.InDelta(t, 1.0, n.Magnitude(), 1e-12)
		require.InDelta(t, 0.6, n.X, 1e-12)
		require.InDelta(t, 0.8, n.Y, 1e-12)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		require.Equal(t, Zero2, Zero2.Normalize())
	})
}

func TestVector2_Distance(t *testing.T) {
	require.Equal(t, 5.0, V2(0, 0).Distance(V2(3, 4)))
	require.Equal(t, 25.0, V2(0, 0).DistanceSquared(V2(3, 4)))
}

func TestVector2_Reflect(t *testing.T) {
	// Falling straight down onto a floor with an up-facing normal.
	reflected := V2(0, -1).Reflect(V2(0, 1))
	require.InDelta(t, 0, reflected.X, 1e-12)
	require.InDelta(t, 1, reflected.Y, 1e-12)
}

func TestVector2_ClampMagnitude(t *testing.T) {
	require.Equal(t, V2(3, 4), V2(3, 4).ClampMagnitude(10))

	clamped := V2(3, 4).ClampMagnitude(1)
	require.InDelta(t, 1.0, clamped.Magnitude(), 1e-12)
}

func TestMatrix_TRS(t *testing.T) {
	t.Run("identity maps points unchanged", func(t *testing.T) {
		p := Identity().Apply(V2(7, -3))
		require.Equal(t, V2(7, -3), p)
	})

	t.Run("translation", func(t *testing.T) {
		m := TRS(V2(10, 20), 0, V2(1, 1))
		require.Equal(t, V2(11, 22), m.Apply(V2(1, 2)))
		require.Equal(t, V2(10, 20), m.Translation())
	})

	t.Run("rotation 90 degrees", func(t *testing.T) {
		m := TRS(Zero2, 90, V2(1, 1))
		p := m.Apply(V2(1, 0))
		require.InDelta(t, 0, p.X, 1e-12)
		require.InDelta(t, 1, p.Y, 1e-12)
	})

	t.Run("scale", func(t *testing.T) {
		m := TRS(Zero2, 0, V2(2, 3))
		require.Equal(t, V2(2, 6), m.Apply(V2(1, 2)))
	})

	t.Run("compose parent child", func(t *testing.T) {
		parent := TRS(V2(100, 0), 0, V2(1, 1))
		child := TRS(V2(0, 50), 0, V2(1, 1))
		world := parent.Mul(child)
		require.Equal(t, V2(100, 50), world.Apply(Zero2))
	})
}

func TestMatrix_RotationPreservesLength(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 30 {
		m := TRS(Zero2, deg, V2(1, 1))
		p := m.Apply(V2(3, 4))
		require.InDelta(t, 5.0, math.Hypot(p.X, p.Y), 1e-9)
	}
}
