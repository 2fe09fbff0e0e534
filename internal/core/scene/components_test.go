package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flux2d/flux2d/internal/core/geom"
)

func TestTransform_RotationNormalization(t *testing.T) {
	tr := NewTransform()

	tr.SetRotation(45)
	require.Equal(t, 45.0, tr.Rotation())

	tr.SetRotation(360)
	require.Equal(t, 0.0, tr.Rotation())

	tr.SetRotation(-90)
	require.Equal(t, 270.0, tr.Rotation())

	tr.SetRotation(725)
	require.InDelta(t, 5.0, tr.Rotation(), 1e-12)
}

func TestTransform_SerializeRoundTrip(t *testing.T) {
	tr := NewTransform()
	tr.Position = geom.V2(5, 10)
	tr.SetRotation(45)
	tr.Scale = geom.V2(2, 2)

	fresh := NewTransform()
	fresh.Deserialize(tr.Serialize())

	require.Equal(t, geom.V2(5, 10), fresh.Position)
	require.Equal(t, 45.0, fresh.Rotation())
	require.Equal(t, geom.V2(2, 2), fresh.Scale)
}

func TestTransform_DeserializeMalformedKeepsPrior(t *testing.T) {
	tr := NewTransform()
	tr.Position = geom.V2(1, 2)
	tr.SetRotation(30)

	tr.Deserialize(Record{
		"position": "not a vector",
		"rotation": []int{1, 2, 3},
		"scale":    map[string]any{"x": "bad", "y": 7},
	})

	require.Equal(t, geom.V2(1, 2), tr.Position)
	require.Equal(t, 30.0, tr.Rotation())
	// Partial vector decode keeps the good axis and the prior bad one.
	require.Equal(t, geom.V2(1, 7), tr.Scale)
}

func TestRigidBody_GravityIntegration(t *testing.T) {
	g := NewGameObject("ball")
	rb := NewRigidBody()
	rb.UseGravity = true
	g.AddComponent(rb)

	rb.Update(1.0)

	require.InDelta(t, 9.8, rb.Velocity.Y, 1e-12)
	require.InDelta(t, 9.8, g.Transform().Position.Y, 1e-12)
	require.Equal(t, geom.Zero2, rb.Acceleration)
}

func TestRigidBody_KinematicSkipsIntegration(t *testing.T) {
	g := NewGameObject("wall")
	rb := NewRigidBody()
	rb.UseGravity = true
	rb.IsKinematic = true
	rb.Velocity = geom.V2(3, 0)
	g.AddComponent(rb)

	rb.Update(1.0)

	require.Equal(t, geom.Zero2, g.Transform().Position)
	require.Equal(t, geom.V2(3, 0), rb.Velocity)
}

func TestRigidBody_DragDampsVelocity(t *testing.T) {
	g := NewGameObject("puck")
	rb := NewRigidBody()
	rb.SetDrag(0.5)
	rb.Velocity = geom.V2(10, 0)
	g.AddComponent(rb)

	rb.Update(1.0)

	require.InDelta(t, 5.0, rb.Velocity.X, 1e-12)
	require.InDelta(t, 5.0, g.Transform().Position.X, 1e-12)
}

func TestRigidBody_MassAndDragValidation(t *testing.T) {
	rb := NewRigidBody()

	rb.SetMass(2)
	require.Equal(t, 2.0, rb.Mass())
	rb.SetMass(0)
	require.Equal(t, 2.0, rb.Mass())
	rb.SetMass(-5)
	require.Equal(t, 2.0, rb.Mass())

	rb.SetDrag(0.25)
	require.Equal(t, 0.25, rb.Drag())
	rb.SetDrag(-1)
	require.Equal(t, 0.25, rb.Drag())
}

func TestRigidBody_AddForce(t *testing.T) {
	rb := NewRigidBody()
	rb.SetMass(2)
	rb.AddForce(geom.V2(10, 0))
	require.Equal(t, geom.V2(5, 0), rb.Acceleration)
}

func TestCollider_WorldCenter(t *testing.T) {
	g := NewGameObject("crate")
	g.Transform().Position = geom.V2(100, 50)
	col := NewBoxCollider(10, 10)
	col.Offset = geom.V2(5, -5)
	g.AddComponent(col)

	require.Equal(t, geom.V2(105, 45), col.Center())
}

func TestCollider_SerializeRoundTrip(t *testing.T) {
	col := NewCircleCollider(7.5)
	col.Offset = geom.V2(1, 2)
	col.IsTrigger = true

	fresh := NewBoxCollider(0, 0)
	fresh.Deserialize(col.Serialize())

	require.Equal(t, ShapeCircle, fresh.Shape)
	require.Equal(t, 7.5, fresh.Radius)
	require.Equal(t, geom.V2(1, 2), fresh.Offset)
	require.True(t, fresh.IsTrigger)
}

func TestRenderable_SerializeRoundTrip(t *testing.T) {
	r := NewRenderable(RenderSprite, geom.V2(32, 48))
	r.Color = "#ff8800"
	r.ImageRef = "hero.png"
	r.ZIndex = 3
	r.Visible = false

	fresh := NewRenderable(RenderRect, geom.Zero2)
	fresh.Deserialize(r.Serialize())

	require.Equal(t, RenderSprite, fresh.Shape)
	require.Equal(t, geom.V2(32, 48), fresh.Size)
	require.Equal(t, "#ff8800", fresh.Color)
	require.Equal(t, "hero.png", fresh.ImageRef)
	require.Equal(t, 3, fresh.ZIndex)
	require.False(t, fresh.Visible)
}

func TestScript_BindingByName(t *testing.T) {
	started := 0
	RegisterScript("test-counter", Callbacks{
		Start: func(s *Script) { started++ },
	})

	s := NewScript("test-counter")
	s.Start()
	require.Equal(t, 1, started)

	t.Run("clone rebinds behavior", func(t *testing.T) {
		clone := s.Clone().(*Script)
		clone.Start()
		require.Equal(t, 2, started)
	})

	t.Run("unknown name runs data-only", func(t *testing.T) {
		orphan := NewScript("never-registered")
		orphan.Start()
		orphan.Update(0.16)
		orphan.OnDestroy()
	})
}

func TestScript_VarsSurviveCloneNotBindings(t *testing.T) {
	s := NewScript("")
	s.SetVar("hp", 100)
	s.SetVar("label", "boss")

	clone := s.Clone().(*Script)
	require.Equal(t, 100, clone.Var("hp", 0))
	require.Equal(t, "boss", clone.Var("label", ""))
	require.NotEqual(t, s.ID(), clone.ID())

	clone.SetVar("hp", 50)
	require.Equal(t, 100, s.Var("hp", 0))
}

func TestScript_SerializeRoundTrip(t *testing.T) {
	RegisterScript("test-mover", Callbacks{
		Update: func(s *Script, dt float64) {},
	})

	s := NewScript("test-mover")
	s.SetVar("speed", 4.5)

	fresh := NewScript("")
	fresh.Deserialize(s.Serialize())

	require.Equal(t, "test-mover", fresh.ScriptName())
	require.Equal(t, 4.5, fresh.Var("speed", 0.0))
}

func TestKindFromString(t *testing.T) {
	for _, k := range []Kind{KindTransform, KindRigidBody, KindCollider, KindRenderable, KindScript} {
		got, ok := KindFromString(k.String())
		require.True(t, ok)
		require.Equal(t, k, got)
	}
	_, ok := KindFromString("particle-emitter")
	require.False(t, ok)
}
