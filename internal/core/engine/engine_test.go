package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flux2d/flux2d/internal/core/events/bus"
	"github.com/flux2d/flux2d/internal/core/geom"
	"github.com/flux2d/flux2d/internal/core/observability/log"
	"github.com/flux2d/flux2d/internal/core/scene"
)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	base := time.Unix(0, 0)
	opts = append([]Option{WithClock(func() time.Time { return base })}, opts...)
	e := New(DefaultConfig(), log.Nop(), sched, nil, opts...)
	return e, sched
}

func TestEngine_StartWithoutSceneStaysStopped(t *testing.T) {
	e, sched := newTestEngine(t)
	e.Start()
	require.False(t, e.Running())
	require.False(t, sched.Pending())
}

func TestEngine_FrameLoop(t *testing.T) {
	e, sched := newTestEngine(t)

	s := scene.NewScene("level")
	var dts []float64
	scene.RegisterScript("test-engine-dt", scene.Callbacks{
		Update: func(sc *scene.Script, dt float64) { dts = append(dts, dt) },
	})
	g := scene.NewGameObject("npc")
	g.AddComponent(scene.NewScript("test-engine-dt"))
	s.AddGameObject(g)

	e.LoadScene(s)
	e.Start()
	require.True(t, e.Running())
	require.True(t, s.Running())
	require.True(t, sched.Pending())

	// deltaTime comes from the wall-clock delta between callbacks.
	sched.Advance(time.Unix(1, 0))
	require.Equal(t, []float64{1.0}, dts)
	require.True(t, sched.Pending())

	sched.Advance(time.Unix(1, 500_000_000))
	require.Len(t, dts, 2)
	require.InDelta(t, 0.5, dts[1], 1e-9)
}

func TestEngine_PhysicsRunsBeforeSceneUpdate(t *testing.T) {
	e, sched := newTestEngine(t)

	s := scene.NewScene("level")

	// Two overlapping box colliders; the collision enter must be observed
	// by the script during the same tick's update.
	var orderedEvents []string
	scene.RegisterScript("test-order-probe", scene.Callbacks{
		Update: func(sc *scene.Script, dt float64) {
			orderedEvents = append(orderedEvents, "update")
		},
		OnCollisionEnter: func(sc *scene.Script, other *scene.Collider) {
			orderedEvents = append(orderedEvents, "enter")
		},
	})

	a := scene.NewGameObject("a")
	a.AddComponent(scene.NewBoxCollider(10, 10))
	a.AddComponent(scene.NewScript("test-order-probe"))
	s.AddGameObject(a)

	b := scene.NewGameObject("b")
	b.Transform().Position = geom.V2(5, 0)
	b.AddComponent(scene.NewBoxCollider(10, 10))
	s.AddGameObject(b)

	e.LoadScene(s)
	e.Start()
	sched.Advance(time.Unix(1, 0))

	require.Equal(t, []string{"enter", "update"}, orderedEvents)
}

func TestEngine_StopIsIdempotentAndCancels(t *testing.T) {
	e, sched := newTestEngine(t)
	s := scene.NewScene("level")
	e.LoadScene(s)
	e.Start()
	require.True(t, sched.Pending())

	e.Stop()
	require.False(t, e.Running())
	require.False(t, s.Running())
	require.False(t, sched.Pending())

	e.Stop() // second stop is a no-op
	require.False(t, e.Running())
}

func TestEngine_StopFromScriptCompletesTick(t *testing.T) {
	e, sched := newTestEngine(t)
	s := scene.NewScene("level")

	var updates []string
	scene.RegisterScript("test-self-stopper", scene.Callbacks{
		Update: func(sc *scene.Script, dt float64) {
			updates = append(updates, "stopper")
			e.Stop()
		},
	})
	scene.RegisterScript("test-bystander", scene.Callbacks{
		Update: func(sc *scene.Script, dt float64) {
			updates = append(updates, "bystander")
		},
	})

	stopper := scene.NewGameObject("stopper")
	stopper.AddComponent(scene.NewScript("test-self-stopper"))
	s.AddGameObject(stopper)

	bystander := scene.NewGameObject("bystander")
	bystander.AddComponent(scene.NewScript("test-bystander"))
	s.AddGameObject(bystander)

	e.LoadScene(s)
	e.Start()
	sched.Advance(time.Unix(1, 0))

	// The in-flight tick still completes; the flag is honored at the next
	// scheduled callback, which never gets scheduled.
	require.Equal(t, []string{"stopper", "bystander"}, updates)
	require.False(t, sched.Pending())
	require.False(t, e.Running())
}

func TestEngine_LoadSceneSwapsAndRestarts(t *testing.T) {
	e, sched := newTestEngine(t)

	first := scene.NewScene("first")
	second := scene.NewScene("second")

	e.LoadScene(first)
	require.Same(t, first, e.GetCurrentScene())
	require.Len(t, e.Scenes(), 1)

	e.Start()
	require.True(t, first.Running())

	e.LoadScene(second)
	require.Same(t, second, e.GetCurrentScene())
	require.Len(t, e.Scenes(), 2)
	// Running before the swap, so the engine restarted on the new scene.
	require.True(t, e.Running())
	require.True(t, second.Running())
	require.False(t, first.Running())
	require.True(t, sched.Pending())

	// Re-loading a known scene does not duplicate registration.
	e.LoadScene(first)
	require.Len(t, e.Scenes(), 2)
}

func TestEngine_LoadSceneAppliesConfigGravity(t *testing.T) {
	sched := NewManualScheduler()
	cfg := DefaultConfig()
	cfg.Gravity = 20
	e := New(cfg, log.Nop(), sched, nil)

	s := scene.NewScene("level")
	e.LoadScene(s)
	require.Equal(t, 20.0, s.Gravity)
}

func TestEngine_BusLifecycleEvents(t *testing.T) {
	b := bus.New()
	var events []string
	for _, et := range []string{EventStarted, EventStopped, EventSceneLoaded} {
		et := et
		_, err := b.Subscribe(et, func(e bus.Event) error {
			events = append(events, e.Type())
			return nil
		})
		require.NoError(t, err)
	}

	sched := NewManualScheduler()
	e := New(DefaultConfig(), log.Nop(), sched, b)
	e.LoadScene(scene.NewScene("level"))
	e.Start()
	e.Stop()

	require.Equal(t, []string{EventSceneLoaded, EventStarted, EventStopped}, events)
}

type recordingRenderer struct {
	canvas any
	w, h   int
	frames [][]DrawCall
}

func (r *recordingRenderer) SetCanvas(handle any)      { r.canvas = handle }
func (r *recordingRenderer) SetSize(width, height int) { r.w, r.h = width, height }
func (r *recordingRenderer) Draw(frame []DrawCall)     { r.frames = append(r.frames, frame) }

func TestEngine_RendererReceivesFrames(t *testing.T) {
	r := &recordingRenderer{}
	e, sched := newTestEngine(t, WithRenderer(r))

	s := scene.NewScene("level")

	background := scene.NewGameObject("background")
	bgSprite := scene.NewRenderable(scene.RenderRect, geom.V2(800, 600))
	bgSprite.ZIndex = -10
	background.AddComponent(bgSprite)
	s.AddGameObject(background)

	parent := scene.NewGameObject("parent")
	parent.Transform().Position = geom.V2(100, 0)
	child := scene.NewGameObject("child")
	child.Transform().Position = geom.V2(0, 50)
	child.AddComponent(scene.NewRenderable(scene.RenderSprite, geom.V2(16, 16)))
	parent.AddChild(child)
	s.AddGameObject(parent)

	hidden := scene.NewGameObject("hidden")
	hidden.AddComponent(scene.NewRenderable(scene.RenderRect, geom.V2(1, 1)))
	hidden.SetActive(false)
	s.AddGameObject(hidden)

	e.LoadScene(s)
	e.Start()
	sched.Advance(time.Unix(1, 0))

	require.Len(t, r.frames, 1)
	frame := r.frames[0]
	// Inactive entities are not drawn; z-order ascending.
	require.Len(t, frame, 2)
	require.Equal(t, -10, frame[0].ZIndex)

	// Child world transform composes the parent chain.
	require.Equal(t, geom.V2(100, 50), frame[1].World.Translation())
}
