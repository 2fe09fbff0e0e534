// Package engine owns scenes and the frame loop. Exactly one scene is
// active at a time; each frame runs the physics pass first, then the scene
// update, then hands draw data to the renderer collaborator.
package engine

import (
	"sync"
	"time"

	"github.com/flux2d/flux2d/internal/core/events/bus"
	"github.com/flux2d/flux2d/internal/core/observability/log"
	"github.com/flux2d/flux2d/internal/core/physics"
	"github.com/flux2d/flux2d/internal/core/scene"
)

// Bus event types published on engine state changes.
const (
	EventStarted     = "engine.started"
	EventStopped     = "engine.stopped"
	EventSceneLoaded = "engine.scene_loaded"
)

// Engine sequences the simulation. Scheduling is cooperative and
// single-threaded: ticks never overlap, and Stop takes effect at the next
// scheduled callback rather than mid-tick.
type Engine struct {
	mu sync.Mutex

	log       log.Log
	bus       bus.EventBus
	scheduler FrameScheduler
	world     *physics.World
	renderer  Renderer
	now       func() time.Time

	cfg       Config
	scenes    []*scene.Scene
	active    *scene.Scene
	running   bool
	lastFrame time.Time
}

// Option customizes engine construction.
type Option func(*Engine)

// WithRenderer attaches the drawing collaborator.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithClock overrides the wall-clock source. Tests pair it with a
// ManualScheduler.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(cfg Config, logger log.Log, scheduler FrameScheduler, eventBus bus.EventBus, opts ...Option) *Engine {
	if logger == nil {
		logger = log.Nop()
	}
	if scheduler == nil {
		scheduler = NewTickerScheduler(cfg.TickRate)
	}
	e := &Engine{
		log:       logger,
		bus:       eventBus,
		scheduler: scheduler,
		world:     physics.NewWorld(logger, eventBus),
		now:       time.Now,
		cfg:       cfg,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// GetCurrentScene returns the active scene, nil when none is loaded.
func (e *Engine) GetCurrentScene() *scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Scenes returns the owned scenes in registration order.
func (e *Engine) Scenes() []*scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*scene.Scene(nil), e.scenes...)
}

// LoadScene makes s the active scene, registering it if unknown, and wakes
// its entities. A running engine is stopped for the swap and restarted
// afterward.
func (e *Engine) LoadScene(s *scene.Scene) {
	if s == nil {
		e.log.Warn("load of nil scene ignored")
		return
	}
	wasRunning := e.Running()
	if wasRunning {
		e.Stop()
	}

	e.mu.Lock()
	if !e.owns(s) {
		e.scenes = append(e.scenes, s)
	}
	e.active = s
	if e.cfg.Gravity > 0 {
		s.Gravity = e.cfg.Gravity
	}
	e.mu.Unlock()

	e.world.Reset()
	s.Awake()
	e.log.Info("scene loaded", log.String("scene", s.Name()))
	e.publish(EventSceneLoaded, s.Name())

	if wasRunning {
		e.Start()
	}
}

// Start begins the frame loop. Without an active scene the engine logs a
// warning and stays stopped.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	if e.active == nil {
		e.mu.Unlock()
		e.log.Warn("start without an active scene, staying stopped")
		return
	}
	e.running = true
	e.lastFrame = e.now()
	active := e.active
	e.mu.Unlock()

	active.Start()
	e.scheduler.Schedule(e.tick)
	e.log.Info("engine started", log.String("scene", active.Name()))
	e.publish(EventStarted, active.Name())
}

// Stop cancels the next scheduled frame and stops the active scene.
// Idempotent; a tick already in flight completes normally.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	active := e.active
	e.mu.Unlock()

	e.scheduler.Cancel()
	if active != nil {
		active.Stop()
	}
	e.log.Info("engine stopped")
	e.publish(EventStopped, nil)
}

// tick is one frame: compute deltaTime from the wall-clock delta, physics
// pass, scene update, renderer hand-off, reschedule.
func (e *Engine) tick(now time.Time) {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	dt := now.Sub(e.lastFrame).Seconds()
	if dt < 0 {
		dt = 0
	}
	e.lastFrame = now
	active := e.active
	e.mu.Unlock()

	e.world.Step(active)
	active.Update(dt)

	if e.renderer != nil {
		e.renderer.Draw(collectFrame(active))
	}

	e.mu.Lock()
	stillRunning := e.running
	e.mu.Unlock()
	if stillRunning {
		e.scheduler.Schedule(e.tick)
	}
}

func (e *Engine) owns(s *scene.Scene) bool {
	for _, owned := range e.scenes {
		if owned == s {
			return true
		}
	}
	return false
}

func (e *Engine) publish(eventType string, data any) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(bus.NewEvent(eventType, "engine", data)); err != nil {
		e.log.Warn("engine event handler failed", log.Error(err))
	}
}
