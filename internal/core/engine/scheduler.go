package engine

import (
	"sync"
	"time"
)

// FrameScheduler abstracts the host platform's per-frame callback. The
// engine requests exactly one callback per tick and reschedules itself
// from within the callback; Cancel drops the pending callback without
// interrupting one already running.
type FrameScheduler interface {
	Schedule(fn func(now time.Time))
	Cancel()
}

// TickerScheduler drives frames off the wall clock at a fixed rate. It is
// the default host when no platform frame source exists.
type TickerScheduler struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{interval: time.Second / time.Duration(fps)}
}

func (t *TickerScheduler) Schedule(fn func(now time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = time.AfterFunc(t.interval, func() {
		fn(time.Now())
	})
}

func (t *TickerScheduler) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// ManualScheduler hands frame control to the caller. Tests and editor
// embeddings advance time explicitly.
type ManualScheduler struct {
	pending func(now time.Time)
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Schedule(fn func(now time.Time)) {
	m.pending = fn
}

func (m *ManualScheduler) Cancel() {
	m.pending = nil
}

// Pending reports whether a frame callback is scheduled.
func (m *ManualScheduler) Pending() bool {
	return m.pending != nil
}

// Advance runs the pending callback, if any, with the given frame time.
func (m *ManualScheduler) Advance(now time.Time) {
	fn := m.pending
	m.pending = nil
	if fn != nil {
		fn(now)
	}
}
