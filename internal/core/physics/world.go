// Package physics runs per-tick collision detection, collision-state
// tracking and resolution over the colliders of a scene's active entities.
// Velocity integration itself lives in scene.RigidBody.Update; both halves
// belong to the same simulation step, sequenced by the engine.
package physics

import (
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/flux2d/flux2d/internal/core/events/bus"
	"github.com/flux2d/flux2d/internal/core/observability/log"
	"github.com/flux2d/flux2d/internal/core/scene"
)

// Bus event types published for editor/tooling observers. Script
// components are notified directly, not through the bus.
const (
	EventCollisionEnter = "physics.collision.enter"
	EventCollisionExit  = "physics.collision.exit"
	EventTriggerEnter   = "physics.trigger.enter"
	EventTriggerExit    = "physics.trigger.exit"
)

// PairEvent is the bus payload for collision state transitions.
type PairEvent struct {
	A       *scene.Collider
	B       *scene.Collider
	Trigger bool
}

// Damping constants of the coarse resolver. The velocity "exchange" on a
// dual non-kinematic contact is a heuristic, not an impulse solve; gameplay
// is tuned against this approximation.
const (
	bounceDamping   = 0.5
	exchangeDamping = 0.8
)

// World tracks collision pair state across ticks. Pair identity is a
// canonical order-independent key, so (A,B) and (B,A) are the same pair.
type World struct {
	log       log.Log
	bus       bus.EventBus
	colliding map[uint64]pair
}

type pair struct {
	a *scene.Collider
	b *scene.Collider
}

// NewWorld creates a physics world. The event bus is optional.
func NewWorld(logger log.Log, eventBus bus.EventBus) *World {
	if logger == nil {
		logger = log.Nop()
	}
	return &World{
		log:       logger,
		bus:       eventBus,
		colliding: make(map[uint64]pair),
	}
}

// PairKey builds the canonical id of an unordered collider pair: the two
// ids are sorted before hashing so identity is order-independent.
func PairKey(idA, idB string) uint64 {
	if idA > idB {
		idA, idB = idB, idA
	}
	d := xxhash.New()
	_, _ = d.WriteString(idA)
	_, _ = d.WriteString("|")
	_, _ = d.WriteString(idB)
	return d.Sum64()
}

// Step runs one physics pass: broad phase over active owners, pairwise
// narrow phase, enter/exit edge detection against the previous tick's
// state, script notification, then resolution of non-trigger contacts.
func (w *World) Step(s *scene.Scene) {
	if s == nil {
		return
	}

	colliders := collectColliders(s)
	current := make(map[uint64]pair, len(w.colliding))

	for i := 0; i < len(colliders); i++ {
		for j := i + 1; j < len(colliders); j++ {
			a, b := colliders[i], colliders[j]
			if !intersects(a, b) {
				continue
			}
			current[PairKey(a.ID(), b.ID())] = pair{a: a, b: b}
		}
	}

	// Enter edges: colliding now, not colliding last tick.
	for key, p := range current {
		if _, was := w.colliding[key]; !was {
			w.dispatch(p, true)
		}
	}

	// Exit edges: colliding last tick, absent from the current set.
	for key, p := range w.colliding {
		if _, still := current[key]; !still {
			w.dispatch(p, false)
		}
	}

	for _, p := range current {
		w.resolve(p)
	}

	w.colliding = current
}

// Reset forgets all pair state, e.g. when a different scene is loaded.
func (w *World) Reset() {
	w.colliding = make(map[uint64]pair)
}

// collectColliders gathers colliders whose direct owner is active. The
// activity check is on the direct owner, matching the entity's own gating.
func collectColliders(s *scene.Scene) []*scene.Collider {
	var out []*scene.Collider
	var walk func(g *scene.GameObject)
	walk = func(g *scene.GameObject) {
		if g.Active() {
			if c := g.GetComponent(scene.KindCollider); c != nil {
				out = append(out, c.(*scene.Collider))
			}
		}
		for _, child := range g.Children() {
			walk(child)
		}
	}
	for _, g := range s.GameObjects() {
		walk(g)
	}
	// Deterministic pair ordering regardless of map/tree churn.
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (w *World) dispatch(p pair, enter bool) {
	trigger := p.a.IsTrigger || p.b.IsTrigger

	notify := func(owner *scene.GameObject, other *scene.Collider) {
		if owner == nil {
			return
		}
		for _, s := range owner.Scripts() {
			switch {
			case trigger && enter:
				s.NotifyTriggerEnter(other)
			case trigger && !enter:
				s.NotifyTriggerExit(other)
			case enter:
				s.NotifyCollisionEnter(other)
			default:
				s.NotifyCollisionExit(other)
			}
		}
	}
	notify(p.a.Owner(), p.b)
	notify(p.b.Owner(), p.a)

	if w.bus == nil {
		return
	}
	eventType := EventCollisionEnter
	switch {
	case trigger && enter:
		eventType = EventTriggerEnter
	case trigger && !enter:
		eventType = EventTriggerExit
	case !enter:
		eventType = EventCollisionExit
	}
	if err := w.bus.Publish(bus.NewEvent(eventType, "physics", PairEvent{A: p.a, B: p.b, Trigger: trigger})); err != nil {
		w.log.Warn("collision event handler failed", log.Error(err))
	}
}
