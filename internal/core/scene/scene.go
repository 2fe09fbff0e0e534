package scene

import (
	"slices"

	"github.com/flux2d/flux2d/internal/core/observability/log"
	"github.com/flux2d/flux2d/pkg/sequence"
)

// Scene owns a forest of root entities and drives lifecycle propagation.
// It does nothing until started.
type Scene struct {
	name    string
	Gravity float64
	roots   []*GameObject
	running bool
}

func NewScene(name string) *Scene {
	return &Scene{
		name:    name,
		Gravity: DefaultGravity,
	}
}

func (s *Scene) Name() string { return s.name }

func (s *Scene) Running() bool { return s.running }

// GameObjects gives read access to the root collection for rendering and
// iteration. Callers must not mutate the returned slice.
func (s *Scene) GameObjects() []*GameObject { return s.roots }

// AddGameObject appends g to the root collection. When the scene is
// already running the entity is woken and started immediately, so
// dynamically spawned objects behave like pre-existing ones.
func (s *Scene) AddGameObject(g *GameObject) {
	if g == nil {
		return
	}
	g.setScene(s)
	s.roots = append(s.roots, g)
	if s.running {
		g.Awake()
		g.Start()
	}
}

// RemoveGameObject destroys g (cascading into its subtree) and removes it
// from the collection. The entity must not be referenced again afterward.
func (s *Scene) RemoveGameObject(g *GameObject) bool {
	for i, root := range s.roots {
		if root == g {
			g.OnDestroy()
			s.roots = append(s.roots[:i], s.roots[i+1:]...)
			g.setScene(nil)
			return true
		}
	}
	corelog().Warn("remove of entity not in scene ignored",
		log.String("scene", s.name), log.String("entity", g.Name))
	return false
}

// GetGameObjectByID searches the whole tree.
func (s *Scene) GetGameObjectByID(id string) *GameObject {
	g, _ := s.all().Filter(func(g *GameObject) bool { return g.id == id }).First()
	return g
}

// FindGameObjectsByName returns every entity in the tree with the given
// name.
func (s *Scene) FindGameObjectsByName(name string) []*GameObject {
	return s.all().Filter(func(g *GameObject) bool { return g.Name == name }).Collect()
}

// FindGameObjectsByTag returns every entity in the tree with the given tag.
func (s *Scene) FindGameObjectsByTag(tag string) []*GameObject {
	return s.all().Filter(func(g *GameObject) bool { return g.Tag == tag }).Collect()
}

// FindGameObjectByTag returns the first tagged match, for singleton lookups
// like "player".
func (s *Scene) FindGameObjectByTag(tag string) *GameObject {
	g, _ := s.all().Filter(func(g *GameObject) bool { return g.Tag == tag }).First()
	return g
}

// Awake wakes every entity without starting the scene. The engine calls
// this when a scene is loaded.
func (s *Scene) Awake() {
	for _, g := range slices.Clone(s.roots) {
		g.Awake()
	}
}

// Start flips the running flag and propagates to all root entities.
func (s *Scene) Start() {
	if s.running {
		return
	}
	s.running = true
	for _, g := range slices.Clone(s.roots) {
		g.Awake()
	}
	for _, g := range slices.Clone(s.roots) {
		g.Start()
	}
}

// Stop flips the running flag and propagates to all root entities.
func (s *Scene) Stop() {
	if !s.running {
		return
	}
	s.running = false
	for _, g := range slices.Clone(s.roots) {
		g.Stop()
	}
}

// Update propagates to every active root entity. A scene that is not
// running ignores updates entirely. The root collection is cloned before
// iterating so scripts may add or remove entities mid-tick; an entity
// removed this way still receives no more than one update per tick, and
// one added this way updates for the first time next tick.
func (s *Scene) Update(dt float64) {
	if !s.running {
		return
	}
	for _, g := range slices.Clone(s.roots) {
		if g.scene == s {
			g.Update(dt)
		}
	}
}

// all iterates the whole entity tree depth-first.
func (s *Scene) all() *sequence.Iterator[*GameObject] {
	var flat []*GameObject
	var walk func(g *GameObject)
	walk = func(g *GameObject) {
		flat = append(flat, g)
		for _, c := range g.Children() {
			walk(c)
		}
	}
	for _, g := range s.roots {
		walk(g)
	}
	return sequence.From(flat)
}
