package scene

import (
	"slices"

	"github.com/google/uuid"

	"github.com/flux2d/flux2d/internal/core/observability/log"
)

// GameObject is a named, taggable node in the scene tree. It owns its
// components and its children exclusively; parent and scene references are
// non-owning back-links maintained by the tree operations.
type GameObject struct {
	id     string
	Name   string
	Tag    string
	active bool

	components []Component
	parent     *GameObject
	children   []*GameObject
	scene      *Scene

	awoken  bool
	started bool
}

// NewGameObject creates an active entity with its mandatory Transform.
func NewGameObject(name string) *GameObject {
	g := &GameObject{
		id:     uuid.NewString(),
		Name:   name,
		active: true,
	}
	t := NewTransform()
	t.setOwner(g)
	g.components = append(g.components, t)
	return g
}

func (g *GameObject) ID() string { return g.id }

func (g *GameObject) Active() bool { return g.active }

// SetActive gates all lifecycle propagation for this entity and its whole
// subtree. An inactive subtree never animates or simulates.
func (g *GameObject) SetActive(active bool) { g.active = active }

// Scene returns the scene this entity currently belongs to, nil when
// detached.
func (g *GameObject) Scene() *Scene { return g.scene }

// Transform returns the mandatory transform. It is attached at
// construction and can never be removed, so this never returns nil.
func (g *GameObject) Transform() *Transform {
	return g.GetComponent(KindTransform).(*Transform)
}

// AddComponent attaches c. Adding a second instance of a non-script kind
// is rejected: the existing instance is returned unchanged and a warning
// is logged. Scripts may coexist, keyed by their own ids.
func (g *GameObject) AddComponent(c Component) Component {
	if c.Kind() != KindScript {
		if existing := g.GetComponent(c.Kind()); existing != nil {
			corelog().Warn("duplicate component rejected",
				log.String("entity", g.Name),
				log.String("kind", c.Kind().String()))
			return existing
		}
	}
	c.setOwner(g)
	g.components = append(g.components, c)

	// Dynamically attached components catch up with the entity's own
	// lifecycle position.
	if g.awoken {
		c.Awake()
	}
	if g.started {
		c.Start()
	}
	return c
}

// GetComponent returns the single component of the given kind, or nil.
func (g *GameObject) GetComponent(kind Kind) Component {
	for _, c := range g.components {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// GetComponents returns all components of the given kind in insertion
// order. For non-script kinds the result has zero or one element.
func (g *GameObject) GetComponents(kind Kind) []Component {
	var out []Component
	for _, c := range g.components {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Scripts returns all attached scripts in insertion order.
func (g *GameObject) Scripts() []*Script {
	var out []*Script
	for _, c := range g.components {
		if s, ok := c.(*Script); ok {
			out = append(out, s)
		}
	}
	return out
}

// RemoveComponent detaches the component of the given kind and reports
// whether a removal occurred. Transform removal is always rejected. For
// scripts an id selects among multiple instances; with no id the first
// script is removed. OnDestroy runs before detachment.
func (g *GameObject) RemoveComponent(kind Kind, id ...string) bool {
	if kind == KindTransform {
		corelog().Warn("transform cannot be removed", log.String("entity", g.Name))
		return false
	}
	for i, c := range g.components {
		if c.Kind() != kind {
			continue
		}
		if kind == KindScript && len(id) > 0 && c.ID() != id[0] {
			continue
		}
		c.OnDestroy()
		g.components = append(g.components[:i], g.components[i+1:]...)
		c.setOwner(nil)
		return true
	}
	return false
}

func (g *GameObject) Parent() *GameObject { return g.parent }

func (g *GameObject) Children() []*GameObject { return g.children }

// AddChild appends child to this entity's ordered children. Reparenting
// detaches from any prior parent first so ownership is never duplicated.
// Cycles are not checked; the caller must not introduce one.
func (g *GameObject) AddChild(child *GameObject) {
	if child == nil || child == g {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = g
	g.children = append(g.children, child)
	child.setScene(g.scene)

	if g.scene != nil && g.scene.Running() {
		child.Awake()
		child.Start()
	}
}

// RemoveChild detaches child without destroying it. Returns whether the
// child was found.
func (g *GameObject) RemoveChild(child *GameObject) bool {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			child.parent = nil
			child.setScene(nil)
			return true
		}
	}
	return false
}

// FindChildByName searches the subtree depth-first, excluding the receiver.
func (g *GameObject) FindChildByName(name string) *GameObject {
	for _, c := range g.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChildByName(name); found != nil {
			return found
		}
	}
	return nil
}

// Clone deep-copies the entity: fresh entity and component ids, copied
// component data, recursively cloned children. The clone is detached from
// any parent or scene.
func (g *GameObject) Clone() *GameObject {
	clone := NewGameObject(g.Name)
	clone.Tag = g.Tag
	clone.active = g.active

	for _, c := range g.components {
		if t, ok := c.(*Transform); ok {
			// The implicit default transform takes the values rather than
			// being replaced by a duplicate.
			clone.Transform().copyFrom(t)
			continue
		}
		cc := c.Clone()
		cc.setOwner(clone)
		clone.components = append(clone.components, cc)
	}

	for _, child := range g.children {
		childClone := child.Clone()
		childClone.parent = clone
		clone.children = append(clone.children, childClone)
	}
	return clone
}

// Awake runs once per entity, then recurses depth-first into children.
func (g *GameObject) Awake() {
	if !g.awoken {
		g.awoken = true
		for _, c := range slices.Clone(g.components) {
			c.Awake()
		}
	}
	for _, child := range slices.Clone(g.children) {
		child.Awake()
	}
}

// Start runs once per entity before its first update. Inactive entities
// short-circuit entirely: neither they nor their children start.
func (g *GameObject) Start() {
	if !g.active {
		return
	}
	if !g.started {
		g.started = true
		for _, c := range slices.Clone(g.components) {
			c.Start()
		}
	}
	for _, child := range slices.Clone(g.children) {
		child.Start()
	}
}

// Update runs every simulation tick. Inactive entities short-circuit
// entirely, skipping themselves and their whole subtree. Both loops run
// over clones so scripts may detach components or children mid-tick
// without a sibling being visited twice; anything detached by an earlier
// callback in the same tick is skipped via its cleared back-link.
func (g *GameObject) Update(dt float64) {
	if !g.active {
		return
	}
	for _, c := range slices.Clone(g.components) {
		if c.Owner() == g {
			c.Update(dt)
		}
	}
	for _, child := range slices.Clone(g.children) {
		if child.parent == g {
			child.Update(dt)
		}
	}
}

// Stop propagates to components and the whole subtree regardless of the
// active flag.
func (g *GameObject) Stop() {
	for _, c := range slices.Clone(g.components) {
		c.Stop()
	}
	for _, child := range slices.Clone(g.children) {
		child.Stop()
	}
}

// OnDestroy cascades through components and the owned subtree. Once
// destroyed and removed from its scene an entity must not be reused.
func (g *GameObject) OnDestroy() {
	for _, c := range slices.Clone(g.components) {
		c.OnDestroy()
	}
	for _, child := range slices.Clone(g.children) {
		child.OnDestroy()
	}
}

func (g *GameObject) setScene(s *Scene) {
	g.scene = s
	for _, child := range g.children {
		child.setScene(s)
	}
}
