package scene

import (
	"github.com/google/uuid"

	"github.com/flux2d/flux2d/internal/core/observability/log"
)

// Kind is the closed set of component variants. Scripts are the open
// extension point; everything else is exactly-one-per-entity.
type Kind uint8

const (
	KindTransform Kind = iota
	KindRigidBody
	KindCollider
	KindRenderable
	KindScript
)

var kindNames = map[Kind]string{
	KindTransform:  "transform",
	KindRigidBody:  "rigidbody",
	KindCollider:   "collider",
	KindRenderable: "renderable",
	KindScript:     "script",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// KindFromString resolves a serialized kind name. Unknown names report
// ok=false so deserialization can skip foreign component records.
func KindFromString(s string) (Kind, bool) {
	for k, n := range kindNames {
		if n == s {
			return k, true
		}
	}
	return 0, false
}

// Record is the plain-data form of a component. Only data crosses this
// boundary; callbacks and owner references never do.
type Record = map[string]any

// Component is an attached capability with a lifecycle. The owner
// back-reference is non-owning: a component must not be used after it has
// been detached from its entity.
type Component interface {
	ID() string
	Kind() Kind
	Owner() *GameObject

	Awake()
	Start()
	Update(dt float64)
	Stop()
	OnDestroy()

	Serialize() Record
	Deserialize(rec Record)
	Clone() Component

	setOwner(g *GameObject)
}

// baseComponent carries identity and the owner back-reference. Concrete
// components embed it and override the hooks they care about.
type baseComponent struct {
	id    string
	owner *GameObject
}

func newBase() baseComponent {
	return baseComponent{id: uuid.NewString()}
}

func (b *baseComponent) ID() string             { return b.id }
func (b *baseComponent) Owner() *GameObject     { return b.owner }
func (b *baseComponent) setOwner(g *GameObject) { b.owner = g }

func (b *baseComponent) Awake()         {}
func (b *baseComponent) Start()         {}
func (b *baseComponent) Update(float64) {}
func (b *baseComponent) Stop()          {}
func (b *baseComponent) OnDestroy()     {}

var fallbackLog = log.Nop()

// corelog returns the process logger when one exists, otherwise a nop.
// Keeps the warning paths usable from value contexts without threading a
// logger through every entity.
func corelog() log.Log {
	if l := log.Provide(); l != nil {
		return l
	}
	return fallbackLog
}
