package scene

import (
	"sync"

	"github.com/flux2d/flux2d/internal/core/observability/log"
)

// Callbacks is the behavior table of a script. Every hook is optional.
// Callbacks are opaque to the core: they are invoked at the documented
// lifecycle points and never serialized.
type Callbacks struct {
	Start            func(s *Script)
	Update           func(s *Script, dt float64)
	OnCollisionEnter func(s *Script, other *Collider)
	OnCollisionExit  func(s *Script, other *Collider)
	OnTriggerEnter   func(s *Script, other *Collider)
	OnTriggerExit    func(s *Script, other *Collider)
	OnDestroy        func(s *Script)
}

var scriptRegistry = struct {
	mu sync.RWMutex
	m  map[string]Callbacks
}{m: make(map[string]Callbacks)}

// RegisterScript binds a behavior table to a name. Scripts reference
// behavior by name, so clones and deserialized entities rebind
// automatically instead of carrying un-cloneable closures.
func RegisterScript(name string, cb Callbacks) {
	scriptRegistry.mu.Lock()
	defer scriptRegistry.mu.Unlock()
	if _, exists := scriptRegistry.m[name]; exists {
		corelog().Warn("script behavior re-registered", log.String("script", name))
	}
	scriptRegistry.m[name] = cb
}

// LookupScript returns the behavior registered under name.
func LookupScript(name string) (Callbacks, bool) {
	scriptRegistry.mu.RLock()
	defer scriptRegistry.mu.RUnlock()
	cb, ok := scriptRegistry.m[name]
	return cb, ok
}

// Script attaches registered behavior plus serializable data variables to
// an entity. Multiple scripts may coexist on one entity, keyed by their
// component ids.
type Script struct {
	baseComponent

	name      string
	Vars      map[string]any
	callbacks Callbacks
}

// NewScript binds the behavior registered under name. An unknown name is
// not fatal: the script carries data but no behavior, and a warning is
// logged.
func NewScript(name string) *Script {
	s := &Script{
		baseComponent: newBase(),
		name:          name,
		Vars:          make(map[string]any),
	}
	s.rebind()
	return s
}

func (s *Script) Kind() Kind { return KindScript }

// ScriptName returns the registered behavior name.
func (s *Script) ScriptName() string { return s.name }

func (s *Script) rebind() {
	if s.name == "" {
		s.callbacks = Callbacks{}
		return
	}
	cb, ok := LookupScript(s.name)
	if !ok {
		corelog().Warn("script behavior not registered, running data-only",
			log.String("script", s.name))
		s.callbacks = Callbacks{}
		return
	}
	s.callbacks = cb
}

// Var reads a data variable with a typed default.
func (s *Script) Var(key string, def any) any {
	if v, ok := s.Vars[key]; ok {
		return v
	}
	return def
}

// SetVar writes a data variable.
func (s *Script) SetVar(key string, val any) {
	if s.Vars == nil {
		s.Vars = make(map[string]any)
	}
	s.Vars[key] = val
}

func (s *Script) Start() {
	if s.callbacks.Start != nil {
		s.callbacks.Start(s)
	}
}

func (s *Script) Update(dt float64) {
	if s.callbacks.Update != nil {
		s.callbacks.Update(s, dt)
	}
}

func (s *Script) OnDestroy() {
	if s.callbacks.OnDestroy != nil {
		s.callbacks.OnDestroy(s)
	}
}

// NotifyCollisionEnter is invoked by the physics pass when a non-trigger
// pair starts overlapping.
func (s *Script) NotifyCollisionEnter(other *Collider) {
	if s.callbacks.OnCollisionEnter != nil {
		s.callbacks.OnCollisionEnter(s, other)
	}
}

func (s *Script) NotifyCollisionExit(other *Collider) {
	if s.callbacks.OnCollisionExit != nil {
		s.callbacks.OnCollisionExit(s, other)
	}
}

func (s *Script) NotifyTriggerEnter(other *Collider) {
	if s.callbacks.OnTriggerEnter != nil {
		s.callbacks.OnTriggerEnter(s, other)
	}
}

func (s *Script) NotifyTriggerExit(other *Collider) {
	if s.callbacks.OnTriggerExit != nil {
		s.callbacks.OnTriggerExit(s, other)
	}
}

func (s *Script) Serialize() Record {
	vars := make(map[string]any, len(s.Vars))
	for k, v := range s.Vars {
		vars[k] = v
	}
	return Record{
		"script": s.name,
		"vars":   vars,
	}
}

func (s *Script) Deserialize(rec Record) {
	if name := recordString(rec, "script", s.name); name != s.name {
		s.name = name
		s.rebind()
	}
	if raw, ok := rec["vars"]; ok {
		if vars, ok := raw.(map[string]any); ok {
			s.Vars = make(map[string]any, len(vars))
			for k, v := range vars {
				s.Vars[k] = v
			}
		}
	}
}

// Clone copies the data variables and rebinds behavior by name. Bindings
// themselves are never carried over.
func (s *Script) Clone() Component {
	clone := NewScript(s.name)
	for k, v := range s.Vars {
		clone.Vars[k] = v
	}
	return clone
}
