package scene

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/flux2d/flux2d/internal/core/geom"
	"github.com/flux2d/flux2d/internal/core/observability/log"
)

// ComponentRecord is the serialized form of one component: its kind name,
// its id, and a plain data record. Behavior is never serialized.
type ComponentRecord struct {
	Kind string `json:"kind" yaml:"kind"`
	ID   string `json:"id" yaml:"id"`
	Data Record `json:"data" yaml:"data"`
}

// EntityRecord is the serialized form of an entity subtree. Active is a
// pointer so documents that never mention the flag decode the same way the
// constructor would build the entity: a missing flag means active.
type EntityRecord struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Tag        string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	Active     *bool             `json:"active,omitempty" yaml:"active,omitempty"`
	Components []ComponentRecord `json:"components" yaml:"components"`
	Children   []EntityRecord    `json:"children,omitempty" yaml:"children,omitempty"`
}

// SceneDocument is the serialized form of a whole scene.
type SceneDocument struct {
	Name     string         `json:"name" yaml:"name"`
	Gravity  float64        `json:"gravity" yaml:"gravity"`
	Entities []EntityRecord `json:"entities" yaml:"entities"`
}

// ToRecord serializes the entity and its subtree.
func (g *GameObject) ToRecord() EntityRecord {
	active := g.active
	rec := EntityRecord{
		ID:     g.id,
		Name:   g.Name,
		Tag:    g.Tag,
		Active: &active,
	}
	for _, c := range g.components {
		rec.Components = append(rec.Components, ComponentRecord{
			Kind: c.Kind().String(),
			ID:   c.ID(),
			Data: c.Serialize(),
		})
	}
	for _, child := range g.children {
		rec.Children = append(rec.Children, child.ToRecord())
	}
	return rec
}

// ToJSON serializes the entity subtree to JSON.
func (g *GameObject) ToJSON() ([]byte, error) {
	return json.Marshal(g.ToRecord())
}

// FromRecord reconstructs an entity subtree. Component records of unknown
// kind are skipped with a warning instead of failing the whole entity, so
// documents written by newer versions still load.
func FromRecord(rec EntityRecord) *GameObject {
	g := NewGameObject(rec.Name)
	if rec.ID != "" {
		g.id = rec.ID
	}
	g.Tag = rec.Tag
	g.active = rec.Active == nil || *rec.Active

	for _, cr := range rec.Components {
		kind, ok := KindFromString(cr.Kind)
		if !ok {
			corelog().Warn("unknown component kind skipped",
				log.String("entity", rec.Name), log.String("kind", cr.Kind))
			continue
		}
		var c Component
		if kind == KindTransform {
			// Deserialize into the implicit transform, keeping the
			// exactly-one-transform invariant.
			c = g.Transform()
		} else {
			c = newComponentOfKind(kind)
			g.AddComponent(c)
		}
		if cr.ID != "" {
			setComponentID(c, cr.ID)
		}
		c.Deserialize(cr.Data)
	}

	for _, childRec := range rec.Children {
		g.AddChild(FromRecord(childRec))
	}
	return g
}

// FromJSON reconstructs an entity subtree from JSON.
func FromJSON(data []byte) (*GameObject, error) {
	var rec EntityRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return FromRecord(rec), nil
}

// ToDocument serializes the scene.
func (s *Scene) ToDocument() SceneDocument {
	doc := SceneDocument{
		Name:    s.name,
		Gravity: s.Gravity,
	}
	for _, g := range s.roots {
		doc.Entities = append(doc.Entities, g.ToRecord())
	}
	return doc
}

// FromDocument reconstructs a scene. The scene comes back stopped.
func FromDocument(doc SceneDocument) *Scene {
	s := NewScene(doc.Name)
	if doc.Gravity > 0 {
		s.Gravity = doc.Gravity
	}
	for _, rec := range doc.Entities {
		s.AddGameObject(FromRecord(rec))
	}
	return s
}

// LoadSceneJSON reads a scene document in JSON form.
func LoadSceneJSON(r io.Reader) (*Scene, error) {
	var doc SceneDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return FromDocument(doc), nil
}

// LoadSceneYAML reads a scene document in YAML form.
func LoadSceneYAML(r io.Reader) (*Scene, error) {
	var doc SceneDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return FromDocument(doc), nil
}

func newComponentOfKind(kind Kind) Component {
	switch kind {
	case KindRigidBody:
		return NewRigidBody()
	case KindCollider:
		return NewBoxCollider(0, 0)
	case KindRenderable:
		return NewRenderable(RenderRect, geom.Zero2)
	case KindScript:
		return NewScript("")
	default:
		return NewTransform()
	}
}

func setComponentID(c Component, id string) {
	switch v := c.(type) {
	case *Transform:
		v.id = id
	case *RigidBody:
		v.id = id
	case *Collider:
		v.id = id
	case *Renderable:
		v.id = id
	case *Script:
		v.id = id
	}
}

// Record decoding is field-by-field defensive: a missing or mistyped field
// keeps the fallback value rather than aborting the deserialize.

func recordFloat(rec Record, key string, fallback float64) float64 {
	raw, ok := rec[key]
	if !ok {
		return fallback
	}
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return fallback
}

func recordBool(rec Record, key string, fallback bool) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return fallback
}

func recordString(rec Record, key string, fallback string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return fallback
}

func recordVector(rec Record, key string, fallback geom.Vector2) geom.Vector2 {
	raw, ok := rec[key]
	if !ok {
		return fallback
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return fallback
	}
	return geom.V2(
		recordFloat(m, "x", fallback.X),
		recordFloat(m, "y", fallback.Y),
	)
}

func vectorRecord(v geom.Vector2) map[string]any {
	return map[string]any{"x": v.X, "y": v.Y}
}
