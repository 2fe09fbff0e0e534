package scene

import "github.com/flux2d/flux2d/internal/core/geom"

// RenderShape selects what the renderer draws for an entity.
type RenderShape uint8

const (
	RenderRect RenderShape = iota
	RenderEllipse
	RenderSprite
)

func (s RenderShape) String() string {
	switch s {
	case RenderRect:
		return "rect"
	case RenderEllipse:
		return "ellipse"
	case RenderSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Renderable is pure draw data. The renderer collaborator reads it together
// with the owning transform each frame; the core never draws.
type Renderable struct {
	baseComponent

	Shape    RenderShape
	Size     geom.Vector2
	Color    string // css-style hex, e.g. "#ff8800"
	ImageRef string // opaque asset reference for sprites
	ZIndex   int
	Visible  bool
}

func NewRenderable(shape RenderShape, size geom.Vector2) *Renderable {
	return &Renderable{
		baseComponent: newBase(),
		Shape:         shape,
		Size:          size,
		Color:         "#ffffff",
		Visible:       true,
	}
}

func (r *Renderable) Kind() Kind { return KindRenderable }

func (r *Renderable) Serialize() Record {
	return Record{
		"shape":    r.Shape.String(),
		"size":     vectorRecord(r.Size),
		"color":    r.Color,
		"imageRef": r.ImageRef,
		"zIndex":   float64(r.ZIndex),
		"visible":  r.Visible,
	}
}

func (r *Renderable) Deserialize(rec Record) {
	switch recordString(rec, "shape", r.Shape.String()) {
	case "rect":
		r.Shape = RenderRect
	case "ellipse":
		r.Shape = RenderEllipse
	case "sprite":
		r.Shape = RenderSprite
	}
	r.Size = recordVector(rec, "size", r.Size)
	r.Color = recordString(rec, "color", r.Color)
	r.ImageRef = recordString(rec, "imageRef", r.ImageRef)
	r.ZIndex = int(recordFloat(rec, "zIndex", float64(r.ZIndex)))
	r.Visible = recordBool(rec, "visible", r.Visible)
}

func (r *Renderable) Clone() Component {
	return &Renderable{
		baseComponent: newBase(),
		Shape:         r.Shape,
		Size:          r.Size,
		Color:         r.Color,
		ImageRef:      r.ImageRef,
		ZIndex:        r.ZIndex,
		Visible:       r.Visible,
	}
}
