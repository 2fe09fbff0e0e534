package engine

import (
	"sort"

	"github.com/flux2d/flux2d/internal/core/geom"
	"github.com/flux2d/flux2d/internal/core/scene"
)

// DrawCall is the read-only draw data handed to the renderer for one
// renderable: the entity's world transform plus the renderable's shape,
// color and image reference.
type DrawCall struct {
	World    geom.Matrix
	Shape    scene.RenderShape
	Size     geom.Vector2
	Color    string
	ImageRef string
	ZIndex   int
}

// Renderer is the out-of-core drawing collaborator. The engine pushes a
// z-sorted frame of draw calls to it each tick; backends are not specified
// here.
type Renderer interface {
	SetCanvas(handle any)
	SetSize(width, height int)
	Draw(frame []DrawCall)
}

// collectFrame walks the active entity tree composing world matrices and
// gathers visible renderables, sorted by z-index.
func collectFrame(s *scene.Scene) []DrawCall {
	var frame []DrawCall
	var walk func(g *scene.GameObject, parent geom.Matrix)
	walk = func(g *scene.GameObject, parent geom.Matrix) {
		if !g.Active() {
			return
		}
		world := parent.Mul(g.Transform().Matrix())
		if c := g.GetComponent(scene.KindRenderable); c != nil {
			r := c.(*scene.Renderable)
			if r.Visible {
				frame = append(frame, DrawCall{
					World:    world,
					Shape:    r.Shape,
					Size:     r.Size,
					Color:    r.Color,
					ImageRef: r.ImageRef,
					ZIndex:   r.ZIndex,
				})
			}
		}
		for _, child := range g.Children() {
			walk(child, world)
		}
	}
	for _, g := range s.GameObjects() {
		walk(g, geom.Identity())
	}
	sort.SliceStable(frame, func(i, j int) bool { return frame[i].ZIndex < frame[j].ZIndex })
	return frame
}
