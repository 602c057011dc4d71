package render

import (
	"context"
	"errors"
	"io"
)

// ErrTemplateNotFound is returned when none of the candidate template
// names resolve to a known template.
var ErrTemplateNotFound = errors.New("render: template not found")

// Renderer executes the first matching template from an ordered candidate
// list. Candidates go from most specific to most generic.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, candidates []string, data any) error
}

// Component binds a renderer, candidate list and data into a single
// renderable value, compatible with Context.Render.
func Component(r Renderer, candidates []string, data any) BoundComponent {
	return BoundComponent{renderer: r, candidates: candidates, data: data}
}

// BoundComponent is a renderer invocation frozen with its candidate list
// and data. It satisfies the Component contract of the request context.
type BoundComponent struct {
	renderer   Renderer
	candidates []string
	data       any
}

func (c BoundComponent) Render(ctx context.Context, w io.Writer) error {
	return c.renderer.Render(ctx, w, c.candidates, c.data)
}
