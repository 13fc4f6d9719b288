package shape

import (
	"iter"
	"slices"
)

// Registry is a flat, insertion-ordered collection of rectangles used to
// answer "which rectangles lie within this one" queries.
//
// Membership is not ownership: rectangles stay usable and mutable after
// being added, and the registry always sees their current geometry.
// Rectangles are never removed.
//
// A Registry is meant to be used from one goroutine. Callers that share one
// between goroutines must synchronise access themselves.
type Registry struct {
	rects []*Rect
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends rects in order. Nil entries are ignored.
func (r *Registry) Add(rects ...*Rect) {
	for _, rect := range rects {
		if rect == nil {
			continue
		}
		r.rects = append(r.rects, rect)
	}
	Logger().Debug("shape: registry grew", "len", len(r.rects))
}

// NewRect creates a rectangle and registers it.
func (r *Registry) NewRect(x, y, width, height float64, opts ...Option) *Rect {
	rect := NewRect(x, y, width, height, opts...)
	r.Add(rect)
	return rect
}

// Len returns the number of registered rectangles.
func (r *Registry) Len() int {
	return len(r.rects)
}

// All iterates the rectangles in insertion order.
func (r *Registry) All() iter.Seq[*Rect] {
	return slices.Values(r.rects)
}

// Rects returns a copy of the registered rectangles in insertion order.
func (r *Registry) Rects() []*Rect {
	return slices.Clone(r.rects)
}

var _ RectSet = (*Registry)(nil)
