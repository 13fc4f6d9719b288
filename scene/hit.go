package scene

import (
	"iter"
	"slices"

	"github.com/tidwall/rtree"

	"github.com/gogpu/shape"
)

// Bounded is implemented by shapes with an axis-aligned bounding box.
type Bounded interface {
	Bounds() shape.Box
}

// Container is implemented by shapes with an exact containment test.
type Container interface {
	Contains(p shape.Point) bool
}

// HitIndex is a spatial index over object bounds. It is a snapshot: build a
// new one after objects move.
type HitIndex struct {
	tr rtree.RTreeG[*Object]
}

// NewHitIndex indexes every object whose shape is Bounded.
func NewHitIndex(objects iter.Seq[*Object]) *HitIndex {
	h := &HitIndex{}
	for obj := range objects {
		b, ok := obj.Shape.(Bounded)
		if !ok {
			continue
		}
		box := b.Bounds()
		h.tr.Insert(box.Min.Array(), box.Max.Array(), obj)
	}
	shape.Logger().Debug("scene: hit index built", "objects", h.tr.Len())
	return h
}

// Len returns the number of indexed objects.
func (h *HitIndex) Len() int {
	return h.tr.Len()
}

// At returns the objects under p in draw order. Candidates found by their
// bounds are confirmed with an exact test where the shape has one.
func (h *HitIndex) At(p shape.Point) []*Object {
	var hits []*Object
	pt := p.Array()
	h.tr.Search(pt, pt, func(_, _ [2]float64, obj *Object) bool {
		if hit(obj.Shape, p) {
			hits = append(hits, obj)
		}
		return true
	})
	slices.SortFunc(hits, func(a, b *Object) int { return a.order - b.order })
	return hits
}

// Top returns the topmost object under p, the one drawn last.
func (h *HitIndex) Top(p shape.Point) (*Object, bool) {
	hits := h.At(p)
	if len(hits) == 0 {
		return nil, false
	}
	return hits[len(hits)-1], true
}

// Intersecting returns the objects whose bounds overlap box, in draw
// order.
func (h *HitIndex) Intersecting(box shape.Box) []*Object {
	var out []*Object
	h.tr.Search(box.Min.Array(), box.Max.Array(), func(_, _ [2]float64, obj *Object) bool {
		out = append(out, obj)
		return true
	})
	slices.SortFunc(out, func(a, b *Object) int { return a.order - b.order })
	return out
}

// hit reports whether p is over v. Shapes without an exact test are hit
// anywhere inside their bounds.
func hit(v any, p shape.Point) bool {
	switch s := v.(type) {
	case Container:
		return s.Contains(p)
	case *shape.Circle:
		return s.Center.Distance(p) < s.Radius
	case Bounded:
		return s.Bounds().ContainsPoint(p)
	}
	return false
}
