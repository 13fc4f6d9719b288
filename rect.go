package shape

import "iter"

// Edge names the viewport border a rectangle touches or has crossed.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeTop
	EdgeRight
	EdgeBottom
)

// String implements fmt.Stringer.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Rect is an axis-aligned rectangle stored as an origin corner plus a
// size. Width and Height may be negative, which describes the same area
// with the origin on the opposite side.
//
// Containment is answered by the Polygon built from the corners; Rect does
// no orientation or parity work of its own.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Style
}

// NewRect creates a rectangle with its origin at (x, y).
func NewRect(x, y, width, height float64, opts ...Option) *Rect {
	return &Rect{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Style:  newStyle(opts),
	}
}

// Origin returns the corner the rectangle is anchored at.
func (r *Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Far returns the corner diagonally opposite the origin.
func (r *Rect) Far() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Corners returns the four corners in ring order, starting at the origin:
// origin, origin+width, far corner, origin+height.
func (r *Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// Polygon materialises the rectangle as a four-vertex polygon with the
// same style.
func (r *Rect) Polygon() *Polygon {
	c := r.Corners()
	return &Polygon{Vertices: c[:], Style: r.Style}
}

// Center returns the center of the rectangle.
func (r *Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Bounds returns the normalised bounds of the rectangle.
func (r *Rect) Bounds() Box {
	return BoxOf(r.Origin(), r.Far())
}

// Contains reports whether p is inside the rectangle. Points on the border
// give an unspecified result, as for Polygon.Contains.
func (r *Rect) Contains(p Point) bool {
	return r.Polygon().Contains(p)
}

// Hovered reports whether the pointer of in is over the rectangle.
func (r *Rect) Hovered(in Input) bool {
	return r.Contains(in.Pointer)
}

// Translate moves the rectangle by (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Scale scales the origin and the far corner about pivot and re-derives
// the size from them, so the rectangle grows or shrinks about pivot
// exactly as its corner points would.
func (r *Rect) Scale(pivot Point, factor float64) {
	o, f := r.Origin(), r.Far()
	o.Scale(pivot, factor)
	f.Scale(pivot, factor)
	r.SetCorners(o, f)
}

// SetScaleToWidth scales the rectangle about its own center so that its
// width becomes target. A zero-width rectangle cannot be scaled to a size;
// it is left unchanged and false is returned.
func (r *Rect) SetScaleToWidth(target float64) bool {
	if r.Width == 0 {
		return false
	}
	r.Scale(r.Center(), target/r.Width)
	return true
}

// SetScaleToHeight is SetScaleToWidth for the height.
func (r *Rect) SetScaleToHeight(target float64) bool {
	if r.Height == 0 {
		return false
	}
	r.Scale(r.Center(), target/r.Height)
	return true
}

// Reflect mirrors the origin and the far corner across l. The rectangle
// stays axis-aligned: for an oblique line the result is the rectangle
// spanned by the two mirrored corners. Reflecting twice restores it.
func (r *Rect) Reflect(l Line) {
	o, f := r.Origin(), r.Far()
	o.Reflect(l)
	f.Reflect(l)
	r.SetCorners(o, f)
}

// Rotate turns the origin and the far corner around pivot. Like Reflect,
// the result is the axis-aligned rectangle spanned by the moved corners.
func (r *Rect) Rotate(pivot Point, angle float64) {
	m := RotateAbout(angle, pivot)
	o, f := r.Origin(), r.Far()
	o.Transform(m)
	f.Transform(m)
	r.SetCorners(o, f)
}

// SetCorners places the origin at a and the far corner at b.
func (r *Rect) SetCorners(a, b Point) {
	r.X, r.Y = a.X, a.Y
	r.Width = b.X - a.X
	r.Height = b.Y - a.Y
}

// Drag moves the rectangle by the displacement from one point to another,
// as when following a pointer from its previous to its current position.
func (r *Rect) Drag(from, to Point) {
	r.Translate(to.X-from.X, to.Y-from.Y)
}

// MoveTo places the origin at (x, y) keeping the size.
func (r *Rect) MoveTo(x, y float64) {
	r.X, r.Y = x, y
}

// Resize sets the size keeping the origin.
func (r *Rect) Resize(width, height float64) {
	r.Width, r.Height = width, height
}

// RectSet is a collection of rectangles that can be scanned in order.
type RectSet interface {
	All() iter.Seq[*Rect]
}

// Touching returns the members of set lying entirely within r, borders
// included, in the set's order. r itself is returned if it is a member.
func (r *Rect) Touching(set RectSet) []*Rect {
	bounds := r.Bounds()
	var out []*Rect
	for other := range set.All() {
		if bounds.ContainsBox(other.Bounds()) {
			out = append(out, other)
		}
	}
	return out
}

// EdgeProximity reports which border of a viewport of the given size the
// rectangle touches or crosses. Borders are checked in the order left,
// top, right, bottom and the first match wins.
func (r *Rect) EdgeProximity(viewportWidth, viewportHeight float64) Edge {
	b := r.Bounds()
	switch {
	case b.Min.X <= 0:
		return EdgeLeft
	case b.Min.Y <= 0:
		return EdgeTop
	case b.Max.X >= viewportWidth:
		return EdgeRight
	case b.Max.Y >= viewportHeight:
		return EdgeBottom
	default:
		return EdgeNone
	}
}

// OnEdge reports whether the rectangle touches or crosses any border of
// the viewport.
func (r *Rect) OnEdge(viewportWidth, viewportHeight float64) bool {
	return r.EdgeProximity(viewportWidth, viewportHeight) != EdgeNone
}

// Clone returns a copy of the rectangle. The copy is not registered
// anywhere.
func (r *Rect) Clone() *Rect {
	c := *r
	return &c
}
