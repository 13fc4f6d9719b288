package shape

import "slices"

// Transformer is implemented by every shape in this package. Containers
// implement it by forwarding each call to the points they own.
type Transformer interface {
	Translate(dx, dy float64)
	Scale(pivot Point, factor float64)
	Reflect(l Line)
	Rotate(pivot Point, angle float64)
}

// Arc is a tangent arc in the style of the canvas arcTo operation: from
// the current pen position towards From, turning with the given Radius to
// head towards To. Transforms move both control points.
type Arc struct {
	From, To Point
	Radius   float64
}

// Translate moves both control points by (dx, dy).
func (a *Arc) Translate(dx, dy float64) {
	a.From.Translate(dx, dy)
	a.To.Translate(dx, dy)
}

// Scale scales both control points about pivot.
func (a *Arc) Scale(pivot Point, factor float64) {
	a.From.Scale(pivot, factor)
	a.To.Scale(pivot, factor)
}

// Reflect mirrors both control points across l.
func (a *Arc) Reflect(l Line) {
	a.From.Reflect(l)
	a.To.Reflect(l)
}

// Rotate turns both control points around pivot.
func (a *Arc) Rotate(pivot Point, angle float64) {
	a.From.Rotate(pivot, angle)
	a.To.Rotate(pivot, angle)
}

// PathElement is one step of a Path: *Point (a straight line to the
// point), *Ellipse (an elliptical arc) or *Arc (a tangent arc).
type PathElement interface {
	Transformer
	anchor() Point
	clone() PathElement
}

func (p *Point) anchor() Point { return *p }

func (p *Point) clone() PathElement {
	c := *p
	return &c
}

func (e *Ellipse) anchor() Point { return e.Center }

func (e *Ellipse) clone() PathElement {
	c := *e
	return &c
}

func (a *Arc) anchor() Point { return a.From }

func (a *Arc) clone() PathElement {
	c := *a
	return &c
}

// Path is a figure made of a mix of straight lines, elliptical arcs and
// tangent arcs. Unlike Polygon it has no containment test; it exists to be
// transformed and drawn.
type Path struct {
	Elements []PathElement

	// Closed joins the last element back to the start when drawn.
	Closed bool

	Style
}

// NewPath creates a closed path from the given elements. The path takes
// ownership of the elements.
func NewPath(elems []PathElement, opts ...Option) (*Path, error) {
	if len(elems) == 0 {
		return nil, ErrNoElements
	}
	return &Path{
		Elements: slices.Clone(elems),
		Closed:   true,
		Style:    newStyle(opts),
	}, nil
}

// NewPathFromPoints creates a closed path of straight lines through pts.
func NewPathFromPoints(pts []Point, opts ...Option) (*Path, error) {
	elems := make([]PathElement, len(pts))
	for i := range pts {
		p := pts[i]
		elems[i] = &p
	}
	return NewPath(elems, opts...)
}

// Start returns where drawing begins: the first point, the center of a
// leading ellipse or the first control point of a leading arc.
func (p *Path) Start() Point {
	if len(p.Elements) == 0 {
		return Point{}
	}
	return p.Elements[0].anchor()
}

// Bounds returns the bounds of the element anchors and ellipse extents.
func (p *Path) Bounds() Box {
	var pts []Point
	for _, e := range p.Elements {
		switch e := e.(type) {
		case *Ellipse:
			b := e.Bounds()
			pts = append(pts, b.Min, b.Max)
		case *Arc:
			pts = append(pts, e.From, e.To)
		default:
			pts = append(pts, e.anchor())
		}
	}
	return BoxOf(pts...)
}

// Translate moves every element by (dx, dy).
func (p *Path) Translate(dx, dy float64) {
	for _, e := range p.Elements {
		e.Translate(dx, dy)
	}
}

// Scale scales every element about pivot.
func (p *Path) Scale(pivot Point, factor float64) {
	for _, e := range p.Elements {
		e.Scale(pivot, factor)
	}
}

// Reflect mirrors every element across l.
func (p *Path) Reflect(l Line) {
	for _, e := range p.Elements {
		e.Reflect(l)
	}
}

// Rotate turns every element around pivot.
func (p *Path) Rotate(pivot Point, angle float64) {
	for _, e := range p.Elements {
		e.Rotate(pivot, angle)
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	elems := make([]PathElement, len(p.Elements))
	for i, e := range p.Elements {
		elems[i] = e.clone()
	}
	return &Path{Elements: elems, Closed: p.Closed, Style: p.Style}
}

var (
	_ Transformer = (*Point)(nil)
	_ Transformer = (*Segment)(nil)
	_ Transformer = (*Polygon)(nil)
	_ Transformer = (*Rect)(nil)
	_ Transformer = (*Ellipse)(nil)
	_ Transformer = (*Circle)(nil)
	_ Transformer = (*Arc)(nil)
	_ Transformer = (*Path)(nil)
	_ Transformer = (*ImageBox)(nil)
)
