package shape

import (
	"iter"
	"math"
	"slices"
)

// Polygon is an ordered ring of vertices.
//
// The ring is implicitly closed: an edge joins the last vertex back to the
// first unless the two already coincide. Callers should not repeat the
// first vertex at the end. A polygon with fewer than three vertices has no
// interior.
type Polygon struct {
	Vertices []Point
	Style
}

// NewPolygon creates a polygon from a copy of pts.
func NewPolygon(pts []Point, opts ...Option) (*Polygon, error) {
	if len(pts) == 0 {
		return nil, ErrNoVertices
	}
	return &Polygon{
		Vertices: slices.Clone(pts),
		Style:    newStyle(opts),
	}, nil
}

// NewPolygonFromCoords creates a polygon from [x, y] coordinate pairs.
func NewPolygonFromCoords(coords [][]float64, opts ...Option) (*Polygon, error) {
	pts, err := PointsFromSlices(coords)
	if err != nil {
		return nil, err
	}
	return NewPolygon(pts, opts...)
}

// RegularPolygon creates a regular polygon with n sides inscribed in the
// circle of the given radius. rotation (radians) places the first vertex.
func RegularPolygon(n int, center Point, radius, rotation float64, opts ...Option) (*Polygon, error) {
	if n < 1 {
		return nil, ErrNoVertices
	}
	pts := make([]Point, n)
	angle := 2.0 * math.Pi / float64(n)
	for i := range pts {
		a := rotation + angle*float64(i)
		pts[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return &Polygon{Vertices: pts, Style: newStyle(opts)}, nil
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.Vertices)
}

// Edges returns the ring's edges in order: each consecutive vertex pair,
// then the closing edge when the last vertex differs from the first.
// The sequence may be iterated any number of times.
func (p *Polygon) Edges() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		n := len(p.Vertices)
		for i := 0; i+1 < n; i++ {
			if !yield(Segment{Start: p.Vertices[i], End: p.Vertices[i+1]}) {
				return
			}
		}
		if n > 1 && p.Vertices[n-1] != p.Vertices[0] {
			yield(Segment{Start: p.Vertices[n-1], End: p.Vertices[0]})
		}
	}
}

// rayTilts are the vertical slopes tried, in order, for the containment
// ray. The first is the horizontal ray; the others are only used when a
// ray passes exactly through a vertex.
var rayTilts = [...]float64{0, 0.0137, -0.0291, 0.0613, -0.1171}

// Contains reports whether pt is inside the polygon using ray casting:
// a ray from pt to beyond the bounding box crosses the boundary an odd
// number of times iff pt is inside.
//
// Crossings are counted with Segment.ProperlyIntersects, which ignores
// touches. A ray running exactly through a vertex would therefore miss a
// crossing, so such a ray is recast with a small tilt. Points lying
// exactly on an edge give an unspecified result.
//
// Polygons with fewer than three vertices never contain anything.
func (p *Polygon) Contains(pt Point) bool {
	if len(p.Vertices) < 3 {
		return false
	}

	b := p.Bounds()
	reach := max(b.Width(), b.Height(), 1) * 2
	farX := max(b.Max.X, pt.X) + reach

	var ray Segment
	for _, tilt := range rayTilts {
		ray = Segment{Start: pt, End: Point{X: farX, Y: pt.Y + tilt*(farX-pt.X)}}
		if !p.rayHitsVertex(ray) {
			break
		}
	}

	crossings := 0
	for e := range p.Edges() {
		if ray.ProperlyIntersects(e) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// rayHitsVertex reports whether any vertex lies on ray.
func (p *Polygon) rayHitsVertex(ray Segment) bool {
	rb := ray.Bounds()
	for _, v := range p.Vertices {
		if v != ray.Start && rb.ContainsPoint(v) && Orient(ray.Start, ray.End, v) == Collinear {
			return true
		}
	}
	return false
}

// XValues returns the x coordinate of every vertex, in order.
func (p *Polygon) XValues() []float64 {
	xs := make([]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		xs[i] = v.X
	}
	return xs
}

// YValues returns the y coordinate of every vertex, in order.
func (p *Polygon) YValues() []float64 {
	ys := make([]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		ys[i] = v.Y
	}
	return ys
}

// Bounds returns the bounding box of the vertices.
func (p *Polygon) Bounds() Box {
	return BoxOf(p.Vertices...)
}

// Center returns the center of the bounding box. This is not the area
// centroid.
func (p *Polygon) Center() Point {
	return p.Bounds().Center()
}

// Translate moves every vertex by (dx, dy).
func (p *Polygon) Translate(dx, dy float64) {
	for i := range p.Vertices {
		p.Vertices[i].Translate(dx, dy)
	}
}

// Scale scales every vertex about pivot.
func (p *Polygon) Scale(pivot Point, factor float64) {
	for i := range p.Vertices {
		p.Vertices[i].Scale(pivot, factor)
	}
}

// Reflect mirrors every vertex across l.
func (p *Polygon) Reflect(l Line) {
	for i := range p.Vertices {
		p.Vertices[i].Reflect(l)
	}
}

// Rotate turns every vertex by angle radians around pivot.
func (p *Polygon) Rotate(pivot Point, angle float64) {
	m := RotateAbout(angle, pivot)
	for i := range p.Vertices {
		p.Vertices[i].Transform(m)
	}
}

// Clone returns an independent copy of the polygon. The clone shares no
// vertex storage with p.
func (p *Polygon) Clone() *Polygon {
	return &Polygon{
		Vertices: slices.Clone(p.Vertices),
		Style:    p.Style,
	}
}
