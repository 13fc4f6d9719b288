// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "math"

// Verb is a path construction command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// String implements fmt.Stringer.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// pointsPerVerb is the number of points each verb consumes.
var pointsPerVerb = [...]int{
	VerbMoveTo:  1,
	VerbLineTo:  1,
	VerbQuadTo:  2,
	VerbCubicTo: 3,
	VerbClose:   0,
}

// Path represents a vector path for drawing operations.
//
// Path provides a canvas-style builder API. Arcs and ellipses are stored
// as cubic Bézier curves, so a Path only ever holds the five verbs.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
//
//	s.Fill(p, style)
type Path struct {
	verbs  []Verb
	points []Point
	start  Point
	cur    Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]Point, 0, 32),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	pt := Point{X: x, Y: y}
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, pt)
	p.start, p.cur = pt, pt
}

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.reopen()
	pt := Point{X: x, Y: y}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, pt)
	p.cur = pt
}

// QuadTo adds a quadratic Bezier curve from the current point.
// (cx, cy) is the control point, (x, y) is the endpoint.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.reopen()
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{X: cx, Y: cy}, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// CubicTo adds a cubic Bezier curve from the current point.
// (c1x, c1y) and (c2x, c2y) are control points, (x, y) is the endpoint.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.reopen()
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Point{X: c1x, Y: c1y}, Point{X: c2x, Y: c2y}, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// Close closes the current subpath by connecting to the start point.
func (p *Path) Close() {
	if len(p.verbs) == 0 || p.verbs[len(p.verbs)-1] == VerbClose {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.cur = p.start
}

// reopen starts a new subpath at the current point when the previous one
// was closed, so that drawing continues from where Close left the pen.
func (p *Path) reopen() {
	if n := len(p.verbs); n > 0 && p.verbs[n-1] == VerbClose {
		p.MoveTo(p.cur.X, p.cur.Y)
	}
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start, p.cur = Point{}, Point{}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verbs of the path. The slice must not be modified.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the points of the path, in verb order. The slice must
// not be modified.
func (p *Path) Points() []Point {
	return p.points
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		verbs:  make([]Verb, len(p.verbs)),
		points: make([]Point, len(p.points)),
		start:  p.start,
		cur:    p.cur,
	}
	copy(clone.verbs, p.verbs)
	copy(clone.points, p.points)
	return clone
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.cur
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Polygon adds a closed polygon through pts. Fewer than two points add
// nothing.
func (p *Path) Polygon(pts []Point) {
	if len(pts) < 2 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Circle adds a closed circle to the path.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed axis-aligned ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	p.MoveTo(cx+rx, cy)
	p.EllipticalArc(cx, cy, rx, ry, 0, 0, 2*math.Pi)
	p.Close()
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2
// (radians), with the angle increasing. If the path already has a current
// point, a straight line joins it to the start of the arc.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	p.ellipticalArc(cx, cy, r, r, 0, angle1, angle2, false)
}

// ArcNegative is Arc with the angle decreasing from angle1 to angle2.
func (p *Path) ArcNegative(cx, cy, r, angle1, angle2 float64) {
	p.ellipticalArc(cx, cy, r, r, 0, angle1, angle2, true)
}

// EllipticalArc adds an arc of the ellipse with radii (rx, ry) around
// (cx, cy), rotated by rotation radians, from angle1 to angle2 with the
// angle increasing. Like Arc, it is joined to the current point.
func (p *Path) EllipticalArc(cx, cy, rx, ry, rotation, angle1, angle2 float64) {
	p.ellipticalArc(cx, cy, rx, ry, rotation, angle1, angle2, false)
}

// EllipticalArcNegative is EllipticalArc with the angle decreasing.
func (p *Path) EllipticalArcNegative(cx, cy, rx, ry, rotation, angle1, angle2 float64) {
	p.ellipticalArc(cx, cy, rx, ry, rotation, angle1, angle2, true)
}

// arcSweep returns the signed angle travelled from a1 to a2. A sweep of a
// full turn or more is clamped to one turn; otherwise the end angle is
// reduced modulo 2π in the direction of travel.
func arcSweep(a1, a2 float64, negative bool) float64 {
	const twoPi = 2 * math.Pi
	d := a2 - a1
	if negative {
		d = -d
	}
	switch {
	case d >= twoPi:
		d = twoPi
	case d < 0:
		d = math.Mod(d, twoPi)
		if d < 0 {
			d += twoPi
		}
	}
	if negative {
		return -d
	}
	return d
}

func (p *Path) ellipticalArc(cx, cy, rx, ry, rotation, a1, a2 float64, negative bool) {
	sweep := arcSweep(a1, a2, negative)

	cosR, sinR := math.Cos(rotation), math.Sin(rotation)
	at := func(t float64) Point {
		x, y := rx*math.Cos(t), ry*math.Sin(t)
		return Point{X: cx + x*cosR - y*sinR, Y: cy + x*sinR + y*cosR}
	}
	tangent := func(t float64) Point {
		x, y := -rx*math.Sin(t), ry*math.Cos(t)
		return Point{X: x*cosR - y*sinR, Y: x*sinR + y*cosR}
	}

	start := at(a1)
	if len(p.verbs) == 0 {
		p.MoveTo(start.X, start.Y)
	} else {
		p.reopen()
		if start != p.cur {
			p.LineTo(start.X, start.Y)
		}
	}
	if sweep == 0 {
		return
	}

	// At most a quarter turn per cubic keeps the error far below a pixel.
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	t0 := a1
	p0 := start
	for i := 0; i < n; i++ {
		t1 := t0 + step
		p3 := at(t1)
		d0, d1 := tangent(t0), tangent(t1)
		p.CubicTo(
			p0.X+k*d0.X, p0.Y+k*d0.Y,
			p3.X-k*d1.X, p3.Y-k*d1.Y,
			p3.X, p3.Y,
		)
		t0, p0 = t1, p3
	}
}

// ArcTo adds a circular arc of radius r tangent to the line from the
// current point to (x1, y1) and to the line from (x1, y1) to (x2, y2),
// preceded by a straight line to the first tangent point. When the three
// points are collinear or r is zero, it adds a line to (x1, y1) instead.
// An empty path starts at (x1, y1).
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	p1 := Point{X: x1, Y: y1}
	if len(p.verbs) == 0 {
		p.MoveTo(x1, y1)
		return
	}
	p0, p2 := p.cur, Point{X: x2, Y: y2}

	v1x, v1y := p0.X-p1.X, p0.Y-p1.Y
	v2x, v2y := p2.X-p1.X, p2.Y-p1.Y
	l1, l2 := math.Hypot(v1x, v1y), math.Hypot(v2x, v2y)
	if r <= 0 || l1 == 0 || l2 == 0 {
		p.LineTo(x1, y1)
		return
	}
	v1x, v1y = v1x/l1, v1y/l1
	v2x, v2y = v2x/l2, v2y/l2

	cross := v1x*v2y - v1y*v2x
	if math.Abs(cross) < 1e-9 {
		p.LineTo(x1, y1)
		return
	}

	// theta is the angle at p1 between the two lines.
	theta := math.Acos(max(-1, min(1, v1x*v2x+v1y*v2y)))
	tangentDist := r / math.Tan(theta/2)
	centerDist := r / math.Sin(theta/2)

	bx, by := v1x+v2x, v1y+v2y
	bl := math.Hypot(bx, by)
	c := Point{X: p1.X + bx/bl*centerDist, Y: p1.Y + by/bl*centerDist}
	t1 := Point{X: p1.X + v1x*tangentDist, Y: p1.Y + v1y*tangentDist}
	t2 := Point{X: p1.X + v2x*tangentDist, Y: p1.Y + v2y*tangentDist}

	a1 := math.Atan2(t1.Y-c.Y, t1.X-c.X)
	a2 := math.Atan2(t2.Y-c.Y, t2.X-c.X)

	// The turn from the incoming to the outgoing direction picks the
	// direction of travel around the center.
	inX, inY := -v1x, -v1y
	turn := inX*v2y - inY*v2x
	p.ellipticalArc(c.X, c.Y, r, r, 0, a1, a2, turn < 0)
}

// Bounds returns the axis-aligned bounding box of the path's points,
// control points included. Returns all zeros if the path is empty.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = p.points[0].X, p.points[0].Y
	maxX, maxY = minX, minY
	for _, pt := range p.points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path to polylines, replacing curves with line
// segments that deviate from them by at most tolerance pixels. A
// non-positive tolerance uses 0.25.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}

	var out []Polyline
	var cur *Polyline
	last := func() Point { return cur.Points[len(cur.Points)-1] }

	i := 0
	for _, verb := range p.verbs {
		pts := p.points[i : i+pointsPerVerb[verb]]
		i += pointsPerVerb[verb]

		switch verb {
		case VerbMoveTo:
			out = append(out, Polyline{Points: []Point{pts[0]}})
			cur = &out[len(out)-1]
		case VerbLineTo:
			cur.Points = append(cur.Points, pts[0])
		case VerbQuadTo:
			cur.Points = flattenQuad(cur.Points, last(), pts[0], pts[1], tolerance, 0)
		case VerbCubicTo:
			cur.Points = flattenCubic(cur.Points, last(), pts[0], pts[1], pts[2], tolerance, 0)
		case VerbClose:
			cur.Closed = true
		}
	}
	return out
}

const maxFlattenDepth = 10

// flattenQuad appends the flattened curve (without its start point) to dst.
func flattenQuad(dst []Point, p0, c, p1 Point, tol float64, depth int) []Point {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	lenSq := dx*dx + dy*dy
	var flat bool
	if lenSq < 1e-12 {
		flat = math.Hypot(c.X-p0.X, c.Y-p0.Y) < tol
	} else {
		cross := (c.X-p0.X)*dy - (c.Y-p0.Y)*dx
		flat = cross*cross/lenSq < tol*tol
	}
	if depth >= maxFlattenDepth || flat {
		return append(dst, p1)
	}

	q0 := mid(p0, c)
	q1 := mid(c, p1)
	m := mid(q0, q1)
	dst = flattenQuad(dst, p0, q0, m, tol, depth+1)
	return flattenQuad(dst, m, q1, p1, tol, depth+1)
}

// flattenCubic appends the flattened curve (without its start point) to dst.
func flattenCubic(dst []Point, p0, c1, c2, p1 Point, tol float64, depth int) []Point {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	lenSq := dx*dx + dy*dy
	var flat bool
	if lenSq < 1e-12 {
		// Closed loop: measure the control points against p0 instead.
		flat = math.Hypot(c1.X-p0.X, c1.Y-p0.Y) < tol && math.Hypot(c2.X-p0.X, c2.Y-p0.Y) < tol
	} else {
		cross1 := (c1.X-p0.X)*dy - (c1.Y-p0.Y)*dx
		cross2 := (c2.X-p0.X)*dy - (c2.Y-p0.Y)*dx
		maxCross := math.Max(math.Abs(cross1), math.Abs(cross2))
		flat = maxCross*maxCross/lenSq < tol*tol
	}
	if depth >= maxFlattenDepth || flat {
		return append(dst, p1)
	}

	m01 := mid(p0, c1)
	m12 := mid(c1, c2)
	m23 := mid(c2, p1)
	m012 := mid(m01, m12)
	m123 := mid(m12, m23)
	m := mid(m012, m123)
	dst = flattenCubic(dst, p0, m01, m012, m, tol, depth+1)
	return flattenCubic(dst, m, m123, m23, p1, tol, depth+1)
}

func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}
