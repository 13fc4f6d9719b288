package shape

// Orientation classifies the turn made by three points.
type Orientation int

const (
	// Collinear means the three points lie on one line.
	Collinear Orientation = iota

	// Clockwise means a -> b -> c turns clockwise (y axis pointing up).
	Clockwise

	// CounterClockwise means a -> b -> c turns counter-clockwise (y axis
	// pointing up). On a y-down screen this turn looks clockwise.
	CounterClockwise
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "collinear"
	}
}

// Orient returns the orientation of the triple (a, b, c) from the sign of
// the cross product (b-a) x (c-a). No tolerance is applied.
//
// Every intersection and containment test in this package is built on
// Orient.
func Orient(a, b, c Point) Orientation {
	cross := (c.Y-a.Y)*(b.X-a.X) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case cross > 0:
		return CounterClockwise
	case cross < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// Segment is the straight line segment between two points.
type Segment struct {
	Start, End Point
}

// Seg is a convenience function to create a Segment.
func Seg(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// IsDegenerate reports whether the segment has zero length.
func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

// Slope returns the gradient of the segment, or VerticalSlope when both
// endpoints share an x coordinate (including a degenerate segment).
func (s Segment) Slope() Slope {
	dx := s.End.X - s.Start.X
	if dx == 0 {
		return VerticalSlope
	}
	return SlopeOf((s.End.Y - s.Start.Y) / dx)
}

// YIntercept returns where the segment's supporting line crosses x = 0.
// ok is false for a vertical segment.
func (s Segment) YIntercept() (b float64, ok bool) {
	m, ok := s.Slope().Value()
	if !ok {
		return 0, false
	}
	return s.Start.Y - m*s.Start.X, true
}

// Line returns the infinite line through the segment. A vertical (or
// degenerate) segment yields the vertical line through Start.
func (s Segment) Line() Line {
	if b, ok := s.YIntercept(); ok {
		return Line{Slope: s.Slope(), Intercept: b}
	}
	return VerticalLine(s.Start.X)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the arithmetic mean of the endpoints.
func (s Segment) Midpoint() Point {
	return s.Start.Lerp(s.End, 0.5)
}

// ProperlyIntersects reports whether s and other cross at a single point
// interior to both. Touching at an endpoint, an endpoint lying on the other
// segment and collinear overlap are not proper crossings.
func (s Segment) ProperlyIntersects(other Segment) bool {
	o1 := Orient(s.Start, other.Start, other.End)
	o2 := Orient(s.End, other.Start, other.End)
	o3 := Orient(s.Start, s.End, other.Start)
	o4 := Orient(s.Start, s.End, other.End)
	if o1 == Collinear || o2 == Collinear || o3 == Collinear || o4 == Collinear {
		return false
	}
	return o1 != o2 && o3 != o4
}

// Translate moves both endpoints by (dx, dy).
func (s *Segment) Translate(dx, dy float64) {
	s.Start.Translate(dx, dy)
	s.End.Translate(dx, dy)
}

// Scale scales both endpoints about pivot.
func (s *Segment) Scale(pivot Point, factor float64) {
	s.Start.Scale(pivot, factor)
	s.End.Scale(pivot, factor)
}

// Reflect mirrors both endpoints across l.
func (s *Segment) Reflect(l Line) {
	s.Start.Reflect(l)
	s.End.Reflect(l)
}

// Rotate turns both endpoints by angle radians around pivot.
func (s *Segment) Rotate(pivot Point, angle float64) {
	s.Start.Rotate(pivot, angle)
	s.End.Rotate(pivot, angle)
}

// Bounds returns the axis-aligned bounds of the segment.
func (s Segment) Bounds() Box {
	return BoxOf(s.Start, s.End)
}
