package shape

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector.
//
// The value helpers (Add, Sub, Mul, ...) return new points. The transform
// primitives (Translate, Scale, Reflect, Rotate) mutate the receiver so
// container shapes can forward a transform to every point they own.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromSlice builds a point from a coordinate list such as [x, y].
// Extra elements are ignored. Fewer than two elements is an error.
func PointFromSlice(coords []float64) (Point, error) {
	if len(coords) < 2 {
		return Point{}, fmt.Errorf("%w: got %d", ErrShortCoordinates, len(coords))
	}
	return Point{X: coords[0], Y: coords[1]}, nil
}

// PointsFromSlices converts a list of coordinate pairs into points.
func PointsFromSlices(coords [][]float64) ([]Point, error) {
	pts := make([]Point, 0, len(coords))
	for i, c := range coords {
		p, err := PointFromSlice(c)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

// Array returns the point as an [x, y] pair.
func (p Point) Array() [2]float64 {
	return [2]float64{p.X, p.Y}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Translate moves the point by (dx, dy).
func (p *Point) Translate(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Scale moves the point away from (factor > 1) or towards (factor < 1)
// pivot. A factor of 0 collapses the point onto the pivot and a negative
// factor flips it through the pivot.
func (p *Point) Scale(pivot Point, factor float64) {
	p.X = pivot.X - (pivot.X-p.X)*factor
	p.Y = pivot.Y - (pivot.Y-p.Y)*factor
}

// Reflect mirrors the point across l. Reflecting twice across the same
// line returns the original point up to rounding.
func (p *Point) Reflect(l Line) {
	switch {
	case l.Slope.IsVertical():
		p.X = 2*l.Intercept - p.X
	case l.Slope.m == 0:
		p.Y = 2*l.Intercept - p.Y
	default:
		// Foot of the perpendicular (slope -1/m) through p, i.e. the
		// solution of y = m*x + b and y - p.Y = -(x - p.X)/m.
		// Steep lines use k = 1/m so that m*m cannot overflow.
		m, b := l.Slope.m, l.Intercept
		var fx, fy float64
		if math.Abs(m) <= 1 {
			fx = (p.X + (p.Y-b)*m) / (1 + m*m)
			fy = m*fx + b
		} else {
			k := 1 / m
			fx = (p.X*k + (p.Y - b)) * k / (1 + k*k)
			fy = b + (p.X*k+(p.Y-b))/(1+k*k)
		}
		p.X = 2*fx - p.X
		p.Y = 2*fy - p.Y
	}
}

// Rotate turns the point by angle radians around pivot. Positive angles
// rotate from +X towards +Y.
func (p *Point) Rotate(pivot Point, angle float64) {
	*p = RotateAbout(angle, pivot).TransformPoint(*p)
}

// Transform applies an arbitrary affine matrix to the point.
func (p *Point) Transform(m Matrix) {
	*p = m.TransformPoint(*p)
}
