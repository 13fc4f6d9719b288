package shape

import "math"

// Ellipse is an elliptical arc around Center. Angles are in radians;
// a full ellipse runs from 0 to 2π.
//
// The transform primitives move the center only. Radii and angles are left
// as they are, so Scale changes the ellipse's position but not its size.
type Ellipse struct {
	Center     Point
	RadiusX    float64
	RadiusY    float64
	Rotation   float64
	StartAngle float64
	EndAngle   float64
	Style
}

// NewEllipse creates a full ellipse (0 to 2π, no rotation).
func NewEllipse(center Point, radiusX, radiusY float64, opts ...Option) *Ellipse {
	return &Ellipse{
		Center:   center,
		RadiusX:  radiusX,
		RadiusY:  radiusY,
		EndAngle: 2 * math.Pi,
		Style:    newStyle(opts),
	}
}

// Diameters returns the extent of the ellipse along its two axes.
func (e *Ellipse) Diameters() (dx, dy float64) {
	return 2 * e.RadiusX, 2 * e.RadiusY
}

// Area returns π·rx·ry for the full ellipse.
func (e *Ellipse) Area() float64 {
	return math.Pi * math.Abs(e.RadiusX*e.RadiusY)
}

// Circumference returns the perimeter of the full ellipse using
// Ramanujan's second approximation, exact for a circle.
func (e *Ellipse) Circumference() float64 {
	a, b := math.Abs(e.RadiusX), math.Abs(e.RadiusY)
	if a+b == 0 {
		return 0
	}
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

// Bounds returns the bounds of the full rotated ellipse. The angle range
// is ignored.
func (e *Ellipse) Bounds() Box {
	cos, sin := math.Cos(e.Rotation), math.Sin(e.Rotation)
	hw := math.Hypot(e.RadiusX*cos, e.RadiusY*sin)
	hh := math.Hypot(e.RadiusX*sin, e.RadiusY*cos)
	return Box{
		Min: Point{X: e.Center.X - hw, Y: e.Center.Y - hh},
		Max: Point{X: e.Center.X + hw, Y: e.Center.Y + hh},
	}
}

// Frame maps the unit circle onto the full rotated ellipse.
func (e *Ellipse) Frame() Matrix {
	return Translate(e.Center.X, e.Center.Y).
		Multiply(Rotate(e.Rotation)).
		Multiply(Matrix{A: e.RadiusX, E: e.RadiusY})
}

// Contains reports whether p lies strictly inside the full rotated
// ellipse. The angle range is ignored. Ellipses with a non-positive or
// numerically degenerate radius contain nothing.
func (e *Ellipse) Contains(p Point) bool {
	if e.RadiusX <= 0 || e.RadiusY <= 0 {
		return false
	}
	f := e.Frame()
	inv := f.Invert()
	if inv.IsIdentity() && !f.IsIdentity() {
		return false
	}
	q := inv.TransformPoint(p)
	return q.X*q.X+q.Y*q.Y < 1
}

// Translate moves the center by (dx, dy).
func (e *Ellipse) Translate(dx, dy float64) { e.Center.Translate(dx, dy) }

// Scale scales the center about pivot.
func (e *Ellipse) Scale(pivot Point, factor float64) { e.Center.Scale(pivot, factor) }

// Reflect mirrors the center across l.
func (e *Ellipse) Reflect(l Line) { e.Center.Reflect(l) }

// Rotate turns the center around pivot.
func (e *Ellipse) Rotate(pivot Point, angle float64) { e.Center.Rotate(pivot, angle) }

// Circle is a full circle around Center. Like Ellipse, its transforms move
// the center only.
type Circle struct {
	Center Point
	Radius float64
	Style
}

// NewCircle creates a circle.
func NewCircle(center Point, radius float64, opts ...Option) *Circle {
	return &Circle{Center: center, Radius: radius, Style: newStyle(opts)}
}

// Diameter returns 2r.
func (c *Circle) Diameter() float64 {
	return 2 * c.Radius
}

// Circumference returns 2πr.
func (c *Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Area returns πr².
func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Bounds returns the square bounding the circle.
func (c *Circle) Bounds() Box {
	r := math.Abs(c.Radius)
	return Box{
		Min: Point{X: c.Center.X - r, Y: c.Center.Y - r},
		Max: Point{X: c.Center.X + r, Y: c.Center.Y + r},
	}
}

// Ellipse returns the circle as a full ellipse with the same style.
func (c *Circle) Ellipse() *Ellipse {
	return &Ellipse{
		Center:   c.Center,
		RadiusX:  c.Radius,
		RadiusY:  c.Radius,
		EndAngle: 2 * math.Pi,
		Style:    c.Style,
	}
}

// Translate moves the center by (dx, dy).
func (c *Circle) Translate(dx, dy float64) { c.Center.Translate(dx, dy) }

// Scale scales the center about pivot.
func (c *Circle) Scale(pivot Point, factor float64) { c.Center.Scale(pivot, factor) }

// Reflect mirrors the center across l.
func (c *Circle) Reflect(l Line) { c.Center.Reflect(l) }

// Rotate turns the center around pivot.
func (c *Circle) Rotate(pivot Point, angle float64) { c.Center.Rotate(pivot, angle) }

// MoveTo places the center at p, as when the circle follows the pointer.
func (c *Circle) MoveTo(p Point) { c.Center = p }
