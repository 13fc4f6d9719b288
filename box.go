package shape

import "math"

// Box is a normalised axis-aligned bounding box: Min holds the smallest
// coordinates and Max the largest.
type Box struct {
	Min, Max Point
}

// BoxOf returns the smallest box holding every point. It returns the zero
// Box when called without points.
func BoxOf(pts ...Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the geometric center of the box.
func (b Box) Center() Point {
	return b.Min.Lerp(b.Max, 0.5)
}

// ContainsPoint reports whether p lies inside the box or on its border.
func (b Box) ContainsPoint(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ContainsBox reports whether other lies entirely inside b, borders
// included.
func (b Box) ContainsBox(other Box) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Intersects reports whether the two boxes overlap or touch.
func (b Box) Intersects(other Box) bool {
	return b.Min.X <= other.Max.X && other.Min.X <= b.Max.X &&
		b.Min.Y <= other.Max.Y && other.Min.Y <= b.Max.Y
}

// Union returns the smallest box holding both boxes.
func (b Box) Union(other Box) Box {
	return BoxOf(b.Min, b.Max, other.Min, other.Max)
}
