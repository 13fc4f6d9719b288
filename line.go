package shape

import (
	"fmt"
	"math"
)

// Slope is the gradient of a straight line.
//
// A vertical line has no finite gradient. It is represented by the
// VerticalSlope sentinel rather than by an infinity, so code that branches
// on the slope has to handle the vertical case explicitly.
type Slope struct {
	m        float64
	vertical bool
}

// VerticalSlope is the slope of every vertical line.
var VerticalSlope = Slope{vertical: true}

// SlopeOf returns the slope with gradient m. Infinite gradients are
// reported as VerticalSlope.
func SlopeOf(m float64) Slope {
	if math.IsInf(m, 0) {
		return VerticalSlope
	}
	return Slope{m: m}
}

// IsVertical reports whether s is the vertical sentinel.
func (s Slope) IsVertical() bool {
	return s.vertical
}

// Value returns the finite gradient. ok is false for a vertical slope.
func (s Slope) Value() (m float64, ok bool) {
	if s.vertical {
		return 0, false
	}
	return s.m, true
}

// String implements fmt.Stringer.
func (s Slope) String() string {
	if s.vertical {
		return "vertical"
	}
	return fmt.Sprintf("%g", s.m)
}

// Line is an infinite straight line used as a reflection axis.
//
// For a non-vertical line Intercept is the y-intercept (y = m*x + b).
// For a vertical line Intercept is the x coordinate (x = b).
type Line struct {
	Slope     Slope
	Intercept float64
}

// NewLine returns the line y = m*x + b. An infinite m yields the vertical
// line x = b.
func NewLine(m, b float64) Line {
	return Line{Slope: SlopeOf(m), Intercept: b}
}

// VerticalLine returns the line x = x0.
func VerticalLine(x0 float64) Line {
	return Line{Slope: VerticalSlope, Intercept: x0}
}

// HorizontalLine returns the line y = y0.
func HorizontalLine(y0 float64) Line {
	return Line{Slope: SlopeOf(0), Intercept: y0}
}

// String implements fmt.Stringer.
func (l Line) String() string {
	if l.Slope.IsVertical() {
		return fmt.Sprintf("x = %g", l.Intercept)
	}
	return fmt.Sprintf("y = %g*x + %g", l.Slope.m, l.Intercept)
}
