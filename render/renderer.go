// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/surface"
)

// hairline is the stroke width used to outline solid shapes.
const hairline = 1.0

// Line is a segment together with the style it is drawn in.
type Line struct {
	shape.Segment
	shape.Style
}

// Renderer draws kernel shapes onto a surface.
//
// Renderer is not safe for concurrent use. It never modifies the shapes it
// draws.
type Renderer struct {
	surface    surface.Surface
	background shape.RGBA
}

// New creates a renderer drawing onto s. The background is used by Clear
// and for the interior of outlined rectangles without a fill color.
func New(s surface.Surface, background shape.RGBA) *Renderer {
	return &Renderer{surface: s, background: background}
}

// Surface returns the target surface.
func (r *Renderer) Surface() surface.Surface {
	return r.surface
}

// Background returns the background color.
func (r *Renderer) Background() shape.RGBA {
	return r.background
}

// SetBackground changes the background color.
func (r *Renderer) SetBackground(c shape.RGBA) {
	r.background = c
}

// Clear paints the whole surface with the background color.
func (r *Renderer) Clear() {
	r.surface.Clear(r.background)
}

// Draw draws v if it is a shape the renderer knows. It reports whether
// anything was drawn; unknown values are logged and skipped.
//
// A bare *shape.Arc is not drawable on its own because a tangent arc needs
// a pen position. Use DrawArc, or put the arc in a shape.Path.
func (r *Renderer) Draw(v any) bool {
	switch s := v.(type) {
	case *shape.Polygon:
		r.DrawPolygon(s)
	case *shape.Rect:
		r.DrawRect(s)
	case *shape.Circle:
		r.DrawCircle(s)
	case *shape.Ellipse:
		r.DrawEllipse(s)
	case *shape.Path:
		r.DrawPath(s)
	case shape.Segment:
		r.DrawSegment(s, shape.Style{Color: shape.Black})
	case *shape.Segment:
		r.DrawSegment(*s, shape.Style{Color: shape.Black})
	case *Line:
		r.DrawSegment(s.Segment, s.Style)
	case *shape.ImageBox:
		r.DrawImageBox(s)
	default:
		shape.Logger().Warn("render: skipping unsupported value", "type", fmt.Sprintf("%T", v))
		return false
	}
	return true
}

// DrawAll draws each value in order.
func (r *Renderer) DrawAll(vs ...any) {
	for _, v := range vs {
		r.Draw(v)
	}
}

// solid fills path and outlines it with a hairline in the same color.
func (r *Renderer) solid(path *surface.Path, c shape.RGBA) {
	r.surface.Fill(path, surface.FillStyle{Color: c})
	r.surface.Stroke(path, surface.DefaultStrokeStyle().WithColor(c).WithWidth(hairline))
}

// DrawPolygon fills the polygon in its Color. Polygons with fewer than two
// vertices draw nothing.
func (r *Renderer) DrawPolygon(p *shape.Polygon) {
	if len(p.Vertices) < 2 {
		return
	}
	path := surface.NewPath()
	path.Polygon(toSurfacePoints(p.Vertices))
	r.solid(path, p.Color)
}

// DrawRect paints the rectangle. The whole area takes the border Color;
// with a positive Outline the inside, inset by Outline on every side, is
// painted with Fill or the background. An inset that leaves no interior
// paints nothing more.
func (r *Renderer) DrawRect(rect *shape.Rect) {
	b := rect.Bounds()
	border := surface.NewPath()
	border.Rectangle(b.Min.X, b.Min.Y, b.Width(), b.Height())
	r.surface.Fill(border, surface.FillStyle{Color: rect.Color})

	if rect.Outline <= 0 {
		return
	}
	w, h := b.Width()-2*rect.Outline, b.Height()-2*rect.Outline
	if w <= 0 || h <= 0 {
		return
	}
	inner := r.background
	if rect.HasFill {
		inner = rect.Fill
	}
	path := surface.NewPath()
	path.Rectangle(b.Min.X+rect.Outline, b.Min.Y+rect.Outline, w, h)
	r.surface.Fill(path, surface.FillStyle{Color: inner})
}

// DrawCircle fills the circle in its Color.
func (r *Renderer) DrawCircle(c *shape.Circle) {
	if c.Radius <= 0 {
		return
	}
	path := surface.NewPath()
	path.Circle(c.Center.X, c.Center.Y, c.Radius)
	r.solid(path, c.Color)
}

// DrawEllipse fills the ellipse in its Color. A partial angle range is
// drawn as a pie slice closed through the center.
func (r *Renderer) DrawEllipse(e *shape.Ellipse) {
	if e.RadiusX <= 0 || e.RadiusY <= 0 {
		return
	}
	path := surface.NewPath()
	if math.Abs(e.EndAngle-e.StartAngle) < 2*math.Pi {
		path.MoveTo(e.Center.X, e.Center.Y)
	}
	path.EllipticalArc(e.Center.X, e.Center.Y, e.RadiusX, e.RadiusY, e.Rotation, e.StartAngle, e.EndAngle)
	path.Close()
	r.solid(path, e.Color)
}

// DrawPath fills the path in its Color, starting at p.Start() and
// following each element in order.
func (r *Renderer) DrawPath(p *shape.Path) {
	if len(p.Elements) == 0 {
		return
	}
	r.solid(toSurfacePath(p), p.Color)
}

// DrawSegment draws s as a hairline in style.Color.
func (r *Renderer) DrawSegment(s shape.Segment, style shape.Style) {
	path := surface.NewPath()
	path.MoveTo(s.Start.X, s.Start.Y)
	path.LineTo(s.End.X, s.End.Y)
	r.surface.Stroke(path, surface.DefaultStrokeStyle().WithColor(style.Color).WithWidth(hairline))
}

// DrawArc strokes the tangent arc a starting from pen.
func (r *Renderer) DrawArc(pen shape.Point, a *shape.Arc, style shape.Style) {
	path := surface.NewPath()
	path.MoveTo(pen.X, pen.Y)
	path.ArcTo(a.From.X, a.From.Y, a.To.X, a.To.Y, a.Radius)
	r.surface.Stroke(path, surface.DefaultStrokeStyle().WithColor(style.Color).WithWidth(hairline))
}

// DrawImageBox draws the source region of the image scaled into the
// normalised box. Boxes smaller than a pixel are skipped.
func (r *Renderer) DrawImageBox(ib *shape.ImageBox) {
	if ib.Image == nil {
		return
	}
	b := ib.Bounds()
	dst := image.Rect(
		int(math.Round(b.Min.X)), int(math.Round(b.Min.Y)),
		int(math.Round(b.Max.X)), int(math.Round(b.Max.Y)),
	)
	if dst.Empty() {
		return
	}
	src := ib.Source
	opts := surface.DrawImageOptions{
		SrcRect: &src,
		DstRect: &dst,
		Alpha:   1,
		Filter:  surface.FilterBilinear,
	}
	if dst.Dx() == src.Dx() && dst.Dy() == src.Dy() {
		opts.Filter = surface.FilterNearest
	}
	r.surface.DrawImage(ib.Image, surface.Pt(b.Min.X, b.Min.Y), &opts)
}

// toSurfacePath converts a kernel path into surface verbs.
func toSurfacePath(p *shape.Path) *surface.Path {
	path := surface.NewPath()
	start := p.Start()
	path.MoveTo(start.X, start.Y)
	for _, el := range p.Elements {
		switch e := el.(type) {
		case *shape.Point:
			path.LineTo(e.X, e.Y)
		case *shape.Ellipse:
			path.EllipticalArc(e.Center.X, e.Center.Y, e.RadiusX, e.RadiusY, e.Rotation, e.StartAngle, e.EndAngle)
		case *shape.Arc:
			path.ArcTo(e.From.X, e.From.Y, e.To.X, e.To.Y, e.Radius)
		}
	}
	if p.Closed {
		path.Close()
	}
	return path
}

func toSurfacePoints(pts []shape.Point) []surface.Point {
	out := make([]surface.Point, len(pts))
	for i, p := range pts {
		out[i] = surface.Pt(p.X, p.Y)
	}
	return out
}
