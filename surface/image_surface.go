// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Coverage is computed by a golang.org/x/image/vector rasterizer, which
// gives anti-aliased edges. Scaled image blits go through
// golang.org/x/image/draw.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	path := surface.NewPath()
//	path.Circle(400, 300, 100)
//	s.Fill(path, surface.FillStyle{Color: color.RGBA{255, 0, 0, 255}})
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// raster is reused between draws.
	raster *vector.Rasterizer

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		img:    img,
		raster: vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(toRGBA(c)), image.Point{}, draw.Src)
}

// Fill fills the given path using the non-zero winding rule.
func (s *ImageSurface) Fill(path *Path, style FillStyle) {
	if s.closed || path == nil || path.IsEmpty() {
		return
	}

	s.raster.Reset(s.width, s.height)
	addPath(s.raster, path)
	s.paint(style.Color)
}

// Stroke strokes the given path using the specified style.
//
// The outline is built from one quad per flattened segment plus the cap
// and join pieces. All pieces are wound the same way, so overlaps clamp to
// full coverage instead of cancelling.
func (s *ImageSurface) Stroke(path *Path, style StrokeStyle) {
	if s.closed || path == nil || path.IsEmpty() || style.Width <= 0 {
		return
	}

	s.raster.Reset(s.width, s.height)
	hw := style.Width / 2
	for _, line := range path.Flatten(0.25) {
		strokePolyline(s.raster, line, hw, style)
	}
	s.paint(style.Color)
}

// paint composites c through the rasterizer's coverage mask.
func (s *ImageSurface) paint(c color.Color) {
	s.raster.DrawOp = draw.Over
	s.raster.Draw(s.img, s.img.Bounds(), image.NewUniform(toRGBA(c)), image.Point{})
}

// DrawImage draws an image at the specified position. When opts carries a
// DstRect the source region is scaled to fill it with the requested
// filter.
func (s *ImageSurface) DrawImage(img image.Image, at Point, opts *DrawImageOptions) {
	if s.closed || img == nil {
		return
	}
	if opts == nil {
		opts = DefaultDrawImageOptions()
	}

	src := img.Bounds()
	if opts.SrcRect != nil {
		src = opts.SrcRect.Intersect(src)
	}
	if src.Empty() {
		return
	}

	dst := src.Sub(src.Min).Add(image.Pt(int(math.Round(at.X)), int(math.Round(at.Y))))
	if opts.DstRect != nil {
		dst = opts.DstRect.Canon()
	}
	if dst.Empty() || opts.Alpha <= 0 {
		return
	}

	var dopts *draw.Options
	if opts.Alpha < 1 {
		dopts = &draw.Options{
			DstMask: image.NewUniform(color.Alpha16{A: uint16(opts.Alpha * 0xffff)}),
		}
	}

	var scaler draw.Scaler = draw.NearestNeighbor
	if opts.Filter == FilterBilinear {
		scaler = draw.BiLinear
	}
	scaler.Scale(s.img, dst, img, src, draw.Over, dopts)
}

// Flush ensures all pending operations are complete.
// For ImageSurface, this is a no-op.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(result, result.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.raster = nil
	return nil
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Capabilities returns the surface capabilities.
func (s *ImageSurface) Capabilities() Capabilities {
	return Capabilities{
		SupportsAntialias:    true,
		SupportsScaledImages: true,
		Rasterizes:           true,
	}
}

// addPath feeds the path to z, closing every subpath.
func addPath(z *vector.Rasterizer, path *Path) {
	open := false
	i := 0
	for _, verb := range path.verbs {
		pts := path.points[i : i+pointsPerVerb[verb]]
		i += pointsPerVerb[verb]

		switch verb {
		case VerbMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			open = true
		case VerbLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case VerbQuadTo:
			z.QuadTo(float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y))
		case VerbCubicTo:
			z.CubeTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y),
			)
		case VerbClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// addPolygon adds a closed polygon to z with positive signed area,
// reversing the vertex order if needed.
func addPolygon(z *vector.Rasterizer, pts ...Point) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area == 0 {
		return
	}

	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	if area > 0 {
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
	} else {
		for i := len(pts) - 1; i > 0; i-- {
			z.LineTo(float32(pts[i].X), float32(pts[i].Y))
		}
	}
	z.ClosePath()
}

// addDisc adds a disc of radius r around c.
func addDisc(z *vector.Rasterizer, c Point, r float64) {
	n := min(max(int(math.Ceil(math.Pi*r)), 8), 64)
	pts := make([]Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)}
	}
	addPolygon(z, pts...)
}

// strokePolyline adds the outline pieces of one flattened subpath to z.
func strokePolyline(z *vector.Rasterizer, line Polyline, hw float64, style StrokeStyle) {
	pts := dedupe(line.Points, line.Closed)
	if len(pts) == 1 {
		// A lone point only shows with a round or square cap.
		switch style.Cap {
		case LineCapRound:
			addDisc(z, pts[0], hw)
		case LineCapSquare:
			c := pts[0]
			addPolygon(z, Pt(c.X-hw, c.Y-hw), Pt(c.X+hw, c.Y-hw), Pt(c.X+hw, c.Y+hw), Pt(c.X-hw, c.Y+hw))
		}
		return
	}

	n := len(pts) - 1
	if line.Closed {
		n = len(pts)
	}
	normals := make([]Point, n)
	for i := range normals {
		a, b := pts[i], pts[(i+1)%len(pts)]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		normals[i] = Point{X: -dy / l * hw, Y: dx / l * hw}
	}

	for i, nv := range normals {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if !line.Closed && style.Cap == LineCapSquare {
			dx, dy := nv.Y, -nv.X // direction scaled to hw
			if i == 0 {
				a = Point{X: a.X - dx, Y: a.Y - dy}
			}
			if i == n-1 {
				b = Point{X: b.X + dx, Y: b.Y + dy}
			}
		}
		addPolygon(z,
			Point{X: a.X + nv.X, Y: a.Y + nv.Y},
			Point{X: b.X + nv.X, Y: b.Y + nv.Y},
			Point{X: b.X - nv.X, Y: b.Y - nv.Y},
			Point{X: a.X - nv.X, Y: a.Y - nv.Y},
		)
	}

	// Joins at interior vertices, and at the seam of a closed line.
	for i := range pts {
		in, out := i-1, i
		if !line.Closed && (i == 0 || i == len(pts)-1) {
			continue
		}
		if in < 0 {
			in = n - 1
		}
		if out >= n {
			continue
		}
		v := pts[i]
		if style.Join == LineJoinRound {
			addDisc(z, v, hw)
			continue
		}
		n1, n2 := normals[in], normals[out]
		addPolygon(z, v, Point{X: v.X + n1.X, Y: v.Y + n1.Y}, Point{X: v.X + n2.X, Y: v.Y + n2.Y})
		addPolygon(z, v, Point{X: v.X - n1.X, Y: v.Y - n1.Y}, Point{X: v.X - n2.X, Y: v.Y - n2.Y})
	}

	if !line.Closed && style.Cap == LineCapRound {
		addDisc(z, pts[0], hw)
		addDisc(z, pts[len(pts)-1], hw)
	}
}

// dedupe drops consecutive repeated points, and the repeated start point
// at the end of a closed line.
func dedupe(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// Verify ImageSurface implements Surface interface.
var (
	_ Surface        = (*ImageSurface)(nil)
	_ CapableSurface = (*ImageSurface)(nil)
)
