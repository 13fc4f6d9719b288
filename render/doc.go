// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws shapes onto a surface.Surface.
//
// The shape kernel only holds geometry and style. A [Renderer] reads that
// state and turns it into Fill, Stroke and DrawImage calls:
//
//   - Polygons, paths, circles, ellipses and segments are filled and then
//     outlined with a one pixel stroke in their Color.
//   - Rectangles are painted in their border Color. When Outline is set,
//     the inner rectangle is painted with Fill, or with the renderer's
//     background when the rect has no fill color.
//   - Image boxes are scaled into their box.
//
// Example:
//
//	s := surface.NewImageSurface(500, 500)
//	r := render.New(s, shape.Hex("#f0f0f0"))
//	r.Clear()
//	r.Draw(shape.NewCircle(shape.Pt(250, 250), 40, shape.WithColor(shape.Red)))
//	img := s.Snapshot()
package render
