// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing target used to render shapes.
//
// A [Surface] accepts four kinds of work: Clear, Fill and Stroke of a
// [Path], and DrawImage. The shape kernel never talks to a surface
// directly; the render package translates shape state into these calls.
//
// # Surface Types
//
//   - ImageSurface: antialiased software rendering into *image.RGBA,
//     rasterized with golang.org/x/image/vector and composited with
//     golang.org/x/image/draw
//   - Recorder: records typed commands for later playback, useful in tests
//     and for rendering the same frame to several targets
//
// # Registry
//
// Surface kinds are looked up by name:
//
//	s, err := surface.NewSurfaceByName("image", 800, 600)
//
// "image" (priority 10) and "record" (priority 0) are registered at init.
// Additional kinds can be added with [Register].
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//
//	path := surface.NewPath()
//	path.MoveTo(100, 100)
//	path.LineTo(200, 100)
//	path.LineTo(150, 200)
//	path.Close()
//
//	s.Fill(path, surface.FillStyle{Color: color.RGBA{255, 0, 0, 255}})
//	img := s.Snapshot()
//
// Fills use the non-zero winding rule.
package surface
