// Package shape provides a small 2D geometry kernel: points, segments,
// polygons, axis-aligned rectangles, ellipses and circles, together with
// the affine operations and predicates applied to them.
//
// # Overview
//
// Every shape supports four in-place transforms (see [Transformer]):
//
//   - Translate(dx, dy)
//   - Scale(pivot, factor): move each point along its line to pivot
//   - Reflect(line): mirror across a [Line], which may be vertical
//   - Rotate(pivot, angle): rotate about pivot, angle in radians
//
// Transforms mutate the receiver and return nothing. Container shapes
// forward them to every point they own.
//
// Queries are built on a single predicate, [Orient]. Segment crossing
// ([Segment.ProperlyIntersects]) and polygon containment
// ([Polygon.Contains], ray casting) both derive from it; rectangles answer
// containment by building a [Polygon].
//
// # Quick Start
//
//	sq, _ := shape.NewPolygon([]shape.Point{
//	    shape.Pt(0, 0), shape.Pt(10, 0), shape.Pt(10, 10), shape.Pt(0, 10),
//	})
//	sq.Contains(shape.Pt(5, 5))            // true
//	sq.Reflect(shape.VerticalLine(20))     // mirrored to x in [30, 40]
//	sq.Rotate(sq.Center(), math.Pi/4)
//
// # Coordinate System
//
// The kernel is coordinate-agnostic. [Orient] names turns in the usual
// mathematical frame (y up); on a y-down screen a counter-clockwise turn
// looks clockwise. Angles are radians.
//
// # Degenerate Geometry
//
// Degenerate input is not an error. A vertical or zero-length segment
// reports [VerticalSlope]; a polygon with fewer than three vertices
// contains nothing; a zero-width rectangle refuses SetScaleToWidth.
// Only malformed construction input (for example a one-element coordinate
// list) returns an error.
//
// # Collaborators
//
// The kernel draws nothing and reads no global input. The render package
// turns shape state into calls on a surface.Surface; input-dependent
// queries such as [Rect.Hovered] take an explicit [Input] snapshot; the
// scene package drives ticks.
package shape
