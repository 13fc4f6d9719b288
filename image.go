package shape

import "image"

// ImageBox places an image in a rectangle on the drawing surface. The
// image itself is never modified; only the box it is drawn into moves and
// scales, following Rect semantics.
type ImageBox struct {
	Image image.Image

	// Source is the region of Image that is drawn. NewImageBox sets it to
	// the full image bounds.
	Source image.Rectangle

	// Box is where Source is drawn.
	Box Rect
}

// NewImageBox places img with its top-left corner at (x, y) at its natural
// size.
func NewImageBox(img image.Image, x, y float64) *ImageBox {
	b := img.Bounds()
	return &ImageBox{
		Image:  img,
		Source: b,
		Box:    Rect{X: x, Y: y, Width: float64(b.Dx()), Height: float64(b.Dy()), Style: defaultStyle()},
	}
}

// Center returns the center of the box the image is drawn into.
func (ib *ImageBox) Center() Point {
	return ib.Box.Center()
}

// Bounds returns the normalised bounds of the box.
func (ib *ImageBox) Bounds() Box {
	return ib.Box.Bounds()
}

// Contains reports whether p is over the image box.
func (ib *ImageBox) Contains(p Point) bool {
	return ib.Box.Contains(p)
}

// Translate moves the box by (dx, dy).
func (ib *ImageBox) Translate(dx, dy float64) { ib.Box.Translate(dx, dy) }

// Scale scales the box about pivot like Rect.Scale.
func (ib *ImageBox) Scale(pivot Point, factor float64) { ib.Box.Scale(pivot, factor) }

// Reflect mirrors the box corners across l like Rect.Reflect.
func (ib *ImageBox) Reflect(l Line) { ib.Box.Reflect(l) }

// Rotate moves the box corners around pivot like Rect.Rotate.
func (ib *ImageBox) Rotate(pivot Point, angle float64) { ib.Box.Rotate(pivot, angle) }

// SetScaleToWidth scales the box about its center to the target width.
func (ib *ImageBox) SetScaleToWidth(target float64) bool {
	return ib.Box.SetScaleToWidth(target)
}

// SetScaleToHeight scales the box about its center to the target height.
func (ib *ImageBox) SetScaleToHeight(target float64) bool {
	return ib.Box.SetScaleToHeight(target)
}

// Drag moves the box by the displacement from one point to another.
func (ib *ImageBox) Drag(from, to Point) {
	ib.Box.Drag(from, to)
}
