package main

import (
	"fmt"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/render"
	"github.com/gogpu/shape/scene"
)

// step is how far the image moves per tick while a key is held.
const step = 4

// demo holds the scene objects the tick logic drives.
type demo struct {
	scene *scene.Scene
	rect  *shape.Rect
	poly  *shape.Polygon
	line  *render.Line
	ball  *shape.Circle
	heart *shape.ImageBox
}

func newDemo(s *scene.Scene) (*demo, error) {
	d := &demo{scene: s}
	var ok bool
	if d.rect, ok = s.Rect("rectangle"); !ok {
		return nil, missing("rect", "rectangle")
	}
	if d.poly, ok = s.Polygon("polygon"); !ok {
		return nil, missing("polygon", "polygon")
	}
	if d.ball, ok = s.Circle("circle"); !ok {
		return nil, missing("circle", "circle")
	}
	if d.heart, ok = s.ImageBox("heart"); !ok {
		return nil, missing("image", "heart")
	}
	obj, ok := s.Lookup("line")
	if !ok {
		return nil, missing("segment", "line")
	}
	if d.line, ok = obj.Shape.(*render.Line); !ok {
		return nil, missing("segment", "line")
	}

	d.heart.SetScaleToWidth(200)
	return d, nil
}

func missing(kind, name string) error {
	return fmt.Errorf("scene has no %s %q", kind, name)
}

// tick applies one input snapshot to the scene.
func (d *demo) tick(in shape.Input) {
	// Opposite keys held together cancel out.
	if in.Pressed("w") {
		d.heart.Translate(0, -step)
	}
	if in.Pressed("s") {
		d.heart.Translate(0, step)
	}
	if in.Pressed("d") {
		d.heart.Translate(step, 0)
	}
	if in.Pressed("a") {
		d.heart.Translate(-step, 0)
	}
	if in.Pressed("c") {
		shape.Logger().Info("polygon center", "center", d.poly.Center())
	}

	hovered := d.rect.Hovered(in)
	switch {
	case hovered && in.Clicked:
		d.rect.Drag(d.rect.Center(), in.Pointer)
	case hovered:
		d.rect.SetScaleToWidth(150)
	default:
		d.rect.SetScaleToWidth(100)
	}

	if in.Clicked {
		d.line.Reflect(shape.VerticalLine(d.scene.Width / 2))
	}
	d.ball.MoveTo(in.Pointer)

	if edge := d.rect.EdgeProximity(d.scene.Width, d.scene.Height); edge != shape.EdgeNone {
		shape.Logger().Debug("rectangle on edge", "edge", edge)
	}
}
