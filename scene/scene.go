package scene

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/render"
)

var (
	// ErrDuplicateName is returned when an object name is already taken.
	ErrDuplicateName = errors.New("scene: duplicate object name")

	// ErrNilShape is returned when adding an object without a shape.
	ErrNilShape = errors.New("scene: nil shape")
)

// Object is one named shape of a scene.
type Object struct {
	// ID is assigned when the object is added and never changes.
	ID uuid.UUID

	// Name is unique within the scene.
	Name string

	// Shape is a kernel value such as *shape.Rect or *shape.Polygon.
	Shape any

	// order is the position in draw order.
	order int
}

// Scene is an ordered set of named objects in a viewport.
type Scene struct {
	Width, Height float64
	Background    shape.RGBA

	rects   *shape.Registry
	objects []*Object
	byName  map[string]*Object
}

// New creates an empty scene.
func New(width, height float64, background shape.RGBA) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		Background: background,
		rects:      shape.NewRegistry(),
		byName:     make(map[string]*Object),
	}
}

// Add appends v to the scene under name. An empty name is replaced by the
// object ID. Rectangles are also added to the scene's rect registry.
func (s *Scene) Add(name string, v any) (*Object, error) {
	if v == nil {
		return nil, ErrNilShape
	}
	id := uuid.New()
	if name == "" {
		name = id.String()
	}
	if _, ok := s.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	obj := &Object{ID: id, Name: name, Shape: v, order: len(s.objects)}
	s.objects = append(s.objects, obj)
	s.byName[name] = obj
	if r, ok := v.(*shape.Rect); ok {
		s.rects.Add(r)
	}
	return obj, nil
}

// MustAdd is like Add but panics on error.
func (s *Scene) MustAdd(name string, v any) *Object {
	obj, err := s.Add(name, v)
	if err != nil {
		panic(err)
	}
	return obj
}

// Lookup returns the object called name.
func (s *Scene) Lookup(name string) (*Object, bool) {
	obj, ok := s.byName[name]
	return obj, ok
}

// Rect returns the shape of the named object if it is a rectangle.
func (s *Scene) Rect(name string) (*shape.Rect, bool) {
	return shapeAs[*shape.Rect](s, name)
}

// Polygon returns the shape of the named object if it is a polygon.
func (s *Scene) Polygon(name string) (*shape.Polygon, bool) {
	return shapeAs[*shape.Polygon](s, name)
}

// Circle returns the shape of the named object if it is a circle.
func (s *Scene) Circle(name string) (*shape.Circle, bool) {
	return shapeAs[*shape.Circle](s, name)
}

// ImageBox returns the shape of the named object if it is an image box.
func (s *Scene) ImageBox(name string) (*shape.ImageBox, bool) {
	return shapeAs[*shape.ImageBox](s, name)
}

func shapeAs[T any](s *Scene, name string) (T, bool) {
	var zero T
	obj, ok := s.byName[name]
	if !ok {
		return zero, false
	}
	v, ok := obj.Shape.(T)
	return v, ok
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects yields the objects in draw order.
func (s *Scene) Objects() iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for _, obj := range s.objects {
			if !yield(obj) {
				return
			}
		}
	}
}

// Rects returns the registry holding every rectangle of the scene, for
// Rect.Touching queries.
func (s *Scene) Rects() *shape.Registry {
	return s.rects
}

// Draw clears r with the scene background and draws every object in
// order.
func (s *Scene) Draw(r *render.Renderer) {
	r.SetBackground(s.Background)
	r.Clear()
	for _, obj := range s.objects {
		r.Draw(obj.Shape)
	}
}

// HitIndex builds a hit index over the current geometry of the scene.
func (s *Scene) HitIndex() *HitIndex {
	return NewHitIndex(s.Objects())
}
