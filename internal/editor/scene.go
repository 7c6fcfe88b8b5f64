package editor

import (
	"slices"

	"github.com/inamate/easypaint/internal/geom"
	"github.com/inamate/easypaint/internal/shape"
)

// Scene is the ordered shape collection. Index order is painter's order:
// later shapes are drawn on top and win hit tests.
type Scene struct {
	shapes []*shape.Shape
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Len returns the number of shapes.
func (sc *Scene) Len() int {
	return len(sc.shapes)
}

// Shapes returns the shapes back to front. The slice is a copy; the shapes are not.
func (sc *Scene) Shapes() []*shape.Shape {
	return slices.Clone(sc.shapes)
}

// Append adds a shape on top of all others.
func (sc *Scene) Append(s *shape.Shape) {
	sc.shapes = append(sc.shapes, s)
}

// Remove deletes s by identity and reports whether it was present.
func (sc *Scene) Remove(s *shape.Shape) bool {
	i := slices.Index(sc.shapes, s)
	if i < 0 {
		return false
	}
	sc.shapes = slices.Delete(sc.shapes, i, i+1)
	return true
}

// BringToFront moves s to the end of the draw order.
func (sc *Scene) BringToFront(s *shape.Shape) {
	if sc.Remove(s) {
		sc.Append(s)
	}
}

// Find returns the shape with the given ID.
func (sc *Scene) Find(id string) (*shape.Shape, bool) {
	for _, s := range sc.shapes {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// HitTest returns the topmost shape under p, or nil.
func (sc *Scene) HitTest(p geom.Point) *shape.Shape {
	// Front to back = reverse order
	for i := len(sc.shapes) - 1; i >= 0; i-- {
		if sc.shapes[i].HitTest(p) {
			return sc.shapes[i]
		}
	}
	return nil
}

// Clear removes every shape.
func (sc *Scene) Clear() {
	sc.shapes = nil
}
