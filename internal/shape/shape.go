package shape

import (
	"fmt"

	"github.com/inamate/easypaint/internal/geom"
)

const (
	// AnchorSize is the side of an anchor handle; half of it is the hit radius.
	AnchorSize = 8.0

	// GrabbedAnchorScale enlarges the handle currently being dragged.
	GrabbedAnchorScale = 1.7

	// MinShapeSize is the smallest width or height a resize may produce.
	MinShapeSize = 5.0

	noAnchor = -1
)

// Shape is one drawable item of a scene. All variants share this structure
// and differ only in how construction updates build their geometry.
type Shape struct {
	ID   string
	Name string

	kind     Kind
	geometry []geom.Point
	style    Style

	selected       bool
	box            geom.BoundingBox
	anchors        [2]geom.Point
	selectedAnchor int
}

// New creates a shape of the given kind whose construction starts at p.
func New(kind Kind, id, name string, p geom.Point) (*Shape, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	s := &Shape{
		ID:             id,
		Name:           name,
		kind:           kind,
		style:          DefaultStyle(),
		selectedAnchor: noAnchor,
	}
	s.UpdateGeometry(p, p, UpdateInitial)
	return s, nil
}

// Kind returns the variant of the shape.
func (s *Shape) Kind() Kind {
	return s.kind
}

// Geometry returns a copy of the shape's points.
func (s *Shape) Geometry() []geom.Point {
	return append([]geom.Point(nil), s.geometry...)
}

// Style returns the shape's current paint state.
func (s *Shape) Style() Style {
	return s.style
}

func (s *Shape) SetFillColor(c string) { s.style.FillColor = c }

func (s *Shape) SetBorderColor(c string) { s.style.BorderColor = c }

func (s *Shape) SetBorderStyle(b BorderStyle) { s.style.BorderStyle = b }

func (s *Shape) SetBorderWidth(width int) { s.style.BorderWidth = width }

// IsSelected reports whether the shape is the scene's selection.
func (s *Shape) IsSelected() bool {
	return s.selected
}

// BoundingBox is only meaningful while the shape is selected.
func (s *Shape) BoundingBox() geom.BoundingBox {
	return s.box
}

// Anchors returns the Min and Max corners of the bounding box.
func (s *Shape) Anchors() [2]geom.Point {
	return s.anchors
}

// SelectedAnchor returns the index of the grabbed anchor, if any.
func (s *Shape) SelectedAnchor() (int, bool) {
	return s.selectedAnchor, s.selectedAnchor != noAnchor
}

// UpdateGeometry applies one construction update. a is the gesture's
// pointer-down point and b the current pointer position.
func (s *Shape) UpdateGeometry(a, b geom.Point, kind UpdateKind) {
	s.geometry = builders[s.kind](s.geometry, a, b, kind)
}

// IsClosedGeometry reports whether the path returns to its first point.
// A path needs at least three points to enclose anything.
func (s *Shape) IsClosedGeometry() bool {
	n := len(s.geometry)
	return n >= 3 && s.geometry[0] == s.geometry[n-1]
}

// SetSelected toggles selection. Becoming selected refreshes the bounding
// box and anchors; becoming unselected releases any grabbed anchor.
func (s *Shape) SetSelected(selected bool) {
	s.selected = selected
	s.refreshBounds()
	if !selected {
		s.selectedAnchor = noAnchor
	}
}

// HitTest reports whether p touches the shape. When selected, anchors are
// tested first and a hit grabs that anchor. A body hit never leaves an
// anchor grabbed.
func (s *Shape) HitTest(p geom.Point) bool {
	if s.selected {
		for i, a := range s.anchors {
			if geom.HitTestAnchor(a, p, AnchorSize/2) {
				s.selectedAnchor = i
				return true
			}
		}
	}

	s.selectedAnchor = noAnchor

	if s.IsClosedGeometry() {
		return geom.HitTestClosedPath(s.geometry, p)
	}
	return geom.HitTestOpenPath(s.geometry, p)
}

// UpdateByDelta moves the grabbed anchor by (dx, dy) and rescales the
// geometry to the new box, or translates the whole shape when no anchor
// is grabbed. A resize below MinShapeSize on either axis is dropped.
func (s *Shape) UpdateByDelta(dx, dy float64) {
	if s.selectedAnchor != noAnchor {
		s.resize(dx, dy)
	} else {
		geom.Translate(dx, dy).Apply(s.geometry)
	}
	s.refreshBounds()
}

func (s *Shape) resize(dx, dy float64) {
	anchors := s.anchors
	anchors[s.selectedAnchor] = anchors[s.selectedAnchor].Add(dx, dy)

	before := s.box
	after := geom.ComputeBoundingBox(anchors[:])
	if after.Width < MinShapeSize || after.Height < MinShapeSize {
		return
	}

	sx := scaleRatio(after.Width, before.Width)
	sy := scaleRatio(after.Height, before.Height)
	geom.Remap(before.Center, after.Center, sx, sy).Apply(s.geometry)
}

// scaleRatio keeps a flat axis unscaled instead of dividing by zero.
func scaleRatio(after, before float64) float64 {
	if before == 0 {
		return 1
	}
	return after / before
}

func (s *Shape) refreshBounds() {
	s.box = geom.ComputeBoundingBox(s.geometry)
	s.anchors = s.box.Corners()
}
