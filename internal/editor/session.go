package editor

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/inamate/easypaint/internal/geom"
	"github.com/inamate/easypaint/internal/shape"
	"github.com/inamate/easypaint/internal/typeid"
)

// Phase is the construction state of a session.
type Phase int

const (
	// PhaseIdle: pointer input selects, moves and resizes shapes.
	PhaseIdle Phase = iota
	// PhaseAwaitingFirstAnchor: a kind was chosen, the next press creates the shape.
	PhaseAwaitingFirstAnchor
	// PhaseActivelyDragging: the pointer is held while building the shape.
	PhaseActivelyDragging
	// PhaseAwaitingNextVertex: a polyline or polygon waits for its next vertex
	// press or the closing double-click.
	PhaseAwaitingNextVertex
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingFirstAnchor:
		return "awaitingFirstAnchor"
	case PhaseActivelyDragging:
		return "activelyDragging"
	case PhaseAwaitingNextVertex:
		return "awaitingNextVertex"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Canvas is a Surface that can be wiped before a full redraw.
type Canvas interface {
	shape.Surface
	Clear()
}

type Option func(*Session)

// WithLogger sets the logger for debug records. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithIDGenerator replaces the generator of shape IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// Session owns a scene together with its selection and construction state,
// and turns host pointer events and commands into scene mutations.
// A Session is not safe for concurrent use.
type Session struct {
	ID string

	scene *Scene

	// Selection state
	selected *shape.Shape

	// Construction state
	phase        Phase
	pendingKind  shape.Kind
	constructing *shape.Shape
	created      int

	// Pointer state
	pointerHeld bool
	pointerDown geom.Point
	lastPointer geom.Point

	logger *slog.Logger
	newID  func() string
}

// NewSession creates a session with an empty scene.
func NewSession(id string, opts ...Option) *Session {
	s := &Session{
		ID:     id,
		scene:  NewScene(),
		logger: slog.New(slog.DiscardHandler),
		newID:  typeid.NewShapeID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", id)
	return s
}

// Scene returns the session's scene.
func (s *Session) Scene() *Scene {
	return s.scene
}

// Phase returns the construction phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Selected returns the selected shape, or nil.
func (s *Session) Selected() *shape.Shape {
	return s.selected
}

// Constructing returns the shape under construction, or nil.
func (s *Session) Constructing() *shape.Shape {
	return s.constructing
}

// SelectedStyle returns the style of the selected shape so a host can sync
// its pickers. ok is false when nothing is selected.
func (s *Session) SelectedStyle() (style shape.Style, ok bool) {
	if s.selected == nil {
		return shape.Style{}, false
	}
	return s.selected.Style(), true
}

// --- Commands (host → editor) ---

// CreateShape enters construction mode for kind. No shape is added to the
// scene until the next pointer press.
func (s *Session) CreateShape(kind shape.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("create shape: %w: %d", shape.ErrUnknownKind, int(kind))
	}

	s.pendingKind = kind
	s.constructing = nil
	s.phase = PhaseAwaitingFirstAnchor
	return nil
}

// CancelConstruction abandons construction. A partially built shape stays
// in the scene as it is.
func (s *Session) CancelConstruction() {
	if s.constructing != nil {
		s.logger.Debug("cancel construction", "shape", s.constructing.ID)
	}
	s.constructing = nil
	s.phase = PhaseIdle
	s.resetPointer()
}

// PointerDown handles a press at p and reports whether a redraw is needed.
func (s *Session) PointerDown(p geom.Point) bool {
	redraw := false
	previousDown := s.pointerDown

	s.pointerHeld = true
	s.pointerDown = p
	s.lastPointer = p

	// A press away from the selection drops it
	if s.selected != nil && !s.selected.HitTest(p) {
		s.deselect()
		redraw = true
	}

	switch s.phase {
	case PhaseIdle:
		if hit := s.scene.HitTest(p); hit != nil {
			s.selectShape(hit)
			redraw = true
		}

	case PhaseAwaitingFirstAnchor:
		if s.startConstruction(p) {
			redraw = true
		}

	case PhaseAwaitingNextVertex:
		if s.constructing != nil {
			s.constructing.UpdateGeometry(previousDown, p, shape.UpdateStep)
			s.phase = PhaseActivelyDragging
			redraw = true
		}
	}

	return redraw
}

// PointerMove handles pointer motion to p and reports whether a redraw is needed.
// While a shape is under construction the motion feeds its geometry; otherwise
// a held pointer moves or resizes the selection.
func (s *Session) PointerMove(p geom.Point) bool {
	if s.constructing != nil && (s.phase == PhaseActivelyDragging || s.phase == PhaseAwaitingNextVertex) {
		s.constructing.UpdateGeometry(s.pointerDown, p, shape.UpdateDrag)
		return true
	}

	if s.selected != nil && s.pointerHeld {
		s.selected.UpdateByDelta(p.X-s.lastPointer.X, p.Y-s.lastPointer.Y)
		s.lastPointer = p
		return true
	}

	return false
}

// PointerUp handles a release. Single-gesture shapes are finished here;
// polylines and polygons wait for their next vertex.
func (s *Session) PointerUp(geom.Point) {
	if s.constructing != nil && s.phase == PhaseActivelyDragging {
		if s.constructing.Kind().MultiStep() {
			s.phase = PhaseAwaitingNextVertex
			s.pointerHeld = false
			return
		}
		s.finishConstruction()
	}

	s.resetPointer()
}

// DoubleClick finalizes the shape under construction at p and reports whether
// a redraw is needed.
func (s *Session) DoubleClick(p geom.Point) bool {
	if s.constructing == nil {
		return false
	}

	s.constructing.UpdateGeometry(s.pointerDown, p, shape.UpdateFinalize)
	s.finishConstruction()
	s.resetPointer()
	return true
}

// DeleteSelected removes the selected shape from the scene, wherever it is
// in the draw order. It is a no-op without a selection.
func (s *Session) DeleteSelected() bool {
	if s.selected == nil {
		return false
	}

	s.scene.Remove(s.selected)
	s.logger.Debug("delete shape", "shape", s.selected.ID, "name", s.selected.Name)
	s.selected = nil
	return true
}

// Clear empties the scene and abandons any construction.
func (s *Session) Clear() {
	s.scene.Clear()
	s.selected = nil
	s.constructing = nil
	s.phase = PhaseIdle
	s.resetPointer()
	s.logger.Debug("clear scene")
}

// SetSelectedFillColor fills the selected shape. Open shapes cannot be filled.
func (s *Session) SetSelectedFillColor(color string) bool {
	if s.selected == nil || !s.selected.IsClosedGeometry() {
		return false
	}
	s.selected.SetFillColor(color)
	return true
}

func (s *Session) SetSelectedBorderColor(color string) bool {
	if s.selected == nil {
		return false
	}
	s.selected.SetBorderColor(color)
	return true
}

func (s *Session) SetSelectedBorderStyle(style shape.BorderStyle) bool {
	if s.selected == nil {
		return false
	}
	s.selected.SetBorderStyle(style)
	return true
}

func (s *Session) SetSelectedBorderWidth(width int) bool {
	if s.selected == nil {
		return false
	}
	s.selected.SetBorderWidth(width)
	return true
}

// Render wipes the canvas and draws every shape back to front.
func (s *Session) Render(canvas Canvas) {
	canvas.Clear()
	for _, sh := range s.scene.shapes {
		sh.Draw(canvas)
	}
}

// --- internals ---

func (s *Session) selectShape(sh *shape.Shape) {
	if s.selected != nil && s.selected != sh {
		s.selected.SetSelected(false)
	}
	s.selected = sh
	sh.SetSelected(true)
	s.scene.BringToFront(sh)
}

func (s *Session) deselect() {
	s.selected.SetSelected(false)
	s.selected = nil
}

func (s *Session) startConstruction(p geom.Point) bool {
	sh, err := s.newShape(s.pendingKind, p)
	if err != nil {
		s.logger.Warn("create shape", "kind", s.pendingKind, "error", err)
		s.phase = PhaseIdle
		return false
	}

	s.scene.Append(sh)
	s.constructing = sh
	s.phase = PhaseActivelyDragging
	return true
}

// newShape creates a shape named after its kind and a per-session sequence
// number, e.g. "Rect3". Numbers are never reused within a session.
func (s *Session) newShape(kind shape.Kind, p geom.Point) (*shape.Shape, error) {
	name := kind.Label() + strconv.Itoa(s.created)
	sh, err := shape.New(kind, s.newID(), name, p)
	if err != nil {
		return nil, err
	}
	s.created++
	s.logger.Debug("create shape", "shape", sh.ID, "name", name, "kind", kind)
	return sh, nil
}

func (s *Session) finishConstruction() {
	s.logger.Debug("finish construction",
		"shape", s.constructing.ID,
		"points", len(s.constructing.Geometry()),
		"closed", s.constructing.IsClosedGeometry(),
	)
	s.constructing = nil
	s.phase = PhaseIdle
}

func (s *Session) resetPointer() {
	s.pointerHeld = false
	s.pointerDown = geom.Point{}
	s.lastPointer = geom.Point{}
}
