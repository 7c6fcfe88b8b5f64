package editor

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/easypaint/internal/geom"
	"github.com/inamate/easypaint/internal/shape"
)

func newTestSession(opts ...Option) *Session {
	n := 0
	ids := WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("shape_%d", n)
	})
	return NewSession("sess_test", append([]Option{ids}, opts...)...)
}

// drag builds a single-gesture shape from a to b.
func drag(t *testing.T, s *Session, kind shape.Kind, a, b geom.Point) *shape.Shape {
	t.Helper()
	require.NoError(t, s.CreateShape(kind))
	assert.True(t, s.PointerDown(a))
	assert.True(t, s.PointerMove(b))
	s.PointerUp(b)
	require.Equal(t, PhaseIdle, s.Phase())

	shapes := s.Scene().Shapes()
	require.NotEmpty(t, shapes)
	return shapes[len(shapes)-1]
}

func click(s *Session, p geom.Point) bool {
	redraw := s.PointerDown(p)
	s.PointerUp(p)
	return redraw
}

func TestCreateRectangle(t *testing.T) {
	s := newTestSession()

	require.NoError(t, s.CreateShape(shape.KindRectangle))
	assert.Equal(t, PhaseAwaitingFirstAnchor, s.Phase())
	assert.Zero(t, s.Scene().Len(), "no shape until the first press")

	assert.True(t, s.PointerDown(geom.Pt(10, 10)))
	assert.Equal(t, PhaseActivelyDragging, s.Phase())
	require.NotNil(t, s.Constructing())

	assert.True(t, s.PointerMove(geom.Pt(30, 20)))
	assert.True(t, s.PointerMove(geom.Pt(50, 40)))
	s.PointerUp(geom.Pt(50, 40))

	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Nil(t, s.Constructing())
	require.Equal(t, 1, s.Scene().Len())

	rect := s.Scene().Shapes()[0]
	assert.Equal(t, "Rect0", rect.Name)
	assert.Equal(t, "shape_1", rect.ID)
	assert.Equal(t, []geom.Point{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 50, Y: 40}, {X: 10, Y: 40}, {X: 10, Y: 10}}, rect.Geometry())
	assert.False(t, rect.IsSelected())
}

func TestCreateShapeRejectsUnknownKind(t *testing.T) {
	s := newTestSession()

	err := s.CreateShape(shape.Kind(77))
	assert.ErrorIs(t, err, shape.ErrUnknownKind)
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestScribbleFollowsPointer(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.CreateShape(shape.KindScribble))

	s.PointerDown(geom.Pt(0, 0))
	for i := 1; i <= 5; i++ {
		s.PointerMove(geom.Pt(float64(i), float64(i*i)))
	}
	s.PointerUp(geom.Pt(5, 25))

	scribble := s.Scene().Shapes()[0]
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 9}, {X: 4, Y: 16}, {X: 5, Y: 25}}, scribble.Geometry())
	assert.False(t, scribble.IsClosedGeometry())
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestPolygonConstruction(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.CreateShape(shape.KindPolygon))

	click(s, geom.Pt(0, 0))
	assert.Equal(t, PhaseAwaitingNextVertex, s.Phase())

	// The provisional point follows the pointer between vertex clicks
	assert.True(t, s.PointerMove(geom.Pt(20, 5)))
	assert.True(t, s.PointerMove(geom.Pt(40, 0)))
	polygon := s.Constructing()
	require.NotNil(t, polygon)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 40, Y: 0}}, polygon.Geometry())

	assert.True(t, s.PointerDown(geom.Pt(40, 0)))
	assert.Equal(t, PhaseActivelyDragging, s.Phase())
	s.PointerUp(geom.Pt(40, 0))
	s.PointerMove(geom.Pt(40, 30))
	click(s, geom.Pt(40, 30))
	s.PointerMove(geom.Pt(0, 30))
	assert.False(t, polygon.IsClosedGeometry())

	assert.True(t, s.DoubleClick(geom.Pt(0, 30)))

	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Nil(t, s.Constructing())
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 30}, {X: 0, Y: 30}, {X: 0, Y: 0}}, polygon.Geometry())
	assert.True(t, polygon.IsClosedGeometry())
	assert.Equal(t, "Polygon0", polygon.Name)
}

func TestPolylineStaysOpen(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.CreateShape(shape.KindPolyline))

	click(s, geom.Pt(0, 0))
	s.PointerMove(geom.Pt(50, 50))
	click(s, geom.Pt(50, 50))
	s.PointerMove(geom.Pt(100, 0))
	require.True(t, s.DoubleClick(geom.Pt(100, 0)))

	polyline := s.Scene().Shapes()[0]
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 0}}, polyline.Geometry())
	assert.False(t, polyline.IsClosedGeometry())

	assert.False(t, s.PointerMove(geom.Pt(10, 10)), "construction is over")
	assert.False(t, s.DoubleClick(geom.Pt(10, 10)))
}

func TestPointerUpWithoutPressKeepsWaiting(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.CreateShape(shape.KindPolyline))

	s.PointerUp(geom.Pt(3, 3))
	assert.Equal(t, PhaseAwaitingFirstAnchor, s.Phase())
	assert.False(t, s.PointerMove(geom.Pt(4, 4)))
	assert.Zero(t, s.Scene().Len())
}

func TestCancelConstructionKeepsPartialShape(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.CreateShape(shape.KindPolyline))
	click(s, geom.Pt(0, 0))
	s.PointerMove(geom.Pt(10, 0))

	s.CancelConstruction()

	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Nil(t, s.Constructing())
	require.Equal(t, 1, s.Scene().Len())
	assert.False(t, s.PointerMove(geom.Pt(20, 0)))
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, s.Scene().Shapes()[0].Geometry())
}

func TestSelectBringsToFront(t *testing.T) {
	s := newTestSession()
	bottom := drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	top := drag(t, s, shape.KindRectangle, geom.Pt(200, 0), geom.Pt(300, 100))

	assert.True(t, click(s, geom.Pt(50, 50)))

	assert.Same(t, bottom, s.Selected())
	assert.True(t, bottom.IsSelected())
	assert.Equal(t, []*shape.Shape{top, bottom}, s.Scene().Shapes())

	style, ok := s.SelectedStyle()
	assert.True(t, ok)
	assert.Equal(t, shape.DefaultStyle(), style)
}

func TestSelectingAnotherShapeDeselectsPrevious(t *testing.T) {
	s := newTestSession()
	a := drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	b := drag(t, s, shape.KindRectangle, geom.Pt(200, 0), geom.Pt(300, 100))

	click(s, geom.Pt(50, 50))
	click(s, geom.Pt(250, 50))

	assert.Same(t, b, s.Selected())
	assert.False(t, a.IsSelected())
	assert.True(t, b.IsSelected())
}

func TestPressOnEmptyAreaDeselects(t *testing.T) {
	s := newTestSession()
	rect := drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	click(s, geom.Pt(50, 50))
	require.Same(t, rect, s.Selected())

	assert.True(t, click(s, geom.Pt(500, 500)))
	assert.Nil(t, s.Selected())
	assert.False(t, rect.IsSelected())

	_, ok := s.SelectedStyle()
	assert.False(t, ok)

	assert.False(t, click(s, geom.Pt(500, 500)), "nothing to redraw")
}

func TestDragMovesSelection(t *testing.T) {
	s := newTestSession()
	rect := drag(t, s, shape.KindRectangle, geom.Pt(10, 10), geom.Pt(50, 40))

	require.True(t, s.PointerDown(geom.Pt(30, 25)))
	assert.True(t, s.PointerMove(geom.Pt(35, 27)))
	assert.True(t, s.PointerMove(geom.Pt(40, 30)))
	s.PointerUp(geom.Pt(40, 30))

	assert.Equal(t, []geom.Point{{X: 20, Y: 15}, {X: 60, Y: 15}, {X: 60, Y: 45}, {X: 20, Y: 45}, {X: 20, Y: 15}}, rect.Geometry())
	assert.Equal(t, geom.Pt(20, 15), rect.BoundingBox().Min)

	assert.False(t, s.PointerMove(geom.Pt(90, 90)), "released pointer does not move")
	assert.Equal(t, geom.Pt(20, 15), rect.BoundingBox().Min)
}

func TestDragAnchorResizes(t *testing.T) {
	s := newTestSession()
	rect := drag(t, s, shape.KindRectangle, geom.Pt(10, 10), geom.Pt(50, 40))
	click(s, geom.Pt(30, 25))

	require.True(t, s.PointerDown(geom.Pt(50, 40)))
	idx, grabbed := rect.SelectedAnchor()
	require.True(t, grabbed)
	assert.Equal(t, 1, idx)

	s.PointerMove(geom.Pt(60, 50))
	s.PointerUp(geom.Pt(60, 50))

	box := rect.BoundingBox()
	assert.InDelta(t, 10, box.Min.X, 1e-9)
	assert.InDelta(t, 10, box.Min.Y, 1e-9)
	assert.InDelta(t, 60, box.Max.X, 1e-9)
	assert.InDelta(t, 50, box.Max.Y, 1e-9)
}

func TestDragAnchorPastMinimumIsRejected(t *testing.T) {
	s := newTestSession()
	rect := drag(t, s, shape.KindRectangle, geom.Pt(10, 10), geom.Pt(50, 40))
	click(s, geom.Pt(30, 25))
	before := rect.Geometry()

	require.True(t, s.PointerDown(geom.Pt(50, 40)))
	s.PointerMove(geom.Pt(12, 12))
	s.PointerUp(geom.Pt(12, 12))

	assert.Equal(t, before, rect.Geometry())
}

// Deleting removes the selected shape itself, not whatever happens to be
// last in the scene. Here a shape created while another stays selected
// sits on top of the selection.
func TestDeleteSelectedRemovesSelectedShapeNotLast(t *testing.T) {
	s := newTestSession()
	a := drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	b := drag(t, s, shape.KindRectangle, geom.Pt(200, 0), geom.Pt(300, 100))
	click(s, geom.Pt(50, 50))
	require.Same(t, a, s.Selected())

	// Pressing on the selection keeps it selected while the new shape starts there
	c := drag(t, s, shape.KindEllipse, geom.Pt(50, 50), geom.Pt(90, 90))
	require.Same(t, a, s.Selected())
	require.Equal(t, []*shape.Shape{b, a, c}, s.Scene().Shapes())

	assert.True(t, s.DeleteSelected())

	assert.Equal(t, []*shape.Shape{b, c}, s.Scene().Shapes())
	assert.Nil(t, s.Selected())
}

func TestDeleteWithoutSelectionIsNoop(t *testing.T) {
	s := newTestSession()
	drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))

	assert.False(t, s.DeleteSelected())
	assert.Equal(t, 1, s.Scene().Len())
}

func TestNamesAreNotReused(t *testing.T) {
	s := newTestSession()
	drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	click(s, geom.Pt(50, 50))
	require.True(t, s.DeleteSelected())

	ellipse := drag(t, s, shape.KindEllipse, geom.Pt(0, 0), geom.Pt(100, 100))
	assert.Equal(t, "Ellipse1", ellipse.Name)
	assert.Equal(t, "shape_2", ellipse.ID)
}

func TestStyleCommands(t *testing.T) {
	s := newTestSession()
	assert.False(t, s.SetSelectedFillColor("#FF0000"))
	assert.False(t, s.SetSelectedBorderColor("#FF0000"))
	assert.False(t, s.SetSelectedBorderStyle(shape.BorderDotted))
	assert.False(t, s.SetSelectedBorderWidth(4))

	rect := drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	click(s, geom.Pt(50, 50))

	assert.True(t, s.SetSelectedFillColor("#FF0000"))
	assert.True(t, s.SetSelectedBorderColor("#00FF00"))
	assert.True(t, s.SetSelectedBorderStyle(shape.BorderDotted))
	assert.True(t, s.SetSelectedBorderWidth(4))

	assert.Equal(t, shape.Style{
		FillColor:   "#FF0000",
		BorderColor: "#00FF00",
		BorderStyle: shape.BorderDotted,
		BorderWidth: 4,
	}, rect.Style())
}

func TestFillIgnoredForOpenShape(t *testing.T) {
	s := newTestSession()
	line := drag(t, s, shape.KindScribble, geom.Pt(0, 0), geom.Pt(100, 100))
	require.True(t, s.PointerDown(geom.Pt(100, 100)))
	s.PointerUp(geom.Pt(100, 100))
	require.Same(t, line, s.Selected())

	assert.False(t, s.SetSelectedFillColor("#FF0000"))
	assert.Equal(t, shape.NoFill, line.Style().FillColor)
	assert.True(t, s.SetSelectedBorderColor("#FF0000"))
}

func TestClear(t *testing.T) {
	s := newTestSession()
	drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	click(s, geom.Pt(50, 50))
	require.NoError(t, s.CreateShape(shape.KindPolygon))

	s.Clear()

	assert.Zero(t, s.Scene().Len())
	assert.Nil(t, s.Selected())
	assert.Equal(t, PhaseIdle, s.Phase())
}

type countingCanvas struct {
	clears  int
	strokes int
	fills   int
}

func (c *countingCanvas) SetStrokeColor(string)   {}
func (c *countingCanvas) SetFillColor(string)     {}
func (c *countingCanvas) SetLineWidth(float64)    {}
func (c *countingCanvas) SetDash(...float64)      {}
func (c *countingCanvas) BeginPath()              {}
func (c *countingCanvas) MoveTo(_, _ float64)     {}
func (c *countingCanvas) LineTo(_, _ float64)     {}
func (c *countingCanvas) Rect(_, _, _, _ float64) {}
func (c *countingCanvas) Fill()                   { c.fills++ }
func (c *countingCanvas) Stroke()                 { c.strokes++ }
func (c *countingCanvas) Clear()                  { c.clears++ }

func TestRenderDrawsEveryShape(t *testing.T) {
	s := newTestSession()
	drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	drag(t, s, shape.KindEllipse, geom.Pt(200, 0), geom.Pt(300, 100))

	canvas := &countingCanvas{}
	s.Render(canvas)

	assert.Equal(t, 1, canvas.clears)
	assert.Equal(t, 2, canvas.strokes)
	assert.Zero(t, canvas.fills)

	click(s, geom.Pt(50, 50))
	canvas = &countingCanvas{}
	s.Render(canvas)

	// two outlines and the selection box, plus two anchor handles
	assert.Equal(t, 3, canvas.strokes)
	assert.Equal(t, 2, canvas.fills)
}

func TestLoadSample(t *testing.T) {
	s := newTestSession()
	drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(10, 10))

	s.LoadSample()

	shapes := s.Scene().Shapes()
	require.Len(t, shapes, len(sampleShapes))
	for i, sh := range shapes {
		assert.Equal(t, sampleShapes[i].kind, sh.Kind())
		assert.Equal(t, sampleShapes[i].style, sh.Style())
		assert.Equal(t, sh.Kind() != shape.KindPolyline, sh.IsClosedGeometry(), sh.Name)
	}
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestLoggerRecordsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newTestSession(WithLogger(logger))

	drag(t, s, shape.KindRectangle, geom.Pt(0, 0), geom.Pt(100, 100))
	click(s, geom.Pt(50, 50))
	s.DeleteSelected()
	s.Clear()

	out := buf.String()
	assert.Contains(t, out, `msg="create shape"`)
	assert.Contains(t, out, `msg="finish construction"`)
	assert.Contains(t, out, `msg="delete shape"`)
	assert.Contains(t, out, `msg="clear scene"`)
	assert.Contains(t, out, "session=sess_test")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "awaitingNextVertex", PhaseAwaitingNextVertex.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}
