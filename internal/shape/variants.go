package shape

import (
	"math"

	"github.com/inamate/easypaint/internal/geom"
)

// EllipseSamples is the number of points sampled around an ellipse before
// the closing point is appended.
const EllipseSamples = 60

// geometryBuilder turns one construction update into the next geometry.
// a is the pointer-down point of the gesture, b the current pointer.
type geometryBuilder func(current []geom.Point, a, b geom.Point, kind UpdateKind) []geom.Point

var builders = map[Kind]geometryBuilder{
	KindScribble:  buildScribble,
	KindPolyline:  buildPolyline,
	KindPolygon:   buildPolygon,
	KindRectangle: buildRectangle,
	KindEllipse:   buildEllipse,
}

// buildScribble leaves a trail: every update after the first appends.
func buildScribble(current []geom.Point, a, b geom.Point, kind UpdateKind) []geom.Point {
	if kind == UpdateInitial || len(current) == 0 {
		return []geom.Point{a}
	}
	return append(current, b)
}

// buildPolyline keeps the last point provisional while dragging and fixes
// a new one on each step. A finalize on the last point adds nothing.
func buildPolyline(current []geom.Point, a, b geom.Point, kind UpdateKind) []geom.Point {
	if kind == UpdateInitial || len(current) == 0 {
		return []geom.Point{a, b}
	}
	if kind == UpdateDrag {
		current[len(current)-1] = b
		return current
	}
	if kind == UpdateFinalize && current[len(current)-1] == b {
		return current
	}
	return append(current, b)
}

// buildPolygon is a polyline that closes itself on finalize. The finalize
// point is skipped when it repeats the last or the first vertex.
func buildPolygon(current []geom.Point, a, b geom.Point, kind UpdateKind) []geom.Point {
	if kind != UpdateFinalize {
		return buildPolyline(current, a, b, kind)
	}
	if len(current) == 0 {
		current = []geom.Point{a}
	}

	first := current[0]
	if n := len(current); n > 1 && current[n-1] == first {
		current = current[:n-1]
	}
	if b != first && b != current[len(current)-1] {
		current = append(current, b)
	}
	return append(current, first)
}

// buildRectangle recomputes the closed axis-aligned rectangle spanned by a and b.
func buildRectangle(_ []geom.Point, a, b geom.Point, _ UpdateKind) []geom.Point {
	return []geom.Point{
		{X: a.X, Y: a.Y},
		{X: b.X, Y: a.Y},
		{X: b.X, Y: b.Y},
		{X: a.X, Y: b.Y},
		{X: a.X, Y: a.Y},
	}
}

// buildEllipse samples the ellipse inscribed in the box spanned by a and b.
func buildEllipse(_ []geom.Point, a, b geom.Point, _ UpdateKind) []geom.Point {
	cx := (a.X + b.X) / 2
	cy := (a.Y + b.Y) / 2
	rx := math.Abs(cx - a.X)
	ry := math.Abs(cy - a.Y)

	step := 2 * math.Pi / EllipseSamples
	result := make([]geom.Point, 0, EllipseSamples+1)
	for i := 0; i < EllipseSamples; i++ {
		angle := float64(i) * step
		result = append(result, geom.Point{
			X: cx + math.Cos(angle)*rx,
			Y: cy + math.Sin(angle)*ry,
		})
	}

	return append(result, result[0])
}
