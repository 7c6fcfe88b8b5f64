package geom

import "math"

const (
	// LineTolerance is the maximum perpendicular distance from a segment's
	// line that still counts as touching an open path.
	LineTolerance = 5.0

	// BoxTolerance expands each segment's axis-aligned box on every side.
	BoxTolerance = 4.0
)

// Point is a position on the canvas. Origin is top-left, Y grows down.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// BoundingBox is the axis-aligned extent of a point sequence.
// It is always derived from points and never edited directly.
type BoundingBox struct {
	Min    Point
	Max    Point
	Center Point
	Width  float64
	Height float64
}

// Corners returns the two anchor corners of the box: Min first, then Max.
func (b BoundingBox) Corners() [2]Point {
	return [2]Point{b.Min, b.Max}
}

// ComputeBoundingBox computes the bounding box of points in a single pass.
// The center is Max minus half the size, which the anchor resize math
// relies on. An empty input yields the zero box.
func ComputeBoundingBox(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY

	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := math.Abs(maxX - minX)
	height := math.Abs(maxY - minY)

	return BoundingBox{
		Min:    Point{X: minX, Y: minY},
		Max:    Point{X: maxX, Y: maxY},
		Center: Point{X: maxX - width/2, Y: maxY - height/2},
		Width:  width,
		Height: height,
	}
}

// HitTestOpenPath reports whether p touches any segment of an open path.
// A segment is touched when p lies within LineTolerance of the segment's
// line and inside the segment's box grown by BoxTolerance.
// Zero-length segments are skipped.
func HitTestOpenPath(points []Point, p Point) bool {
	for i := 0; i+1 < len(points); i++ {
		p1, p2 := points[i], points[i+1]

		dx := p2.X - p1.X
		dy := p2.Y - p1.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}

		distance := math.Abs(dy*p.X-dx*p.Y+p2.X*p1.Y-p2.Y*p1.X) / length
		if distance >= LineTolerance {
			continue
		}

		if p.X >= math.Min(p1.X, p2.X)-BoxTolerance &&
			p.X <= math.Max(p1.X, p2.X)+BoxTolerance &&
			p.Y >= math.Min(p1.Y, p2.Y)-BoxTolerance &&
			p.Y <= math.Max(p1.Y, p2.Y)+BoxTolerance {
			return true
		}
	}
	return false
}

// HitTestClosedPath reports whether p is inside a closed path using
// crossing parity of a horizontal ray. The closing edge must already be
// present in points (last point equal to the first).
func HitTestClosedPath(points []Point, p Point) bool {
	inside := false
	for i, j := 0, len(points)-1; i < len(points); j, i = i, i+1 {
		pi, pj := points[i], points[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// HitTestAnchor reports whether p is inside the square of side 2*radius
// centered on anchor.
func HitTestAnchor(anchor, p Point, radius float64) bool {
	return p.X >= anchor.X-radius && p.X <= anchor.X+radius &&
		p.Y >= anchor.Y-radius && p.Y <= anchor.Y+radius
}
