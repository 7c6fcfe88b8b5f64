package editor

import (
	"github.com/inamate/easypaint/internal/geom"
	"github.com/inamate/easypaint/internal/shape"
)

type sampleShape struct {
	kind   shape.Kind
	points []geom.Point
	style  shape.Style
}

var sampleShapes = []sampleShape{
	{
		kind:   shape.KindRectangle,
		points: []geom.Point{{X: 80, Y: 80}, {X: 320, Y: 240}},
		style: shape.Style{
			FillColor: "#E94560", BorderColor: "#1A1A2E",
			BorderStyle: shape.BorderSolid, BorderWidth: 3,
		},
	},
	{
		kind:   shape.KindEllipse,
		points: []geom.Point{{X: 400, Y: 120}, {X: 600, Y: 260}},
		style: shape.Style{
			FillColor: "#0F3460", BorderColor: "#000000",
			BorderStyle: shape.BorderDashed, BorderWidth: 2,
		},
	},
	{
		kind:   shape.KindPolygon,
		points: []geom.Point{{X: 700, Y: 260}, {X: 780, Y: 100}, {X: 860, Y: 260}},
		style: shape.Style{
			FillColor: "#16C79A", BorderColor: "#000000",
			BorderStyle: shape.BorderSolid, BorderWidth: 1,
		},
	},
	{
		kind:   shape.KindPolyline,
		points: []geom.Point{{X: 100, Y: 400}, {X: 220, Y: 340}, {X: 340, Y: 420}, {X: 460, Y: 350}},
		style: shape.Style{
			FillColor: shape.NoFill, BorderColor: "#533483",
			BorderStyle: shape.BorderDotted, BorderWidth: 4,
		},
	},
}

// LoadSample replaces the scene with a small demo drawing, one shape per
// variant except scribble. Shapes are built through the same construction
// updates a pointer gesture would produce.
func (s *Session) LoadSample() {
	s.Clear()

	for _, sample := range sampleShapes {
		first, last := sample.points[0], sample.points[len(sample.points)-1]

		sh, err := s.newShape(sample.kind, first)
		if err != nil {
			s.logger.Warn("load sample shape", "kind", sample.kind, "error", err)
			continue
		}

		switch {
		case sample.kind.MultiStep():
			sh.UpdateGeometry(first, sample.points[1], shape.UpdateDrag)
			for _, p := range sample.points[2 : len(sample.points)-1] {
				sh.UpdateGeometry(first, p, shape.UpdateStep)
			}
			sh.UpdateGeometry(first, last, shape.UpdateFinalize)
		default:
			sh.UpdateGeometry(first, last, shape.UpdateDrag)
		}

		sh.SetFillColor(sample.style.FillColor)
		sh.SetBorderColor(sample.style.BorderColor)
		sh.SetBorderStyle(sample.style.BorderStyle)
		sh.SetBorderWidth(sample.style.BorderWidth)
		s.scene.Append(sh)
	}
}
