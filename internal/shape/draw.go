package shape

// Surface is the drawing target a shape paints itself onto. Colors are
// hex strings such as "#FF0000". The path built between BeginPath and the
// paint calls survives Fill so that it can be stroked afterwards.
type Surface interface {
	SetStrokeColor(color string)
	SetFillColor(color string)
	SetLineWidth(width float64)
	// SetDash sets alternating dash and gap lengths; no arguments means solid.
	SetDash(pattern ...float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(x, y, w, h float64)

	Fill()
	Stroke()
}

// Draw paints the shape, then its bounding box and anchors when selected.
func (s *Shape) Draw(surface Surface) {
	if len(s.geometry) == 0 {
		return
	}

	stroke := s.style.BorderColor
	if s.selected {
		stroke = SelectionColor
	}

	surface.SetStrokeColor(stroke)
	surface.SetLineWidth(float64(s.style.BorderWidth))
	surface.SetFillColor(s.style.FillColor)
	surface.SetDash(s.style.DashPattern()...)

	surface.BeginPath()
	surface.MoveTo(s.geometry[0].X, s.geometry[0].Y)
	for _, p := range s.geometry[1:] {
		surface.LineTo(p.X, p.Y)
	}

	if s.style.Filled() {
		surface.Fill()
	}
	surface.Stroke()

	if s.selected {
		s.drawBoundingBox(surface)
		s.drawAnchors(surface)
	}
}

func (s *Shape) drawBoundingBox(surface Surface) {
	surface.SetDash(4, 2)
	surface.SetLineWidth(1)
	surface.SetStrokeColor(GuideColor)

	surface.BeginPath()
	surface.Rect(s.box.Min.X, s.box.Min.Y, s.box.Width, s.box.Height)
	surface.Stroke()
}

func (s *Shape) drawAnchors(surface Surface) {
	surface.SetFillColor(GuideColor)

	for i, a := range s.anchors {
		size := AnchorSize
		if i == s.selectedAnchor {
			size *= GrabbedAnchorScale
		}

		surface.BeginPath()
		surface.Rect(a.X-size/2, a.Y-size/2, size, size)
		surface.Fill()
	}
}
