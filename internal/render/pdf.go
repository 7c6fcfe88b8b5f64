package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDF paints onto a single-page vector document sized to the canvas, one
// point per canvas unit.
type PDF struct {
	pathBuilder

	doc        *gofpdf.Fpdf
	width      float64
	height     float64
	background string
}

// NewPDF creates a width×height page cleared to background.
func NewPDF(width, height float64, background string) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetLineCapStyle("butt")
	doc.SetLineJoinStyle("miter")
	doc.AddPage()

	p := &PDF{
		doc:        doc,
		width:      width,
		height:     height,
		background: background,
	}
	p.Clear()
	return p
}

func (p *PDF) SetStrokeColor(color string) {
	r, g, b := rgb255(color)
	p.doc.SetDrawColor(r, g, b)
}

func (p *PDF) SetFillColor(color string) {
	r, g, b := rgb255(color)
	p.doc.SetFillColor(r, g, b)
}

func (p *PDF) SetLineWidth(width float64) {
	p.doc.SetLineWidth(width)
}

func (p *PDF) SetDash(pattern ...float64) {
	p.doc.SetDashPattern(pattern, 0)
}

// Clear covers the page with the background color.
func (p *PDF) Clear() {
	r, g, b := rgb255(p.background)
	p.doc.SetFillColor(r, g, b)
	p.doc.Rect(0, 0, p.width, p.height, "F")
	p.BeginPath()
}

func (p *PDF) Fill() {
	p.replay(p.doc)
	p.doc.DrawPath("F")
}

func (p *PDF) Stroke() {
	p.replay(p.doc)
	p.doc.DrawPath("D")
}

// Err returns the document's first error.
func (p *PDF) Err() error {
	return p.doc.Error()
}

// Output writes the finished document and closes it.
func (p *PDF) Output(w io.Writer) error {
	if err := p.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
