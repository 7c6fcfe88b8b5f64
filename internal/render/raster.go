package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Raster paints onto a software-rendered gg context and encodes PNG images.
// The first paint error is kept and reported by Err and EncodePNG.
type Raster struct {
	pathBuilder

	dc         *gg.Context
	background string

	stroke string
	fill   string
	width  float64
	dash   []float64

	err error
}

// NewRaster creates a width×height raster cleared to background.
func NewRaster(width, height int, background string) *Raster {
	r := &Raster{
		dc:         gg.NewContext(width, height),
		background: background,
		width:      1,
	}
	r.Clear()
	return r
}

func (r *Raster) SetStrokeColor(color string) { r.stroke = color }
func (r *Raster) SetFillColor(color string)   { r.fill = color }
func (r *Raster) SetLineWidth(width float64)  { r.width = width }
func (r *Raster) SetDash(pattern ...float64)  { r.dash = pattern }

// Clear paints the whole image with the background color.
func (r *Raster) Clear() {
	r.dc.ClearWithColor(gg.Hex(r.background))
	r.BeginPath()
}

func (r *Raster) Fill() {
	r.dc.ClearPath()
	r.replay(r.dc)
	r.dc.SetHexColor(r.fill)
	r.keep(r.dc.Fill())
}

func (r *Raster) Stroke() {
	r.dc.ClearPath()
	r.replay(r.dc)
	r.dc.SetHexColor(r.stroke)
	r.dc.SetLineWidth(r.width)
	r.dc.SetDash(r.dash...)
	r.keep(r.dc.Stroke())
}

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("raster paint: %w", err)
	}
}

// Err returns the first paint error.
func (r *Raster) Err() error {
	return r.err
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	r.keep(r.dc.FlushGPU())
	return r.dc.Image()
}

// EncodePNG writes the image as PNG, or the first paint error.
func (r *Raster) EncodePNG(w io.Writer) error {
	r.keep(r.dc.FlushGPU())
	if r.err != nil {
		return r.err
	}
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Close releases the gg context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
