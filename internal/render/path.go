package render

import (
	"math"

	"github.com/gogpu/gg"
)

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["Z"].
type PathCommand []interface{}

// pathBuilder records the current path so backends that consume the path on
// paint can replay it for a fill followed by a stroke.
type pathBuilder struct {
	commands []PathCommand
}

func (p *pathBuilder) BeginPath() {
	p.commands = nil
}

func (p *pathBuilder) MoveTo(x, y float64) {
	p.commands = append(p.commands, PathCommand{"M", x, y})
}

func (p *pathBuilder) LineTo(x, y float64) {
	p.commands = append(p.commands, PathCommand{"L", x, y})
}

func (p *pathBuilder) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.commands = append(p.commands, PathCommand{"Z"})
}

// snapshot returns a copy safe to keep after the path changes.
func (p *pathBuilder) snapshot() []PathCommand {
	out := make([]PathCommand, len(p.commands))
	copy(out, p.commands)
	return out
}

// pathSink is the subset of a drawing backend a recorded path replays onto.
type pathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func (p *pathBuilder) replay(sink pathSink) {
	for _, cmd := range p.commands {
		switch cmd[0] {
		case "M":
			sink.MoveTo(cmd[1].(float64), cmd[2].(float64))
		case "L":
			sink.LineTo(cmd[1].(float64), cmd[2].(float64))
		case "Z":
			sink.ClosePath()
		}
	}
}

// rgb255 parses a hex color into 8-bit channels.
func rgb255(hex string) (r, g, b int) {
	c := gg.Hex(hex)
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
