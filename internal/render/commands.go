package render

import (
	"encoding/json"
	"slices"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op          string        `json:"op"`                    // Operation: "clear", "fill", "stroke"
	Path        []PathCommand `json:"path,omitempty"`        // Path data for paint ops
	Fill        string        `json:"fill,omitempty"`        // Fill color
	Stroke      string        `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // Stroke width
	Dash        []float64     `json:"dash,omitempty"`        // Dash/gap lengths, empty for solid
}

// CommandBuffer is a Surface and Canvas that records draw commands instead
// of painting. Each paint op captures the current path and style.
type CommandBuffer struct {
	pathBuilder

	stroke string
	fill   string
	width  float64
	dash   []float64

	commands []DrawCommand
}

// NewCommandBuffer creates an empty buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{width: 1}
}

func (b *CommandBuffer) SetStrokeColor(color string) { b.stroke = color }
func (b *CommandBuffer) SetFillColor(color string)   { b.fill = color }
func (b *CommandBuffer) SetLineWidth(width float64)  { b.width = width }

func (b *CommandBuffer) SetDash(pattern ...float64) {
	b.dash = slices.Clone(pattern)
}

// Clear drops everything recorded so far and emits a "clear" op.
func (b *CommandBuffer) Clear() {
	b.commands = []DrawCommand{{Op: "clear"}}
	b.BeginPath()
}

func (b *CommandBuffer) Fill() {
	b.commands = append(b.commands, DrawCommand{
		Op:   "fill",
		Path: b.snapshot(),
		Fill: b.fill,
	})
}

func (b *CommandBuffer) Stroke() {
	b.commands = append(b.commands, DrawCommand{
		Op:          "stroke",
		Path:        b.snapshot(),
		Stroke:      b.stroke,
		StrokeWidth: b.width,
		Dash:        slices.Clone(b.dash),
	})
}

// Commands returns the recorded commands in painter's order.
func (b *CommandBuffer) Commands() []DrawCommand {
	return b.commands
}

// JSON serializes the recorded commands.
func (b *CommandBuffer) JSON() (string, error) {
	return CommandsToJSON(b.commands)
}

// CommandsToJSON serializes draw commands to JSON.
func CommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		commands = []DrawCommand{}
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
