package remote

import (
	"encoding/json"
	"fmt"

	"github.com/inamate/easypaint/internal/editor"
	"github.com/inamate/easypaint/internal/geom"
	"github.com/inamate/easypaint/internal/render"
	"github.com/inamate/easypaint/internal/shape"
)

// outcome says which server messages a command calls for.
type outcome struct {
	redraw    bool
	selection bool
}

// Dispatch applies one client message to the editor session and returns the
// replies to send back. Host input is validated here so the editor only ever
// sees well-formed styles.
func Dispatch(ed *editor.Session, msg *Message) ([]*Message, error) {
	out, err := apply(ed, msg)
	if err != nil {
		return nil, err
	}

	var replies []*Message
	if out.redraw {
		reply, err := RenderMessage(ed)
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	if out.selection {
		reply, err := SelectionMessage(ed)
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, nil
}

func apply(ed *editor.Session, msg *Message) (outcome, error) {
	switch msg.Type {
	case TypeShapeCreate:
		var p CreateShapePayload
		if err := decode(msg, &p); err != nil {
			return outcome{}, err
		}
		kind, err := shape.ParseKind(p.Kind)
		if err != nil {
			return outcome{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		return outcome{}, ed.CreateShape(kind)

	case TypeShapeCancel:
		ed.CancelConstruction()
		return outcome{}, nil

	case TypePointerDown:
		p, err := decodePoint(msg)
		if err != nil {
			return outcome{}, err
		}
		return outcome{redraw: ed.PointerDown(p), selection: true}, nil

	case TypePointerMove:
		p, err := decodePoint(msg)
		if err != nil {
			return outcome{}, err
		}
		return outcome{redraw: ed.PointerMove(p)}, nil

	case TypePointerUp:
		p, err := decodePoint(msg)
		if err != nil {
			return outcome{}, err
		}
		ed.PointerUp(p)
		return outcome{}, nil

	case TypePointerDoubleClick:
		p, err := decodePoint(msg)
		if err != nil {
			return outcome{}, err
		}
		return outcome{redraw: ed.DoubleClick(p)}, nil

	case TypeShapeDelete:
		changed := ed.DeleteSelected()
		return outcome{redraw: changed, selection: changed}, nil

	case TypeSceneClear:
		ed.Clear()
		return outcome{redraw: true, selection: true}, nil

	case TypeStyleFill, TypeStyleBorder:
		var p ColorPayload
		if err := decode(msg, &p); err != nil {
			return outcome{}, err
		}
		if err := shape.ValidateColor(p.Color); err != nil {
			return outcome{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		var changed bool
		if msg.Type == TypeStyleFill {
			changed = ed.SetSelectedFillColor(p.Color)
		} else {
			changed = ed.SetSelectedBorderColor(p.Color)
		}
		return outcome{redraw: changed, selection: changed}, nil

	case TypeStyleBorderStyle:
		var p BorderStylePayload
		if err := decode(msg, &p); err != nil {
			return outcome{}, err
		}
		style, err := shape.ParseBorderStyle(p.Style)
		if err != nil {
			return outcome{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		changed := ed.SetSelectedBorderStyle(style)
		return outcome{redraw: changed, selection: changed}, nil

	case TypeStyleBorderWidth:
		var p BorderWidthPayload
		if err := decode(msg, &p); err != nil {
			return outcome{}, err
		}
		if err := shape.ValidateBorderWidth(p.Width); err != nil {
			return outcome{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		changed := ed.SetSelectedBorderWidth(p.Width)
		return outcome{redraw: changed, selection: changed}, nil

	case TypeRender:
		return outcome{redraw: true}, nil

	default:
		return outcome{}, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
}

func decode(msg *Message, v interface{}) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%w: %s: missing payload", ErrInvalidPayload, msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPayload, msg.Type, err)
	}
	return nil
}

func decodePoint(msg *Message) (geom.Point, error) {
	var p PointerPayload
	if err := decode(msg, &p); err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(p.X, p.Y), nil
}

// RenderMessage draws the session into a command buffer.
func RenderMessage(ed *editor.Session) (*Message, error) {
	buf := render.NewCommandBuffer()
	ed.Render(buf)
	return newMessage(TypeRender, RenderPayload{
		Commands: buf.Commands(),
		Phase:    ed.Phase().String(),
	})
}

// SelectionMessage reports the current selection for picker sync.
func SelectionMessage(ed *editor.Session) (*Message, error) {
	var payload SelectionPayload
	if sel := ed.Selected(); sel != nil {
		style := sel.Style()
		payload = SelectionPayload{ID: sel.ID, Name: sel.Name, Style: &style}
	}
	return newMessage(TypeSelection, payload)
}
