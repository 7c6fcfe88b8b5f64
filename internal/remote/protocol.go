package remote

import (
	"encoding/json"
	"errors"

	"github.com/inamate/easypaint/internal/render"
	"github.com/inamate/easypaint/internal/shape"
)

var (
	ErrUnknownMessage  = errors.New("unknown message type")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrSessionNotFound = errors.New("session not found")
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Construction
	TypeShapeCreate = "shape.create"
	TypeShapeCancel = "shape.cancel"

	// Pointer input
	TypePointerDown        = "pointer.down"
	TypePointerMove        = "pointer.move"
	TypePointerUp          = "pointer.up"
	TypePointerDoubleClick = "pointer.dblclick"

	// Scene commands
	TypeShapeDelete = "shape.delete"
	TypeSceneClear  = "scene.clear"

	// Style of the selection
	TypeStyleFill        = "style.fill"
	TypeStyleBorder      = "style.border"
	TypeStyleBorderStyle = "style.borderStyle"
	TypeStyleBorderWidth = "style.borderWidth"

	// Server → client
	TypeWelcome   = "welcome"
	TypeRender    = "render"
	TypeSelection = "selection"
	TypeError     = "error"
)

type CreateShapePayload struct {
	Kind string `json:"kind"`
}

type PointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ColorPayload struct {
	Color string `json:"color"`
}

type BorderStylePayload struct {
	Style string `json:"style"`
}

type BorderWidthPayload struct {
	Width int `json:"width"`
}

type WelcomePayload struct {
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
}

// RenderPayload carries a full redraw of the scene.
type RenderPayload struct {
	Commands []render.DrawCommand `json:"commands"`
	Phase    string               `json:"phase"`
}

// SelectionPayload carries the selected shape's style, or null when nothing
// is selected.
type SelectionPayload struct {
	ID    string       `json:"id,omitempty"`
	Name  string       `json:"name,omitempty"`
	Style *shape.Style `json:"style"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newMessage(msgType string, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: msgType, Payload: data}, nil
}
