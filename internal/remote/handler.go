package remote

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/inamate/easypaint/internal/editor"
	"github.com/inamate/easypaint/internal/typeid"
)

type HandlerOptions struct {
	// OriginPatterns are host patterns accepted for cross-origin upgrades,
	// e.g. "localhost:5173".
	OriginPatterns []string

	// SampleScene seeds every new session with the demo drawing.
	SampleScene bool

	// Logger receives editor debug records. Nil discards them.
	Logger *slog.Logger
}

// Handler upgrades requests to websocket connections, each driving its own
// editor session.
type Handler struct {
	hub  *Hub
	opts HandlerOptions
}

func NewHandler(hub *Hub, opts HandlerOptions) *Handler {
	return &Handler{hub: hub, opts: opts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.opts.OriginPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	var edOpts []editor.Option
	if h.opts.Logger != nil {
		edOpts = append(edOpts, editor.WithLogger(h.opts.Logger))
	}
	ed := editor.NewSession(typeid.NewSessionID(), edOpts...)
	if h.opts.SampleScene {
		ed.LoadSample()
	}

	client := NewClient(h.hub, conn, NewSession(ed), uuid.New().String())
	if !h.hub.Register(client) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
