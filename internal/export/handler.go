package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/inamate/easypaint/internal/editor"
	"github.com/inamate/easypaint/internal/remote"
	"github.com/inamate/easypaint/internal/render"
)

// SessionStore finds live editor sessions by ID.
type SessionStore interface {
	Lookup(sessionID string) (*remote.Session, error)
}

type Options struct {
	Width      int
	Height     int
	Background string
	// Filename is the download base name, without extension.
	Filename string
}

type Handler struct {
	sessions SessionStore
	opts     Options
}

func NewHandler(sessions SessionStore, opts Options) *Handler {
	return &Handler{sessions: sessions, opts: opts}
}

// ExportPNG renders the session named by the sessionId route variable to a
// PNG download.
func (h *Handler) ExportPNG(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "png", "image/png", func(ed *editor.Session, buf *bytes.Buffer) error {
		raster := render.NewRaster(h.opts.Width, h.opts.Height, h.opts.Background)
		defer raster.Close()

		ed.Render(raster)
		return raster.EncodePNG(buf)
	})
}

// ExportPDF renders the session to a single-page PDF download.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "pdf", "application/pdf", func(ed *editor.Session, buf *bytes.Buffer) error {
		doc := render.NewPDF(float64(h.opts.Width), float64(h.opts.Height), h.opts.Background)
		ed.Render(doc)
		return doc.Output(buf)
	})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, ext, contentType string, encode func(*editor.Session, *bytes.Buffer) error) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.sessions.Lookup(sessionID)
	if errors.Is(err, remote.ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("lookup session", "session", sessionID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = session.Do(func(ed *editor.Session) error {
		return encode(ed, &buf)
	})
	if err != nil {
		slog.Error("export failed", "format", ext, "session", sessionID, "error", err)
		http.Error(w, fmt.Sprintf("encoding failed: %v", err), http.StatusInternalServerError)
		return
	}

	name := sanitize(r.URL.Query().Get("name"))
	if name == "" {
		name = h.opts.Filename
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, ext))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())

	slog.Info("export complete", "format", ext, "session", sessionID, "size", buf.Len())
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
}
