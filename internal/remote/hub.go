package remote

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/inamate/easypaint/internal/editor"
)

// Session guards one editor session. The read pump of its connection and
// export requests take turns through Do.
type Session struct {
	mu     sync.Mutex
	editor *editor.Session
}

func NewSession(ed *editor.Session) *Session {
	return &Session{editor: ed}
}

func (s *Session) ID() string {
	return s.editor.ID
}

// Do runs fn with exclusive access to the editor session.
func (s *Session) Do(fn func(ed *editor.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.editor)
}

// Hub keeps the registry of live sessions, one per connected client.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]*Client // sessionID -> client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Stop ends Run. Clients registering afterwards are turned away.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Register adds a client and reports whether the hub accepted it.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Lookup returns the live session with the given ID.
func (h *Hub) Lookup(sessionID string) (*Session, error) {
	h.mu.RLock()
	client, ok := h.clients[sessionID]
	h.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return client.session, nil
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client.SessionID] = client
	h.mu.Unlock()

	welcome, err := newMessage(TypeWelcome, WelcomePayload{
		SessionID: client.SessionID,
		ClientID:  client.ClientID,
	})
	if err != nil {
		slog.Error("marshal welcome", "error", err)
	} else {
		client.Send(welcome)
	}

	slog.Info("client joined", "session", client.SessionID, "client", client.ClientID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.SessionID]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client.SessionID)
	close(client.send)
	h.mu.Unlock()

	slog.Info("client left", "session", client.SessionID, "client", client.ClientID)
}
