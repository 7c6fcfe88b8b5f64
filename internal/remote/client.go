package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"

	"github.com/inamate/easypaint/internal/editor"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
)

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	session   *Session
	SessionID string
	ClientID  string
}

func NewClient(hub *Hub, conn *websocket.Conn, session *Session, clientID string) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		session:   session,
		SessionID: session.ID(),
		ClientID:  clientID,
	}
}

func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "session", c.SessionID)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "session", c.SessionID)
			c.sendError(err)
			continue
		}

		msg.SessionID = c.SessionID
		msg.ClientID = c.ClientID

		c.handleMessage(&msg)
	}
}

func (c *Client) handleMessage(msg *Message) {
	var replies []*Message
	err := c.session.Do(func(ed *editor.Session) error {
		var err error
		replies, err = Dispatch(ed, msg)
		return err
	})
	if err != nil {
		slog.Debug("rejected message", "type", msg.Type, "error", err, "session", c.SessionID)
		c.sendError(err)
		return
	}

	for _, reply := range replies {
		c.Send(reply)
	}
}

func (c *Client) sendError(err error) {
	msg, merr := newMessage(TypeError, ErrorPayload{Message: err.Error()})
	if merr != nil {
		slog.Error("marshal error message", "error", merr)
		return
	}
	c.Send(msg)
}

func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Debug("write error", "error", err, "session", c.SessionID)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) Send(msg *Message) {
	msg.SessionID = c.SessionID
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	select {
	case c.send <- data:
	default:
		slog.Warn("client send buffer full, dropping message", "session", c.SessionID)
	}
}
