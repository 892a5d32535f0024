package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arthurdotwork/chatroom/internal/domain"
	"github.com/gorilla/websocket"
)

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// client wraps a websocket connection. It implements domain.Messenger so
// the fan-out layer can push events to it without knowing about websockets.
type client struct {
	conn    *websocket.Conn
	gateway Gateway
	cfg     Config

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	session *domain.Session
}

func newClient(conn *websocket.Conn, gateway Gateway, cfg Config) *client {
	return &client{
		conn:    conn,
		gateway: gateway,
		cfg:     cfg,
		send:    make(chan []byte, cfg.SendBuffer),
		done:    make(chan struct{}),
	}
}

// Send queues an event for delivery. It never blocks; events for a slow or
// closed connection are dropped.
func (c *client) Send(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(envelope{Event: event.Name, Data: mustMarshal(event.Payload)})
	if err != nil {
		return fmt.Errorf("client.Send: %w", err)
	}

	select {
	case <-c.done:
		return fmt.Errorf("client.Send: connection closed")
	default:
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return fmt.Errorf("client.Send: send buffer full")
	}
}

func (c *client) Close(ctx context.Context) error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

func (c *client) readPump(ctx context.Context) {
	defer func() {
		_ = c.Close(ctx)
		c.gateway.Disconnect(ctx, c.session)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongTimeout))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.DebugContext(ctx, "unexpected close", slog.String("error", err.Error()))
			}
			return
		}

		c.dispatch(ctx, raw)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *client) dispatch(ctx context.Context, raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		slog.DebugContext(ctx, "malformed frame", slog.String("error", err.Error()))
		return
	}

	switch env.Event {
	case "userJoin":
		var data struct {
			UserID   string `json:"userId"`
			Username string `json:"username"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil || data.UserID == "" {
			slog.DebugContext(ctx, "malformed userJoin frame")
			return
		}
		c.session = c.gateway.Join(ctx, data.UserID, data.Username, c)

	case "joinRoom":
		var data struct {
			RoomID string `json:"roomId"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		c.gateway.JoinRoom(ctx, c.session, data.RoomID)

	case "leaveRoom":
		var data struct {
			RoomID string `json:"roomId"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		c.gateway.LeaveRoom(ctx, c.session, data.RoomID)

	case "typing":
		var data struct {
			RoomID     string `json:"roomId"`
			ReceiverID string `json:"receiverId"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		c.gateway.Typing(ctx, c.session, data.RoomID, data.ReceiverID)

	case "stopTyping":
		var data struct {
			RoomID     string `json:"roomId"`
			ReceiverID string `json:"receiverId"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return
		}
		c.gateway.StopTyping(ctx, c.session, data.RoomID, data.ReceiverID)

	default:
		slog.DebugContext(ctx, "unknown event", slog.String("event", env.Event))
	}
}

func mustMarshal(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return raw
}
