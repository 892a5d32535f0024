// Package ws upgrades HTTP requests to websocket connections and bridges
// them to the live session layer. Each connection runs a read loop on the
// request goroutine and a write loop on its own.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/arthurdotwork/chatroom/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Gateway interface {
	Join(ctx context.Context, userID string, username string, messenger domain.Messenger) *domain.Session
	Disconnect(ctx context.Context, session *domain.Session)
	JoinRoom(ctx context.Context, session *domain.Session, roomID string)
	LeaveRoom(ctx context.Context, session *domain.Session, roomID string)
	Typing(ctx context.Context, session *domain.Session, roomID string, receiverID string)
	StopTyping(ctx context.Context, session *domain.Session, roomID string, receiverID string)
}

type Config struct {
	MaxMessageSize int64
	SendBuffer     int
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration
}

type Handler struct {
	gateway  Gateway
	upgrader websocket.Upgrader
	cfg      Config
}

func NewHandler(gateway Gateway, cfg Config) *Handler {
	return &Handler{
		gateway: gateway,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		cfg: cfg,
	}
}

func (h *Handler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "error upgrading connection", slog.String("error", err.Error()))
		return
	}

	client := newClient(conn, h.gateway, h.cfg)

	go client.writePump()
	client.readPump(c.Request.Context())
}
