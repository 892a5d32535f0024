package rest

import (
	"context"
	"net/http"

	"github.com/arthurdotwork/chatroom/internal/domain"
	"github.com/gin-gonic/gin"
)

type UserService interface {
	CreateUser(ctx context.Context, username string) (domain.User, error)
	Users(ctx context.Context) []domain.User
	User(ctx context.Context, id string) (domain.User, error)
	UpdateStatus(ctx context.Context, id string, isOnline bool) (domain.User, error)
}

type MessageService interface {
	SendDirectMessage(ctx context.Context, senderID string, receiverID string, content string) (domain.Message, error)
	DirectMessages(ctx context.Context, userID1 string, userID2 string) []domain.Message
	UserMessages(ctx context.Context, userID string) []domain.Message
}

type RoomService interface {
	CreateRoom(ctx context.Context, name string, creatorID string) (domain.Room, error)
	Rooms(ctx context.Context) []domain.Room
	Room(ctx context.Context, id string) (domain.Room, error)
	JoinRoom(ctx context.Context, roomID string, userID string) error
	SendRoomMessage(ctx context.Context, roomID string, senderID string, content string) (domain.Message, error)
	RoomMessages(ctx context.Context, roomID string) ([]domain.Message, error)
}

type Server struct {
	users    UserService
	messages MessageService
	rooms    RoomService
}

func NewServer(users UserService, messages MessageService, rooms RoomService) *Server {
	return &Server{users: users, messages: messages, rooms: rooms}
}

// Router builds the HTTP surface. The websocket handler is mounted on
// /ws when provided.
func (s *Server) Router(allowedOrigins []string, ws gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(allowedOrigins))

	r.GET("/", s.index)
	r.GET("/health", s.health)

	if ws != nil {
		r.GET("/ws", ws)
	}

	api := r.Group("/api")
	{
		api.POST("/users", s.createUser)
		api.GET("/users", s.listUsers)
		api.GET("/users/:id", s.getUser)
		api.PATCH("/users/:id/status", s.updateStatus)

		api.POST("/messages/direct", s.sendDirectMessage)
		api.GET("/messages/direct/:userId1/:userId2", s.directMessages)
		api.GET("/messages/user/:userId", s.userMessages)

		api.POST("/rooms", s.createRoom)
		api.GET("/rooms", s.listRooms)
		api.GET("/rooms/:id", s.getRoom)
		api.POST("/rooms/:id/join", s.joinRoom)
		api.POST("/rooms/:id/messages", s.sendRoomMessage)
		api.GET("/rooms/:id/messages", s.roomMessages)
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Simple Chatroom Server API",
		"endpoints": gin.H{
			"users": gin.H{
				"POST /api/users":             "Create user",
				"GET /api/users":              "Get all users",
				"GET /api/users/:id":          "Get user by ID",
				"PATCH /api/users/:id/status": "Update user status",
			},
			"messages": gin.H{
				"POST /api/messages/direct":                  "Send direct message",
				"GET /api/messages/direct/:userId1/:userId2": "Get messages between users",
				"GET /api/messages/user/:userId":             "Get all messages for user",
			},
			"rooms": gin.H{
				"POST /api/rooms":              "Create room",
				"GET /api/rooms":               "Get all rooms",
				"GET /api/rooms/:id":           "Get room by ID",
				"POST /api/rooms/:id/join":     "Join room",
				"POST /api/rooms/:id/messages": "Send message to room",
				"GET /api/rooms/:id/messages":  "Get room messages",
			},
		},
	})
}
