package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createRoomRequest struct {
	Name      string `json:"name"`
	CreatorID string `json:"creatorId"`
}

func (s *Server) createRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	room, err := s.rooms.CreateRoom(c.Request.Context(), req.Name, req.CreatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Room created successfully",
		"room":    room,
	})
}

func (s *Server) listRooms(c *gin.Context) {
	c.JSON(http.StatusOK, s.rooms.Rooms(c.Request.Context()))
}

func (s *Server) getRoom(c *gin.Context) {
	room, err := s.rooms.Room(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

type joinRoomRequest struct {
	UserID string `json:"userId"`
}

func (s *Server) joinRoom(c *gin.Context) {
	var req joinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := s.rooms.JoinRoom(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined room"})
}

type sendRoomMessageRequest struct {
	SenderID string `json:"senderId"`
	Content  string `json:"content"`
}

func (s *Server) sendRoomMessage(c *gin.Context) {
	var req sendRoomMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	message, err := s.rooms.SendRoomMessage(c.Request.Context(), c.Param("id"), req.SenderID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent to room",
		"data":    message,
	})
}

func (s *Server) roomMessages(c *gin.Context) {
	messages, err := s.rooms.RoomMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
