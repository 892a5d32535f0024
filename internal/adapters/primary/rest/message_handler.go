package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type sendDirectMessageRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

func (s *Server) sendDirectMessage(c *gin.Context) {
	var req sendDirectMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	message, err := s.messages.SendDirectMessage(c.Request.Context(), req.SenderID, req.ReceiverID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"data":    message,
	})
}

func (s *Server) directMessages(c *gin.Context) {
	messages := s.messages.DirectMessages(c.Request.Context(), c.Param("userId1"), c.Param("userId2"))
	c.JSON(http.StatusOK, messages)
}

func (s *Server) userMessages(c *gin.Context) {
	messages := s.messages.UserMessages(c.Request.Context(), c.Param("userId"))
	c.JSON(http.StatusOK, messages)
}
