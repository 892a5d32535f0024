package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arthurdotwork/chatroom/internal/domain"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		c.JSON(statusOf(domainErr.Code), gin.H{"error": domainErr.Message})
		return
	}

	slog.ErrorContext(c.Request.Context(), "unhandled error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func statusOf(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
