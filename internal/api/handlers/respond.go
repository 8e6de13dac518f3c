package handlers

import (
	"errors"
	"net/http"

	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/logger"
	"event-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string `json:"error" example:"error message"`
	Reason string `json:"reason,omitempty" example:"DUPLICATE_VOTE"`
}

// respondError maps application errors to status codes. Anything unrecognised is a 500 without detail.
func respondError(c *gin.Context, err error) {
	var (
		invalid  *apperrors.ValidationError
		conflict *apperrors.ConflictError
	)
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalid.Message})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflict.Message, Reason: conflict.Reason})
	default:
		logger.WithContext(c).WithError(err).Errorf("Request %s %s failed", c.Request.Method, c.FullPath())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// actorFrom identifies the caller for the audit trail
func actorFrom(c *gin.Context) service.Actor {
	actor := service.Actor{IPAddress: c.ClientIP()}
	if email, ok := c.Get("email"); ok {
		actor.Name, _ = email.(string)
	}
	return actor
}
