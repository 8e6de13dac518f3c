package auth

import (
	"net/http"

	"event-voting-backend/internal/database/models"
	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/logger"
	"event-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service  *AuthService
	activity service.ActivityServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *AuthService, activity service.ActivityServiceInterface) *AuthHandler {
	return &AuthHandler{service: authService, activity: activity}
}

// Login handles POST /api/admin/login
// @Summary Admin login
// @Description Exchange admin credentials for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]interface{} "Missing email or password"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	resp, err := h.service.Login(c, req.Email, req.Password)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthentication(err):
			logger.WithContext(c).WithField("ip", c.ClientIP()).Warn("Admin login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			logger.WithContext(c).WithError(err).Error("Admin login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	h.activity.Record(c, service.ActivityEntry{
		Type:   models.ActivityTypeAuth,
		Action: "login",
		Actor:  service.Actor{Name: resp.Email, IPAddress: c.ClientIP()},
	})
	c.JSON(http.StatusOK, resp)
}
