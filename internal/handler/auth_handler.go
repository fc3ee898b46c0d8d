package handler

import (
	"errors"
	"net/http"

	"renovation_backend/internal/middleware"
	"renovation_backend/internal/model"
	"renovation_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	debug   bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, debug bool) *AuthHandler {
	return &AuthHandler{service: s, debug: debug}
}

// Auth dispatches on the action query parameter, the selector the site's
// frontend sends. Anything other than register/login is a generic 400.
func (h *AuthHandler) Auth(c *gin.Context) {
	switch c.Query("action") {
	case "register":
		h.Register(c)
	case "login":
		h.Login(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid path or method"})
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Unparseable payloads surface as server errors, same as any other
		// unhandled failure.
		serverError(c, h.debug, err)
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
		default:
			serverError(c, h.debug, err)
		}
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{Success: true, User: user.Info(), Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		serverError(c, h.debug, err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			serverError(c, h.debug, err)
		}
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{Success: true, User: user.Info(), Token: token})
}

// Me returns the profile of the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found in context"})
		return
	}
	userID, ok := userIDVal.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID type in context"})
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
			return
		}
		serverError(c, h.debug, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Info()})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("", h.Auth)
		authGroup.GET("/me", authMW, h.Me)
	}
}
