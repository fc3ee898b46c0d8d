package handler

import (
	"errors"
	"net/http"
	"strconv"

	"renovation_backend/internal/model"
	"renovation_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles repair-estimate submission requests
type RequestHandler struct {
	service service.RequestService
	debug   bool
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(s service.RequestService, debug bool) *RequestHandler {
	return &RequestHandler{service: s, debug: debug}
}

// Submit records a new repair-estimate submission
func (h *RequestHandler) Submit(c *gin.Context) {
	var input model.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		serverError(c, h.debug, err)
		return
	}

	req, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, model.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
			return
		}
		serverError(c, h.debug, err)
		return
	}

	c.JSON(http.StatusOK, model.SubmitResponse{
		Success:   true,
		RequestID: req.ID,
		Message:   "Request submitted successfully",
	})
}

// ListByUser returns the submissions for the userId query parameter,
// newest first. An unknown id yields an empty list, not an error.
func (h *RequestHandler) ListByUser(c *gin.Context) {
	userIDStr := c.Query("userId")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
		return
	}

	views, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		serverError(c, h.debug, err)
		return
	}

	c.JSON(http.StatusOK, model.RequestListResponse{Requests: views})
}

// RegisterRequestRoutes registers submission routes
func (h *RequestHandler) RegisterRequestRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	{
		requests.POST("", h.Submit)
		requests.GET("", h.ListByUser)
	}
}
