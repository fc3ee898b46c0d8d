package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// serverError renders a 500. The detailed error always goes to the log under
// a correlation id; it reaches the response body only in debug mode.
func serverError(c *gin.Context, debug bool, err error) {
	errID := uuid.NewString()
	log.Printf("ERROR [%s] %s %s: %v", errID, c.Request.Method, c.Request.URL.Path, err)

	if debug {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "errorId": errID})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "errorId": errID})
}
