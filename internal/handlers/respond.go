package handlers

import (
	"errors"
	"log"
	"net/http"

	"property-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses. Storage errors stay
// opaque: the cause is logged server-side, the client gets a generic body.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	default:
		log.Printf("[api] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
