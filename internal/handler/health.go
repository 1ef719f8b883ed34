package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
