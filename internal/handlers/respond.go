package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkarpov/hirehub/internal/apperr"
)

// respondError converts an operation error to its HTTP outcome. Internal
// failures get a fixed message so persistence or filesystem details never
// reach the client.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// HealthCheck is the liveness endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
