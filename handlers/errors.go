package handlers

import (
	"github.com/gin-gonic/gin"

	"attendify_backend/models"
)

// jsonError writes the uniform error body every failed request returns.
func jsonError(c *gin.Context, status int, message string, code int) {
	c.JSON(status, models.APIError{Error: message, ErrorCode: code})
}
