package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"attendify_backend/models"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		jsonError(c, http.StatusServiceUnavailable, "Database connection failed", models.ErrCodeUnknown)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
