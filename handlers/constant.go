package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attendify_backend/config"
	"attendify_backend/models"
)

// ConstantHandler serves the reference tables the frontend renders pickers
// from. Everything here is static for the lifetime of the process.
type ConstantHandler struct {
	settings *config.Settings
}

func NewConstantHandler(settings *config.Settings) *ConstantHandler {
	return &ConstantHandler{settings: settings}
}

func (h *ConstantHandler) GetParts(c *gin.Context) {
	parts := map[models.Part]models.PartDetail{}
	for _, part := range models.Parts {
		parts[part] = part.Detail()
	}
	c.JSON(http.StatusOK, parts)
}

func (h *ConstantHandler) GetRoles(c *gin.Context) {
	roles := map[models.Role]string{}
	for _, role := range models.Roles {
		roles[role] = role.DisplayName()
	}
	c.JSON(http.StatusOK, roles)
}

func (h *ConstantHandler) GetGrades(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Grade)
}
