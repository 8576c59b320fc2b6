package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/services"
)

type SettingHandler struct {
	settings services.SettingService
}

func NewSettingHandler(settings services.SettingService) *SettingHandler {
	return &SettingHandler{settings: settings}
}

// GET /api/settings
func (h *SettingHandler) All(c *gin.Context) {
	values, err := h.settings.All(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, values)
}

// POST /api/settings
func (h *SettingHandler) SetAll(c *gin.Context) {
	var values map[string]any
	if !bindJSON(c, &values) {
		return
	}
	if err := h.settings.SetAll(c.Request.Context(), values); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/settings/:key
func (h *SettingHandler) Get(c *gin.Context) {
	key := c.Param("key")
	value, err := h.settings.Get(c.Request.Context(), key)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"key": key, "value": value})
}
