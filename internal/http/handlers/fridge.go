package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/services"
)

// FridgeHandler serves the storage grids, the per-temperature grid
// configuration, and the user-defined fridge units.
type FridgeHandler struct {
	fridges services.FridgeService
}

func NewFridgeHandler(fridges services.FridgeService) *FridgeHandler {
	return &FridgeHandler{fridges: fridges}
}

// GET /api/fridge/grid/:temp_key
func (h *FridgeHandler) Grid(c *gin.Context) {
	view, err := h.fridges.Grid(c.Request.Context(), c.Param("temp_key"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// GET /api/fridge/config
func (h *FridgeHandler) Configs(c *gin.Context) {
	configs, err := h.fridges.Configs(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, configs)
}

// PUT /api/fridge/config/:temp_key
func (h *FridgeHandler) UpdateConfig(c *gin.Context) {
	var in services.FridgeConfigInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.fridges.UpdateConfig(c.Request.Context(), c.Param("temp_key"), in); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/location/:temp_key/:section/:row/:col
func (h *FridgeHandler) LocationItems(c *gin.Context) {
	row, ok := pathID(c, "row")
	if !ok {
		return
	}
	col, ok := pathID(c, "col")
	if !ok {
		return
	}
	items, err := h.fridges.LocationItems(
		c.Request.Context(),
		c.Param("temp_key"),
		c.Param("section"),
		int(row),
		int(col),
	)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

// GET /api/fridges
func (h *FridgeHandler) ListFridges(c *gin.Context) {
	fridges, err := h.fridges.ListFridges(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, fridges)
}

// GET /api/fridges/by-temp/:temp_type
func (h *FridgeHandler) FridgesByTemp(c *gin.Context) {
	fridges, err := h.fridges.FridgesByTemp(c.Request.Context(), c.Param("temp_type"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, fridges)
}

// GET /api/fridges/:id
func (h *FridgeHandler) GetFridge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fridge, err := h.fridges.GetFridge(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, fridge)
}

// POST /api/fridges
func (h *FridgeHandler) CreateFridge(c *gin.Context) {
	var in services.FridgeInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.fridges.CreateFridge(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "id": id})
}

// PUT /api/fridges/:id
func (h *FridgeHandler) UpdateFridge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.FridgeInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.fridges.UpdateFridge(c.Request.Context(), id, in); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// DELETE /api/fridges/:id
func (h *FridgeHandler) DeleteFridge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.fridges.DeleteFridge(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
