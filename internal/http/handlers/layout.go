package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
	"github.com/yungbote/labstock-backend/internal/services"
)

// LayoutHandler serves the photo-backed fridge layouts and their clickable
// regions.
type LayoutHandler struct {
	log     *logger.Logger
	layouts services.LayoutService
}

func NewLayoutHandler(baseLog *logger.Logger, layouts services.LayoutService) *LayoutHandler {
	return &LayoutHandler{
		log:     baseLog.With("handler", "LayoutHandler"),
		layouts: layouts,
	}
}

// POST /api/layout/upload
func (h *LayoutHandler) UploadPhoto(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		response.RespondError(c, apperr.BadRequest("No photo uploaded"))
		return
	}
	src, err := fh.Open()
	if err != nil {
		h.log.Error("UploadPhoto failed (open upload)", "error", err)
		response.RespondError(c, err)
		return
	}
	defer src.Close()

	layoutID, filename, err := h.layouts.UploadPhoto(
		c.Request.Context(),
		c.PostForm("temp_key"),
		c.PostForm("section"),
		fh.Filename,
		src,
	)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "layout_id": layoutID, "filename": filename})
}

// GET /api/layout/:key/:section (key is the temp key here)
func (h *LayoutHandler) View(c *gin.Context) {
	view, err := h.layouts.View(c.Request.Context(), c.Param("key"), c.Param("section"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// GET /api/layout/:key/regions (key is the layout id here)
func (h *LayoutHandler) Regions(c *gin.Context) {
	layoutID, ok := pathID(c, "key")
	if !ok {
		return
	}
	regions, err := h.layouts.Regions(c.Request.Context(), layoutID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, regions)
}

// POST /api/layout/:layout_id/region
func (h *LayoutHandler) CreateRegion(c *gin.Context) {
	layoutID, ok := pathID(c, "layout_id")
	if !ok {
		return
	}
	var in services.RegionInput
	if !bindJSON(c, &in) {
		return
	}
	regionID, err := h.layouts.CreateRegion(c.Request.Context(), layoutID, in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "region_id": regionID})
}

// PUT /api/region/:region_id
func (h *LayoutHandler) UpdateRegion(c *gin.Context) {
	regionID, ok := pathID(c, "region_id")
	if !ok {
		return
	}
	var in services.RegionInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.layouts.UpdateRegion(c.Request.Context(), regionID, in); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// DELETE /api/region/:region_id
func (h *LayoutHandler) DeleteRegion(c *gin.Context) {
	regionID, ok := pathID(c, "region_id")
	if !ok {
		return
	}
	if err := h.layouts.DeleteRegion(c.Request.Context(), regionID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/region/:region_id/items
func (h *LayoutHandler) RegionItems(c *gin.Context) {
	regionID, ok := pathID(c, "region_id")
	if !ok {
		return
	}
	items, err := h.layouts.RegionItems(c.Request.Context(), regionID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

// POST /api/region/:region_id/assign
func (h *LayoutHandler) AssignToRegion(c *gin.Context) {
	regionID, ok := pathID(c, "region_id")
	if !ok {
		return
	}
	var req assignRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.layouts.AssignToRegion(c.Request.Context(), regionID, req.DrugID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
