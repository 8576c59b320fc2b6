package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
	"github.com/yungbote/labstock-backend/internal/services"
)

// SchematicHandler serves the drawn grid layouts and their zones.
type SchematicHandler struct {
	log        *logger.Logger
	schematics services.SchematicService
}

func NewSchematicHandler(baseLog *logger.Logger, schematics services.SchematicService) *SchematicHandler {
	return &SchematicHandler{
		log:        baseLog.With("handler", "SchematicHandler"),
		schematics: schematics,
	}
}

// GET /api/schematic/:temp_key/:section
func (h *SchematicHandler) View(c *gin.Context) {
	view, err := h.schematics.View(c.Request.Context(), c.Param("temp_key"), c.Param("section"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// GET /api/schematic/fridge/:fridge_id/:section
func (h *SchematicHandler) ViewByFridge(c *gin.Context) {
	fridgeID, ok := pathID(c, "fridge_id")
	if !ok {
		return
	}
	view, err := h.schematics.ViewByFridge(c.Request.Context(), fridgeID, c.Param("section"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// POST /api/schematic/create
func (h *SchematicHandler) Create(c *gin.Context) {
	var in services.SchematicCreateInput
	if !bindJSON(c, &in) {
		return
	}
	layoutID, err := h.schematics.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "layout_id": layoutID})
}

// POST /api/schematic/:layout_id/zones
func (h *SchematicHandler) ReplaceZones(c *gin.Context) {
	layoutID, ok := pathID(c, "layout_id")
	if !ok {
		return
	}
	var req struct {
		Zones []services.SchematicZoneInput `json:"zones"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.schematics.ReplaceZones(c.Request.Context(), layoutID, req.Zones); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// POST /api/schematic/upload-reference
func (h *SchematicHandler) UploadReference(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		response.RespondError(c, apperr.BadRequest("No photo uploaded"))
		return
	}
	src, err := fh.Open()
	if err != nil {
		h.log.Error("UploadReference failed (open upload)", "error", err)
		response.RespondError(c, err)
		return
	}
	defer src.Close()

	filename, err := h.schematics.UploadReference(
		c.Request.Context(),
		c.PostForm("layout_id"),
		fh.Filename,
		src,
	)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "filename": filename})
}

// GET /api/schematic/zone/:zone_id/items
func (h *SchematicHandler) ZoneItems(c *gin.Context) {
	zoneID, ok := pathID(c, "zone_id")
	if !ok {
		return
	}
	items, err := h.schematics.ZoneItems(c.Request.Context(), zoneID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, items)
}

// POST /api/schematic/zone/:zone_id/assign
func (h *SchematicHandler) AssignToZone(c *gin.Context) {
	zoneID, ok := pathID(c, "zone_id")
	if !ok {
		return
	}
	var req assignRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.schematics.AssignToZone(c.Request.Context(), zoneID, req.DrugID); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
