package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/services"
)

type RecordHandler struct {
	records services.RecordService
}

func NewRecordHandler(records services.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// GET /api/records
func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.records.List(c.Request.Context(), c.Query("search"), c.Query("temperature"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, records)
}

// GET /api/record/:id
func (h *RecordHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	record, err := h.records.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, record)
}

// POST /api/record
func (h *RecordHandler) Create(c *gin.Context) {
	var in services.RecordInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.records.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "id": id})
}

// PUT /api/record/:id
func (h *RecordHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.RecordInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.records.Update(c.Request.Context(), id, in); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// DELETE /api/record/:id
func (h *RecordHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.records.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
