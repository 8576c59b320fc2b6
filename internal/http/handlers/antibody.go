package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/services"
)

type AntibodyHandler struct {
	antibodies services.AntibodyService
}

func NewAntibodyHandler(antibodies services.AntibodyService) *AntibodyHandler {
	return &AntibodyHandler{antibodies: antibodies}
}

// GET /api/antibodies/primary
func (h *AntibodyHandler) ListPrimaries(c *gin.Context) {
	list, err := h.antibodies.ListPrimaries(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// GET /api/antibodies/primary/:id
func (h *AntibodyHandler) GetPrimary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ab, err := h.antibodies.GetPrimary(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, ab)
}

// POST /api/antibodies/primary
func (h *AntibodyHandler) CreatePrimary(c *gin.Context) {
	var in services.PrimaryAntibodyInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.antibodies.CreatePrimary(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "id": id})
}

// PUT /api/antibodies/primary/:id
func (h *AntibodyHandler) UpdatePrimary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.PrimaryAntibodyInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.antibodies.UpdatePrimary(c.Request.Context(), id, in); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// DELETE /api/antibodies/primary/:id
func (h *AntibodyHandler) DeletePrimary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.antibodies.DeletePrimary(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/antibodies/secondary
func (h *AntibodyHandler) ListSecondaries(c *gin.Context) {
	list, err := h.antibodies.ListSecondaries(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// GET /api/antibodies/secondary/:id
func (h *AntibodyHandler) GetSecondary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ab, err := h.antibodies.GetSecondary(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, ab)
}

// POST /api/antibodies/secondary
func (h *AntibodyHandler) CreateSecondary(c *gin.Context) {
	var in services.SecondaryAntibodyInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.antibodies.CreateSecondary(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "id": id})
}

// PUT /api/antibodies/secondary/:id
func (h *AntibodyHandler) UpdateSecondary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.SecondaryAntibodyInput
	if !bindJSON(c, &in) {
		return
	}
	if err := h.antibodies.UpdateSecondary(c.Request.Context(), id, in); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// DELETE /api/antibodies/secondary/:id
func (h *AntibodyHandler) DeleteSecondary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.antibodies.DeleteSecondary(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/antibodies/match/:primary_id
func (h *AntibodyHandler) MatchingSecondaries(c *gin.Context) {
	primaryID, ok := pathID(c, "primary_id")
	if !ok {
		return
	}
	matches, err := h.antibodies.MatchingSecondaries(c.Request.Context(), primaryID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, matches)
}
