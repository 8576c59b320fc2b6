package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
)

// pathID parses the named path segment as a numeric id. On failure it writes
// the 400 itself and reports false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil {
		response.RespondError(c, apperr.BadRequest("invalid id"))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into out. On failure it writes the 400
// itself and reports false.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		response.RespondError(c, apperr.BadRequest("invalid request body"))
		return false
	}
	return true
}

// assignRequest is the body for region and zone assignment endpoints.
type assignRequest struct {
	DrugID *int64 `json:"drug_id"`
}
