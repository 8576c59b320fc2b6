package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
	"github.com/yungbote/labstock-backend/internal/services"
)

type TransferHandler struct {
	log       *logger.Logger
	transfers services.TransferService
}

func NewTransferHandler(baseLog *logger.Logger, transfers services.TransferService) *TransferHandler {
	return &TransferHandler{
		log:       baseLog.With("handler", "TransferHandler"),
		transfers: transfers,
	}
}

// GET /export/csv
func (h *TransferHandler) ExportCSV(c *gin.Context) {
	filename, data, err := h.transfers.ExportCSV(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// POST /import/csv
func (h *TransferHandler) ImportCSV(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, apperr.BadRequest("No file uploaded"))
		return
	}
	if strings.TrimSpace(fh.Filename) == "" {
		response.RespondError(c, apperr.BadRequest("No file selected"))
		return
	}
	if !strings.HasSuffix(fh.Filename, ".csv") {
		response.RespondError(c, apperr.BadRequest("File must be a CSV"))
		return
	}
	src, err := fh.Open()
	if err != nil {
		h.log.Error("ImportCSV failed (open upload)", "error", err)
		response.RespondError(c, err)
		return
	}
	defer src.Close()

	skip := c.DefaultPostForm("skip_duplicates", "true") == "true"
	report, err := h.transfers.ImportCSV(c.Request.Context(), src, skip)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":  true,
		"imported": report.Imported,
		"skipped":  report.Skipped,
		"errors":   report.Errors,
	})
}
