package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/calc"
	"github.com/yungbote/labstock-backend/internal/http/response"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
)

// CalculatorHandler exposes the dilution and mixture math. It is stateless;
// every answer is derived from the request body alone.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler { return &CalculatorHandler{} }

// POST /api/calculator/dilution
func (h *CalculatorHandler) Dilution(c *gin.Context) {
	var req calc.DilutionRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := calc.Dilution(req)
	if err != nil {
		response.RespondError(c, apperr.BadRequest(err.Error()))
		return
	}
	response.RespondOK(c, result)
}

// POST /api/calculator/actual-concentration
func (h *CalculatorHandler) ActualConcentration(c *gin.Context) {
	var req calc.MixtureRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := calc.ActualConcentration(req)
	if err != nil {
		response.RespondError(c, apperr.BadRequest(err.Error()))
		return
	}
	response.RespondOK(c, result)
}
