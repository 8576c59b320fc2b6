package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/labstock-backend/internal/platform/apperr"
)

// ErrorBody is the flat error shape every endpoint writes.
type ErrorBody struct {
	Error string `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondError writes {"error": message}. An *apperr.Error carries its own
// status; anything else is a 500.
func RespondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, ErrorBody{Error: ae.Message})
		return
	}
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: msg})
}
