package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
)

// Response codes for failures that carry no AppError.
const (
	CodeSuccess        = 0
	CodeParamInvalid   = 4000
	CodeInternalServer = 5000
)

// Response is the envelope of every JSON reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes a 200 with data.
func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// ErrorResponse writes err. An AppError in the chain decides the status and
// code; otherwise fallback is used with a 500, or a 400 for CodeParamInvalid.
func ErrorResponse(c *gin.Context, fallback int, err error) {
	var ae *apperr.AppError
	if errors.As(err, &ae) {
		status := ae.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		c.AbortWithStatusJSON(status, Response{Code: ae.Code, Message: ae.Error()})
		return
	}

	status := http.StatusInternalServerError
	if fallback == CodeParamInvalid {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, Response{Code: fallback, Message: err.Error()})
}
