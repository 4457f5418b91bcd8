package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-eventqueue/pkg/common/http/request"
	"github.com/huynhanx03/go-eventqueue/pkg/common/http/response"
)

// HandlerFunc handles a bound request of type T and returns the reply data.
type HandlerFunc[T any, R any] func(context.Context, *T) (R, error)

// Wrap adapts h to gin: parameters are bound into T, the result is written
// in the response envelope, and errors without a client-facing code are
// logged.
func Wrap[T any, R any](log *zap.Logger, h HandlerFunc[T, R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := request.ParseRequest[T](c)
		if err != nil {
			response.ErrorResponse(c, response.CodeParamInvalid, err)
			return
		}

		res, err := h(c.Request.Context(), req)
		if err != nil {
			if apperr.CodeOf(err) == 0 {
				log.Error("handler failed", zap.String("path", c.FullPath()), zap.Error(err))
			}
			response.ErrorResponse(c, response.CodeInternalServer, err)
			return
		}

		response.SuccessResponse(c, res)
	}
}
