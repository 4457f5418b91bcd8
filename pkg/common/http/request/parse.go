package request

import (
	"github.com/gin-gonic/gin"
)

// ParseRequest binds path and query parameters into T. Binding tags are
// checked by gin's validator.
func ParseRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindUri(&req); err != nil {
		return nil, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
