package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-eventqueue/pkg/common/http/response"
)

type echoRequest struct {
	Name string `uri:"name" binding:"required,alphanum"`
}

func newRouter(log *zap.Logger, h HandlerFunc[echoRequest, string]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/echo/:name", Wrap(log, h))
	return r
}

func do(t *testing.T, r http.Handler, path string) (int, response.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestWrap(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	log := zap.New(core)

	r := newRouter(log, func(_ context.Context, req *echoRequest) (string, error) {
		switch req.Name {
		case "missing":
			return "", apperr.New(404, "not here", http.StatusNotFound, nil)
		case "boom":
			return "", errors.New("boom")
		}
		return req.Name, nil
	})

	status, body := do(t, r, "/echo/hid")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, response.CodeSuccess, body.Code)
	assert.Equal(t, "hid", body.Data)

	status, body = do(t, r, "/echo/not-alnum")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, response.CodeParamInvalid, body.Code)

	status, body = do(t, r, "/echo/missing")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 404, body.Code)
	assert.Zero(t, logs.Len())

	status, body = do(t, r, "/echo/boom")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, response.CodeInternalServer, body.Code)
	assert.Equal(t, 1, logs.Len())
}
