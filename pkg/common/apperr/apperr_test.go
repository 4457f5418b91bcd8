package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Is(t *testing.T) {
	sentinel := New(1001, "queue overflow", http.StatusBadRequest, nil)
	wrapped := NewError("eventqueue", 1001, "entries overflow", http.StatusBadRequest, errors.New("boom"))

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.False(t, errors.Is(wrapped, New(1002, "other", http.StatusBadRequest, nil)))
}

func TestAppError_Error(t *testing.T) {
	plain := New(7, "bad", http.StatusBadRequest, nil)
	assert.Equal(t, "[7] bad", plain.Error())

	cause := errors.New("root")
	withCause := NewError("ring", 8, MsgAllocateFailed, http.StatusInternalServerError, cause)
	assert.Equal(t, "[8] ring failed to allocate: root", withCause.Error())
	assert.True(t, errors.Is(withCause, cause))
}

func TestMapError(t *testing.T) {
	assert.Nil(t, MapError("svc", nil, 1, MsgLoadFailed, http.StatusInternalServerError))

	err := MapError("svc", errors.New("x"), 3, MsgLoadFailed, http.StatusInternalServerError)
	assert.Equal(t, 3, CodeOf(err))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, "svc failed to load", err.Message)
}
