package registry

import (
	"net/http"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
)

const serviceName = "registry"

const (
	CodeNotFound = 1200 + iota
	CodeDuplicate
)

var (
	ErrNotFound  = apperr.New(CodeNotFound, "queue not found", http.StatusNotFound, nil)
	ErrDuplicate = apperr.New(CodeDuplicate, "queue name already registered", http.StatusConflict, nil)
)

func notFound(path string) error {
	return apperr.NewError(serviceName, CodeNotFound, apperr.MsgNotFound+": "+path, http.StatusNotFound, nil)
}

func duplicate(path string) error {
	return apperr.NewError(serviceName, CodeDuplicate, "name already registered: "+path, http.StatusConflict, nil)
}
