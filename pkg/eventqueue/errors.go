package eventqueue

import (
	"net/http"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
)

const serviceName = "eventqueue"

// Error codes. They are stable and exposed through the introspection server.
const (
	CodeInvalidEntrySize = 1001 + iota
	CodeConstructionOverflow
	CodeAllocationFailure
)

// Sentinels for errors.Is. Returned errors carry the same code with more detail.
var (
	ErrInvalidEntrySize     = apperr.New(CodeInvalidEntrySize, "entry size must be non-zero", http.StatusBadRequest, nil)
	ErrConstructionOverflow = apperr.New(CodeConstructionOverflow, "entry count times entry size overflows uint32", http.StatusBadRequest, nil)
	ErrAllocationFailure    = apperr.New(CodeAllocationFailure, "ring allocation failed", http.StatusInternalServerError, nil)
)
