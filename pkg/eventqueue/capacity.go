package eventqueue

import (
	"fmt"
	"net/http"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-eventqueue/pkg/entitlement"
	"github.com/huynhanx03/go-eventqueue/pkg/utils"
)

// CapacityForSize clamps a requested byte size to the policy bounds.
func CapacityForSize(size uint32, b entitlement.Bounds) uint32 {
	return utils.ClampUint32(size, b.Min, b.Max)
}

// CapacityForEntries computes numEntries*entrySize and clamps it to the
// policy bounds. The product is range-checked before it is computed so a
// wrapped value can never be mistaken for an adequate size.
func CapacityForEntries(numEntries, entrySize uint32, b entitlement.Bounds) (uint32, error) {
	if entrySize == 0 {
		return 0, apperr.NewError(serviceName, CodeInvalidEntrySize,
			"entry size must be non-zero", http.StatusBadRequest, nil)
	}
	if utils.MulOverflowsUint32(numEntries, entrySize) {
		return 0, apperr.NewError(serviceName, CodeConstructionOverflow,
			fmt.Sprintf("%d entries of %d bytes overflow uint32", numEntries, entrySize),
			http.StatusBadRequest, nil)
	}
	return CapacityForSize(numEntries*entrySize, b), nil
}
