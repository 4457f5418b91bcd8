package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	assert.Equal(t, xxhash.Sum64String("hid"), Sum64("hid"))
	assert.Equal(t, xxhash.Sum64([]byte("hid")), Sum64([]byte("hid")))
	assert.Equal(t, String("hid"), Sum64("hid"))

	assert.Equal(t, Sum64(uint64(7)), Sum64(7))
	assert.Equal(t, Sum64(uint64(7)), Sum64(uint32(7)))
	assert.NotEqual(t, Sum64(1), Sum64(2))
}
