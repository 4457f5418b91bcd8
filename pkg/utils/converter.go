package utils

import (
	"encoding/binary"
	"time"
)

// PutUint32 writes n as little-endian into the first four bytes of b.
func PutUint32(b []byte, n uint32) {
	binary.LittleEndian.PutUint32(b, n)
}

// BytesToUint32 converts a little-endian byte slice to uint32.
func BytesToUint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// ToDuration converts a config value in seconds to a time.Duration.
func ToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// ToDurationMs converts a config value in milliseconds to a time.Duration.
func ToDurationMs(millis int) time.Duration {
	return time.Duration(millis) * time.Millisecond
}
