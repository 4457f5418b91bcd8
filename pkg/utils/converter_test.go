package utils

import (
	"testing"
	"time"
)

func TestUint32RoundTrip(t *testing.T) {
	b := make([]byte, 4)
	PutUint32(b, 0x01020304)
	if b[0] != 0x04 || b[3] != 0x01 {
		t.Errorf("PutUint32 wrote %v; want little-endian", b)
	}
	if got := BytesToUint32(b); got != 0x01020304 {
		t.Errorf("BytesToUint32 = %#x", got)
	}
}

func TestToDuration(t *testing.T) {
	if got := ToDuration(3); got != 3*time.Second {
		t.Errorf("ToDuration(3) = %v", got)
	}
	if got := ToDurationMs(250); got != 250*time.Millisecond {
		t.Errorf("ToDurationMs(250) = %v", got)
	}
}
