package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Signal
// =============================================================================

func TestSignal_Coalesces(t *testing.T) {
	s := NewSignal()

	s.Notify(Notice{Reason: DataAvailable})
	s.Notify(Notice{Reason: DataAvailable})
	s.Notify(Notice{Reason: QueueFull, ErrorCount: 3})

	select {
	case <-s.C():
	default:
		t.Fatal("expected a pending wakeup")
	}

	select {
	case <-s.C():
		t.Fatal("wakeups must coalesce into one")
	default:
	}

	assert.Equal(t, uint64(2), s.Count(DataAvailable))
	assert.Equal(t, uint64(1), s.Count(QueueFull))
	assert.Equal(t, uint64(3), s.LastErrorCount())
	assert.Zero(t, s.Count(Reason(-1)))
}

func TestSignal_UnknownReason(t *testing.T) {
	s := NewSignal()
	assert.NotPanics(t, func() {
		s.Notify(Notice{Reason: Reason(-2)})
		s.Notify(Notice{Reason: Reason(12)})
	})
	assert.Len(t, s.C(), 1)
}

// =============================================================================
// Combinators
// =============================================================================

func TestMulti(t *testing.T) {
	a, b := NewSignal(), NewSignal()
	m := Multi{a, nil, b}

	m.Notify(Notice{Reason: QueueFull})

	assert.Equal(t, uint64(1), a.Count(QueueFull))
	assert.Equal(t, uint64(1), b.Count(QueueFull))
}

func TestFilter(t *testing.T) {
	s := NewSignal()
	f := Filter(s, QueueFull)

	f.Notify(Notice{Reason: DataAvailable})
	f.Notify(Notice{Reason: QueueFull})

	assert.Zero(t, s.Count(DataAvailable))
	assert.Equal(t, uint64(1), s.Count(QueueFull))
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "data_available", DataAvailable.String())
	assert.Equal(t, "queue_full", QueueFull.String())
	assert.Equal(t, "Reason(9)", Reason(9).String())
}
