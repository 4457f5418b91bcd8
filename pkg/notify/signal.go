package notify

import "sync/atomic"

// Signal is an edge-coalesced wakeup for a local consumer. Any number of
// notices between two receives collapse into one wakeup, so the consumer must
// drain the queue fully after waking.
type Signal struct {
	ch       chan struct{}
	counts   [2]atomic.Uint64
	lastFull atomic.Uint64
}

var _ Notifier = (*Signal)(nil)

// NewSignal returns a ready Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Notify implements Notifier.
func (s *Signal) Notify(n Notice) {
	if n.Reason >= 0 && int(n.Reason) < len(s.counts) {
		s.counts[n.Reason].Add(1)
	}
	if n.Reason == QueueFull {
		s.lastFull.Store(n.ErrorCount)
	}

	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// C returns the wakeup channel.
func (s *Signal) C() <-chan struct{} {
	return s.ch
}

// Count returns how many notices of the given reason were received.
func (s *Signal) Count(r Reason) uint64 {
	if int(r) < 0 || int(r) >= len(s.counts) {
		return 0
	}
	return s.counts[r].Load()
}

// LastErrorCount returns the error count carried by the latest QueueFull notice.
func (s *Signal) LastErrorCount() uint64 {
	return s.lastFull.Load()
}
