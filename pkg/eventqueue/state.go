package eventqueue

import "sync/atomic"

const (
	bitStarted uint32 = 1 << iota
	bitDisabled
)

// Lifecycle enumerates the four combinations of the Started and Disabled bits.
type Lifecycle int

const (
	Uninitialized Lifecycle = iota
	Started
	Disabled
	StartedAndDisabled
)

func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "uninitialized"
	case Started:
		return "started"
	case Disabled:
		return "disabled"
	case StartedAndDisabled:
		return "started_disabled"
	default:
		return "unknown"
	}
}

// State is a snapshot of a queue's admission bits.
type State struct {
	Started  bool `json:"started"`
	Disabled bool `json:"disabled"`
}

// IsAcceptingEvents is the admission rule: started and not disabled.
func (s State) IsAcceptingEvents() bool {
	return s.Started && !s.Disabled
}

// Lifecycle returns the enumerated form of s.
func (s State) Lifecycle() Lifecycle {
	switch {
	case s.Started && s.Disabled:
		return StartedAndDisabled
	case s.Started:
		return Started
	case s.Disabled:
		return Disabled
	default:
		return Uninitialized
	}
}

// stateBits holds the bits behind State. The two bits change independently.
type stateBits struct {
	v atomic.Uint32
}

func (b *stateBits) load() State {
	v := b.v.Load()
	return State{
		Started:  v&bitStarted != 0,
		Disabled: v&bitDisabled != 0,
	}
}

func (b *stateBits) set(bit uint32)   { b.v.Or(bit) }
func (b *stateBits) clear(bit uint32) { b.v.And(^bit) }
