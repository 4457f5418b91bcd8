// Package notify delivers queue notifications to the consumer side.
//
// A Notifier must never block: the producer calls it from the enqueue path.
// Local consumers wait on a Signal; remote observers receive notices through
// an Async publisher backed by Redis, Kafka or NATS.
package notify

import (
	"fmt"
	"time"
)

// Reason says why a notice was sent.
type Reason int

const (
	// DataAvailable is sent when a queue goes from empty to non-empty.
	DataAvailable Reason = iota
	// QueueFull is sent when an enqueue was rejected for lack of space.
	QueueFull
)

func (r Reason) String() string {
	switch r {
	case DataAvailable:
		return "data_available"
	case QueueFull:
		return "queue_full"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// MarshalText encodes the reason by name.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Notice is one notification. ID is assigned when the notice leaves the
// process through an Async publisher.
type Notice struct {
	ID         string    `json:"id,omitempty"`
	Queue      string    `json:"queue"`
	Reason     Reason    `json:"reason"`
	ErrorCount uint64    `json:"enqueue_error_count"`
	Time       time.Time `json:"time"`
}

// Notifier receives notices. Implementations must return promptly.
type Notifier interface {
	Notify(n Notice)
}

// Func adapts a plain function to Notifier.
type Func func(n Notice)

// Notify implements Notifier.
func (f Func) Notify(n Notice) { f(n) }

// Nop discards every notice.
var Nop Notifier = Func(func(Notice) {})

// Multi fans a notice out to several notifiers in order.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(n Notice) {
	for _, nt := range m {
		if nt != nil {
			nt.Notify(n)
		}
	}
}

// Filter forwards only notices whose reason is listed.
func Filter(next Notifier, reasons ...Reason) Notifier {
	var mask uint32
	for _, r := range reasons {
		mask |= 1 << uint(r)
	}
	return Func(func(n Notice) {
		if mask&(1<<uint(n.Reason)) != 0 {
			next.Notify(n)
		}
	})
}
