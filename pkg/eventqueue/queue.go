// Package eventqueue implements a bounded single-producer single-consumer
// event queue over a shared ring.
//
// The producer calls Submit for every event. Submit never blocks: while the
// queue is not started, or is disabled, events are silently skipped; once
// started, an event that does not fit is counted in the enqueue error counter
// and the consumer is notified so it can drain promptly.
package eventqueue

import (
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-eventqueue/pkg/entitlement"
	"github.com/huynhanx03/go-eventqueue/pkg/notify"
)

// overflowLogEvery rate-limits overflow warnings to one per this many rejections.
const overflowLogEvery = 1024

// Ring is the shared circular buffer a Queue writes into.
// Enqueue is called only by the producer, DequeueAppend and Peek only by the
// consumer.
type Ring interface {
	Enqueue(p []byte) bool
	DequeueAppend(dst []byte) ([]byte, error)
	Peek() ([]byte, error)
	Head() uint32
	Tail() uint32
	Size() uint32
}

// Outcome is the detailed result of a submit.
type Outcome int

const (
	// OutcomeEnqueued means the event was written to the ring.
	OutcomeEnqueued Outcome = iota
	// OutcomeSkipped means the queue was not accepting events; nothing happened.
	OutcomeSkipped
	// OutcomeOverflow means the ring had no room; the error counter was incremented.
	OutcomeOverflow
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEnqueued:
		return "enqueued"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Queue is a bounded event queue. A Queue is safe for one producer and one
// consumer running concurrently; state changes and Describe may come from any
// goroutine.
type Queue struct {
	name          string
	level         entitlement.Level
	capacityBytes uint32
	numEntries    uint32
	entrySize     uint32

	state             stateBits
	enqueueErrorCount atomic.Uint64

	ring     Ring
	notifier notify.Notifier
	log      *zap.Logger
}

// NewWithCapacity creates a queue whose ring holds sizeBytes, clamped to the
// entitlement bounds.
func NewWithCapacity(sizeBytes uint32, opts ...Option) (*Queue, error) {
	o := applyOptions(opts...)
	capacity := CapacityForSize(sizeBytes, o.policy.Bounds(o.level))
	return newQueue(capacity, 0, 0, o)
}

// NewWithEntries creates a queue sized for numEntries records of entrySize
// bytes. It fails if entrySize is zero or the product overflows uint32.
func NewWithEntries(numEntries, entrySize uint32, opts ...Option) (*Queue, error) {
	o := applyOptions(opts...)
	capacity, err := CapacityForEntries(numEntries, entrySize, o.policy.Bounds(o.level))
	if err != nil {
		return nil, err
	}
	return newQueue(capacity, numEntries, entrySize, o)
}

func newQueue(capacity, numEntries, entrySize uint32, o *options) (*Queue, error) {
	ring, err := o.allocator(capacity)
	if err != nil {
		return nil, apperr.NewError(serviceName, CodeAllocationFailure,
			apperr.MsgAllocateFailed+" ring", http.StatusInternalServerError, err)
	}
	if ring == nil {
		return nil, apperr.NewError(serviceName, CodeAllocationFailure,
			apperr.MsgAllocateFailed+" ring", http.StatusInternalServerError, nil)
	}

	q := &Queue{
		name:          o.name,
		level:         o.level,
		capacityBytes: capacity,
		numEntries:    numEntries,
		entrySize:     entrySize,
		ring:          ring,
		notifier:      o.notifier,
		log:           o.log.With(zap.String("queue", o.name)),
	}

	if o.collector != nil {
		o.collector.Add(q)
	}

	q.log.Debug("queue created",
		zap.Uint32("capacity", capacity),
		zap.Uint32("num_entries", numEntries),
		zap.Uint32("entry_size", entrySize),
		zap.Stringer("entitlement", o.level))

	return q, nil
}

// Submit offers one event to the queue. It returns false only when the queue
// is accepting events and the ring had no room; an inactive queue reports true.
func (q *Queue) Submit(event []byte) bool {
	return q.SubmitOutcome(event) != OutcomeOverflow
}

// SubmitOutcome is Submit with the skipped and enqueued cases told apart.
func (q *Queue) SubmitOutcome(event []byte) Outcome {
	if !q.state.load().IsAcceptingEvents() {
		return OutcomeSkipped
	}

	oldTail := q.ring.Tail()
	head := q.ring.Head()

	if !q.ring.Enqueue(event) {
		count := q.enqueueErrorCount.Add(1)
		q.notify(notify.QueueFull, count)
		if count == 1 || count%overflowLogEvery == 0 {
			q.log.Warn("event queue full",
				zap.Int("event_size", len(event)),
				zap.Uint64("enqueue_error_count", count))
		}
		return OutcomeOverflow
	}

	// Wake the consumer if it had drained everything before this record.
	if head == oldTail || q.ring.Head() == oldTail {
		q.notify(notify.DataAvailable, q.enqueueErrorCount.Load())
	}
	return OutcomeEnqueued
}

func (q *Queue) notify(reason notify.Reason, errorCount uint64) {
	q.notifier.Notify(notify.Notice{
		Queue:      q.name,
		Reason:     reason,
		ErrorCount: errorCount,
		Time:       time.Now(),
	})
}

// Dequeue removes the oldest event and returns it in a new slice. Consumer only.
func (q *Queue) Dequeue() ([]byte, error) {
	ev, err := q.ring.DequeueAppend(nil)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		ev = []byte{}
	}
	return ev, nil
}

// DequeueAppend removes the oldest event and appends it to dst. Consumer only.
func (q *Queue) DequeueAppend(dst []byte) ([]byte, error) {
	return q.ring.DequeueAppend(dst)
}

// Peek returns the oldest event without removing it. Consumer only.
func (q *Queue) Peek() ([]byte, error) {
	return q.ring.Peek()
}

// Start sets the Started bit.
func (q *Queue) Start() {
	q.state.set(bitStarted)
	q.log.Debug("queue started")
}

// Stop clears the Started bit.
func (q *Queue) Stop() {
	q.state.clear(bitStarted)
	q.log.Debug("queue stopped")
}

// Disable sets the Disabled bit.
func (q *Queue) Disable() {
	q.state.set(bitDisabled)
	q.log.Debug("queue disabled")
}

// Enable clears the Disabled bit.
func (q *Queue) Enable() {
	q.state.clear(bitDisabled)
	q.log.Debug("queue enabled")
}

// State returns the current admission bits.
func (q *Queue) State() State {
	return q.state.load()
}

// Name returns the queue name.
func (q *Queue) Name() string {
	return q.name
}

// Entitlement returns the privilege level the capacity was negotiated for.
func (q *Queue) Entitlement() entitlement.Level {
	return q.level
}

// Capacity returns the ring size in bytes.
func (q *Queue) Capacity() uint32 {
	return q.capacityBytes
}

// EnqueueErrorCount returns the number of rejected submits.
func (q *Queue) EnqueueErrorCount() uint64 {
	return q.enqueueErrorCount.Load()
}
