package eventqueue

import (
	"github.com/huynhanx03/go-eventqueue/pkg/serialize"
)

// Field names of a queue description. They are an external contract.
const (
	FieldHead              = "head"
	FieldTail              = "tail"
	FieldEnqueueErrorCount = "EnqueueErrorCount"
	FieldQueueSize         = "QueueSize"
	FieldNumEntries        = "numEntries"
	FieldEntrySize         = "entrySize"
)

// Description is a point-in-time view of a queue's counters. Head, Tail and
// EnqueueErrorCount are read without a lock and may be mutually inconsistent
// while a submit is in flight.
type Description struct {
	Head              uint32 `json:"head" yaml:"head"`
	Tail              uint32 `json:"tail" yaml:"tail"`
	EnqueueErrorCount uint64 `json:"EnqueueErrorCount" yaml:"EnqueueErrorCount"`
	QueueSize         uint64 `json:"QueueSize" yaml:"QueueSize"`
	NumEntries        uint64 `json:"numEntries" yaml:"numEntries"`
	EntrySize         uint64 `json:"entrySize" yaml:"entrySize"`
}

// Describe returns the queue's introspection record. It has no side effects.
func (q *Queue) Describe() Description {
	return Description{
		Head:              q.ring.Head(),
		Tail:              q.ring.Tail(),
		EnqueueErrorCount: q.enqueueErrorCount.Load(),
		QueueSize:         uint64(q.capacityBytes),
		NumEntries:        uint64(q.numEntries),
		EntrySize:         uint64(q.entrySize),
	}
}

// Dictionary flattens d into named integer fields.
func (d Description) Dictionary() serialize.Dictionary {
	return serialize.Dictionary{
		FieldHead:              uint64(d.Head),
		FieldTail:              uint64(d.Tail),
		FieldEnqueueErrorCount: d.EnqueueErrorCount,
		FieldQueueSize:         d.QueueSize,
		FieldNumEntries:        d.NumEntries,
		FieldEntrySize:         d.EntrySize,
	}
}

// Serialize implements serialize.Serializable. If ctx already holds this
// queue it reports success without emitting the fields again.
func (q *Queue) Serialize(ctx *serialize.Context) bool {
	if ctx.PreviouslySerialized(q) {
		return true
	}
	return ctx.Emit(q, q.Describe().Dictionary())
}

var _ serialize.Serializable = (*Queue)(nil)
