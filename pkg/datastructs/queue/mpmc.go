package queue

import (
	"sync/atomic"

	"github.com/huynhanx03/go-eventqueue/pkg/utils"
)

var _ Queue[int] = (*MPMC[int])(nil)

const cacheLineSize = 64

type cell[T any] struct {
	seq atomic.Uint64
	val T
}

// MPMC is a lock-free bounded multiple-producer multiple-consumer queue.
// Each cell carries a sequence number telling producers and consumers whose
// turn it is, so neither side ever blocks the other.
type MPMC[T any] struct {
	mask  uint64
	cells []cell[T]

	_ [cacheLineSize]byte

	enqPos atomic.Uint64

	_ [cacheLineSize]byte

	deqPos atomic.Uint64
}

// NewMPMC creates a queue. capacity is rounded up to a power of two, with a
// minimum of 2.
func NewMPMC[T any](capacity int) *MPMC[T] {
	if capacity < 2 {
		capacity = 2
	}
	capacity = utils.CeilToPowerOfTwo(capacity)

	q := &MPMC[T]{
		mask:  uint64(capacity - 1),
		cells: make([]cell[T], capacity),
	}
	for i := range q.cells {
		q.cells[i].seq.Store(uint64(i))
	}
	return q
}

// Enqueue adds an item. Returns false if the queue is full.
func (q *MPMC[T]) Enqueue(item T) bool {
	pos := q.enqPos.Load()
	for {
		c := &q.cells[pos&q.mask]
		seq := c.seq.Load()

		switch diff := int64(seq - pos); {
		case diff == 0:
			if q.enqPos.CompareAndSwap(pos, pos+1) {
				c.val = item
				c.seq.Store(pos + 1)
				return true
			}
			pos = q.enqPos.Load()
		case diff < 0:
			return false
		default:
			pos = q.enqPos.Load()
		}
	}
}

// Dequeue removes and returns the oldest item. Returns false if the queue is empty.
func (q *MPMC[T]) Dequeue() (T, bool) {
	var zero T

	pos := q.deqPos.Load()
	for {
		c := &q.cells[pos&q.mask]
		seq := c.seq.Load()

		switch diff := int64(seq - (pos + 1)); {
		case diff == 0:
			if q.deqPos.CompareAndSwap(pos, pos+1) {
				item := c.val
				c.val = zero
				c.seq.Store(pos + q.mask + 1)
				return item, true
			}
			pos = q.deqPos.Load()
		case diff < 0:
			return zero, false
		default:
			pos = q.deqPos.Load()
		}
	}
}

// Len returns the approximate number of items.
func (q *MPMC[T]) Len() int {
	n := int64(q.enqPos.Load() - q.deqPos.Load())
	if n < 0 {
		return 0
	}
	if n > int64(q.mask+1) {
		return int(q.mask + 1)
	}
	return int(n)
}

// IsEmpty reports whether the queue appears empty.
func (q *MPMC[T]) IsEmpty() bool { return q.Len() == 0 }

// Capacity returns the maximum number of items.
func (q *MPMC[T]) Capacity() uint64 { return q.mask + 1 }
