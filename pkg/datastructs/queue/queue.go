// Package queue provides bounded FIFO queues for passing values between
// goroutines without locks.
package queue

// Queue is a bounded FIFO queue.
type Queue[T any] interface {
	// Enqueue adds an item. It returns false if the queue is full.
	Enqueue(item T) bool

	// Dequeue removes the oldest item. It returns false if the queue is empty.
	Dequeue() (T, bool)

	// Capacity returns the maximum number of items.
	Capacity() uint64
}
