package eventqueue

import (
	"context"
	"errors"

	"github.com/huynhanx03/go-eventqueue/pkg/datastructs/buffer"
	"github.com/huynhanx03/go-eventqueue/pkg/pool/byteslice"
)

// ErrEmpty is returned by Dequeue and Peek when there is nothing to read.
var ErrEmpty = buffer.ErrRingEmpty

// Consume drains q each time wake fires and passes every event to fn, until
// ctx is done. Wakeups may be coalesced, so each one drains the queue fully.
// Any read error other than ErrEmpty stops the loop and is returned.
//
// The slice passed to fn is a pooled buffer reused for the next event; fn
// must copy anything it keeps.
func Consume(ctx context.Context, q *Queue, wake <-chan struct{}, fn func([]byte)) error {
	buf := byteslice.Get(0)
	defer func() { byteslice.Put(buf) }()

	for {
		var err error
		if buf, err = drain(q, buf, fn); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-wake:
		}
	}
}

// drain reads every queued event into buf and returns buf, possibly grown.
func drain(q *Queue, buf []byte, fn func([]byte)) ([]byte, error) {
	for {
		ev, err := q.DequeueAppend(buf[:0])
		if errors.Is(err, ErrEmpty) {
			return buf, nil
		}
		if err != nil {
			return buf, err
		}
		buf = ev
		fn(ev)
	}
}
