package notify

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/datastructs/queue"
)

const defaultBacklog = 256

// Sink delivers one encoded notice to a remote system. It may block; it is
// only ever called from Async.Run.
type Sink interface {
	Deliver(ctx context.Context, n Notice, payload []byte) error
}

// Async decouples a slow Sink from the producers. Notify enqueues into a
// bounded lock-free backlog and never blocks; when the backlog is full the
// notice is dropped and counted.
type Async struct {
	name    string
	sink    Sink
	backlog *queue.MPMC[Notice]
	wake    chan struct{}
	log     *zap.Logger

	delivered atomic.Uint64
	dropped   atomic.Uint64
	failed    atomic.Uint64
}

var _ Notifier = (*Async)(nil)

// AsyncOption configures an Async publisher.
type AsyncOption func(*Async)

// WithBacklog sets the number of notices buffered ahead of the sink,
// rounded up to a power of two.
func WithBacklog(n int) AsyncOption {
	return func(a *Async) {
		if n > 0 {
			a.backlog = queue.NewMPMC[Notice](n)
		}
	}
}

// WithAsyncLogger sets the logger used for delivery failures.
func WithAsyncLogger(l *zap.Logger) AsyncOption {
	return func(a *Async) {
		if l != nil {
			a.log = l
		}
	}
}

// NewAsync creates a publisher for sink. Call Run to start delivery.
func NewAsync(name string, sink Sink, opts ...AsyncOption) *Async {
	a := &Async{
		name:    name,
		sink:    sink,
		backlog: queue.NewMPMC[Notice](defaultBacklog),
		wake:    make(chan struct{}, 1),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(zap.String("publisher", name))
	return a
}

// Notify implements Notifier.
func (a *Async) Notify(n Notice) {
	if !a.backlog.Enqueue(n) {
		a.dropped.Add(1)
		return
	}

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Run delivers notices until ctx is cancelled. Notices still in the backlog
// at cancellation are discarded.
func (a *Async) Run(ctx context.Context) error {
	for {
		for ctx.Err() == nil {
			n, ok := a.backlog.Dequeue()
			if !ok {
				break
			}
			a.deliver(ctx, n)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-a.wake:
		}
	}
}

func (a *Async) deliver(ctx context.Context, n Notice) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	payload, err := json.Marshal(n)
	if err != nil {
		a.failed.Add(1)
		a.log.Error("encode notice", zap.Error(err))
		return
	}

	if err := a.sink.Deliver(ctx, n, payload); err != nil {
		a.failed.Add(1)
		if ctx.Err() == nil {
			a.log.Warn("deliver notice",
				zap.String("queue", n.Queue),
				zap.Stringer("reason", n.Reason),
				zap.Error(err))
		}
		return
	}
	a.delivered.Add(1)
}

// Stats is a snapshot of publisher counters.
type Stats struct {
	Delivered uint64 `json:"delivered"`
	Dropped   uint64 `json:"dropped"`
	Failed    uint64 `json:"failed"`
}

// Stats returns the current counters.
func (a *Async) Stats() Stats {
	return Stats{
		Delivered: a.delivered.Load(),
		Dropped:   a.dropped.Load(),
		Failed:    a.failed.Load(),
	}
}

// Name returns the publisher name.
func (a *Async) Name() string {
	return a.name
}
