package eventqueue

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/datastructs/buffer"
	"github.com/huynhanx03/go-eventqueue/pkg/entitlement"
	"github.com/huynhanx03/go-eventqueue/pkg/notify"
)

// Allocator creates the ring for a queue of the given byte capacity.
type Allocator func(size uint32) (Ring, error)

// SharedRingAllocator allocates a buffer.SharedRing.
func SharedRingAllocator(size uint32) (Ring, error) {
	r, err := buffer.NewSharedRing(size)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Option configures a Queue at construction.
type Option func(*options)

type options struct {
	name      string
	level     entitlement.Level
	policy    entitlement.Policy
	notifier  notify.Notifier
	allocator Allocator
	collector *Collector
	log       *zap.Logger
}

// WithName sets the name used in notices, logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithEntitlement sets the consumer's privilege level. Defaults to Standard.
func WithEntitlement(level entitlement.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithPolicy sets the capacity policy. Defaults to entitlement.Default().
func WithPolicy(p entitlement.Policy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

// WithNotifier sets where data-available and queue-full notices go.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithAllocator replaces the ring allocator.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithCollector registers the queue with a Prometheus collector on success.
func WithCollector(c *Collector) Option {
	return func(o *options) {
		o.collector = c
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{
		level:     entitlement.Standard,
		policy:    entitlement.Default(),
		notifier:  notify.Nop,
		allocator: SharedRingAllocator,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
