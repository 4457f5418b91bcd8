package registry

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/entitlement"
	"github.com/huynhanx03/go-eventqueue/pkg/eventqueue"
	"github.com/huynhanx03/go-eventqueue/pkg/notify"
	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

// Builder creates a registry from queue definitions.
type Builder struct {
	Policy    entitlement.Policy
	Collector *eventqueue.Collector
	Logger    *zap.Logger

	// Notifier returns the notifier for the named queue. Nil means no notices.
	Notifier func(name string) notify.Notifier
}

// Build constructs, registers and optionally starts every queue in defs.
// It stops at the first failure and leaves nothing registered with the
// collector.
func (b Builder) Build(defs []settings.Queue) (*Registry, error) {
	log := b.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := New(log, b.Collector)

	for _, def := range defs {
		q, err := b.newQueue(def, log)
		if err != nil {
			r.removeAll()
			return nil, fmt.Errorf("queue %q: %w", def.Name, err)
		}
		if err := r.Register(q, def.Aliases...); err != nil {
			if b.Collector != nil {
				b.Collector.Remove(q)
			}
			r.removeAll()
			return nil, err
		}
		if def.Start {
			q.Start()
		}
	}
	return r, nil
}

func (b Builder) newQueue(def settings.Queue, log *zap.Logger) (*eventqueue.Queue, error) {
	opts := []eventqueue.Option{
		eventqueue.WithName(def.Name),
		eventqueue.WithPolicy(b.Policy),
		eventqueue.WithCollector(b.Collector),
		eventqueue.WithLogger(log),
	}
	if def.Entitled {
		opts = append(opts, eventqueue.WithEntitlement(entitlement.Entitled))
	}
	if b.Notifier != nil {
		opts = append(opts, eventqueue.WithNotifier(b.Notifier(def.Name)))
	}

	if def.Entries > 0 || def.EntrySize > 0 {
		return eventqueue.NewWithEntries(def.Entries, def.EntrySize, opts...)
	}
	return eventqueue.NewWithCapacity(def.Capacity, opts...)
}

func (r *Registry) removeAll() {
	for _, name := range r.Names() {
		_ = r.Remove(name)
	}
}
