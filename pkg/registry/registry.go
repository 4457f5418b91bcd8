// Package registry keeps named event queues. A queue has one canonical name
// and any number of aliases, so the same queue can be reached from several
// paths; Dump walks every path in one serialization context and each queue is
// emitted once.
package registry

import (
	"sort"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/datastructs/shardedmap"
	"github.com/huynhanx03/go-eventqueue/pkg/eventqueue"
	"github.com/huynhanx03/go-eventqueue/pkg/hash"
	"github.com/huynhanx03/go-eventqueue/pkg/serialize"
)

const defaultShards = 16

type entry struct {
	queue     *eventqueue.Queue
	canonical string
}

func (e entry) isAlias(path string) bool {
	return e.canonical != path
}

// Path is one name under which a queue is reachable.
type Path struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// Registry maps names and aliases to queues. It is safe for concurrent use.
type Registry struct {
	paths     *shardedmap.Map[string, entry]
	collector *eventqueue.Collector
	log       *zap.Logger
}

// New returns an empty registry. collector may be nil.
func New(log *zap.Logger, collector *eventqueue.Collector) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		paths:     shardedmap.New[string, entry](defaultShards, hash.String),
		collector: collector,
		log:       log,
	}
}

// Register adds q under its own name and the given aliases. Nothing is
// registered if any of the names is taken.
func (r *Registry) Register(q *eventqueue.Queue, aliases ...string) error {
	name := q.Name()
	e := entry{queue: q, canonical: name}

	if _, stored := r.paths.SetIfAbsent(name, e); !stored {
		return duplicate(name)
	}

	for i, alias := range aliases {
		if _, stored := r.paths.SetIfAbsent(alias, e); !stored {
			r.paths.Del(name)
			for _, added := range aliases[:i] {
				r.paths.Del(added)
			}
			return duplicate(alias)
		}
	}

	r.log.Info("queue registered",
		zap.String("queue", name),
		zap.Strings("aliases", aliases),
		zap.Uint32("capacity", q.Capacity()))
	return nil
}

// Alias adds another name for the queue reachable as target.
func (r *Registry) Alias(alias, target string) error {
	e, ok := r.paths.Get(target)
	if !ok {
		return notFound(target)
	}
	if _, stored := r.paths.SetIfAbsent(alias, e); !stored {
		return duplicate(alias)
	}
	return nil
}

// Lookup returns the queue reachable as path, by name or alias.
func (r *Registry) Lookup(path string) (*eventqueue.Queue, error) {
	e, ok := r.paths.Get(path)
	if !ok {
		return nil, notFound(path)
	}
	return e.queue, nil
}

// Remove unregisters the queue reachable as path together with all its
// names, and stops exporting its metrics.
func (r *Registry) Remove(path string) error {
	e, ok := r.paths.Get(path)
	if !ok {
		return notFound(path)
	}

	var stale []string
	r.paths.Do(func(k string, v entry) {
		if v.queue == e.queue {
			stale = append(stale, k)
		}
	})
	for _, k := range stale {
		r.paths.Del(k)
	}

	if r.collector != nil {
		r.collector.Remove(e.queue)
	}
	r.log.Info("queue removed", zap.String("queue", e.canonical))
	return nil
}

// Len returns the number of distinct queues.
func (r *Registry) Len() int {
	return len(r.Names())
}

// Names returns canonical queue names, sorted.
func (r *Registry) Names() []string {
	var names []string
	r.paths.Do(func(k string, v entry) {
		if !v.isAlias(k) {
			names = append(names, k)
		}
	})
	sort.Strings(names)
	return names
}

// Paths returns every name and alias with the canonical name it resolves to.
// Canonical names come first, then aliases, each group sorted.
func (r *Registry) Paths() []Path {
	var paths []Path
	r.paths.Do(func(k string, v entry) {
		paths = append(paths, Path{Name: k, Target: v.canonical})
	})
	sort.Slice(paths, func(i, j int) bool {
		ai := paths[i].Name != paths[i].Target
		aj := paths[j].Name != paths[j].Target
		if ai != aj {
			return !ai
		}
		return paths[i].Name < paths[j].Name
	})
	return paths
}

// Each calls fn for every queue once, in name order.
func (r *Registry) Each(fn func(name string, q *eventqueue.Queue)) {
	for _, name := range r.Names() {
		if e, ok := r.paths.Get(name); ok {
			fn(name, e.queue)
		}
	}
}

// Dump serializes every path into a fresh context. A queue reachable under
// several names is emitted under its canonical name and referenced from
// the others.
func (r *Registry) Dump() *serialize.Context {
	ctx := serialize.NewContext()
	for _, p := range r.Paths() {
		if e, ok := r.paths.Get(p.Name); ok {
			ctx.Visit(p.Name, e.queue)
		}
	}
	return ctx
}
