package shardedmap

import (
	"sync"

	"github.com/huynhanx03/go-eventqueue/pkg/utils"
)

// Map is a thread-safe map split into independently locked shards.
type Map[K comparable, V any] struct {
	shards []*lockedShard[K, V]
	mask   uint64
	hasher func(K) uint64
}

type lockedShard[K comparable, V any] struct {
	sync.RWMutex
	data map[K]V

	// keeps neighbouring shards off the same cache line
	pad [64]byte
}

// New creates a Map with shards rounded up to a power of two.
// A non-positive count selects 16 shards.
func New[K comparable, V any](shards int, hashFn func(K) uint64) *Map[K, V] {
	if shards <= 0 {
		shards = 16
	}
	n := utils.CeilToPowerOfTwo(shards)
	m := &Map[K, V]{
		shards: make([]*lockedShard[K, V], n),
		mask:   uint64(n - 1),
		hasher: hashFn,
	}
	for i := range m.shards {
		m.shards[i] = &lockedShard[K, V]{data: make(map[K]V)}
	}
	return m
}

func (m *Map[K, V]) shard(key K) *lockedShard[K, V] {
	return m.shards[m.hasher(key)&m.mask]
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	s := m.shard(key)
	s.RLock()
	v, ok := s.data[key]
	s.RUnlock()
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (m *Map[K, V]) Set(key K, value V) {
	s := m.shard(key)
	s.Lock()
	s.data[key] = value
	s.Unlock()
}

// SetIfAbsent stores value only if key is unused. It returns the value now
// stored and whether it was this call that stored it.
func (m *Map[K, V]) SetIfAbsent(key K, value V) (V, bool) {
	s := m.shard(key)
	s.Lock()
	defer s.Unlock()

	if old, ok := s.data[key]; ok {
		return old, false
	}
	s.data[key] = value
	return value, true
}

// Del removes key and returns the value it held.
func (m *Map[K, V]) Del(key K) (V, bool) {
	s := m.shard(key)
	s.Lock()
	v, ok := s.data[key]
	delete(s.data, key)
	s.Unlock()
	return v, ok
}

// Len returns the number of entries. Shards are counted one at a time, so the
// result is not atomic with respect to concurrent writers.
func (m *Map[K, V]) Len() int {
	total := 0
	for _, s := range m.shards {
		s.RLock()
		total += len(s.data)
		s.RUnlock()
	}
	return total
}

// Do calls fn for every entry, holding one shard's read lock at a time.
// fn must not modify the map.
func (m *Map[K, V]) Do(fn func(K, V)) {
	for _, s := range m.shards {
		s.RLock()
		for k, v := range s.data {
			fn(k, v)
		}
		s.RUnlock()
	}
}

// Keys returns a snapshot of all keys in no particular order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Do(func(k K, _ V) {
		keys = append(keys, k)
	})
	return keys
}
