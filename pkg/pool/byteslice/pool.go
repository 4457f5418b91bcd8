// Package byteslice pools event buffers by power-of-two size class.
package byteslice

import (
	"sync"
	"sync/atomic"
)

const (
	minBitSize = 6  // 64 bytes
	steps      = 17 // 64B to 4MB, above the largest entitled ring

	minSize = 1 << minBitSize
	maxSize = 1 << (minBitSize + steps - 1)
)

// Pool hands out byte slices from size-class buckets. Slices larger than the
// biggest class are allocated directly and never retained.
type Pool struct {
	buckets [steps]sync.Pool
	gets    atomic.Uint64
	misses  atomic.Uint64
}

// New returns an empty pool.
func New() *Pool {
	p := &Pool{}
	for i := range p.buckets {
		size := minSize << i
		p.buckets[i].New = func() any {
			p.misses.Add(1)
			return make([]byte, size)
		}
	}
	return p
}

// Get returns a slice of length size. Its capacity is the bucket size.
func (p *Pool) Get(size int) []byte {
	if size < 0 {
		size = 0
	}
	p.gets.Add(1)

	idx := sizeToIndex(size)
	if idx >= steps {
		p.misses.Add(1)
		return make([]byte, size)
	}
	b := p.buckets[idx].Get().([]byte)
	return b[:size]
}

// Put returns b to the bucket matching its capacity. Slices whose capacity is
// not an exact bucket size are dropped.
func (p *Pool) Put(b []byte) {
	c := cap(b)
	if c < minSize || c > maxSize || c&(c-1) != 0 {
		return
	}
	p.buckets[sizeToIndex(c)].Put(b[:c])
}

// Stats is a snapshot of pool usage.
type Stats struct {
	Gets   uint64
	Misses uint64
}

// Stats returns how many slices were requested and how many were allocated.
func (p *Pool) Stats() Stats {
	return Stats{Gets: p.gets.Load(), Misses: p.misses.Load()}
}

// sizeToIndex returns the bucket whose size is the smallest one >= n.
func sizeToIndex(n int) int {
	n--
	n >>= minBitSize
	idx := 0
	for n > 0 {
		n >>= 1
		idx++
	}
	return idx
}

// BucketSize returns the size of bucket i, or 0 if i is out of range.
func BucketSize(i int) int {
	if i < 0 || i >= steps {
		return 0
	}
	return minSize << i
}

var defaultPool = New()

// Get returns a slice of length size from the shared pool.
func Get(size int) []byte {
	return defaultPool.Get(size)
}

// Put returns b to the shared pool.
func Put(b []byte) {
	defaultPool.Put(b)
}
