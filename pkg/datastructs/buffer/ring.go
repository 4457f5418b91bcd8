package buffer

import (
	"errors"
	"sync/atomic"

	"github.com/huynhanx03/go-eventqueue/pkg/utils"
)

var (
	// ErrRingEmpty is returned when trying to read from an empty ring.
	ErrRingEmpty = errors.New("ring buffer is empty")

	// ErrRingSize is returned when a ring is requested outside [minRingSize, maxRingSize].
	ErrRingSize = errors.New("ring buffer size out of range")

	// ErrCorruptRecord is returned when a record header points outside the region.
	ErrCorruptRecord = errors.New("ring buffer record header is corrupt")
)

// SharedRing is a bounded single-producer single-consumer queue of
// variable-length records stored in one contiguous byte region.
//
// Each record is a 4-byte little-endian length header followed by the payload,
// padded to a multiple of 4. When a record does not fit between tail and the
// end of the region it is placed at offset 0, and its header is also written at
// the old tail (when there is room) so the consumer knows to wrap.
//
// Only the producer moves tail and only the consumer moves head. Head and tail
// are byte offsets; head == tail means empty.
type SharedRing struct {
	data []byte
	size uint32
	head atomic.Uint32 // next record to read
	tail atomic.Uint32 // next free byte to write
}

// NewSharedRing allocates a ring whose data region is exactly size bytes.
func NewSharedRing(size uint32) (*SharedRing, error) {
	if size < minRingSize || size > maxRingSize {
		return nil, ErrRingSize
	}
	return &SharedRing{
		data: make([]byte, size),
		size: size,
	}, nil
}

// recordLen returns the space a payload of n bytes occupies, header included.
func recordLen(n uint32) (uint32, bool) {
	aligned, ok := utils.AlignUp4(n)
	if !ok || aligned > maxRingSize {
		return 0, false
	}
	return aligned + headerSize, true
}

// Enqueue copies p into the ring as one record.
// Returns false, leaving the ring untouched, if there is not enough free space.
// Must only be called from the producer.
//
// Free space is not contiguous: a record must fit either between tail and the
// end of the region or strictly before head. An empty ring whose head sits
// near the end can therefore reject a record smaller than its size; the next
// accepted record after the consumer catches up moves the offsets back.
func (r *SharedRing) Enqueue(p []byte) bool {
	if uint64(len(p)) > uint64(r.size) {
		return false
	}
	n := uint32(len(p))
	entry, ok := recordLen(n)
	if !ok {
		return false
	}

	head := r.head.Load()
	tail := r.tail.Load()

	var newTail uint32
	if tail >= head {
		switch {
		case entry <= r.size-tail:
			r.writeRecord(tail, p)
			newTail = tail + entry
		case head > entry:
			// Wrap: the record goes to the front, the marker stays at tail.
			r.writeRecord(0, p)
			if r.size-tail >= headerSize {
				utils.PutUint32(r.data[tail:], n)
			}
			newTail = entry
		default:
			return false
		}
	} else {
		// Strictly greater so that a full ring never looks empty.
		if head-tail <= entry {
			return false
		}
		r.writeRecord(tail, p)
		newTail = tail + entry
	}

	r.tail.Store(newTail)
	return true
}

func (r *SharedRing) writeRecord(off uint32, p []byte) {
	utils.PutUint32(r.data[off:], uint32(len(p)))
	copy(r.data[off+headerSize:], p)
}

// locate returns the offset and payload length of the record at head.
func (r *SharedRing) locate(head uint32) (uint32, uint32, error) {
	off := head
	if r.size-head < headerSize {
		off = 0
	} else {
		n := utils.BytesToUint32(r.data[head:])
		entry, ok := recordLen(n)
		if !ok || entry > r.size-head {
			off = 0
		}
	}

	n := utils.BytesToUint32(r.data[off:])
	entry, ok := recordLen(n)
	if !ok || entry > r.size-off {
		return 0, 0, ErrCorruptRecord
	}
	return off, n, nil
}

// Peek returns the payload of the next record without consuming it.
// The returned slice aliases the ring and is valid until the next Dequeue.
// Must only be called from the consumer.
func (r *SharedRing) Peek() ([]byte, error) {
	head := r.head.Load()
	if head == r.tail.Load() {
		return nil, ErrRingEmpty
	}

	off, n, err := r.locate(head)
	if err != nil {
		return nil, err
	}
	start := off + headerSize
	return r.data[start : start+n], nil
}

// Dequeue removes the next record and returns a copy of its payload.
// Must only be called from the consumer.
func (r *SharedRing) Dequeue() ([]byte, error) {
	off, n, err := r.next()
	if err != nil {
		return nil, err
	}
	start := off + headerSize
	out := make([]byte, n)
	copy(out, r.data[start:start+n])

	r.advance(off, n)
	return out, nil
}

// DequeueAppend removes the next record and appends its payload to dst,
// returning the extended slice. On error dst is returned unchanged.
// Must only be called from the consumer.
func (r *SharedRing) DequeueAppend(dst []byte) ([]byte, error) {
	off, n, err := r.next()
	if err != nil {
		return dst, err
	}
	start := off + headerSize
	dst = append(dst, r.data[start:start+n]...)

	r.advance(off, n)
	return dst, nil
}

func (r *SharedRing) next() (uint32, uint32, error) {
	head := r.head.Load()
	if head == r.tail.Load() {
		return 0, 0, ErrRingEmpty
	}
	return r.locate(head)
}

func (r *SharedRing) advance(off, n uint32) {
	entry, _ := recordLen(n)
	r.head.Store(off + entry)
}

// Head returns the consumer offset.
func (r *SharedRing) Head() uint32 {
	return r.head.Load()
}

// Tail returns the producer offset.
func (r *SharedRing) Tail() uint32 {
	return r.tail.Load()
}

// Size returns the size of the data region in bytes.
func (r *SharedRing) Size() uint32 {
	return r.size
}

// Used returns the number of bytes between head and tail, wrap padding included.
// It is a snapshot and may be stale by the time it returns.
func (r *SharedRing) Used() uint32 {
	head := r.head.Load()
	tail := r.tail.Load()
	if tail >= head {
		return tail - head
	}
	return r.size - head + tail
}

// IsEmpty reports whether the ring holds no records.
func (r *SharedRing) IsEmpty() bool {
	return r.head.Load() == r.tail.Load()
}
