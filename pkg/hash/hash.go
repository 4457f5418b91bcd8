// Package hash provides the key hashing used by sharded maps.
package hash

import (
	"github.com/cespare/xxhash/v2"
)

// Key is the set of key types Sum64 accepts.
type Key interface {
	string | []byte | uint64 | uint32 | int
}

// Sum64 hashes key. Strings and byte slices use xxhash; integers are mixed so
// that sequential values spread across shards.
func Sum64[K Key](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case []byte:
		return xxhash.Sum64(k)
	case uint64:
		return mix(k)
	case uint32:
		return mix(uint64(k))
	case int:
		return mix(uint64(k))
	default:
		panic("hash: unsupported key type")
	}
}

// String hashes a string key.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
