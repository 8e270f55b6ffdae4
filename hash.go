package hashset

import "github.com/cespare/xxhash/v2"

// Integer is the set of integer types Int can hash.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int hashes an integer to itself, so consecutive values fill consecutive
// buckets.
func Int[T Integer](v T) uint64 {
	return uint64(v)
}

// String hashes s with xxhash.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Bytes hashes b with xxhash.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
