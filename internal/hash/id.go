// Package hash provides the xxHash64 keying used to give category ids O(1)
// lookup in the schema store and to digest capture archive segments for
// dedup.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of the given byte slice, used to
// content-address captured data blocks for replay dedup.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
