// Package crc implements the chainable CRC-32 used by capture archive
// segments (spec.md §4.6): standard IEEE 802.3 polynomial, a precomputed
// 256-entry table, and a previous-CRC parameter so a checksum can be
// extended incrementally (spec.md §8 invariant 7:
// crc32(a++b, 0) = crc32(b, crc32(a, 0))).
package crc

import "hash/crc32"

// Checksum returns the IEEE CRC-32 of data, continuing from previous (pass
// 0 for a fresh checksum). hash/crc32's IEEETable already implements the
// standard 802.3 polynomial with a 256-entry lookup table, so there is no
// third-party library to reach for here — this is the one component in the
// module built directly on the standard library (see DESIGN.md).
func Checksum(previous uint32, data []byte) uint32 {
	return crc32.Update(previous, crc32.IEEETable, data)
}
