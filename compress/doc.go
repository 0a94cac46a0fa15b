// Package compress provides compression codecs for capture-archive segments.
//
// The capture package (github.com/skywave-atc/asterix/capture) stores
// batches of raw ASTERIX data blocks captured off a live feed for replay into
// tests or offline analysis. Each archive segment is compressed independently
// using one of these algorithms:
//
//   - None: No compression (fastest, largest) — use when segments are small
//     or CPU is more critical than storage.
//   - Zstd: Best compression ratio, moderate speed — use for long-term,
//     cold-storage captures.
//   - S2: Balanced compression and speed — use for segments written
//     continuously from a live feed.
//   - LZ4: Fastest decompression — use when captures are replayed often
//     (e.g. as fixtures in a test suite).
//
// # Architecture
//
// Three interfaces compose the public surface:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec and GetCodec resolve an Algorithm (as stored in a capture
// header) to a concrete Codec.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress
