// Package capture implements a minimal framed archive format for batches
// of raw ASTERIX data blocks, e.g. captured off a live feed for replay
// into tests (SPEC_FULL.md's capture archives). It is deliberately thin:
// enough to round-trip a sequence of []byte data blocks with integrity
// checking, not a full transport demultiplexer (that remains an external
// collaborator per spec.md §1).
package capture

import (
	"sync"

	"github.com/skywave-atc/asterix/compress"
	"github.com/skywave-atc/asterix/crc"
	"github.com/skywave-atc/asterix/endian"
	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/internal/hash"
	"github.com/skywave-atc/asterix/internal/pool"
	"github.com/skywave-atc/asterix/trace"
)

var wireOrder = endian.GetBigEndianEngine()

// magic identifies a capture archive file/stream.
const magic uint32 = 0x41535458 // "ASTX"

// segmentHeaderLen is the length of the 13-byte on-disk header preceding each segment's
// (possibly compressed) payload: magic(4) | algorithm(1) | rawLen(4) | crc32(4).
const segmentHeaderLen = 4 + 1 + 4 + 4

// Segment is one decoded unit from a capture archive: a batch of raw
// ASTERIX data blocks concatenated together, plus its content hash for
// dedup against segments already seen in this process (spec.md's
// internal/hash use for "content-address stored blocks for replay dedup").
type Segment struct {
	Blocks   [][]byte
	Checksum uint32
	Digest   uint64
}

// EncodeSegment concatenates blocks, compresses the result with algorithm,
// and frames it with a header carrying the raw length and a CRC-32 over
// the uncompressed bytes (so integrity checking never depends on the
// chosen codec).
func EncodeSegment(algorithm compress.Algorithm, blocks [][]byte) ([]byte, error) {
	raw := concatBlocks(blocks)

	codec, err := compress.GetCodec(algorithm)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, err
	}

	header := make([]byte, segmentHeaderLen)
	wireOrder.PutUint32(header[0:4], magic)
	header[4] = byte(algorithm)
	wireOrder.PutUint32(header[5:9], uint32(len(raw)))
	wireOrder.PutUint32(header[9:13], crc.Checksum(0, raw))

	return append(header, compressed...), nil
}

func concatBlocks(blocks [][]byte) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	for _, b := range blocks {
		bb.MustWrite(b)
	}

	raw := make([]byte, bb.Len())
	copy(raw, bb.Bytes())

	return raw
}

// DigestSegment returns an xxhash digest of a segment's uncompressed bytes,
// used to deduplicate identical segments seen earlier in a replay session.
func DigestSegment(blocks [][]byte) uint64 {
	return hash.Bytes(concatBlocks(blocks))
}

// DecodeSegment reverses EncodeSegment: it validates the header, decompresses
// the payload, verifies the CRC-32 against the recovered raw bytes, and
// splits the raw bytes back into individual data blocks by walking each
// block's CAT/LEN_HI/LEN_LO header (spec.md §4.1).
func DecodeSegment(data []byte) (Segment, error) {
	if len(data) < segmentHeaderLen {
		return Segment{}, errs.ErrInvalidCaptureHeader
	}

	if wireOrder.Uint32(data[0:4]) != magic {
		return Segment{}, errs.ErrInvalidCaptureHeader
	}

	algorithm := compress.Algorithm(data[4])
	rawLen := wireOrder.Uint32(data[5:9])
	wantCRC := wireOrder.Uint32(data[9:13])

	codec, err := compress.GetCodec(algorithm)
	if err != nil {
		return Segment{}, errs.ErrUnsupportedCodec
	}

	raw, err := codec.Decompress(data[segmentHeaderLen:])
	if err != nil {
		return Segment{}, err
	}

	if uint32(len(raw)) != rawLen {
		return Segment{}, errs.ErrInvalidCaptureHeader
	}

	if got := crc.Checksum(0, raw); got != wantCRC {
		trace.Errorf("asterix: capture segment checksum mismatch: got %#x want %#x", got, wantCRC)
		return Segment{}, errs.ErrCaptureChecksum
	}

	blocks, err := splitBlocks(raw)
	if err != nil {
		return Segment{}, err
	}

	return Segment{
		Blocks:   blocks,
		Checksum: wantCRC,
		Digest:   hash.Bytes(raw),
	}, nil
}

// Index deduplicates segments across a replay session by content digest, so
// a capture stream that repeats an already-seen segment (common when
// replaying overlapping capture files) is decoded once.
type Index struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
}

// NewIndex creates an empty dedup index.
func NewIndex() *Index {
	return &Index{seen: make(map[uint64]struct{})}
}

// Seen reports whether digest has been recorded before, recording it if not.
func (idx *Index) Seen(digest uint64) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.seen[digest]; ok {
		return true
	}

	idx.seen[digest] = struct{}{}

	return false
}

// splitBlocks walks a run of concatenated ASTERIX data blocks, slicing each
// out by its own CAT(1) | LEN_HI(1) | LEN_LO(1) header (spec.md §4.1).
func splitBlocks(raw []byte) ([][]byte, error) {
	var blocks [][]byte

	for len(raw) > 0 {
		if len(raw) < 3 {
			return nil, errs.ErrMalformedBlock
		}

		length := int(wireOrder.Uint16(raw[1:3]))
		if length < 3 || length > len(raw) {
			return nil, errs.ErrMalformedBlock
		}

		blocks = append(blocks, raw[:length])
		raw = raw[length:]
	}

	return blocks, nil
}
