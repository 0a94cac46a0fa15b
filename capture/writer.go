package capture

import (
	"github.com/skywave-atc/asterix/compress"
	"github.com/skywave-atc/asterix/internal/options"
)

// defaultMaxSegmentSize bounds how many raw bytes a Writer accumulates
// before flushing a segment, so one archive never holds an unbounded
// backlog of un-flushed blocks in memory.
const defaultMaxSegmentSize = 1 << 20 // 1 MiB

// WriterConfig holds a Writer's tunables, configured through WriterOption.
type WriterConfig struct {
	Algorithm      compress.Algorithm
	MaxSegmentSize int
	Dedup          *Index
}

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*WriterConfig]

// WithAlgorithm selects the compression algorithm new segments are framed with.
func WithAlgorithm(algorithm compress.Algorithm) WriterOption {
	return options.NoError(func(c *WriterConfig) { c.Algorithm = algorithm })
}

// WithMaxSegmentSize overrides the raw-byte threshold that triggers an
// automatic flush.
func WithMaxSegmentSize(n int) WriterOption {
	return options.NoError(func(c *WriterConfig) { c.MaxSegmentSize = n })
}

// WithDedup attaches a dedup Index: segments whose content digest was
// already seen are dropped instead of encoded again.
func WithDedup(idx *Index) WriterOption {
	return options.NoError(func(c *WriterConfig) { c.Dedup = idx })
}

// Writer accumulates raw data blocks and flushes them into encoded,
// framed segments once MaxSegmentSize is reached (or Flush is called
// explicitly), optionally skipping segments already seen by a dedup Index.
type Writer struct {
	cfg WriterConfig

	pending     [][]byte
	pendingSize int
	segments    [][]byte
}

// NewWriter creates a Writer with the given options applied over sensible
// defaults (no compression, 1 MiB segments, no dedup).
func NewWriter(opts ...WriterOption) (*Writer, error) {
	cfg := WriterConfig{
		Algorithm:      compress.AlgorithmNone,
		MaxSegmentSize: defaultMaxSegmentSize,
	}

	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Writer{cfg: cfg}, nil
}

// Add appends one raw data block to the pending segment, flushing
// automatically once MaxSegmentSize is reached.
func (w *Writer) Add(block []byte) error {
	w.pending = append(w.pending, block)
	w.pendingSize += len(block)

	if w.pendingSize >= w.cfg.MaxSegmentSize {
		return w.Flush()
	}

	return nil
}

// Flush encodes and appends any pending blocks as one segment, skipping
// the encode entirely if a dedup Index reports the content as already seen.
func (w *Writer) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}

	defer func() {
		w.pending = nil
		w.pendingSize = 0
	}()

	if w.cfg.Dedup != nil && w.cfg.Dedup.Seen(DigestSegment(w.pending)) {
		return nil
	}

	encoded, err := EncodeSegment(w.cfg.Algorithm, w.pending)
	if err != nil {
		return err
	}

	w.segments = append(w.segments, encoded)

	return nil
}

// Segments returns every encoded segment produced so far.
func (w *Writer) Segments() [][]byte {
	return w.segments
}
