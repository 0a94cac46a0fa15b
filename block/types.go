// Package block implements the Block Parser and Record Parser (spec.md
// §4.1, §4.3): framing a byte stream into DataBlocks, each carving its
// payload into DataRecords by resolving the active UAP, reading the
// FSPEC, and dispatching each present item to its Format node.
package block

import (
	"github.com/skywave-atc/asterix/format"
	"github.com/skywave-atc/asterix/schema"
)

// Item is one decoded data item within a record, keyed by its canonical ID
// and carrying the Format Tree's decoded Value (spec.md §3: "decoded item
// table keyed by item ID preserving FSPEC order").
type Item struct {
	ID    string
	Value *format.Value
}

// DataRecord is one decoded ASTERIX record (spec.md §3).
type DataRecord struct {
	Category    int
	UAP         *schema.UAP
	Items       []Item
	Consumed    int
	FormatOK    bool
	Diagnostics []string
}

// DataBlock is a parsed ASTERIX data block (spec.md §3).
type DataBlock struct {
	Category  int
	Length    int
	Timestamp float64
	FormatOK  bool
	Records   []DataRecord
}
