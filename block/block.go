package block

import (
	"fmt"

	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/schema"
	"github.com/skywave-atc/asterix/trace"
)

// ParseBlock decodes one framed data block (spec.md §4.1):
// parse_block(category, length, bytes, timestamp) -> DataBlock.
//
// Preconditions: length >= 3 and len(data) >= length. category must be
// the Category the block's CAT byte resolved to; callers look that up via
// schema.Store.Category before calling ParseBlock (spec.md §7
// UnknownCategory is a Store-lookup error, not a ParseBlock error).
func ParseBlock(category *schema.Category, length int, data []byte, timestamp float64) (DataBlock, error) {
	if length < 3 {
		return DataBlock{}, fmt.Errorf("length %d < 3: %w", length, errs.ErrMalformedBlock)
	}

	if len(data) < length {
		return DataBlock{}, fmt.Errorf("declared length %d exceeds %d available bytes: %w", length, len(data), errs.ErrMalformedBlock)
	}

	dataBlock := DataBlock{
		Category:  category.ID,
		Length:    length,
		Timestamp: timestamp,
		FormatOK:  true,
	}

	payload := data[3:length]

	for len(payload) > 0 {
		record, consumed, err := parseRecord(category, payload)
		if err != nil {
			dataBlock.FormatOK = false
			trace.Errorf("asterix: CAT%d block parse stopped: %s", category.ID, err.Error())

			break
		}

		dataBlock.Records = append(dataBlock.Records, record)
		payload = payload[consumed:]

		if !record.FormatOK {
			dataBlock.FormatOK = false
		}
	}

	return dataBlock, nil
}
