package asterix

import (
	"fmt"

	"github.com/skywave-atc/asterix/block"
	"github.com/skywave-atc/asterix/endian"
	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/render"
	"github.com/skywave-atc/asterix/schema"
)

var wireOrder = endian.GetBigEndianEngine()

// NewStore creates an empty Definition Store. Categories are populated by
// calling Store.AddCategory and the schema loader interface it returns
// (schema/loader.go); this package does not read definition files itself.
func NewStore() *schema.Store {
	return schema.NewStore()
}

// DataBlock is the decoded result of one ASTERIX data block.
type DataBlock = block.DataBlock

// Decode parses the single data block at the front of data: it reads the
// CAT byte, looks up the matching Category in store, and decodes the block
// per that category's UAPs (spec.md §4.1, §7). It returns the decoded
// block and the number of bytes consumed, so callers decoding a
// concatenated stream can advance past it and call Decode again.
func Decode(store *schema.Store, data []byte, timestamp float64) (DataBlock, int, error) {
	if len(data) < 3 {
		return DataBlock{}, 0, fmt.Errorf("data shorter than block header: %w", errs.ErrMalformedBlock)
	}

	category, err := store.Category(int(data[0]))
	if err != nil {
		return DataBlock{}, 0, err
	}

	length := int(wireOrder.Uint16(data[1:3]))

	decoded, err := block.ParseBlock(category, length, data, timestamp)
	if err != nil {
		return DataBlock{}, 0, err
	}

	return decoded, length, nil
}

// DecodeAll repeatedly calls Decode over data until it is exhausted,
// returning every block decoded. It stops and returns the error from the
// first block it cannot even frame (an unknown category or malformed
// length); blocks already decoded are still returned.
func DecodeAll(store *schema.Store, data []byte, timestamp float64) ([]DataBlock, error) {
	var blocks []DataBlock

	for len(data) > 0 {
		decoded, consumed, err := Decode(store, data, timestamp)
		if err != nil {
			return blocks, err
		}

		blocks = append(blocks, decoded)
		data = data[consumed:]
	}

	return blocks, nil
}

// Render renders a decoded DataBlock as TEXT, JSON, or XML (spec.md §4.5),
// looking up each item's Format node back through category so rendering
// can run independently of the Value tree's own lifetime.
func Render(category *schema.Category, dataBlock DataBlock, kind render.Kind) (string, error) {
	buf := render.NewBuffer(kind)
	defer buf.Release()

	buf.OpenArray(fmt.Sprintf("CAT%03d", dataBlock.Category))

	for _, record := range dataBlock.Records {
		buf.OpenArrayElement("record")

		for _, item := range record.Items {
			if !category.ItemAccept(item.ID) {
				continue
			}

			desc, ok := category.Item(item.ID)
			if !ok || desc.Format == nil {
				continue
			}

			if err := desc.Format.Render(item.Value, buf); err != nil {
				return "", err
			}
		}

		buf.CloseArrayElement()
	}

	buf.CloseArray()

	return buf.String(), nil
}
