package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skywave-atc/asterix/encoding"
	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/render"
)

// Bitfield describes one leaf scalar inside a Fixed node's byte window
// (spec.md §4.4). BitFrom/BitTo are 0-based, MSB-first, and numbered
// contiguously across the whole window (bit 0 is the MSB of the window's
// first byte) — see ExtractBits. ByteFrom is carried only as descriptive
// metadata for Describe; extraction never needs it since BitFrom/BitTo
// already span the full window.
type Bitfield struct {
	Name        string
	Description string
	ByteFrom    int
	BitFrom     int
	BitTo       int
	Encoding    Encoding
	Scale       float64 // 0 means "no scaling" (treated as 1)
	Unit        string
	EnumMap     map[int64]string // nil if this bitfield has no enumeration
}

func (bf Bitfield) width() int { return bf.BitTo - bf.BitFrom + 1 }

func (bf Bitfield) scale() float64 {
	if bf.Scale == 0 {
		return 1
	}

	return bf.Scale
}

// Fixed is a format node that consumes exactly LengthBytes and decodes a
// fixed set of bitfields out of that window (spec.md §4.4, §8 property 3).
type Fixed struct {
	Name      string
	LengthBytes int
	Bitfields []Bitfield
	Filter    Filter
}

var _ Node = (*Fixed)(nil)

func (f *Fixed) Kind() Kind { return KindFixed }

func (f *Fixed) filter() Filter {
	if f.Filter == nil {
		return AcceptAll
	}

	return f.Filter
}

// Decode implements Node. consumed is always LengthBytes on success
// (spec.md §8 invariant 3); a short read returns errs.ErrTruncated.
func (f *Fixed) Decode(data []byte, header string) (int, *Value, error) {
	if len(data) < f.LengthBytes {
		return 0, nil, fmt.Errorf("%s: need %d bytes, have %d: %w", header, f.LengthBytes, len(data), errs.ErrTruncated)
	}

	window := data[:f.LengthBytes]
	value := &Value{Header: header, Name: f.Name, Raw: window}

	for _, bf := range f.Bitfields {
		field, err := decodeBitfield(window, bf)
		if err != nil {
			return 0, nil, fmt.Errorf("%s:%s: %w", header, bf.Name, err)
		}

		value.Fields = append(value.Fields, field)
	}

	return f.LengthBytes, value, nil
}

func decodeBitfield(window []byte, bf Bitfield) (Field, error) {
	field := Field{
		Name:        bf.Name,
		Description: bf.Description,
		Encoding:    bf.Encoding,
		Unit:        bf.Unit,
	}

	raw := ExtractBits(window, bf.BitFrom, bf.BitTo)

	switch bf.Encoding {
	case EncodingSigned:
		field.Raw = SignExtend(raw, bf.width())
		field.Scaled = float64(field.Raw) * bf.scale()
	case EncodingASCII:
		field.Text = encoding.ASCII(byteSpan(window, bf.BitFrom, bf.BitTo))
	case EncodingSixBit:
		field.Text = encoding.SixBit(byteSpan(window, bf.BitFrom, bf.BitTo))
	case EncodingHex:
		field.Raw = int64(raw)
		field.Text = encoding.Hex(raw, bf.width())
	case EncodingOctal:
		field.Raw = int64(raw)
		field.Text = encoding.Octal(raw, bf.width())
	case EncodingUnsigned:
		fallthrough
	default:
		field.Raw = int64(raw)
		field.Scaled = float64(raw) * bf.scale()
	}

	if bf.EnumMap != nil {
		if label, ok := bf.EnumMap[field.Raw]; ok {
			field.Label = label
		} else {
			field.EnumMiss = true
		}
	}

	return field, nil
}

// byteSpan returns the byte-aligned slice of window that contains the bit
// range [bitFrom, bitTo], used by the text encodings that operate on whole
// bytes rather than an extracted integer.
func byteSpan(window []byte, bitFrom, bitTo int) []byte {
	byteFrom := bitFrom / 8
	byteTo := bitTo / 8

	return window[byteFrom : byteTo+1]
}

// Render implements Node, writing each non-filtered field as one leaf.
func (f *Fixed) Render(value *Value, buf *render.Buffer) error {
	for _, field := range value.Fields {
		if !f.filter().Accept(field.Name) {
			continue
		}

		header := value.Header
		if field.Name != "" {
			header = render.Header(value.Header, field.Name)
		}

		text, quoted := formatField(field)
		buf.WriteLeaf(header, field.Name, text, quoted)
	}

	return nil
}

func formatField(field Field) (text string, quoted bool) {
	if field.Label != "" {
		return field.Label, true
	}

	switch field.Encoding {
	case EncodingASCII, EncodingSixBit:
		return field.Text, true
	case EncodingHex, EncodingOctal:
		return field.Text, true
	case EncodingSigned, EncodingUnsigned:
		if field.Scaled != float64(int64(field.Scaled)) {
			s := strconv.FormatFloat(field.Scaled, 'f', 6, 64)
			return strings.TrimRight(strings.TrimRight(s, "0"), "."), false
		}

		return strconv.FormatInt(int64(field.Scaled), 10), false
	default:
		return strconv.FormatInt(field.Raw, 10), false
	}
}

// Describe implements Node.
func (f *Fixed) Describe(headerPrefix string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: fixed(%d bytes)\n", headerPrefix, f.LengthBytes)

	for _, bf := range f.Bitfields {
		fmt.Fprintf(&sb, "  %s: bits[%d:%d] %s\n", bf.Name, bf.BitFrom, bf.BitTo, bf.Encoding)
	}

	return sb.String()
}
