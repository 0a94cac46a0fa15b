package format

import (
	"fmt"

	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/render"
)

// Explicit is a format node whose first byte is a total length L
// (including itself); the remaining L-1 bytes are handed to Inner
// (spec.md §4.4, §8 invariant 6). L=1 is a valid edge case: the node
// consumes one byte and yields an empty inner value.
type Explicit struct {
	Name  string
	Inner Node
}

var _ Node = (*Explicit)(nil)

func (e *Explicit) Kind() Kind { return KindExplicit }

// Decode implements Node. consumed always equals the first byte's value.
func (e *Explicit) Decode(data []byte, header string) (int, *Value, error) {
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("%s: %w", header, errs.ErrTruncated)
	}

	l := int(data[0])
	if l < 1 {
		return 0, nil, fmt.Errorf("%s: explicit length %d: %w", header, l, errs.ErrMalformedBlock)
	}

	if len(data) < l {
		return 0, nil, fmt.Errorf("%s: %w", header, errs.ErrTruncated)
	}

	value := &Value{Header: header, Name: e.Name, Raw: data[:l]}

	if l > 1 {
		_, innerValue, err := e.Inner.Decode(data[1:l], header)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: %w", header, err)
		}

		value.Children = append(value.Children, innerValue)
	}

	return l, value, nil
}

// Render implements Node.
func (e *Explicit) Render(value *Value, buf *render.Buffer) error {
	for _, child := range value.Children {
		if err := e.Inner.Render(child, buf); err != nil {
			return err
		}
	}

	return nil
}

// Describe implements Node.
func (e *Explicit) Describe(headerPrefix string) string {
	return headerPrefix + ": explicit(" + e.Inner.Describe(headerPrefix) + ")"
}
