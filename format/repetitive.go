package format

import (
	"fmt"

	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/render"
)

// Repetitive is a format node whose first byte is a repetition count N,
// followed by N copies of Inner (spec.md §4.4, §8 invariant 5). N=0 is a
// valid edge case: the node consumes exactly its count byte and yields no
// elements (spec.md §8 boundary behaviors).
type Repetitive struct {
	Name  string
	Inner Node
}

var _ Node = (*Repetitive)(nil)

func (r *Repetitive) Kind() Kind { return KindRepetitive }

// Decode implements Node. consumed = 1 + N*inner.length.
func (r *Repetitive) Decode(data []byte, header string) (int, *Value, error) {
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("%s: %w", header, errs.ErrTruncated)
	}

	n := int(data[0])
	value := &Value{Header: header, Name: r.Name}

	total := 1
	for i := 0; i < n; i++ {
		elemHeader := fmt.Sprintf("%s[%d]", header, i)

		consumed, elemValue, err := r.Inner.Decode(data[total:], elemHeader)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: %w", header, err)
		}

		value.Children = append(value.Children, elemValue)
		total += consumed
	}

	value.Raw = data[:total]

	return total, value, nil
}

// Render implements Node, wrapping the decoded elements in a named array.
func (r *Repetitive) Render(value *Value, buf *render.Buffer) error {
	buf.OpenArray(r.Name)

	for _, child := range value.Children {
		buf.OpenArrayElement(r.Name)
		if err := r.Inner.Render(child, buf); err != nil {
			return err
		}
		buf.CloseArrayElement()
	}

	buf.CloseArray()

	return nil
}

// Describe implements Node.
func (r *Repetitive) Describe(headerPrefix string) string {
	return headerPrefix + ": repetitive(" + r.Inner.Describe(headerPrefix) + ")"
}
