package format

import (
	"fmt"

	"github.com/skywave-atc/asterix/render"
)

// Variable is a format node that chains Fixed-style parts, each ending in a
// low-order continuation bit: 1 means another part follows, 0 means this
// was the last part (spec.md §4.4, §8 invariant 4). In practice every
// ASTERIX category uses a 1-byte part, but the part's shape is schema-driven
// like any other Fixed node.
type Variable struct {
	Name string
	Part *Fixed
}

var _ Node = (*Variable)(nil)

func (v *Variable) Kind() Kind { return KindVariable }

// Decode implements Node, repeatedly decoding Part until a consumed part's
// low-order bit (the last bit of its byte window) is 0.
func (v *Variable) Decode(data []byte, header string) (int, *Value, error) {
	value := &Value{Header: header, Name: v.Name}

	total := 0
	for {
		partHeader := fmt.Sprintf("%s[%d]", header, len(value.Children))

		consumed, partValue, err := v.Part.Decode(data[total:], partHeader)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: %w", header, err)
		}

		value.Children = append(value.Children, partValue)
		total += consumed

		last := partValue.Raw[len(partValue.Raw)-1]
		if last&0x01 == 0 {
			break
		}
	}

	value.Raw = data[:total]

	return total, value, nil
}

// Render implements Node, rendering each part in sequence under the same container.
func (v *Variable) Render(value *Value, buf *render.Buffer) error {
	for _, child := range value.Children {
		if err := v.Part.Render(child, buf); err != nil {
			return err
		}
	}

	return nil
}

// Describe implements Node.
func (v *Variable) Describe(headerPrefix string) string {
	return headerPrefix + ": variable(" + v.Part.Describe(headerPrefix) + ")"
}
