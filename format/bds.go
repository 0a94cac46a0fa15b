package format

import (
	"fmt"

	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/render"
)

// BDSRegister binds one Mode-S BDS sub-register to its selector value and
// decode node (spec.md §4.4: "decoded by id_num lookup into a sibling
// set"). The selector is matched against the payload's first byte.
type BDSRegister struct {
	Name     string
	Selector byte
	Node     Node
}

// BDS is a format node whose first payload byte selects a Mode-S
// sub-register among a fixed sibling set (spec.md §4.4, §4.6). An unknown
// selector yields errs.ErrUnknownItem. Each register has exactly one
// Selector value, set by whoever builds the node; schema.ParseIDNum returns
// both the decimal and hex parse of an id_num string, but nothing in the
// schema package registers both values as selectors automatically.
type BDS struct {
	Name      string
	Registers []BDSRegister
}

var _ Node = (*BDS)(nil)

func (b *BDS) Kind() Kind { return KindBDS }

// Decode implements Node, dispatching on the selector byte.
func (b *BDS) Decode(data []byte, header string) (int, *Value, error) {
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("%s: %w", header, errs.ErrTruncated)
	}

	selector := data[0]

	for _, reg := range b.Registers {
		if reg.Selector != selector {
			continue
		}

		regHeader := render.Header(header, reg.Name)

		consumed, regValue, err := reg.Node.Decode(data[1:], regHeader)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: %w", header, err)
		}

		regValue.Name = reg.Name

		value := &Value{
			Header:   header,
			Name:     b.Name,
			Raw:      data[:1+consumed],
			Children: []*Value{regValue},
		}

		return 1 + consumed, value, nil
	}

	return 0, nil, fmt.Errorf("%s: bds selector 0x%02x: %w", header, selector, errs.ErrUnknownItem)
}

// Render implements Node.
func (b *BDS) Render(value *Value, buf *render.Buffer) error {
	if len(value.Children) == 0 {
		return nil
	}

	selected := value.Children[0]

	for _, reg := range b.Registers {
		if reg.Name != selected.Name {
			continue
		}

		return reg.Node.Render(selected, buf)
	}

	return nil
}

// Describe implements Node.
func (b *BDS) Describe(headerPrefix string) string {
	desc := headerPrefix + ": bds\n"
	for _, reg := range b.Registers {
		desc += fmt.Sprintf("  [0x%02x] %s\n", reg.Selector, reg.Name)
	}

	return desc
}
