package format

import (
	"fmt"

	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/render"
)

// CompoundChild binds one subfield of a Compound node to its 1-based
// presence-bit position (spec.md §4.4: "presence-bit indices are 1-based
// and skip continuation bits").
type CompoundChild struct {
	Name     string
	BitIndex int
	Node     Node
}

// Compound is a format node that decodes a Variable-style primary subfield
// as a presence bitmap, then dispatches to each present child in MSB-first
// bit order (spec.md §4.4, §8 end-to-end scenario 3).
type Compound struct {
	Name     string
	Primary  *Variable
	Children []CompoundChild
}

var _ Node = (*Compound)(nil)

func (c *Compound) Kind() Kind { return KindCompound }

// Decode implements Node: consumes the primary subfield, then every present child in schema order.
func (c *Compound) Decode(data []byte, header string) (int, *Value, error) {
	primaryConsumed, primaryValue, err := c.Primary.Decode(data, header+":primary")
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", header, err)
	}

	present := presenceBits(primaryValue)

	value := &Value{Header: header, Name: c.Name}
	value.Children = append(value.Children, primaryValue)

	total := primaryConsumed
	for _, child := range c.Children {
		if !present[child.BitIndex] {
			continue
		}

		childHeader := render.Header(header, child.Name)

		consumed, childValue, err := child.Node.Decode(data[total:], childHeader)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: %w", header, err)
		}

		childValue.Name = child.Name
		value.Children = append(value.Children, childValue)
		total += consumed
	}

	if total > len(data) {
		return 0, nil, fmt.Errorf("%s: children consumed %d bytes, only %d available: %w", header, total, len(data), errs.ErrOverflow)
	}

	value.Raw = data[:total]

	return total, value, nil
}

// presenceBits walks a decoded Variable primary subfield and returns the
// set of 1-based bit indices that are set, skipping each byte's low-order
// continuation bit.
func presenceBits(primary *Value) map[int]bool {
	set := make(map[int]bool)

	bit := 1
	for _, part := range primary.Children {
		if len(part.Raw) == 0 {
			continue
		}

		b := part.Raw[0]
		for pos := 7; pos >= 1; pos-- {
			if b&(1<<uint(pos)) != 0 {
				set[bit] = true
			}
			bit++
		}
	}

	return set
}

// Render implements Node, rendering only present children in schema order.
func (c *Compound) Render(value *Value, buf *render.Buffer) error {
	buf.OpenObject(c.Name)
	defer buf.CloseObject()

	byName := make(map[string]*Value, len(value.Children))
	for _, child := range value.Children[1:] {
		byName[child.Name] = child
	}

	for _, child := range c.Children {
		v, ok := byName[child.Name]
		if !ok {
			continue
		}

		if err := child.Node.Render(v, buf); err != nil {
			return err
		}
	}

	return nil
}

// Describe implements Node.
func (c *Compound) Describe(headerPrefix string) string {
	desc := headerPrefix + ": compound\n"
	for _, child := range c.Children {
		desc += child.Node.Describe(headerPrefix + ":" + child.Name)
	}

	return desc
}
