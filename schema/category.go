// Package schema implements the Definition Store (spec.md §2, §3): the
// in-memory, read-only-after-load collection of Category schemas, each
// holding its DataItemDescriptions, UAPs, and filter state, plus the
// schema loader interface external definition-file readers call against
// (spec.md §6).
package schema

import (
	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/format"
)

// Rule is a DataItemDescription's presence requirement within its UAP.
type Rule uint8

const (
	RuleUnknown Rule = iota
	RuleOptional
	RuleMandatory
)

// BDSNumericBase records which base a category's BDS children's id_num
// strings were authored against (spec.md §9 Open Question: the base is
// undocumented, so the loader records its choice here rather than
// guessing at dispatch time).
type BDSNumericBase uint8

const (
	BDSBaseUnspecified BDSNumericBase = iota
	BDSBaseDecimal
	BDSBaseHex
)

// DataItemDescription is one data item a Category may carry (spec.md §3).
// It is created during schema load and lives for the lifetime of its
// owning Category.
type DataItemDescription struct {
	ID             string // three-character canonical string, e.g. "010"
	IDNum          int64  // numeric equivalent, used only by BDS dispatch
	Name           string
	Definition     string
	FormatLabel    string
	Note           string
	Rule           Rule
	Format         format.Node
	BDSNumericBase BDSNumericBase
}

// Category is identified by an integer id in [0,255] and owns an ordered
// sequence of DataItemDescriptions and UAPs plus its own filter state
// (spec.md §3, §4.7). Data-item IDs are unique within a category.
type Category struct {
	ID    int
	Items []*DataItemDescription
	UAPs  []*UAP

	filter *filterState

	byItemID map[string]*DataItemDescription
}

func newCategory(id int) *Category {
	return &Category{
		ID:       id,
		filter:   newFilterState(),
		byItemID: make(map[string]*DataItemDescription),
	}
}

// Item looks up a DataItemDescription by its canonical ID string.
func (c *Category) Item(id string) (*DataItemDescription, bool) {
	d, ok := c.byItemID[id]

	return d, ok
}

// addItem registers a new DataItemDescription, rejecting duplicate IDs
// within the category (spec.md §3 invariant: "data-item IDs are unique
// within a category").
func (c *Category) addItem(id string) (*DataItemDescription, error) {
	if _, exists := c.byItemID[id]; exists {
		return nil, errs.ErrDuplicateItemID
	}

	d := &DataItemDescription{ID: id, Rule: RuleUnknown}
	c.byItemID[id] = d
	c.Items = append(c.Items, d)
	c.filter.ensureItem(id)

	return d, nil
}
