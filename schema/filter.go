package schema

import "github.com/skywave-atc/asterix/format"

// filterState holds a Category's per-item-field filter flags (spec.md
// §4.7). filterOutItem(id, field) hides field when item id renders; an
// empty field hides the whole item.
type filterState struct {
	hiddenItems map[string]bool            // item id -> entirely hidden
	hiddenField map[string]map[string]bool  // item id -> field name -> hidden
}

func newFilterState() *filterState {
	return &filterState{
		hiddenItems: make(map[string]bool),
		hiddenField: make(map[string]map[string]bool),
	}
}

// ensureItem pre-allocates itemID's field map so fieldFilter's returned
// itemFieldFilter always holds a live map reference, even when
// filterOutItem is called for that item after the filter is attached to
// its format tree at load time.
func (f *filterState) ensureItem(itemID string) {
	if f.hiddenField[itemID] == nil {
		f.hiddenField[itemID] = make(map[string]bool)
	}
}

func (f *filterState) filterOutItem(itemID, fieldName string) {
	if fieldName == "" {
		f.hiddenItems[itemID] = true
		return
	}

	f.ensureItem(itemID)
	f.hiddenField[itemID][fieldName] = true
}

// itemAccept reports whether itemID may be rendered at all.
func (f *filterState) itemAccept(itemID string) bool {
	return !f.hiddenItems[itemID]
}

// fieldFilter returns a format.Filter scoped to one item's field flags,
// implementing format.Filter so it can be attached directly to that
// item's format tree (spec.md §4.4's filter_accept contract).
func (f *filterState) fieldFilter(itemID string) itemFieldFilter {
	return itemFieldFilter{hidden: f.hiddenField[itemID]}
}

// itemFieldFilter implements format.Filter over one item's hidden-field set.
type itemFieldFilter struct {
	hidden map[string]bool
}

var _ format.Filter = itemFieldFilter{}

func (i itemFieldFilter) Accept(fieldName string) bool {
	return !i.hidden[fieldName]
}
