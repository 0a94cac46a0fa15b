package schema

import "github.com/skywave-atc/asterix/format"

// This file is the schema loader interface spec.md §6 names explicitly:
// add_category, category.add_item, description.set_*, attach_format,
// category.new_uap, uap.add_slot, uap.set_predicate. An external
// definitions-file reader (out of scope per spec.md §1) builds a Store by
// calling these in sequence; the core never parses definition files
// itself.

// AddCategory registers a new Category by id ("add_category(id) -> Category").
func (s *Store) AddCategory(id int) (*Category, error) { return s.addCategory(id) }

// AddItem registers a new DataItemDescription within the category
// ("category.add_item(id) -> DataItemDescription").
func (c *Category) AddItem(id string) (*DataItemDescription, error) {
	return c.addItem(id)
}

// SetName sets the item's display name ("description.set_name").
func (d *DataItemDescription) SetName(name string) *DataItemDescription {
	d.Name = name
	return d
}

// SetDefinition sets the item's prose definition ("description.set_definition").
func (d *DataItemDescription) SetDefinition(definition string) *DataItemDescription {
	d.Definition = definition
	return d
}

// SetFormatLabel sets the item's declared format kind string
// ("description.set_format"), one of "fixed"|"variable"|"compound"|
// "repetitive"|"explicit"|"bds".
func (d *DataItemDescription) SetFormatLabel(label string) *DataItemDescription {
	d.FormatLabel = label
	return d
}

// SetNote sets the item's free-text note ("description.set_note").
func (d *DataItemDescription) SetNote(note string) *DataItemDescription {
	d.Note = note
	return d
}

// SetRule sets the item's presence rule ("description.set_rule").
func (d *DataItemDescription) SetRule(rule Rule) *DataItemDescription {
	d.Rule = rule
	return d
}

// SetIDNum sets the item's numeric ID, used only by BDS dispatch.
func (d *DataItemDescription) SetIDNum(idNum int64) *DataItemDescription {
	d.IDNum = idNum
	return d
}

// SetBDSNumericBase records which numeric base this item's BDS children's
// id_num strings were authored against (spec.md §9 Open Question).
func (d *DataItemDescription) SetBDSNumericBase(base BDSNumericBase) *DataItemDescription {
	d.BDSNumericBase = base
	return d
}

// AttachFormat installs the item's owned Format node ("description.attach_format(node)").
func (d *DataItemDescription) AttachFormat(node format.Node) *DataItemDescription {
	d.Format = node
	return d
}

// NewUAP appends a new, empty UAP to the category ("category.new_uap() -> UAP").
func (c *Category) NewUAP(name string) *UAP {
	u := newUAP()
	u.Name = name
	c.UAPs = append(c.UAPs, u)

	return u
}

// AddSlot maps an FSPEC bit index to an item ID, or marks it spare when
// itemID is "" ("uap.add_slot(bit_index, item_id_or_spare)").
func (u *UAP) AddSlot(bitIndex int, itemID string) *UAP {
	u.addSlot(bitIndex, itemID)
	return u
}

// SetPredicate installs this UAP's selector predicate ("uap.set_predicate(kind, args)").
func (u *UAP) SetPredicate(predicate Predicate) *UAP {
	u.Predicate = predicate
	return u
}

// FilterOutItem hides itemID (or one of its leaf fields, when fieldName is
// non-empty) from rendering (spec.md §4.7).
func (c *Category) FilterOutItem(itemID, fieldName string) {
	c.filter.filterOutItem(itemID, fieldName)
}

// FieldFilter returns the format.Filter to attach to itemID's Format node
// so rendering honors any filters set on it.
func (c *Category) FieldFilter(itemID string) format.Filter {
	return c.filter.fieldFilter(itemID)
}

// ItemAccept reports whether itemID may be rendered at all, i.e. whether
// FilterOutItem(itemID, "") has ever been called for it (spec.md §4.7).
func (c *Category) ItemAccept(itemID string) bool {
	return c.filter.itemAccept(itemID)
}
