package schema

// PredicateKind identifies which selector predicate kind a UAP uses to
// decide whether it is the active profile for a record (spec.md §3).
// At most one kind is active per UAP.
type PredicateKind uint8

const (
	PredicateNone PredicateKind = iota
	PredicateUseIfBitSet
	PredicateUseIfByteNr
)

// Predicate is a UAP's optional selector. UseIfBitSet checks whether bit
// Bit (1-based, MSB-first) of the first payload byte after the FSPEC is
// set. UseIfByteNr checks whether the byte at offset ByteOffset equals
// Value.
type Predicate struct {
	Kind       PredicateKind
	Bit        int
	ByteOffset int
	Value      byte
}

// Slot is one UAP entry: an FSPEC bit position mapped either to a data
// item ID or marked as a spare slot that consumes no bytes (spec.md §4.3).
type Slot struct {
	BitIndex int
	ItemID   string // empty for a spare slot
	Spare    bool
}

// UAP (User Application Profile) is an ordered list of FSPEC bit positions
// to data-item IDs plus an optional selector predicate (spec.md §3).
type UAP struct {
	Name      string
	Slots     []Slot
	Predicate Predicate

	bySlot map[int]Slot
}

func newUAP() *UAP {
	return &UAP{bySlot: make(map[int]Slot)}
}

// SlotAt returns the UAP entry occupying the given 1-based FSPEC bit index.
func (u *UAP) SlotAt(bitIndex int) (Slot, bool) {
	s, ok := u.bySlot[bitIndex]

	return s, ok
}

// addSlot registers bitIndex -> itemID (or a spare slot when itemID is "").
func (u *UAP) addSlot(bitIndex int, itemID string) {
	slot := Slot{BitIndex: bitIndex, ItemID: itemID, Spare: itemID == ""}
	u.Slots = append(u.Slots, slot)
	u.bySlot[bitIndex] = slot
}

// Matches reports whether this UAP's predicate accepts payload, per
// spec.md §4.2: predicates are evaluated after skipping the FSPEC.
func (u *UAP) Matches(postFSPEC []byte) bool {
	switch u.Predicate.Kind {
	case PredicateNone:
		return true
	case PredicateUseIfBitSet:
		bit := u.Predicate.Bit
		byteOffset := (bit - 1) / 8
		mask := byte(1) << uint(7-(bit-1)%8)

		if byteOffset >= len(postFSPEC) {
			return false
		}

		return postFSPEC[byteOffset]&mask != 0
	case PredicateUseIfByteNr:
		if u.Predicate.ByteOffset >= len(postFSPEC) {
			return false
		}

		return postFSPEC[u.Predicate.ByteOffset] == u.Predicate.Value
	default:
		return false
	}
}
