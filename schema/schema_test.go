package schema

import (
	"testing"

	"github.com/skywave-atc/asterix/errs"
	"github.com/stretchr/testify/require"
)

func TestStore_AddAndLookupCategory(t *testing.T) {
	store := NewStore()

	cat, err := store.AddCategory(62)
	require.NoError(t, err)
	require.Equal(t, 62, cat.ID)

	got, err := store.Category(62)
	require.NoError(t, err)
	require.Same(t, cat, got)
}

func TestStore_UnknownCategory(t *testing.T) {
	store := NewStore()

	_, err := store.Category(1)
	require.ErrorIs(t, err, errs.ErrUnknownCategory)
}

func TestCategory_AddItem_DuplicateRejected(t *testing.T) {
	store := NewStore()
	cat, _ := store.AddCategory(62)

	_, err := cat.AddItem("010")
	require.NoError(t, err)

	_, err = cat.AddItem("010")
	require.ErrorIs(t, err, errs.ErrDuplicateItemID)
}

func TestDataItemDescription_LoaderChain(t *testing.T) {
	store := NewStore()
	cat, _ := store.AddCategory(62)

	item, err := cat.AddItem("010")
	require.NoError(t, err)

	item.SetName("Data Source Identifier").SetRule(RuleMandatory)

	got, ok := cat.Item("010")
	require.True(t, ok)
	require.Equal(t, "Data Source Identifier", got.Name)
	require.Equal(t, RuleMandatory, got.Rule)
}

func TestUAP_AddSlotAndPredicate(t *testing.T) {
	store := NewStore()
	cat, _ := store.AddCategory(62)

	uap := cat.NewUAP("default")
	uap.AddSlot(1, "010").AddSlot(8, "")
	uap.SetPredicate(Predicate{Kind: PredicateNone})

	slot, ok := uap.SlotAt(1)
	require.True(t, ok)
	require.Equal(t, "010", slot.ItemID)

	spare, ok := uap.SlotAt(8)
	require.True(t, ok)
	require.True(t, spare.Spare)
}

func TestUAP_Matches_UseIfBitSet(t *testing.T) {
	uap := newUAP()
	uap.Predicate = Predicate{Kind: PredicateUseIfBitSet, Bit: 1}

	require.True(t, uap.Matches([]byte{0x80}))
	require.False(t, uap.Matches([]byte{0x00}))
}

func TestUAP_Matches_UseIfByteNr(t *testing.T) {
	uap := newUAP()
	uap.Predicate = Predicate{Kind: PredicateUseIfByteNr, ByteOffset: 0, Value: 0x30}

	require.True(t, uap.Matches([]byte{0x30}))
	require.False(t, uap.Matches([]byte{0x31}))
}

func TestFilter_FilterOutItem_HidesField(t *testing.T) {
	store := NewStore()
	cat, _ := store.AddCategory(62)
	_, _ = cat.AddItem("010")

	f := cat.FieldFilter("010")
	require.True(t, f.Accept("SAC"))

	cat.FilterOutItem("010", "SAC")
	require.False(t, f.Accept("SAC"))
	require.True(t, f.Accept("SIC"))
}

func TestFilter_FilterOutItem_HidesWholeItem(t *testing.T) {
	store := NewStore()
	cat, _ := store.AddCategory(62)
	_, _ = cat.AddItem("010")

	require.True(t, cat.ItemAccept("010"))

	cat.FilterOutItem("010", "")
	require.False(t, cat.ItemAccept("010"))
}

func TestParseIDNum_DisagreeingBases(t *testing.T) {
	dec, hex, same := ParseIDNum("10")
	require.Equal(t, int64(10), dec)
	require.Equal(t, int64(16), hex)
	require.False(t, same)
}
