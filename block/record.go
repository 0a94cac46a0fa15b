package block

import (
	"fmt"

	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/schema"
	"github.com/skywave-atc/asterix/trace"
)

// parseRecord decodes one record starting at payload's front, per
// spec.md §4.3. It returns the record, the number of bytes it consumed,
// and an error only when no record could be formed at all (a FSPEC that
// never terminates, or an unresolvable UAP); per-item decode failures are
// recorded on the record itself (FormatOK=false) and stop that record
// without propagating an error to the caller, so the block parser can
// continue with any bytes left over (spec.md §7 propagation rules).
func parseRecord(category *schema.Category, payload []byte) (DataRecord, int, error) {
	fspec, fspecLen, truncated := decodeFSPEC(payload)
	if truncated {
		return DataRecord{}, 0, fmt.Errorf("fspec never terminated: %w", errs.ErrTruncated)
	}

	postFSPEC := payload[fspecLen:]

	uap, err := resolveUAP(category, postFSPEC)
	if err != nil {
		return DataRecord{}, 0, err
	}

	record := DataRecord{Category: category.ID, UAP: uap, FormatOK: true}

	cursor := postFSPEC
	total := fspecLen

	for _, bitIndex := range fspecSetSlots(fspec) {
		slot, ok := uap.SlotAt(bitIndex)
		if !ok {
			record.FormatOK = false
			record.Diagnostics = append(record.Diagnostics, fmt.Sprintf("slot %d: %s", bitIndex, errs.ErrUnknownItem))
			trace.Errorf("asterix: CAT%d slot %d: %s", category.ID, bitIndex, errs.ErrUnknownItem)

			break
		}

		if slot.Spare {
			continue
		}

		desc, ok := category.Item(slot.ItemID)
		if !ok {
			record.FormatOK = false
			record.Diagnostics = append(record.Diagnostics, fmt.Sprintf("item %s: %s", slot.ItemID, errs.ErrUnknownItem))
			trace.Errorf("asterix: CAT%d item %s: %s", category.ID, slot.ItemID, errs.ErrUnknownItem)

			break
		}

		if desc.Format == nil {
			record.FormatOK = false
			record.Diagnostics = append(record.Diagnostics, fmt.Sprintf("item %s: %s", slot.ItemID, errs.ErrInternalSchemaError))
			trace.Errorf("asterix: CAT%d item %s: %s", category.ID, slot.ItemID, errs.ErrInternalSchemaError)

			break
		}

		header := fmt.Sprintf("CAT%03d:I%s", category.ID, slot.ItemID)

		consumed, value, err := desc.Format.Decode(cursor, header)
		if err != nil {
			record.FormatOK = false
			record.Diagnostics = append(record.Diagnostics, err.Error())
			trace.Errorf("%s", err.Error())

			break
		}

		record.Items = append(record.Items, Item{ID: slot.ItemID, Value: value})
		cursor = cursor[consumed:]
		total += consumed
	}

	record.Consumed = total

	if !checkMandatorySlots(category, uap, record.Items) {
		record.FormatOK = false
		record.Diagnostics = append(record.Diagnostics, "mandatory item missing from FSPEC")
		trace.Errorf("asterix: CAT%d record missing a mandatory item", category.ID)
	}

	return record, total, nil
}

// checkMandatorySlots reports whether every non-spare UAP slot whose item
// is RuleMandatory was actually decoded into items (spec.md §3, §4.3: a
// record succeeds only if every mandatory UAP slot was present in FSPEC).
func checkMandatorySlots(category *schema.Category, uap *schema.UAP, items []Item) bool {
	present := make(map[string]bool, len(items))
	for _, item := range items {
		present[item.ID] = true
	}

	for _, slot := range uap.Slots {
		if slot.Spare {
			continue
		}

		desc, ok := category.Item(slot.ItemID)
		if !ok || desc.Rule != schema.RuleMandatory {
			continue
		}

		if !present[slot.ItemID] {
			return false
		}
	}

	return true
}
