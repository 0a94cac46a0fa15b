package block

import (
	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/schema"
)

// resolveUAP picks the first UAP in category.UAPs whose predicate matches
// postFSPEC, or the first with no predicate, per spec.md §4.2: "iterate
// UAPs in definition order, return the first whose predicate matches or
// which has no predicate ... first match wins." postFSPEC is the payload
// immediately following the FSPEC bytes, matching the predicate
// descriptions' "first payload byte after FSPEC" framing (spec.md §3).
func resolveUAP(category *schema.Category, postFSPEC []byte) (*schema.UAP, error) {
	for _, uap := range category.UAPs {
		if uap.Matches(postFSPEC) {
			return uap, nil
		}
	}

	return nil, errs.ErrUnknownUap
}
