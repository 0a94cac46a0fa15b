package schema

import "strconv"

// ParseIDNum resolves a BDS child's string id_num under both candidate
// numeric bases (spec.md §9: "the numeric base (decimal vs hex) is not
// documented; implementers should expose both parsings"). It returns the
// decimal parse, the hex parse, and whether they agree (in which case
// callers only need register one selector value).
func ParseIDNum(idNum string) (decimal, hex int64, sameValue bool) {
	decimal, errDec := strconv.ParseInt(idNum, 10, 64)
	hex, errHex := strconv.ParseInt(idNum, 16, 64)

	if errDec != nil {
		decimal = hex
	}

	if errHex != nil {
		hex = decimal
	}

	return decimal, hex, decimal == hex
}
