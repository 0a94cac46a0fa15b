// Package errs defines the sentinel errors shared across the decoder.
//
// Call sites wrap these with fmt.Errorf("...: %w", errs.ErrX) to attach
// context; callers inspect errors with errors.Is against the sentinels
// below rather than matching on formatted strings.
package errs

import "errors"

// Block-level errors (spec.md §7).
var (
	// ErrMalformedBlock indicates the block header's LEN field disagreed
	// with the available bytes, or residual payload could not form another record.
	ErrMalformedBlock = errors.New("asterix: malformed block")

	// ErrUnknownCategory indicates no Category definition is loaded for the block's CAT byte.
	ErrUnknownCategory = errors.New("asterix: unknown category")
)

// Record-level errors.
var (
	// ErrUnknownUap indicates no UAP predicate matched the record bytes.
	ErrUnknownUap = errors.New("asterix: no UAP matched")

	// ErrUnknownItem indicates a FSPEC bit referenced a UAP slot with no backing item description.
	ErrUnknownItem = errors.New("asterix: unknown data item")

	// ErrInternalSchemaError indicates an item ID is present in a UAP slot but its format node is missing.
	ErrInternalSchemaError = errors.New("asterix: internal schema error")
)

// Leaf-decode errors.
var (
	// ErrTruncated indicates a format node needed more bytes than remained in the cursor.
	ErrTruncated = errors.New("asterix: truncated item")

	// ErrOverflow indicates a declared length exceeded its containing buffer.
	ErrOverflow = errors.New("asterix: length overflow")

	// ErrEnumMiss indicates a leaf's integer value had no entry in its enumeration
	// table. Non-fatal: callers render the raw integer and continue.
	ErrEnumMiss = errors.New("asterix: enumeration value not found")
)

// Schema-construction errors.
var (
	ErrDuplicateItemID   = errors.New("asterix: duplicate data item id in category")
	ErrDuplicateCategory = errors.New("asterix: duplicate category id")
	ErrInvalidCategoryID = errors.New("asterix: category id out of range")
	ErrNoFormatNode      = errors.New("asterix: data item description has no format node")
	ErrHashCollision     = errors.New("asterix: hash collision between distinct ids")
	ErrMultiplePredicate = errors.New("asterix: UAP has more than one selector predicate kind")
)

// Capture-archive errors.
var (
	ErrInvalidCaptureHeader = errors.New("asterix: invalid capture archive header")
	ErrCaptureChecksum      = errors.New("asterix: capture segment checksum mismatch")
	ErrUnsupportedCodec     = errors.New("asterix: unsupported capture codec")
)
