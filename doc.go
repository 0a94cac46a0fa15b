// Package asterix decodes EUROCONTROL ASTERIX surveillance data blocks.
//
// # Core features
//
//   - Schema-driven decoding: a Store of Category definitions is built once
//     (typically by an external definitions-file reader) and shared
//     read-only across goroutines
//   - A polymorphic format tree (Fixed, Variable, Repetitive, Compound,
//     Explicit, BDS) decodes each record's items against its resolved UAP
//   - TEXT/JSON/XML rendering through one shared container-stack buffer
//   - Optional capture-archive framing for recording and replaying batches
//     of raw blocks, with CRC-32 integrity checking and content-digest dedup
//
// # Basic usage
//
//	store := asterix.NewStore()
//	cat, _ := store.AddCategory(62)
//	// ... populate cat via the schema loader interface ...
//
//	dataBlock, consumed, err := asterix.Decode(store, rawBytes, timestamp)
//	if err != nil {
//	    return err
//	}
//	// consumed is the block's length; Decode again at rawBytes[consumed:]
//
//	text, err := asterix.Render(cat, dataBlock, render.TEXT)
//
// # Package structure
//
// This package is a thin convenience wrapper over schema, block, and
// render. For fine-grained control over schema construction, record
// parsing, or rendering, use those packages directly.
package asterix
