// Package format implements the polymorphic format tree (spec.md §4.4): a
// tagged sum of node variants — Fixed, Variable, Repetitive, Compound,
// Explicit, BDS — each honoring the same decode/render/describe/filter
// contract. Nodes are built once at schema load time and owned by the
// arena-allocated Category they belong to (spec.md §9 Design Notes); they
// hold no per-decode mutable state, so the same node may be used to decode
// many records concurrently (spec.md §5).
package format

import "github.com/skywave-atc/asterix/render"

// Kind identifies a format node variant.
type Kind uint8

const (
	KindFixed Kind = iota + 1
	KindVariable
	KindRepetitive
	KindCompound
	KindExplicit
	KindBDS
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindVariable:
		return "variable"
	case KindRepetitive:
		return "repetitive"
	case KindCompound:
		return "compound"
	case KindExplicit:
		return "explicit"
	case KindBDS:
		return "bds"
	default:
		return "unknown"
	}
}

// Encoding identifies how a Bitfield's extracted integer is interpreted.
type Encoding uint8

const (
	EncodingUnsigned Encoding = iota + 1
	EncodingSigned
	EncodingASCII
	EncodingSixBit
	EncodingHex
	EncodingOctal
)

func (e Encoding) String() string {
	switch e {
	case EncodingUnsigned:
		return "unsigned"
	case EncodingSigned:
		return "signed"
	case EncodingASCII:
		return "ascii"
	case EncodingSixBit:
		return "sixbit"
	case EncodingHex:
		return "hex"
	case EncodingOctal:
		return "octal"
	default:
		return "unknown"
	}
}

// Filter is consulted by Render to decide whether a leaf field may be
// emitted. Category-level filter state (spec.md §4.7) is owned by the
// schema package; nodes hold a non-owning reference to it so the format
// tree stays schema-agnostic.
type Filter interface {
	Accept(fieldName string) bool
}

// acceptAll is the default Filter used when a node has no filter attached.
type acceptAll struct{}

func (acceptAll) Accept(string) bool { return true }

// AcceptAll is the zero-value Filter: every field is rendered.
var AcceptAll Filter = acceptAll{}

// Node is the shared contract every format tree variant implements
// (spec.md §4.4).
type Node interface {
	// Kind reports which variant this node is.
	Kind() Kind

	// Decode consumes bytes from the front of data and returns the number of
	// bytes consumed plus the decoded Value tree. header is the node's fully
	// qualified context string (e.g. "CAT062:I010"), threaded through to
	// every descendant Value and used by TEXT rendering.
	Decode(data []byte, header string) (consumed int, value *Value, err error)

	// Render appends value's fields/children to buf per buf.Kind().
	Render(value *Value, buf *render.Buffer) error

	// Describe returns a human-readable summary of this node's layout,
	// prefixed by headerPrefix (used by schema introspection/debug tooling).
	Describe(headerPrefix string) string
}

// Value is the decoded result of running a Node's Decode over record bytes.
// It is plain data — independent of the (shared, read-only) schema node
// that produced it — so it is safe to hold, compare, or render from any
// goroutine without touching the schema.
type Value struct {
	Header   string   // e.g. "CAT062:I010"
	Name     string   // this node's own local name, if any (item name or subfield name)
	Raw      []byte   // the exact consumed byte window
	Fields   []Field  // leaf scalars decoded directly by this node (Fixed may have several)
	Children []*Value // composite children: Variable parts, Repetitive elements, Compound subfields, Explicit/BDS inner value
}

// Field is one decoded bitfield scalar.
type Field struct {
	Name        string
	Description string
	Encoding    Encoding
	Raw         int64   // integer value after sign-extension (if any), before scale
	Scaled      float64 // Raw * Scale
	Unit        string
	Text        string // populated for ASCII/hex/octal encodings
	Label       string // enum label, if resolved
	EnumMiss    bool   // true if Raw had no entry in the enum table
}
