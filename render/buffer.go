package render

import (
	"strconv"
	"strings"

	"github.com/skywave-atc/asterix/internal/pool"
)

// frame tracks one open composite container (JSON object/array, XML element).
type frame struct {
	tag     string
	wrote   bool
	isArray bool
}

// Buffer is the append-only output sink threaded through a format tree
// during rendering (spec.md §4.5). Composite nodes open a container and
// delegate to children; leaves append their own fragment. Callers are
// responsible for calling Release when done, returning the backing storage
// to the shared pool.
type Buffer struct {
	kind  Kind
	bb    *pool.ByteBuffer
	stack []frame
}

// NewBuffer allocates a Buffer for the given output Kind, backed by a pooled byte slice.
func NewBuffer(kind Kind) *Buffer {
	return &Buffer{kind: kind, bb: pool.GetBlobBuffer()}
}

// Kind returns the output kind this buffer renders.
func (b *Buffer) Kind() Kind {
	return b.kind
}

// Release returns the backing buffer to the pool. The Buffer must not be used afterward.
func (b *Buffer) Release() {
	pool.PutBlobBuffer(b.bb)
	b.bb = nil
}

// Reset clears the buffer for reuse, retaining its backing storage.
func (b *Buffer) Reset() {
	b.bb.Reset()
	b.stack = b.stack[:0]
}

// String returns the accumulated output.
func (b *Buffer) String() string {
	return string(b.bb.Bytes())
}

// Bytes returns the accumulated output without copying.
func (b *Buffer) Bytes() []byte {
	return b.bb.Bytes()
}

func (b *Buffer) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}

	return &b.stack[len(b.stack)-1]
}

func (b *Buffer) pop() frame {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	return f
}

func (b *Buffer) writeCommaIfNeeded() {
	if b.kind != JSON {
		return
	}

	if f := b.top(); f != nil {
		if f.wrote {
			b.bb.MustWrite([]byte(","))
		}
		f.wrote = true
	}
}

// OpenObject opens a composite container named name (the JSON key or XML
// element name). Pass "" at the record root.
func (b *Buffer) OpenObject(name string) {
	switch b.kind {
	case JSON:
		b.writeCommaIfNeeded()
		if name != "" {
			b.bb.MustWrite([]byte(strconv.Quote(name) + ":"))
		}
		b.bb.MustWrite([]byte("{"))
	case XML:
		tag := name
		if tag == "" {
			tag = "record"
		}
		b.bb.MustWrite([]byte("<" + tag + ">"))
	}
	b.stack = append(b.stack, frame{tag: name})
}

// CloseObject closes the most recently opened object.
func (b *Buffer) CloseObject() {
	f := b.pop()
	switch b.kind {
	case JSON:
		b.bb.MustWrite([]byte("}"))
	case XML:
		tag := f.tag
		if tag == "" {
			tag = "record"
		}
		b.bb.MustWrite([]byte("</" + tag + ">"))
	}
}

// OpenArray opens a repeated sequence named name (Repetitive nodes).
func (b *Buffer) OpenArray(name string) {
	switch b.kind {
	case JSON:
		b.writeCommaIfNeeded()
		if name != "" {
			b.bb.MustWrite([]byte(strconv.Quote(name) + ":"))
		}
		b.bb.MustWrite([]byte("["))
	case XML:
		b.bb.MustWrite([]byte("<" + name + ">"))
	}
	b.stack = append(b.stack, frame{tag: name, isArray: true})
}

// CloseArray closes the most recently opened array.
func (b *Buffer) CloseArray() {
	f := b.pop()
	switch b.kind {
	case JSON:
		b.bb.MustWrite([]byte("]"))
	case XML:
		b.bb.MustWrite([]byte("</" + f.tag + ">"))
	}
}

// OpenArrayElement opens one element of an array previously opened with OpenArray.
func (b *Buffer) OpenArrayElement(elemName string) {
	switch b.kind {
	case JSON:
		b.writeCommaIfNeeded()
		b.bb.MustWrite([]byte("{"))
	case XML:
		b.bb.MustWrite([]byte("<" + elemName + ">"))
	}
	b.stack = append(b.stack, frame{tag: elemName})
}

// CloseArrayElement closes the most recently opened array element.
func (b *Buffer) CloseArrayElement() {
	f := b.pop()
	switch b.kind {
	case JSON:
		b.bb.MustWrite([]byte("}"))
	case XML:
		b.bb.MustWrite([]byte("</" + f.tag + ">"))
	}
}

// WriteLeaf appends one decoded scalar field.
//
//   - header: the full "CAT062:I010:SAC"-style context string (TEXT only)
//   - name: the field's local name (JSON key / XML tag)
//   - text: the already-formatted display value
//   - quoted: true if text must be JSON-string-quoted (false for bare numbers)
func (b *Buffer) WriteLeaf(header, name, text string, quoted bool) {
	switch b.kind {
	case TEXT:
		b.bb.MustWrite([]byte(header + "=" + text + "\n"))
	case JSON:
		b.writeCommaIfNeeded()
		b.bb.MustWrite([]byte(strconv.Quote(name) + ":"))
		if quoted {
			b.bb.MustWrite([]byte(strconv.Quote(text)))
		} else {
			b.bb.MustWrite([]byte(text))
		}
	case XML:
		b.bb.MustWrite([]byte("<" + name + ">" + escapeXML(text) + "</" + name + ">"))
	}
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")

	return r.Replace(s)
}
