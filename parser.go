package aisyntax

import (
	"strings"

	"github.com/pkg/errors"
)

// Element is one extracted AI occurrence: its registry entry and a
// borrowed view of its value inside the parser's canonical buffer.
// Elements never copy value bytes; they are invalidated by the next
// parse call on the owning Parser.
type Element struct {
	Entry *Entry

	value []byte
}

// AI returns the element's application identifier code.
func (e Element) AI() string {
	return e.Entry.AI
}

// Value returns the element's value as a string.
func (e Element) Value() string {
	return string(e.value)
}

// Bytes returns the element's value bytes, borrowed from the owning
// parser's canonical buffer. Callers must not retain the slice across
// parse calls.
func (e Element) Bytes() []byte {
	return e.value
}

// Parser ingests GS1 AI data from bracketed syntax, Digital Link URIs
// or raw unbracketed scan data, and holds the resulting canonical form
// and extracted elements.
//
// A Parser owns all mutable parse state and is not safe for concurrent
// use; give each goroutine its own instance. There is no shared global
// state, so distinct Parsers may run in parallel freely.
//
// After a failed parse the canonical buffer and element table are
// invalid and must not be read; the next parse call resets them.
type Parser struct {
	data     []byte
	elements []Element
	err      error
}

// NewParser returns a Parser ready for use.
func NewParser() *Parser {
	return &Parser{
		data:     make([]byte, 0, 256),
		elements: make([]Element, 0, maxAIs),
	}
}

// Reset clears the canonical buffer, element table and error state.
// Every parse call resets implicitly; Reset exists for callers that
// want to drop borrowed element views eagerly.
func (p *Parser) Reset() {
	p.data = p.data[:0]
	p.elements = p.elements[:0]
	p.err = nil
}

// Canonical returns the canonical data string: FNC1 rendered as '#',
// with a separator between AIs wherever the preceding AI's length is
// not fixed by its definition. Empty after a failed parse.
func (p *Parser) Canonical() string {
	return string(p.data)
}

// Elements returns the extracted elements of the last successful
// parse, in the order the input produced them. The returned slice and
// its element values are owned by the Parser and invalidated by the
// next parse call.
func (p *Parser) Elements() []Element {
	return p.elements
}

// Err returns the error from the most recent parse, or nil. Downstream
// consumers of the canonical buffer report their own failures through
// the same convention.
func (p *Parser) Err() error {
	return p.err
}

// ParseUnbracketed ingests raw scan data in which '#' stands in for
// FNC1, e.g. "#0112345678901231#991234": validates it and populates
// the element table. The input must start with '#'.
func (p *Parser) ParseUnbracketed(data string) error {
	p.Reset()

	if len(data) > maxDataLen {
		return p.fail(errors.New("AI data is too long"))
	}
	p.data = append(p.data, data...)

	if err := p.processAIData(); err != nil {
		return p.fail(err)
	}
	return nil
}

// HRI returns the human readable interpretation text of the last
// parse, one "(AI) value" line per extracted element.
func (p *Parser) HRI() []string {
	hri := make([]string, len(p.elements))
	for i, el := range p.elements {
		hri[i] = "(" + el.Entry.AI + ") " + string(el.value)
	}
	return hri
}

// AIDataStr reconstructs bracketed AI syntax from the element table,
// escaping literal '(' characters in values so the output parses back
// with ParseBracketed.
func (p *Parser) AIDataStr() string {
	var b strings.Builder
	for _, el := range p.elements {
		b.WriteByte('(')
		b.WriteString(el.Entry.AI)
		b.WriteByte(')')
		b.WriteString(strings.ReplaceAll(string(el.value), "(", `\(`))
	}
	return b.String()
}

// fail records err, discards partial parse output and returns err.
func (p *Parser) fail(err error) error {
	p.data = p.data[:0]
	p.elements = p.elements[:0]
	p.err = err
	return err
}

// writeByte appends one byte to the canonical buffer, enforcing the
// buffer capacity.
func (p *Parser) writeByte(b byte) error {
	if len(p.data)+1 > maxDataLen {
		return errors.New("AI data is too long")
	}
	p.data = append(p.data, b)
	return nil
}

// write appends v to the canonical buffer, enforcing the buffer
// capacity.
func (p *Parser) write(v []byte) error {
	if len(p.data)+len(v) > maxDataLen {
		return errors.New("AI data is too long")
	}
	p.data = append(p.data, v...)
	return nil
}

func (p *Parser) writeString(v string) error {
	if len(p.data)+len(v) > maxDataLen {
		return errors.New("AI data is too long")
	}
	p.data = append(p.data, v...)
	return nil
}
