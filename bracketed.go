package aisyntax

import (
	"bytes"

	"github.com/pkg/errors"
)

// ParseBracketed ingests human-readable bracketed AI syntax, e.g.
// "(01)12345678901231(10)ABC123", converting it to canonical form and
// validating it. A literal '(' inside a value is written "\(". FNC1
// separators are never present in the input; they are inserted
// automatically after variable-length AIs.
func (p *Parser) ParseBracketed(data string) error {
	p.Reset()

	in := []byte(data)
	pos := 0
	fnc1req := true

	for pos < len(in) {
		if in[pos] != '(' {
			return p.fail(errors.New("failed to parse AI data"))
		}
		pos++

		end := bytes.IndexByte(in[pos:], ')')
		if end < 0 {
			return p.fail(errors.New("failed to parse AI data"))
		}
		code := in[pos : pos+end]

		entry := lookup(code, len(code))
		if entry == nil {
			return p.fail(errors.Errorf("unrecognised AI: %s", excerpt(code)))
		}
		pos += end + 1

		if fnc1req {
			if err := p.writeByte(fnc1); err != nil {
				return p.fail(err)
			}
		}
		if err := p.writeString(entry.AI); err != nil {
			return p.fail(err)
		}
		fnc1req = !hasFixedLengthPrefix(entry.AI)

		// the AI must be followed by a value
		if pos == len(in) {
			return p.fail(errors.Errorf("AI (%s) data is empty", entry.AI))
		}

		// scan the value: an unescaped '(' or end of input ends it;
		// "\(" is a literal bracket with the escape dropped
		valStart := len(p.data)
		for {
			next := bytes.IndexByte(in[pos:], '(')
			if next < 0 {
				if err := p.write(in[pos:]); err != nil {
					return p.fail(err)
				}
				pos = len(in)
				break
			}
			open := pos + next
			if in[open-1] == '\\' {
				if err := p.write(in[pos : open-1]); err != nil {
					return p.fail(err)
				}
				if err := p.writeByte('('); err != nil {
					return p.fail(err)
				}
				pos = open + 1
				continue
			}
			if err := p.write(in[pos:open]); err != nil {
				return p.fail(err)
			}
			pos = open
			break
		}

		if err := lengthContentCheck(entry, p.data[valStart:]); err != nil {
			return p.fail(err)
		}
	}

	if err := p.processAIData(); err != nil {
		return p.fail(err)
	}
	return nil
}
