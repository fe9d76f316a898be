package aisyntax

import (
	"bytes"

	"github.com/pkg/errors"
)

// validateAIVal validates val against the entry's component grammar
// and returns the number of bytes consumed. Each component takes up to
// its max length from the remainder (the whole value may be shorter
// when the AI is FNC1-terminated); a component shorter than its min is
// an error, as is any linter failure.
//
// Linters run directly on sub-slices of val, so a failing check-digit
// linter corrects the digit in place.
func validateAIVal(entry *Entry, val []byte) (int, error) {
	if len(val) == 0 {
		return 0, errors.Errorf("AI (%s) data is empty", entry.AI)
	}

	consumed := 0
	rest := val
	for i := range entry.Parts {
		part := &entry.Parts[i]
		if part.cset == csetNone {
			break
		}

		compLen := len(rest)
		if part.max < compLen {
			compLen = part.max
		}
		if compLen < part.min {
			return 0, errors.Errorf("AI (%s) data is too short", entry.AI)
		}
		comp := rest[:compLen]

		if err := classLinter(part.cset)(entry, comp); err != nil {
			return 0, err
		}
		for _, lint := range part.linters {
			if err := lint(entry, comp); err != nil {
				return 0, err
			}
		}

		rest = rest[compLen:]
		consumed += compLen
	}

	return consumed, nil
}

// lengthContentCheck is the cheap pre-check both front ends run before
// committing a value to canonical form: aggregate length bounds across
// all components, and no FNC1 byte inside the value (which would be
// conflated with the canonical separator). Reporting bad length here,
// ahead of component validation, keeps "too long" from surfacing as a
// confusing check-digit failure.
func lengthContentCheck(entry *Entry, val []byte) error {
	minLen, maxLen := 0, 0
	for i := range entry.Parts {
		minLen += entry.Parts[i].min
		maxLen += entry.Parts[i].max
	}

	if len(val) < minLen {
		return errors.Errorf("AI (%s) value is too short", entry.AI)
	}
	if len(val) > maxLen {
		return errors.Errorf("AI (%s) value is too long", entry.AI)
	}
	if bytes.IndexByte(val, fnc1) >= 0 {
		return errors.Errorf("AI (%s) contains illegal %c character", entry.AI, fnc1)
	}

	return nil
}

// processAIData validates the canonical buffer ("#AIvalue#AIvalue...")
// and populates the element table. Both front ends funnel into this,
// so end-to-end validation exists once. Elements borrow their value
// bytes from the canonical buffer.
func (p *Parser) processAIData() error {
	data := p.data

	if len(data) == 0 || data[0] != fnc1 {
		return errors.New("missing FNC1 in first position")
	}
	if len(data) == 1 {
		return errors.New("the AI data is empty")
	}

	pos := 1
	for pos < len(data) {
		entry := lookup(data[pos:], 0)
		if entry == nil {
			return errors.Errorf("unrecognised AI: %s", excerpt(data[pos:]))
		}
		pos += len(entry.AI)

		// the value runs to the next FNC1 or the end of the data
		end := bytes.IndexByte(data[pos:], fnc1)
		if end < 0 {
			end = len(data) - pos
		}

		vallen, err := validateAIVal(entry, data[pos:pos+end])
		if err != nil {
			return err
		}

		if len(p.elements) >= maxAIs {
			return errors.New("too many AIs")
		}
		p.elements = append(p.elements, Element{Entry: entry, value: data[pos : pos+vallen]})

		// an FNC1-terminated AI must end at FNC1 or end of data,
		// otherwise its value has spilled into the next AI
		pos += vallen
		if entry.FNC1 && pos < len(data) && data[pos] != fnc1 {
			return errors.Errorf("AI (%s) data is too long", entry.AI)
		}

		// tolerate FNC1 even after fixed-length AIs
		if pos < len(data) && data[pos] == fnc1 {
			pos++
		}
	}

	return nil
}

// excerpt returns the first few bytes of data for error messages.
func excerpt(data []byte) string {
	if len(data) > 4 {
		data = data[:4]
	}
	return string(data)
}
