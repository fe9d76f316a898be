package aisyntax

import (
	"github.com/pkg/errors"
)

// cset82 membership table for type "X" components: the 82 characters
// permitted by the GS1 General Specifications figure 7.11-1.
var cset82 = [128]bool{
	'!': true, '"': true, '%': true, '&': true, '\'': true, '(': true, ')': true,
	'*': true, '+': true, ',': true, '-': true, '.': true, '/': true,
	':': true, ';': true, '<': true, '=': true, '>': true, '?': true, '_': true,
	'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true,
	'7': true, '8': true, '9': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

// cset39 membership table for type "C" components, used by component
// and part AIs such as (8010).
var cset39 = [128]bool{
	'#': true, '-': true, '/': true,
	'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true,
	'7': true, '8': true, '9': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
}

func lintCSet82(entry *Entry, val []byte) error {
	for _, ch := range val {
		if ch > 127 || !cset82[ch] {
			return errors.Errorf("AI (%s): incorrect CSET 82 character", entry.AI)
		}
	}
	return nil
}

func lintCSet39(entry *Entry, val []byte) error {
	for _, ch := range val {
		if ch > 127 || !cset39[ch] {
			return errors.Errorf("AI (%s): incorrect component/part character", entry.AI)
		}
	}
	return nil
}

func lintCSetNumeric(entry *Entry, val []byte) error {
	if !allDigits(val) {
		return errors.Errorf("AI (%s): illegal non-digit character", entry.AI)
	}
	return nil
}

// classLinter returns the mandatory character-class linter for a
// component.
func classLinter(cs charset) linter {
	switch cs {
	case csetN:
		return lintCSetNumeric
	case csetC:
		return lintCSet39
	default:
		return lintCSet82
	}
}

func lintCSum(entry *Entry, val []byte) error {
	if !ValidateParity(val) {
		return errors.Errorf("AI (%s): incorrect check digit", entry.AI)
	}
	return nil
}

// ValidateParity checks the GS1 check digit of a numeric value: a
// weighted modulo-10 sum over all but the last digit, weights
// alternating 3 and 1 starting with 3 when the total length is even.
//
// If the final digit is wrong, it is overwritten in place with the
// computed digit and false is returned, so the same routine serves
// callers that want check-digit generation: validation still fails
// for an incorrect digit, but the corrected value is left behind.
//
// Panics on an empty slice; the caller guarantees at least one digit.
func ValidateParity(digits []byte) bool {
	weight := 1
	if len(digits)%2 == 0 {
		weight = 3
	}

	parity := 0
	for _, d := range digits[:len(digits)-1] {
		parity += weight * int(d-'0')
		weight = 4 - weight
	}
	parity = (10 - parity%10) % 10

	if byte(parity)+'0' == digits[len(digits)-1] {
		return true
	}
	digits[len(digits)-1] = byte(parity) + '0'
	return false
}

func allDigits(val []byte) bool {
	for _, ch := range val {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
