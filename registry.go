package aisyntax

const (
	// maxParts is the most value components a single AI defines.
	maxParts = 5

	// maxAILen bounds a single decoded AI value.
	maxAILen = 90

	// maxAIs bounds the number of elements extracted in one parse.
	maxAIs = 64

	// maxDataLen bounds the canonical data buffer. A parse that would
	// grow the buffer past this fails rather than truncating.
	maxDataLen = 8191

	// fnc1 is the control byte standing in for the FNC1 character in
	// canonical form. It may not appear inside AI values.
	fnc1 = '#'
)

// charset tags the character repertoire of one AI value component.
type charset uint8

const (
	csetNone charset = iota // no component; terminates the component walk
	csetN                   // decimal digits only
	csetX                   // GS1 CSET 82
	csetC                   // GS1 component/part character set
)

// linter validates a single component value and reports a descriptive
// error tagged with the AI code on failure.
type linter func(entry *Entry, val []byte) error

// component describes one sub-field of an AI value: its character
// class, inclusive length bounds, and any extra linters that run after
// the class check.
type component struct {
	cset     charset
	min, max int
	linters  []linter
}

// Entry is one immutable AI registry definition. Entries are shared by
// pointer; the registry is never mutated after initialization.
type Entry struct {
	// AI is the application identifier code, 2 to 4 decimal digits.
	AI string

	// FNC1 reports whether values of this AI have variable total
	// length and so must be terminated by FNC1 before the next AI.
	FNC1 bool

	// Parts is the ordered component grammar of the value. A part
	// with cset csetNone marks the end of the declared components.
	Parts [maxParts]component

	// Title is the data title from the GS1 General Specifications.
	Title string
}

const (
	reqFNC1 = true
	noFNC1  = false
)

func n(min, max int, linters ...linter) component {
	return component{cset: csetN, min: min, max: max, linters: linters}
}

func x(min, max int, linters ...linter) component {
	return component{cset: csetX, min: min, max: max, linters: linters}
}

func c(min, max int, linters ...linter) component {
	return component{cset: csetC, min: min, max: max, linters: linters}
}

func ai(code string, fnc1req bool, title string, parts ...component) Entry {
	e := Entry{AI: code, FNC1: fnc1req, Title: title}
	copy(e.Parts[:], parts)
	return e
}

// fixedLengthPrefixes lists the two-digit AI prefixes whose values
// have a pre-defined total length and therefore never require FNC1
// termination.
var fixedLengthPrefixes = []string{
	"00", "01", "02",
	"03", "04",
	"11", "12", "13", "14", "15", "16", "17", "18", "19",
	"20",
	// "23" is no longer defined as fixed length
	"31", "32", "33", "34", "35", "36",
	"41",
}

// hasFixedLengthPrefix reports whether the AI's value length is
// implicit in its definition, so no FNC1 is needed before the next AI.
func hasFixedLengthPrefix(code string) bool {
	for _, prefix := range fixedLengthPrefixes {
		if len(code) >= 2 && code[:2] == prefix {
			return true
		}
	}
	return false
}

// dlPrimaryKeys lists the AIs that may serve as the root of a Digital
// Link URI's path info. They are used only to find where the
// meaningful path info begins.
var dlPrimaryKeys = []string{
	"00",   // SSCC
	"01",   // GTIN; qualifiers 22,10,21 or 235
	"253",  // GDTI
	"255",  // GCN
	"401",  // GINC
	"402",  // GSIN
	"414",  // LOC NO.; qualifiers 254 or 7040
	"417",  // PARTY; qualifiers 7040
	"8003", // GRAI
	"8004", // GIAI; qualifiers 7040
	"8006", // ITIP; qualifiers 22,10,21
	"8010", // CPID; qualifiers 8011
	"8013", // GMN
	"8017", // GSRN - PROVIDER; qualifiers 8019
	"8018", // GSRN - RECIPIENT; qualifiers 8019
}

func isDLPrimaryKey(code string) bool {
	for _, key := range dlPrimaryKeys {
		if code == key {
			return true
		}
	}
	return false
}

// lookup finds the registry entry for the AI at the start of data.
//
// When exactLen is nonzero only an entry whose code has exactly that
// length may match. When exactLen is zero, the entry whose full code
// is a literal prefix of data matches; codes are unique, so the first
// structural match in table order is the answer.
//
// Returns nil when no entry matches.
func lookup(data []byte, exactLen int) *Entry {
	for i := range aiTable {
		entry := &aiTable[i]
		codeLen := len(entry.AI)
		if exactLen != 0 && exactLen != codeLen {
			continue
		}
		if len(data) < codeLen {
			continue
		}
		if string(data[:codeLen]) == entry.AI {
			return entry
		}
	}
	return nil
}
