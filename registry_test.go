package aisyntax

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestLookup_exact(t *testing.T) {
	w := expect.WrapT(t)

	for _, tt := range []struct {
		data     string
		exactLen int
		want     string // "" means no match
	}{
		{"01", 2, "01"},
		{"011234", 2, "01"},
		{"37123", 2, "37"},
		{"8003", 4, "8003"},

		{"2345XX", 4, ""}, // no such AI (2345)
		{"234XXX", 3, ""}, // no such AI (234)
		{"23XXXX", 2, ""}, // no such AI (23)
		{"2XXXXX", 1, ""}, // no such AI (2)

		// exact length must match the whole code, even when the data
		// starts with a longer valid AI
		{"235XXX", 2, ""},
		{"235XXX", 1, ""},
		{"37123", 3, ""}, // no AI (371), even though AI (37) exists
		{"37123", 1, ""}, // no AI (3), even though AI (37) exists
	} {
		entry := lookup([]byte(tt.data), tt.exactLen)
		if tt.want == "" {
			w.As(tt.data).ShouldBeTrue(entry == nil)
			continue
		}
		w.As(tt.data).StopOnMismatch().ShouldBeTrue(entry != nil)
		w.As(tt.data).ShouldBeEqual(entry.AI, tt.want)
	}
}

func TestLookup_prefix(t *testing.T) {
	w := expect.WrapT(t)

	for _, tt := range []struct {
		data string
		want string
	}{
		{"011234", "01"},
		{"8012", "8012"},
		{"235XXX", "235"},
		{"37123", "37"},
		{"XXXXXX", ""},
		{"234567", ""}, // 23, 234 and 2345 are all undefined
		{"", ""},
	} {
		entry := lookup([]byte(tt.data), 0)
		if tt.want == "" {
			w.As(tt.data).ShouldBeTrue(entry == nil)
			continue
		}
		w.As(tt.data).StopOnMismatch().ShouldBeTrue(entry != nil)
		w.As(tt.data).ShouldBeEqual(entry.AI, tt.want)
	}
}

func TestRegistry_codesUnique(t *testing.T) {
	w := expect.WrapT(t)

	seen := make(map[string]bool, len(aiTable))
	for i := range aiTable {
		w.As(aiTable[i].AI).ShouldBeFalse(seen[aiTable[i].AI])
		seen[aiTable[i].AI] = true
	}
}

func TestRegistry_partsWellFormed(t *testing.T) {
	w := expect.WrapT(t)

	for i := range aiTable {
		entry := &aiTable[i]
		w.As(entry.AI).ShouldBeTrue(len(entry.AI) >= 2 && len(entry.AI) <= 4)
		w.As(entry.AI).ShouldBeTrue(allDigits([]byte(entry.AI)))

		// declared components are contiguous from the front
		ended := false
		total := 0
		for _, part := range entry.Parts {
			if part.cset == csetNone {
				ended = true
				continue
			}
			w.As(entry.AI).ShouldBeFalse(ended)
			w.As(entry.AI).ShouldBeTrue(part.min <= part.max)
			total += part.max
		}
		w.As(entry.AI).ShouldBeTrue(total > 0 && total <= maxAILen)
	}
}

func TestHasFixedLengthPrefix(t *testing.T) {
	w := expect.WrapT(t)

	for code, fixed := range map[string]bool{
		"01":   true,
		"11":   true,
		"17":   true,
		"3103": true,
		"414":  true,
		"10":   false,
		"21":   false,
		"235":  false, // 23 is no longer a fixed-length prefix
		"3900": false,
		"8004": false,
	} {
		w.As(code).ShouldBeEqual(hasFixedLengthPrefix(code), fixed)
	}
}

func TestIsDLPrimaryKey(t *testing.T) {
	w := expect.WrapT(t)

	for _, key := range []string{"00", "01", "253", "414", "8004", "8018"} {
		w.As(key).ShouldBeTrue(isDLPrimaryKey(key))
	}
	for _, code := range []string{"10", "21", "22", "99", "3103", "8019"} {
		w.As(code).ShouldBeFalse(isDLPrimaryKey(code))
	}
}
