package aisyntax

import (
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestValidateParity(t *testing.T) {
	w := expect.WrapT(t)

	for _, tt := range []struct {
		value     string
		good      bool
		corrected byte // expected final digit after a failed check
	}{
		{"24012345678905", true, 0},
		{"24012345678909", false, '5'},
		{"2112233789657", true, 0},
		{"2112233789658", false, '7'},
		{"416000336108", true, 0},
		{"416000336107", false, '8'},
		{"02345680", true, 0},
		{"02345689", false, '0'},
	} {
		digits := []byte(tt.value)
		ok := ValidateParity(digits)
		w.As(tt.value).ShouldBeEqual(ok, tt.good)
		if !tt.good {
			// the failing check writes the correct digit back, so a
			// second pass validates
			w.As(tt.value).ShouldBeEqual(digits[len(digits)-1], tt.corrected)
			w.As(tt.value + " recomputed").ShouldBeTrue(ValidateParity(digits))
		}
	}
}

func TestValidateParity_everyFinalDigitCorruption(t *testing.T) {
	w := expect.WrapT(t)

	const good = "12345678901231"
	for d := byte('0'); d <= '9'; d++ {
		digits := []byte(good)
		digits[len(digits)-1] = d
		ok := ValidateParity(digits)
		w.As(string(d)).ShouldBeEqual(ok, d == good[len(good)-1])
		w.As(string(d)).ShouldBeEqual(digits[len(digits)-1], good[len(good)-1])
	}
}

func TestClassLinters(t *testing.T) {
	w := expect.WrapT(t)
	entry := lookup([]byte("10"), 2)
	w.StopOnMismatch().ShouldBeTrue(entry != nil)

	// CSET 82 takes digits, letters and a specific set of punctuation
	w.ShouldSucceed(lintCSet82(entry, []byte("ABCxyz0129!\"%&'()*+,-./:;<=>?_")))
	w.ShouldFail(lintCSet82(entry, []byte("ABC~")))
	w.ShouldFail(lintCSet82(entry, []byte("ABC DEF"))) // no space
	w.ShouldFail(lintCSet82(entry, []byte{0xC3, 0xA9}))

	w.ShouldSucceed(lintCSetNumeric(entry, []byte("0123456789")))
	w.ShouldFail(lintCSetNumeric(entry, []byte("12A45")))
	w.ShouldFail(lintCSetNumeric(entry, []byte("12 45")))

	// component/part set is upper-case only, with '#', '-' and '/'
	w.ShouldSucceed(lintCSet39(entry, []byte("AB-12/CD#34")))
	w.ShouldFail(lintCSet39(entry, []byte("ab12")))
	w.ShouldFail(lintCSet39(entry, []byte("AB.12")))
}

func TestClassLinters_tagAICode(t *testing.T) {
	w := expect.WrapT(t)
	entry := lookup([]byte("8010"), 4)
	w.StopOnMismatch().ShouldBeTrue(entry != nil)

	err := lintCSet39(entry, []byte("abc"))
	w.StopOnMismatch().ShouldBeTrue(err != nil)
	w.ShouldBeTrue(strings.Contains(err.Error(), "8010"))
}
