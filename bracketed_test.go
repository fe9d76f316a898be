package aisyntax

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestParseBracketed(t *testing.T) {
	type aiTest struct {
		data, canonical string
		ok              bool
	}
	pass := func(data, canonical string) aiTest {
		return aiTest{data: data, canonical: canonical, ok: true}
	}
	fail := func(data string) aiTest { return aiTest{data: data} }

	for i, tt := range []aiTest{
		pass("(01)12345678901231", "#0112345678901231"),
		pass("(10)12345", "#1012345"),
		pass("(01)12345678901231(10)12345", "#01123456789012311012345"), // no FNC1 after (01)
		pass("(3100)123456(10)12345", "#31001234561012345"),             // no FNC1 after (3100)
		pass("(10)12345(11)991225", "#1012345#11991225"),                // FNC1 after (10)
		pass("(3900)12345(11)991225", "#390012345#11991225"),            // FNC1 after (3900)
		pass(`(10)12345\(11)991225`, "#1012345(11)991225"),              // escaped bracket
		pass(`(10)12345\(`, "#1012345("),                                // escape at end is fine

		fail("(10)(11)98765"),  // value must not be empty
		fail("(10)12345(11)"),  // value must not be empty
		fail("(1A)12345"),      // AI must be numeric
		fail("1(12345"),        // must start with AI
		fail("12345"),          // must start with AI
		fail("()12345"),        // AI too short
		fail("(1)12345"),       // AI too short
		fail("(12345)12345"),   // AI too long
		fail("(15"),            // AI must terminate
		fail("(1"),             // AI must terminate
		fail("("),              // AI must terminate
		fail("(01)123456789012312(10)12345"), // fixed-length AI too long
		fail("(10)12345#"),     // reject '#': conflated with FNC1
		fail("(17)9(90)217"),   // must not parse as (17)990217
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.data), func(t *testing.T) {
			w := expect.WrapT(t)
			p := NewParser()

			err := p.ParseBracketed(tt.data)
			if tt.ok {
				w.As(tt.data).StopOnMismatch().ShouldSucceed(err)
				w.As(tt.data).ShouldBeEqual(p.Canonical(), tt.canonical)
			} else {
				w.As(tt.data).ShouldFail(err)
				w.As(tt.data).ShouldBeEqual(p.Canonical(), "")
			}
		})
	}
}

func TestParseBracketed_escapeKeepsSingleElement(t *testing.T) {
	w := expect.WrapT(t)
	p := NewParser()

	// the escaped bracket keeps the whole text one value of AI (10)
	w.StopOnMismatch().ShouldSucceed(p.ParseBracketed(`(10)12345\(11)991225`))
	w.StopOnMismatch().ShouldHaveLength(p.Elements(), 1)
	w.ShouldBeEqual(p.Elements()[0].AI(), "10")
	w.ShouldBeEqual(p.Elements()[0].Value(), "12345(11)991225")

	// without the escape the same text is two AIs
	w.StopOnMismatch().ShouldSucceed(p.ParseBracketed("(10)12345(11)991225"))
	w.StopOnMismatch().ShouldHaveLength(p.Elements(), 2)
	w.ShouldBeEqual(p.Elements()[0].AI(), "10")
	w.ShouldBeEqual(p.Elements()[0].Value(), "12345")
	w.ShouldBeEqual(p.Elements()[1].AI(), "11")
	w.ShouldBeEqual(p.Elements()[1].Value(), "991225")
}

func TestParseBracketed_reconstruction(t *testing.T) {
	w := expect.WrapT(t)
	p := NewParser()

	for _, data := range []string{
		"(01)12345678901231(10)12345",
		"(10)12345(11)991225",
		`(10)12345\(11)991225`,
	} {
		w.As(data).StopOnMismatch().ShouldSucceed(p.ParseBracketed(data))
		w.As(data).ShouldBeEqual(p.AIDataStr(), data)
	}
}

func TestParseBracketed_hri(t *testing.T) {
	w := expect.WrapT(t)
	p := NewParser()

	w.StopOnMismatch().ShouldSucceed(p.ParseBracketed("(01)12345678901231(10)ABC123"))
	hri := p.HRI()
	w.StopOnMismatch().ShouldHaveLength(hri, 2)
	w.ShouldBeEqual(hri[0], "(01) 12345678901231")
	w.ShouldBeEqual(hri[1], "(10) ABC123")
}
