package aisyntax

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestParseDigitalLink(t *testing.T) {
	type dlTest struct {
		uri, canonical string
		ok             bool
	}
	pass := func(uri, canonical string) dlTest {
		return dlTest{uri: uri, canonical: canonical, ok: true}
	}
	fail := func(uri string) dlTest { return dlTest{uri: uri} }

	for i, tt := range []dlTest{
		pass("https://a/01/12312312312333", "#0112312312312333"),
		pass("http://a/01/12312312312333", "#0112312312312333"),
		pass("https://a/stem/01/12312312312333", "#0112312312312333"), // stem is discarded
		pass("https://a/more/stem/01/12312312312333", "#0112312312312333"),
		pass("https://a/stem/00/006141411234567890", "#00006141411234567890"),
		pass("https://a/00/faux/00/006141411234567890", "#00006141411234567890"), // rightmost key wins

		// GTIN-8/12/13 are zero padded to 14 digits
		pass("https://a/01/12345670", "#0100000012345670"),
		pass("https://a/01/123456789012", "#0100123456789012"),
		pass("https://a/01/2112345678900", "#0102112345678900"),

		// key qualifiers follow the key in the path
		pass("https://a/01/12312312312333/22/TEST/10/ABC/21/XYZ",
			"#011231231231233322TEST#10ABC#21XYZ"),
		pass("https://a/01/12312312312333/10/ABC123", "#011231231231233310ABC123"),

		// attributes arrive as query parameters
		pass("https://a/01/12312312312333?3103=000195", "#01123123123123333103000195"),
		pass("https://a/01/12312312312333?99=ABC&98=XYZ", "#011231231231233399ABC#98XYZ"),
		pass("https://a/01/12312312312333?3103=000195#fragment", "#01123123123123333103000195"),

		// non-AI query machinery is skipped; empty params too
		pass("https://a/01/12312312312333?linkType=all&99=ABC", "#011231231231233399ABC"),
		pass("https://a/01/12312312312333?singleton&99=ABC", "#011231231231233399ABC"),
		pass("https://a/01/12312312312333?&&&99=ABC", "#011231231231233399ABC"),

		// percent escapes; malformed ones pass through literally
		pass("https://a/01/12312312312333/10/AB%2FCD", "#011231231231233310AB/CD"),
		pass("https://a/01/12312312312333/10/AB%2fCD", "#011231231231233310AB/CD"),
		pass("https://a/01/12312312312333/10/AB%2G", "#011231231231233310AB%2G"),
		pass("https://a/01/12312312312333/10/AB%2", "#011231231231233310AB%2"),

		fail("https://a/01/12312312312333?999=faux"), // unknown numeric query AI
		fail("ftp://a/01/12312312312333"),            // bad scheme
		fail("https://a"),                            // no path info
		fail("https:///01/12312312312333"),           // no domain
		fail("https://a/stem/00/006141411234567890/"), // trailing slash
		fail("https://a/stem/"),                       // no key segment
		fail("https://a/01/12312312312330"),           // bad check digit
		fail("https://a/01/123123123123331"),          // GTIN too long
		fail("https://a/253/1231231231232TEST56789012345678"), // value too long
		fail("https://a/01/12312312312333?99=^"),      // bad CSET 82 character
		fail("https://a/01/12312312312333\x7f"),       // illegal URI character
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.uri), func(t *testing.T) {
			w := expect.WrapT(t)
			p := NewParser()

			err := p.ParseDigitalLink(tt.uri)
			if tt.ok {
				w.As(tt.uri).StopOnMismatch().ShouldSucceed(err)
				w.As(tt.uri).ShouldBeEqual(p.Canonical(), tt.canonical)
			} else {
				w.As(tt.uri).ShouldFail(err)
				w.As(tt.uri).ShouldBeEqual(p.Canonical(), "")
			}
		})
	}
}

func TestParseDigitalLink_elements(t *testing.T) {
	w := expect.WrapT(t)
	p := NewParser()

	w.StopOnMismatch().ShouldSucceed(
		p.ParseDigitalLink("https://id.example.org/01/12345670/10/ABC123?3103=000195"))

	els := p.Elements()
	w.StopOnMismatch().ShouldHaveLength(els, 3)
	w.ShouldBeEqual(els[0].AI(), "01")
	w.ShouldBeEqual(els[0].Value(), "00000012345670")
	w.ShouldBeEqual(els[1].AI(), "10")
	w.ShouldBeEqual(els[1].Value(), "ABC123")
	w.ShouldBeEqual(els[2].AI(), "3103")
	w.ShouldBeEqual(els[2].Value(), "000195")
}

func TestPadGTIN14(t *testing.T) {
	w := expect.WrapT(t)
	gtin := lookup([]byte("01"), 2)
	batch := lookup([]byte("10"), 2)

	var buf [maxAILen]byte
	n := copy(buf[:], "12345670")
	w.ShouldBeEqual(padGTIN14(gtin, buf[:], n), 14)
	w.ShouldBeEqual(string(buf[:14]), "00000012345670")

	// 14 digits already: untouched
	n = copy(buf[:], "12312312312333")
	w.ShouldBeEqual(padGTIN14(gtin, buf[:], n), 14)
	w.ShouldBeEqual(string(buf[:14]), "12312312312333")

	// wrong lengths and other AIs: untouched
	n = copy(buf[:], "1231231")
	w.ShouldBeEqual(padGTIN14(gtin, buf[:], n), 7)
	n = copy(buf[:], "12345670")
	w.ShouldBeEqual(padGTIN14(batch, buf[:], n), 8)
	w.ShouldBeEqual(string(buf[:8]), "12345670")
}

func TestURIUnescape(t *testing.T) {
	w := expect.WrapT(t)

	unescape := func(s string) string {
		var dst [maxAILen]byte
		return string(dst[:uriUnescape(dst[:], []byte(s))])
	}

	w.ShouldBeEqual(unescape("AB%2FCD"), "AB/CD")
	w.ShouldBeEqual(unescape("AB%2fCD"), "AB/CD")
	w.ShouldBeEqual(unescape("%41%42%43"), "ABC")
	w.ShouldBeEqual(unescape("plain"), "plain")

	// malformed escapes pass through literally
	w.ShouldBeEqual(unescape("AB%4GCD"), "AB%4GCD")
	w.ShouldBeEqual(unescape("AB%2"), "AB%2")
	w.ShouldBeEqual(unescape("AB%"), "AB%")
	w.ShouldBeEqual(unescape("%"), "%")
}
