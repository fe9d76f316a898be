package aisyntax

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

// uriChars is the set of characters permitted anywhere in a Digital
// Link URI, including percent.
var uriChars = func() [128]bool {
	const permitted = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
		"0123456789-._~:/?#[]@!$&'()*+,;=%"
	var set [128]bool
	for i := 0; i < len(permitted); i++ {
		set[permitted[i]] = true
	}
	return set
}()

// ParseDigitalLink ingests a GS1 Digital Link URI, e.g.
// "https://id.example.org/01/09520123456788/10/ABC123?3103=000195",
// extracting its AI data into canonical form and validating it.
//
// The path is scanned from the right for the rightmost segment naming
// a Digital Link primary key; everything left of it is an arbitrary
// stem and is discarded (the conversion is lossy by specification).
// Query parameters with non-numeric names or no value are silently
// ignored; an all-numeric parameter name that is not a known AI fails
// the parse.
func (p *Parser) ParseDigitalLink(uri string) error {
	p.Reset()

	in := []byte(uri)
	for _, ch := range in {
		if ch > 127 || !uriChars[ch] {
			return p.fail(errors.New("URI contains illegal characters"))
		}
	}

	var rest []byte
	switch {
	case strings.HasPrefix(uri, "https://"):
		rest = in[8:]
	case strings.HasPrefix(uri, "http://"):
		rest = in[7:]
	default:
		return p.fail(errors.New("scheme must be http:// or https://"))
	}

	// the authority must be non-empty and followed by path info
	slash := bytes.IndexByte(rest, '/')
	if slash < 1 {
		return p.fail(errors.New("URI must contain a domain and path info"))
	}
	pathInfo := rest[slash:]

	// query parameters end the path info; a fragment ends the query
	var query []byte
	if q := bytes.IndexByte(pathInfo, '?'); q >= 0 {
		query = pathInfo[q+1:]
		pathInfo = pathInfo[:q]
	}
	if f := bytes.IndexByte(query, '#'); f >= 0 {
		query = query[:f]
	}

	// walk "/AI/value" pairs backward from the end of the path,
	// stopping at the rightmost segment naming a primary key
	dlStart := -1
	end := len(pathInfo)
	for {
		r := bytes.LastIndexByte(pathInfo[:end], '/')
		if r < 0 {
			break
		}
		s := bytes.LastIndexByte(pathInfo[:r], '/')
		if s < 0 {
			break // reached the start of the path info
		}
		entry := lookup(pathInfo[s+1:r], r-s-1)
		if entry == nil {
			break
		}
		if isDLPrimaryKey(entry.AI) {
			dlStart = s
			break
		}
		end = s
	}
	if dlStart < 0 {
		return p.fail(errors.New("no GS1 DL keys found in path info"))
	}

	// consume each /AI/value pair from the key to the end of the path;
	// the backward scan already proved each segment pair looks up
	fnc1req := true
	var aival [maxAILen]byte
	pos := dlStart
	for pos < len(pathInfo) {
		pos++ // leading '/'
		r := bytes.IndexByte(pathInfo[pos:], '/')
		if r < 0 {
			return p.fail(errors.New("failed to parse DL data"))
		}
		entry := lookup(pathInfo[pos:pos+r], r)
		if entry == nil {
			return p.fail(errors.New("failed to parse DL data"))
		}
		pos += r + 1

		valEnd := bytes.IndexByte(pathInfo[pos:], '/')
		if valEnd < 0 {
			valEnd = len(pathInfo) - pos
		}
		vallen := uriUnescape(aival[:], pathInfo[pos:pos+valEnd])
		if vallen == 0 {
			return p.fail(errors.Errorf("decoded AI (%s) from DL path info too long", entry.AI))
		}
		pos += valEnd

		vallen = padGTIN14(entry, aival[:], vallen)

		if err := p.appendAI(entry, aival[:vallen], &fnc1req); err != nil {
			return p.fail(err)
		}
	}

	// query parameters, in encounter order
	for len(query) > 0 {
		for len(query) > 0 && query[0] == '&' {
			query = query[1:]
		}
		param := query
		if amp := bytes.IndexByte(query, '&'); amp >= 0 {
			param = query[:amp]
			query = query[amp:]
		} else {
			query = nil
		}

		// discard valueless parameters
		eq := bytes.IndexByte(param, '=')
		if eq < 0 {
			continue
		}
		name := param[:eq]

		// an all-numeric name must be a known AI; anything else is
		// some unrelated URI machinery and is skipped
		if !allDigits(name) || len(name) == 0 {
			continue
		}
		entry := lookup(name, len(name))
		if entry == nil {
			return p.fail(errors.Errorf("unknown AI (%s) in query parameters", name))
		}

		vallen := uriUnescape(aival[:], param[eq+1:])
		if vallen == 0 {
			return p.fail(errors.Errorf("decoded AI (%s) value from DL query params too long", entry.AI))
		}

		vallen = padGTIN14(entry, aival[:], vallen)

		if err := p.appendAI(entry, aival[:vallen], &fnc1req); err != nil {
			return p.fail(err)
		}
	}

	if err := p.processAIData(); err != nil {
		return p.fail(err)
	}
	return nil
}

// appendAI writes one AI and its value to the canonical buffer,
// inserting FNC1 beforehand when the previous AI required termination,
// and runs the length/content pre-check on the value.
func (p *Parser) appendAI(entry *Entry, val []byte, fnc1req *bool) error {
	if *fnc1req {
		if err := p.writeByte(fnc1); err != nil {
			return err
		}
	}
	if err := p.writeString(entry.AI); err != nil {
		return err
	}
	*fnc1req = !hasFixedLengthPrefix(entry.AI)

	if err := p.write(val); err != nil {
		return err
	}
	return lengthContentCheck(entry, val)
}

// padGTIN14 left-pads AI (01) values given as GTIN-8, GTIN-12 or
// GTIN-13 with zeros up to the full 14 digits, in place. Other values
// pass through unchanged.
func padGTIN14(entry *Entry, val []byte, vallen int) int {
	if entry.AI != "01" {
		return vallen
	}
	if vallen != 8 && vallen != 12 && vallen != 13 {
		return vallen
	}
	copy(val[14-vallen:14], val[:vallen])
	for i := 0; i < 14-vallen; i++ {
		val[i] = '0'
	}
	return 14
}

// uriUnescape reverses percent encoding of src into dst and returns
// the decoded length. Malformed escapes ("%4g", a truncated "%2") are
// passed through literally rather than rejected. Decoding stops when
// dst is full; the per-AI length checks catch oversized values.
func uriUnescape(dst []byte, src []byte) int {
	j := 0
	for i := 0; i < len(src) && j < len(dst); i, j = i+1, j+1 {
		if i < len(src)-2 && src[i] == '%' && isHexDigit(src[i+1]) && isHexDigit(src[i+2]) {
			dst[j] = unhex(src[i+1])<<4 | unhex(src[i+2])
			i += 2
		} else {
			dst[j] = src[i]
		}
	}
	return j
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func unhex(ch byte) byte {
	switch {
	case ch >= 'a':
		return ch - 'a' + 10
	case ch >= 'A':
		return ch - 'A' + 10
	default:
		return ch - '0'
	}
}
