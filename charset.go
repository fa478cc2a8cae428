package fontatlas

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Charset maps atlas code points (byte values) to the runes requested from
// the rasterizer. The zero value is Latin-1, where every byte is its own
// Unicode code point.
type Charset struct {
	name string
	cm   *charmap.Charmap
}

// Latin1 is the identity charset.
var Latin1 = Charset{}

// LookupCharset returns the single-byte code page registered under an IANA
// name such as "windows-1252", "IBM437" or "KOI8-R". The empty name,
// "latin1" and "ISO-8859-1" select Latin1.
func LookupCharset(name string) (Charset, error) {
	switch strings.ToLower(name) {
	case "", "latin1", "iso-8859-1":
		return Latin1, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return Charset{}, &ConfigError{Field: "charset", Value: name, Reason: "unknown or unsupported encoding"}
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return Charset{}, &ConfigError{Field: "charset", Value: name, Reason: "not a single-byte code page"}
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}
	return Charset{name: canonical, cm: cm}, nil
}

// Name returns the charset's IANA name.
func (c Charset) Name() string {
	if c.cm == nil {
		return "ISO-8859-1"
	}
	return c.name
}

// Rune returns the character stored in the slot for codePoint.
// Undefined bytes of a code page map to U+FFFD.
func (c Charset) Rune(codePoint int) rune {
	if c.cm == nil || codePoint < 0 || codePoint > 0xff {
		return rune(codePoint)
	}
	return c.cm.DecodeByte(byte(codePoint))
}
