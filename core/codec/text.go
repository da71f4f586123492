package codec

import (
	"golang.org/x/text/encoding/charmap"
)

// substitute replaces runes that code page 437 cannot represent.
const substitute = '?'

var codePage = charmap.CodePage437

// Truncate returns s cut to at most max characters.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// CanonicalString returns the value a text field of capacity max will hold
// after an encode/decode round trip.
func CanonicalString(s string, max int) string {
	runes := []rune(Truncate(s, max))
	for i, r := range runes {
		if _, ok := codePage.EncodeRune(r); !ok {
			runes[i] = substitute
		}
	}
	return string(runes)
}

// EncodeString returns s as a Pascal string occupying exactly max+1 bytes.
func EncodeString(s string, max int) []byte {
	field := make([]byte, max+1)
	putString(field, s, max)
	return field
}

// DecodeString reads a Pascal string of capacity max from field. A length byte
// larger than max, or larger than the bytes available, is clamped.
func DecodeString(field []byte, max int) string {
	if len(field) == 0 {
		return ""
	}
	n := int(field[0])
	if n > max {
		n = max
	}
	if n > len(field)-1 {
		n = len(field) - 1
	}
	out, err := codePage.NewDecoder().Bytes(field[1 : 1+n])
	if err != nil {
		return ""
	}
	return string(out)
}

// putString writes s into dst as a Pascal string. dst must hold max+1 bytes and
// is expected to be zeroed.
func putString(dst []byte, s string, max int) {
	n := 0
	for _, r := range Truncate(s, max) {
		b, ok := codePage.EncodeRune(r)
		if !ok {
			b = substitute
		}
		dst[1+n] = b
		n++
	}
	dst[0] = byte(n)
}
