package html

import (
	"strings"
	"unicode/utf8"
)

// Encode escapes text for safe inclusion in HTML content and attribute
// values. The five reserved characters become entities and each ill-formed
// UTF-8 sequence becomes a single U+FFFD, so Encode never fails.
func Encode(s string) string {
	return encode(s, true)
}

// EncodeKeepEntities is Encode without double encoding: an ampersand that
// already starts a character reference is copied as is.
func EncodeKeepEntities(s string) string {
	return encode(s, false)
}

func encode(s string, double bool) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune(utf8.RuneError)
			i += invalidLen(s[i:])
			continue
		}
		switch r {
		case '&':
			if !double && entityLen(s[i:]) > 0 {
				buf.WriteByte('&')
			} else {
				buf.WriteString("&amp;")
			}
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#039;")
		default:
			buf.WriteString(s[i : i+size])
		}
		i += size
	}

	return buf.String()
}

// invalidLen returns the length of the maximal subpart of an ill-formed
// sequence at the start of s: a lead byte followed by the continuation bytes
// that could still have completed it. It is at least 1.
func invalidLen(s string) int {
	var lo, hi byte = 0x80, 0xBF
	need := 0
	switch b := s[0]; {
	case b >= 0xC2 && b <= 0xDF:
		need = 1
	case b == 0xE0:
		need, lo = 2, 0xA0
	case b == 0xED:
		need, hi = 2, 0x9F
	case b >= 0xE1 && b <= 0xEF:
		need = 2
	case b == 0xF0:
		need, lo = 3, 0x90
	case b == 0xF4:
		need, hi = 3, 0x8F
	case b >= 0xF1 && b <= 0xF3:
		need = 3
	}
	n := 1
	for ; n <= need && n < len(s); n++ {
		if s[n] < lo || s[n] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return n
}

// entityLen returns the length of the character reference at the start of s
// ("&amp;", "&#39;", "&#x1F;"), or 0 when s does not start with one.
func entityLen(s string) int {
	if len(s) < 3 || s[0] != '&' {
		return 0
	}
	i := 1
	switch {
	case s[i] == '#':
		i++
		hex := i < len(s) && (s[i] == 'x' || s[i] == 'X')
		if hex {
			i++
		}
		start := i
		for i < len(s) && (isDigit(s[i]) || hex && isHexLetter(s[i])) {
			i++
		}
		if i == start {
			return 0
		}
	case isLetter(s[i]):
		for i < len(s) && (isLetter(s[i]) || isDigit(s[i])) {
			i++
		}
	default:
		return 0
	}
	if i >= len(s) || s[i] != ';' {
		return 0
	}
	return i + 1
}

func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
func isLetter(c byte) bool    { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isHexLetter(c byte) bool { return c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' }

var decoder = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&amp;", "&",
)

// Decode reverses Encode. Only the five entities Encode produces are
// recognised; numeric references are left untouched.
func Decode(s string) string {
	return decoder.Replace(s)
}
