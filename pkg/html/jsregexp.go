package html

import (
	"regexp"
	"strings"
)

var hexEscape = regexp.MustCompile(`\\x\{?([0-9a-fA-F]+)\}?`)

var closingDelimiter = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

// EscapeJSRegularExpression converts a PCRE pattern such as "/[a-z]+/iu"
// into a JavaScript regular expression literal. Hex escapes become \u
// escapes, bracket delimiters become slashes and only the g, i and m flags
// survive.
func EscapeJSRegularExpression(pattern string) string {
	pattern = hexEscape.ReplaceAllString(pattern, `\u${1}`)
	if pattern == "" {
		return "//"
	}

	delim := pattern[0]
	end := delim
	if c, ok := closingDelimiter[delim]; ok {
		end = c
	}
	pos := strings.LastIndexByte(pattern[1:], end) + 1
	if pos == 0 {
		pos = len(pattern)
	}

	body := pattern[1:pos]
	flags := ""
	if pos < len(pattern) {
		flags = pattern[pos+1:]
	}
	if delim != '/' {
		body = strings.ReplaceAll(body, "/", `\/`)
	}

	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(body)
	b.WriteByte('/')
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'g', 'i', 'm':
			b.WriteByte(flags[i])
		}
	}
	return b.String()
}
