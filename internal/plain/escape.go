package plain

import (
	"strconv"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// EscapeError reports an invalid percent-escape sequence.
type EscapeError string

func (e EscapeError) Error() string {
	return "invalid escape sequence " + strconv.Quote(string(e))
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// shouldEscapeQuery reports whether the byte must be percent-encoded
// when it appears inside a single query parameter per RFC 3986. The
// structural separators '&', '=' and '+' are always escaped; the other
// query-safe characters pass through.
func shouldEscapeQuery(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '~': // unreserved
		return false
	case '!', '$', '\'', '(', ')', '*', ',', ';': // sub-delims, minus the separators
		return false
	case ':', '@', '/', '?': // legal anywhere in the query component
		return false
	}
	return true
}

// EscapeQuery percent-encodes content for use as a single key or value
// inside a query component. Spaces encode as '+'.
func EscapeQuery(content string) string {
	spaces, hexCount := 0, 0
	for i := 0; i < len(content); i++ {
		c := content[i]
		if shouldEscapeQuery(c) {
			if c == ' ' {
				spaces++
			} else {
				hexCount++
			}
		}
	}

	if spaces == 0 && hexCount == 0 {
		return content
	}

	var buf strings.Builder
	buf.Grow(len(content) + 2*hexCount)
	for i := 0; i < len(content); i++ {
		switch c := content[i]; {
		case c == ' ':
			buf.WriteByte('+')
		case shouldEscapeQuery(c):
			buf.WriteByte('%')
			buf.WriteByte(upperhex[c>>4])
			buf.WriteByte(upperhex[c&0xf])
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

// UnescapeQuery reverses EscapeQuery: every %HH sequence decodes to its
// byte and '+' decodes to a space. Characters that EscapeQuery leaves
// intact, including '&' and '=', pass through unchanged so a whole
// query string can be unescaped in one call.
func UnescapeQuery(content string) (string, error) {
	percents := 0
	for i := 0; i < len(content); {
		if content[i] != '%' {
			i++
			continue
		}
		if i+2 >= len(content) || !ishex(content[i+1]) || !ishex(content[i+2]) {
			seq := content[i:]
			if len(seq) > 3 {
				seq = seq[:3]
			}
			return "", EscapeError(seq)
		}
		percents++
		i += 3
	}

	if percents == 0 && !strings.ContainsRune(content, '+') {
		return content, nil
	}

	var buf strings.Builder
	buf.Grow(len(content) - 2*percents)
	for i := 0; i < len(content); i++ {
		switch c := content[i]; c {
		case '%':
			buf.WriteByte(unhex(content[i+1])<<4 | unhex(content[i+2]))
			i += 2
		case '+':
			buf.WriteByte(' ')
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String(), nil
}
