package specs

import "github.com/oxlip/qstring/internal/plain"

// Escaper escapes and unescapes single query component strings.
// The engine never percent-encodes by itself: it unescapes the raw
// query string once at construction and escapes each key and value
// once at reconstruction, both through the injected Escaper.
type Escaper interface {
	// Escape percent-encodes content for use as a query parameter.
	Escape(content string) string

	// Unescape percent-decodes content.
	Unescape(content string) (string, error)
}

// QueryEscaping is the default Escaper, applying RFC 3986 query
// component rules with '+' for spaces.
var QueryEscaping Escaper = queryEscaping{}

type queryEscaping struct{}

func (queryEscaping) Escape(content string) string {
	return plain.EscapeQuery(content)
}

func (queryEscaping) Unescape(content string) (string, error) {
	return plain.UnescapeQuery(content)
}

// EscaperFuncs adapts a pair of plain functions to the Escaper interface.
type EscaperFuncs struct {
	EscapeFunc   func(content string) string
	UnescapeFunc func(content string) (string, error)
}

func (ef EscaperFuncs) Escape(content string) string {
	return ef.EscapeFunc(content)
}

func (ef EscaperFuncs) Unescape(content string) (string, error) {
	return ef.UnescapeFunc(content)
}
