package render

import "strings"

// Quote holds the identifier quote characters of a dialect.
type Quote struct {
	Left  string
	Right string
}

// Identifier quote styles.
var (
	DoubleQuote = Quote{Left: `"`, Right: `"`}
	Backtick    = Quote{Left: "`", Right: "`"}
	Brackets    = Quote{Left: "[", Right: "]"}
)

// Ident quotes a single identifier, doubling any embedded closing quote.
func (q Quote) Ident(name string) string {
	escaped := strings.ReplaceAll(name, q.Right, q.Right+q.Right)
	return q.Left + escaped + q.Right
}

// Qualified quotes each non-empty part and joins them with dots.
func (q Quote) Qualified(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			quoted = append(quoted, q.Ident(p))
		}
	}
	return strings.Join(quoted, ".")
}
