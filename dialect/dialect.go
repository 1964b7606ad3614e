package dialect

import "github.com/Netizaar/sqlfrag/fragment"

// Dialect describes how a target engine spells identifiers, positional
// placeholders and debug literals.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	// Placeholder renders the marker for the n-th bound value, 1-based.
	Placeholder(n int) string
	// RenderParam renders p as an inline literal. Debugging only; rendered
	// text must never be executed.
	RenderParam(p fragment.Param) string
}
