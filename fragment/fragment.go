// Package fragment builds parameterized query fragments: a template string
// holding one '?' per bound value plus the flat, ordered value list a
// positional executor binds directly. Array params expand in place, so
//
//	New(&tmpl, []Param{Int(0), Ints(1, 2)})   // tmpl = "a = ? AND b IN (?)"
//
// yields "a = ? AND b IN (?,?)" bound to [0 1 2]. How the fragment is
// prefixed, executed or scanned is the caller's business.
package fragment

import (
	"strings"
)

// Placeholder is the reserved marker character in templates.
const Placeholder = '?'

// Fragment is the immutable (template, parameters) pair produced by the
// builders. For every successfully built fragment the number of '?' runes
// in Template equals len(Params).
type Fragment struct {
	template string
	params   []Param
}

// Template returns the rewritten query text.
func (f *Fragment) Template() string { return f.template }

// Params returns a copy of the bound values in placeholder order.
func (f *Fragment) Params() []Param {
	if f.params == nil {
		return nil
	}
	cp := make([]Param, len(f.params))
	copy(cp, f.params)
	return cp
}

// Args returns the binding representations of every param, in order, in
// the shape database/sql style executors take variadically.
func (f *Fragment) Args() []any {
	if f.params == nil {
		return nil
	}
	args := make([]any, len(f.params))
	for i, p := range f.params {
		args[i] = p.Value()
	}
	return args
}

func (f *Fragment) String() string {
	var sb strings.Builder
	sb.WriteString(f.template)
	sb.WriteString(" [")
	for i, p := range f.params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// PlaceholderOffsets scans template left to right and returns the
// zero-based byte offset of every placeholder marker, ascending.
func PlaceholderOffsets(template string) []int {
	var offsets []int
	for i := 0; i < len(template); i++ {
		if template[i] == Placeholder {
			offsets = append(offsets, i)
		}
	}
	return offsets
}
