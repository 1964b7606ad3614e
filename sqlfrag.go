package sqlfrag

import (
	"github.com/Netizaar/sqlfrag/diag"
	"github.com/Netizaar/sqlfrag/fragment"
)

type Fragment = fragment.Fragment
type Param = fragment.Param
type Kind = fragment.Kind

const (
	KindNull   = fragment.KindNull
	KindInt    = fragment.KindInt
	KindFloat  = fragment.KindFloat
	KindString = fragment.KindString
	KindTime   = fragment.KindTime
	KindList   = fragment.KindList
)

// Value constructors.
var (
	Null    = fragment.Null
	Int     = fragment.Int
	Float   = fragment.Float
	String  = fragment.String
	Time    = fragment.Time
	Unix    = fragment.Unix
	List    = fragment.List
	Ints    = fragment.Ints
	Strings = fragment.Strings
)

// Builders.
var (
	New            = fragment.New
	NewWithOffsets = fragment.NewWithOffsets
	NewValues      = fragment.NewValues
	MatchAll       = fragment.MatchAll
)

// PlaceholderOffsets re-exports the template scanner.
var PlaceholderOffsets = fragment.PlaceholderOffsets

// SetDiagnostics swaps the sink build failures are reported to.
func SetDiagnostics(s diag.Sink) {
	fragment.SetDiagnostics(s)
}
