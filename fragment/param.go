package fragment

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind identifies which variant of the closed parameter set a Param holds.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindTime
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindList:
		return "list"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Param is a single bound query value. The variant set is closed: null,
// integer, float, string, timestamp (whole seconds since the Unix epoch)
// or a flat list of those scalars. A list element may not itself be a
// list; the builder rejects that shape instead of miscomputing offsets.
type Param struct {
	kind Kind
	n    int64
	f    float64
	s    string
	list []Param
}

func Null() Param { return Param{kind: KindNull} }

func Int(v int64) Param { return Param{kind: KindInt, n: v} }

func Float(v float64) Param { return Param{kind: KindFloat, f: v} }

func String(v string) Param { return Param{kind: KindString, s: v} }

// Time stores t truncated to whole seconds since the Unix epoch.
func Time(t time.Time) Param { return Param{kind: KindTime, n: t.Unix()} }

// Unix stores an already-computed epoch offset in seconds.
func Unix(sec int64) Param { return Param{kind: KindTime, n: sec} }

// List builds an array parameter from scalar elements. The slice is copied
// so later mutation of elems cannot reach into a built fragment.
func List(elems ...Param) Param {
	cp := make([]Param, len(elems))
	copy(cp, elems)
	return Param{kind: KindList, list: cp}
}

// Ints is shorthand for List over int64 values, the common IN-clause case.
func Ints(vs ...int64) Param {
	elems := make([]Param, len(vs))
	for i, v := range vs {
		elems[i] = Int(v)
	}
	return Param{kind: KindList, list: elems}
}

// Strings is shorthand for List over string values.
func Strings(vs ...string) Param {
	elems := make([]Param, len(vs))
	for i, v := range vs {
		elems[i] = String(v)
	}
	return Param{kind: KindList, list: elems}
}

func (p Param) Kind() Kind { return p.kind }

// Len returns the element count for list params and 0 for scalars.
func (p Param) Len() int { return len(p.list) }

// Elems returns a copy of a list param's elements, nil for scalars.
func (p Param) Elems() []Param {
	if p.kind != KindList {
		return nil
	}
	cp := make([]Param, len(p.list))
	copy(cp, p.list)
	return cp
}

// Value returns the representation handed to a positional executor: int64
// for integers and timestamps (the epoch offset), float64, string, or nil
// for null. List params have no single binding value and return nil.
func (p Param) Value() any {
	switch p.kind {
	case KindInt, KindTime:
		return p.n
	case KindFloat:
		return p.f
	case KindString:
		return p.s
	default:
		return nil
	}
}

func (p Param) String() string {
	switch p.kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return strconv.FormatInt(p.n, 10)
	case KindFloat:
		return strconv.FormatFloat(p.f, 'f', -1, 64)
	case KindString:
		return strconv.Quote(p.s)
	case KindTime:
		return "@" + strconv.FormatInt(p.n, 10)
	case KindList:
		return fmt.Sprintf("list(%d)", len(p.list))
	default:
		return "param(?)"
	}
}

// fromScalar converts one variadic caller value into a scalar Param. The
// variadic entry point never expands arrays, so list shapes are refused
// here alongside anything outside the closed type set.
func fromScalar(v any) (Param, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Param:
		if x.kind == KindList {
			return Param{}, fmt.Errorf("list param not accepted variadically; use New with an explicit param slice")
		}
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Param{}, fmt.Errorf("unsigned value %d overflows int64", x)
		}
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Param{}, fmt.Errorf("unsigned value %d overflows int64", x)
		}
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case time.Time:
		return Time(x), nil
	default:
		return Param{}, fmt.Errorf("unsupported parameter type %T", v)
	}
}
