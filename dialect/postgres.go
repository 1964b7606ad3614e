package dialect

import (
	"strconv"
	"strings"

	"github.com/Netizaar/sqlfrag/fragment"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (p Postgres) Name() string {
	return "postgres"
}

func (p Postgres) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (p Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (p Postgres) RenderParam(v fragment.Param) string {
	switch v.Kind() {
	case fragment.KindNull:
		return "NULL"
	case fragment.KindInt:
		return strconv.FormatInt(v.Value().(int64), 10)
	case fragment.KindFloat:
		return strconv.FormatFloat(v.Value().(float64), 'f', -1, 64)
	case fragment.KindString:
		return "'" + strings.ReplaceAll(v.Value().(string), "'", "''") + "'"
	case fragment.KindTime:
		return "to_timestamp(" + strconv.FormatInt(v.Value().(int64), 10) + ")"
	case fragment.KindList:
		return renderList(p, v)
	default:
		return "NULL"
	}
}

// renderList renders a parenthesized element list, shared by dialects.
func renderList(d Dialect, v fragment.Param) string {
	elems := v.Elems()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = d.RenderParam(e)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
