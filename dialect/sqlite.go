package dialect

import (
	"strconv"
	"strings"

	"github.com/Netizaar/sqlfrag/fragment"
)

// SQLite shares MySQL's bare '?' markers but quotes identifiers the
// standard way and keeps timestamps as plain epoch integers.
type SQLite struct{}

func NewSQLiteDialect() Dialect {
	return &SQLite{}
}

func (s SQLite) Name() string {
	return "sqlite"
}

func (s SQLite) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (s SQLite) Placeholder(n int) string {
	return "?"
}

func (s SQLite) RenderParam(v fragment.Param) string {
	switch v.Kind() {
	case fragment.KindNull:
		return "NULL"
	case fragment.KindInt, fragment.KindTime:
		return strconv.FormatInt(v.Value().(int64), 10)
	case fragment.KindFloat:
		return strconv.FormatFloat(v.Value().(float64), 'f', -1, 64)
	case fragment.KindString:
		return "'" + strings.ReplaceAll(v.Value().(string), "'", "''") + "'"
	case fragment.KindList:
		return renderList(s, v)
	default:
		return "NULL"
	}
}
