package dialect

import (
	"strconv"
	"strings"

	"github.com/Netizaar/sqlfrag/fragment"
)

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (m MySQL) Name() string {
	return "mysql"
}

func (m MySQL) QuoteIdentifier(name string) string {
	return "`" + name + "`"
}

func (m MySQL) Placeholder(n int) string {
	return "?"
}

func (m MySQL) RenderParam(v fragment.Param) string {
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
		return "FROM_UNIXTIME(" + strconv.FormatInt(v.Value().(int64), 10) + ")"
	case fragment.KindList:
		return renderList(m, v)
	default:
		return "NULL"
	}
}
