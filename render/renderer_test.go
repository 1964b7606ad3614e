package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Netizaar/sqlfrag/cache"
	"github.com/Netizaar/sqlfrag/dialect"
	"github.com/Netizaar/sqlfrag/fragment"
)

func build(t *testing.T, tmpl string, params []fragment.Param) *fragment.Fragment {
	t.Helper()
	f := fragment.New(&tmpl, params)
	require.NotNil(t, f)
	return f
}

func TestRebindPostgres(t *testing.T) {
	r := NewRenderer(dialect.NewPostgresDialect(), nil)

	f := build(t, "a = ? AND b in (?)", []fragment.Param{
		fragment.Int(1),
		fragment.Ints(2, 3),
	})
	assert.Equal(t, "a = $1 AND b in ($2,$3)", r.Rebind(f))

	assert.Equal(t, "", r.Rebind(fragment.MatchAll()))
}

func TestRebindMySQLIsIdentity(t *testing.T) {
	r := NewRenderer(dialect.NewMySQLDialect(), nil)

	f := build(t, "a = ? AND b in (?)", []fragment.Param{
		fragment.Int(1),
		fragment.Ints(2, 3),
	})
	assert.Equal(t, f.Template(), r.Rebind(f))
}

func TestRebindMemoized(t *testing.T) {
	tcache := cache.NewTemplateCache()
	r := NewRenderer(dialect.NewPostgresDialect(), tcache)

	f := build(t, "x = ?", []fragment.Param{fragment.Int(1)})
	first := r.Rebind(f)
	assert.Equal(t, "x = $1", first)

	// Same template shape hits the cache regardless of bound values.
	g := build(t, "x = ?", []fragment.Param{fragment.String("other")})
	assert.Equal(t, first, r.Rebind(g))
}

func TestRenderersDoNotShareCacheEntries(t *testing.T) {
	tcache := cache.NewTemplateCache()
	pg := NewRenderer(dialect.NewPostgresDialect(), tcache)
	my := NewRenderer(dialect.NewMySQLDialect(), tcache)

	f := build(t, "x = ?", []fragment.Param{fragment.Int(1)})
	assert.Equal(t, "x = $1", pg.Rebind(f))
	assert.Equal(t, "x = ?", my.Rebind(f))
}

func TestExplain(t *testing.T) {
	r := NewRenderer(dialect.NewPostgresDialect(), nil)

	f := build(t, "name = ? AND id in (?) AND seen > ?", []fragment.Param{
		fragment.String("it's"),
		fragment.Ints(1, 2),
		fragment.Unix(1700000000),
	})
	assert.Equal(t,
		"name = 'it''s' AND id in (1,2) AND seen > to_timestamp(1700000000)",
		r.Explain(f))
}
