package sqlfrag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlfrag "github.com/Netizaar/sqlfrag"
	"github.com/Netizaar/sqlfrag/cache"
)

func TestFacadeBuild(t *testing.T) {
	tmpl := "state = ? AND owner in (?)"
	f := sqlfrag.New(&tmpl, []sqlfrag.Param{
		sqlfrag.String("open"),
		sqlfrag.Strings("ana", "bo"),
	})
	require.NotNil(t, f)
	assert.Equal(t, "state = ? AND owner in (?,?)", f.Template())
	assert.Equal(t, []any{"open", "ana", "bo"}, f.Args())
}

func TestFacadeScanCacheFeedsBuilder(t *testing.T) {
	sc := cache.NewScanCache(32)
	tmpl := "a in (?) AND b = ?"

	// The cached scan is the optimization path: same result, no rescan.
	offsets := sc.Locations(tmpl)
	f := sqlfrag.NewWithOffsets(&tmpl, []sqlfrag.Param{
		sqlfrag.Ints(1, 2, 3),
		sqlfrag.Int(4),
	}, offsets)

	require.NotNil(t, f)
	assert.Equal(t, "a in (?,?,?) AND b = ?", f.Template())
	assert.Equal(t, []any{int64(1), int64(2), int64(3), int64(4)}, f.Args())
}

func TestFacadeMatchAll(t *testing.T) {
	f := sqlfrag.MatchAll()
	require.NotNil(t, f)
	assert.Equal(t, "", f.Template())
	assert.Empty(t, f.Args())
}
