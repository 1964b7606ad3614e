// Package render turns built fragments into executor-ready SQL text for a
// concrete dialect.
package render

import (
	"strings"

	"github.com/Netizaar/sqlfrag/cache"
	"github.com/Netizaar/sqlfrag/dialect"
	"github.com/Netizaar/sqlfrag/fragment"
	"github.com/Netizaar/sqlfrag/utils"
)

type Renderer struct {
	dialect dialect.Dialect
	tcache  cache.TemplateCache
	dfp     uint64
}

// NewRenderer wires a dialect to a template cache. tcache may be nil to
// disable memoization.
func NewRenderer(d dialect.Dialect, tcache cache.TemplateCache) *Renderer {
	return &Renderer{
		dialect: d,
		tcache:  tcache,
		dfp:     utils.FingerprintString(d.Name()),
	}
}

// Rebind rewrites every '?' in the fragment's template into the dialect's
// positional placeholder, numbered left to right from 1. The result is
// memoized per (dialect, template).
func (r *Renderer) Rebind(f *fragment.Fragment) string {
	tmpl := f.Template()

	var key uint64
	if r.tcache != nil {
		key = utils.Mix64(r.dfp, utils.FingerprintString(tmpl))
		if sql, ok := r.tcache.Get(key); ok {
			return sql
		}
	}

	var sb strings.Builder
	sb.Grow(len(tmpl) + 8)
	n := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != fragment.Placeholder {
			sb.WriteByte(tmpl[i])
			continue
		}
		n++
		sb.WriteString(r.dialect.Placeholder(n))
	}

	sql := sb.String()
	if r.tcache != nil {
		r.tcache.Set(key, sql)
	}
	return sql
}

// Explain inlines the fragment's values as dialect literals at each
// placeholder. Logging and debugging only; never execute the result.
func (r *Renderer) Explain(f *fragment.Fragment) string {
	tmpl := f.Template()
	params := f.Params()

	var sb strings.Builder
	sb.Grow(len(tmpl) + 16*len(params))
	n := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != fragment.Placeholder {
			sb.WriteByte(tmpl[i])
			continue
		}
		if n < len(params) {
			sb.WriteString(r.dialect.RenderParam(params[n]))
		} else {
			sb.WriteByte(tmpl[i])
		}
		n++
	}
	return sb.String()
}
