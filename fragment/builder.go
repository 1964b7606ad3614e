package fragment

import (
	"strings"
	"sync"

	"github.com/Netizaar/sqlfrag/diag"
)

// sink receives build-failure diagnostics. Swappable for tests and for
// applications that already carry a logger.
var (
	sinkMu sync.RWMutex
	sink   diag.Sink = diag.Default()
)

// SetDiagnostics replaces the diagnostic sink. A nil s silences output.
func SetDiagnostics(s diag.Sink) {
	if s == nil {
		s = diag.Nop
	}
	sinkMu.Lock()
	sink = s
	sinkMu.Unlock()
}

func diagnostics() diag.Sink {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink
}

// expansion records that the placeholder matching parameter ordinal must
// be rewritten into width placeholder markers.
type expansion struct {
	ordinal int
	width   int
}

// New builds a fragment from a template and an explicit parameter list,
// expanding every list param into one placeholder per element. A nil
// template means "no fragment" and yields nil; an empty template with no
// params is the match-all fragment. On an unsupported parameter shape, or
// a parameter count that disagrees with the placeholder count, the build
// is abandoned: one diagnostic, nil result, no panic.
func New(template *string, params []Param) *Fragment {
	return NewWithOffsets(template, params, nil)
}

// NewWithOffsets is New for callers that already know the placeholder
// offsets of template (from a prior scan or a scan cache). offsets must be
// ascending and complete, exactly what PlaceholderOffsets returns; pass
// nil to scan here.
func NewWithOffsets(template *string, params []Param, offsets []int) *Fragment {
	if template == nil {
		return nil
	}
	if offsets == nil {
		offsets = PlaceholderOffsets(*template)
	}

	// Every param ordinal consumes exactly one original placeholder
	// (scalars, lists and empty lists alike), so parity of the final
	// fragment reduces to parity here. Rejecting now keeps the invariant
	// unconditional and stops a downstream executor from binding
	// misaligned.
	if len(params) != len(offsets) {
		diagnostics().Warn("parameter count does not match placeholders",
			"event_id", diag.EventID(),
			"want", len(offsets), "got", len(params))
		return nil
	}

	// First pass: flatten params and record which ordinals need widening.
	var flat []Param
	var expansions []expansion
	for i, p := range params {
		if p.kind != KindList {
			flat = append(flat, p)
			continue
		}
		for _, e := range p.list {
			if e.kind == KindList {
				diagnostics().Warn("nested list param rejected",
					"event_id", diag.EventID(), "param", i)
				return nil
			}
		}
		if len(p.list) == 0 {
			// Degenerate empty list: keep the single placeholder and bind
			// NULL to it. IN (NULL) matches no rows, and the
			// placeholder/param parity invariant holds.
			flat = append(flat, Null())
			continue
		}
		expansions = append(expansions, expansion{ordinal: i, width: len(p.list)})
		flat = append(flat, p.list...)
	}

	tmpl := *template
	// Expansions must be applied in ascending ordinal order: the shift
	// accumulated by each rewrite is only valid for offsets to its right.
	// The slice is built in that order above.
	shift := 0
	for _, e := range expansions {
		at := offsets[e.ordinal] + shift
		run := placeholderRun(e.width)
		tmpl = tmpl[:at] + run + tmpl[at+1:]
		shift += len(run) - 1
	}

	return &Fragment{template: tmpl, params: flat}
}

// NewValues is variadic sugar over New for scalar-only callers: one value
// per placeholder, no array expansion. The placeholder count is computed
// up front and reads are bounded by it, so a count or type mismatch can
// only ever produce a diagnostic and a nil fragment.
func NewValues(template *string, values ...any) *Fragment {
	if template == nil {
		return nil
	}

	offsets := PlaceholderOffsets(*template)
	if len(values) != len(offsets) {
		diagnostics().Warn("variadic value count does not match placeholders",
			"event_id", diag.EventID(),
			"want", len(offsets), "got", len(values))
		return nil
	}

	var params []Param
	for i, v := range values {
		p, err := fromScalar(v)
		if err != nil {
			diagnostics().Warn("variadic value rejected",
				"event_id", diag.EventID(), "pos", i, "err", err)
			return nil
		}
		params = append(params, p)
	}
	return NewWithOffsets(template, params, offsets)
}

// MatchAll returns the no-filter fragment: empty template, no params.
// Downstream consumers read it as "select everything".
func MatchAll() *Fragment {
	return &Fragment{}
}

// placeholderRun renders n placeholders joined by commas: "?,?,?" for 3.
func placeholderRun(n int) string {
	var sb strings.Builder
	sb.Grow(2*n - 1)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(Placeholder)
	}
	return sb.String()
}
