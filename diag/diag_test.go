package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventIDIsUniqueAndSortable(t *testing.T) {
	a := EventID()
	b := EventID()

	assert.Len(t, a, 26)
	assert.Len(t, b, 26)
	assert.NotEqual(t, a, b)
	// Monotonic entropy within one process: later IDs sort later.
	assert.Less(t, a, b)
}

func TestNopSinkAcceptsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop.Debug("x", "k", 1)
		Nop.Warn(nil)
		Nop.Error("y", "err", assert.AnError)
	})
}
