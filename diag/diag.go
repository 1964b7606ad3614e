// Package diag is the leveled diagnostic sink the fragment builder reports
// through. It is observability only; no correctness depends on it.
package diag

import (
	"crypto/rand"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"
)

// Sink accepts leveled diagnostic messages with key/value context.
// *log.Logger from charmbracelet/log satisfies it directly.
type Sink interface {
	Debug(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// Default returns a sink writing to stderr at Warn level.
func Default() Sink {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "sqlfrag",
		Level:  log.WarnLevel,
	})
}

type nopSink struct{}

func (nopSink) Debug(interface{}, ...interface{}) {}
func (nopSink) Warn(interface{}, ...interface{})  {}
func (nopSink) Error(interface{}, ...interface{}) {}

// Nop discards everything.
var Nop Sink = nopSink{}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// EventID returns a ULID for correlating a diagnostic with application logs.
func EventID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return ""
	}
	return id.String()
}
