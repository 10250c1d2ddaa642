// Package logging configures the zerolog console logger used for
// verbose diagnostics. Normal output goes through the ui package; the
// logger only speaks when -v is set.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger on stderr. Without verbose the logger
// is disabled entirely so progress bars stay clean.
func New(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.New(io.Discard)
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
