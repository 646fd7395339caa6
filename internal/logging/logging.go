// Package logging builds the zerolog loggers used by the CLI and TUI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"colombo-utc/internal/convert"

	"github.com/go-faster/errors"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = convert.UTCLayout
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
}

// New returns a logger writing to w at level. Terminals get the console writer.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "log level")
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// OpenDebug appends debug output to path. An empty path yields a no-op logger.
// The returned close func is always non-nil.
func OpenDebug(path string) (zerolog.Logger, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, errors.Wrap(err, "open debug log")
	}
	l := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Str("component", "tui").Logger()
	return l, f.Close, nil
}
