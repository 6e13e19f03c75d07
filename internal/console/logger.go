package console

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// NewLogger returns a slog logger that renders through charm's terminal
// handler. Progress is the Reporter's job, so only warnings and errors are
// logged unless verbose lowers the level to debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: "boxcar",
		Level:  level,
	})
	return slog.New(handler)
}
