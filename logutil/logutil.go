// logutil.go - slog-Konstruktion mit Trace-Level
//
// Dieses Modul enthaelt:
// - LevelTrace: Log-Level unterhalb von Debug
// - NewLogger: Text-Handler mit Kurz-Dateinamen und TRACE-Label
package logutil

import (
	"io"
	"log/slog"
	"path/filepath"
)

// LevelTrace sits below slog.LevelDebug for very chatty diagnostics.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs at trace level on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(nil, LevelTrace, msg, args...)
}

// NewLogger builds a text logger that trims source paths to their base name
// and renders LevelTrace as "TRACE".
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			case slog.LevelKey:
				if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			}
			return attr
		},
	}))
}
