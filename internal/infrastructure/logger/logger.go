package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName is the log file written under Config.Dir.
const FileName = "minesweeper.log"

type Config struct {
	Level string // debug|info|warn|error
	// Dir, when set, sends JSON logs to Dir/FileName instead of Out.
	Dir string
	Out io.Writer
}

// ParseLevel maps a level name to slog; unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Setup builds the process logger. The cleanup func closes the log file, if any.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	lvl := ParseLevel(cfg.Level)
	if cfg.Dir == "" {
		out := cfg.Out
		if out == nil {
			out = os.Stdout
		}
		l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
		return l, func() error { return nil }, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return Discard(), func() error { return nil }, err
	}
	path := filepath.Join(cfg.Dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), func() error { return nil }, err
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	l := slog.New(h)
	l.Info("logger.initialized", "path", path, "level", lvl.String())
	return l, f.Close, nil
}
