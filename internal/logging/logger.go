package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the global logger: JSON to stdout at the configured level,
// fanned out to any extra sinks. main calls this twice — once before the
// database exists, and again to attach the system_logs error sink.
func Setup(level string, extras ...slog.Handler) {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	handler := slog.Handler(stdout)
	if len(extras) > 0 {
		handler = newFanout(append([]slog.Handler{stdout}, extras...))
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps the LOG_LEVEL config value onto an slog level. Unknown
// values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
