// Package logging builds the zap logger used for diagnostics. User-facing
// output is printed separately; logs go to stderr.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// EnvLogLevel overrides the level chosen from the flags.
const EnvLogLevel = "GIT_COMMIT_AI_LOG_LEVEL"

// Options selects the log level.
type Options struct {
	Debug   bool
	Verbose bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// Level returns the level for opts: debug with Debug, info with Verbose and
// warn otherwise. EnvLogLevel wins when set to a known level.
func (o Options) Level() zapcore.Level {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		return lvl
	}
	switch {
	case o.Debug:
		return zapcore.DebugLevel
	case o.Verbose:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

func parseLevel(level string) (zapcore.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel, true
	case "INFO":
		return zapcore.InfoLevel, true
	case "WARN", "WARNING":
		return zapcore.WarnLevel, true
	case "ERROR":
		return zapcore.ErrorLevel, true
	}
	return zapcore.InfoLevel, false
}

func encoderConfig(color bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = ""
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

// New returns a console logger tagged with a fresh run_id.
func New(opts Options) *zap.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig(isTerminal(out))),
		zapcore.Lock(zapcore.AddSync(out)),
		opts.Level(),
	)

	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("run_id", NewRunID()))
}

// isTerminal reports whether w is a terminal. Level colors are only
// written there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewRunID returns a short random identifier for one invocation.
func NewRunID() string {
	return uuid.New().String()[:8]
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
