package gowaylog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Keep the global logger private to prevent uninitialized access.
	logger *Logger

	noopLogger = &Logger{zap.NewNop().Sugar()}

	atomicLevel zap.AtomicLevel
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// Options selects the encoder and the initial level.
// Mode is "dev" or "prod"; an empty Level falls back to the mode default.
type Options struct {
	Mode  string
	Level string
	// Dir overrides the XDG state directory, mostly for tests.
	Dir string
}

// With adds structured fields to the logger and returns a new instance.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noopLogger
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *Logger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Component returns L() tagged with a component field.
func Component(name string) *Logger {
	return L().With("component", name)
}

// Init initializes the global logger.
//
//   - dev  → human-readable logs in <state>/<app>/app-debug.log
//   - prod → JSON logs in <state>/<app>/app.log
//
// The TUI owns the terminal, so nothing is written to stdout/stderr.
func Init(appName string, opts Options) string {
	mode := normalizeMode(opts.Mode)
	logPath := selectLogPath(appName, mode, opts.Dir)

	atomicLevel = zap.NewAtomicLevelAt(parseLevel(opts.Level, mode))

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, atomicLevel)
	logger = &Logger{zap.New(core, zap.AddCaller()).Sugar()}

	logger.Infof("logger initialized in %s mode. Writing to %s", mode, logPath)
	return logPath
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// InitTest creates a lightweight development logger writing to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return
	}
	atomicLevel = cfg.Level
	logger = &Logger{raw.Sugar()}
}

// SetLevel changes the log level at runtime.
func SetLevel(level zapcore.Level) {
	if atomicLevel != (zap.AtomicLevel{}) {
		atomicLevel.SetLevel(level)
	}
}

func normalizeMode(mode string) string {
	switch strings.ToLower(mode) {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

// StateDir returns the per-user state directory for appName, creating it.
func StateDir(appName string) string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0o755)
		return path
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0o755)
		return path
	}

	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0o755)
	return path
}

func selectLogPath(appName, mode, dir string) string {
	fileName := "app.log"
	if mode == "dev" {
		fileName = "app-debug.log"
	}
	if dir == "" {
		dir = StateDir(appName)
	} else {
		_ = os.MkdirAll(dir, 0o755)
	}
	return filepath.Join(dir, fileName)
}

func parseLevel(level, mode string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		if mode == "dev" {
			return zap.DebugLevel
		}
		return zap.InfoLevel
	}
}
