package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "ghost-esp-control.log"

// Options controls the log sink. Zero values fall back to defaults.
type Options struct {
	Path       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

var (
	mu           sync.RWMutex
	logger       = zap.NewNop()
	traceEnabled bool
)

// Configure replaces the process logger with one writing JSON lines to a
// rotated file. Directories are created automatically when missing. It never
// writes to the terminal, which the UI owns.
func Configure(opts Options) error {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = defaultLogFile
	}
	level := zapcore.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 5
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, zap.NewAtomicLevelAt(zapcore.DebugLevel))
	// trace entries are debug level; the configured level gates the rest
	core = &levelGate{Core: core, min: level}

	SetLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

// SetLogger installs l as the process logger. Tests use it with an observer
// core.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Error records err. Nil errors are ignored.
func Error(err error, fields ...zap.Field) {
	if err == nil {
		return
	}
	current().Error(err.Error(), fields...)
}

// Warn records a warning.
func Warn(msg string, fields ...zap.Field) {
	current().Warn(msg, fields...)
}

// Info records an informational message.
func Info(msg string, fields ...zap.Field) {
	current().Info(msg, fields...)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return traceEnabled
}

// Trace appends a structured entry named event when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	if !TraceEnabled() {
		return
	}
	fields := make([]zap.Field, 0, len(payload)+1)
	fields = append(fields, zap.String("event", event))
	for k, v := range payload {
		fields = append(fields, zap.Any(k, v))
	}
	current().Debug("trace", fields...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = current().Sync()
}

// levelGate lets debug-level trace entries through while applying min to
// everything else.
type levelGate struct {
	zapcore.Core
	min zapcore.Level
}

func (g *levelGate) Enabled(l zapcore.Level) bool {
	return l >= g.min || l == zapcore.DebugLevel
}

func (g *levelGate) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !g.Enabled(e.Level) {
		return ce
	}
	return g.Core.Check(e, ce)
}

func (g *levelGate) With(fields []zapcore.Field) zapcore.Core {
	return &levelGate{Core: g.Core.With(fields), min: g.min}
}
