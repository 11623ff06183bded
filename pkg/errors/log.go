package errors

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogHandler is an ErrorHandler that writes structured log entries.
type LogHandler struct {
	// Logger receives the entries. Nil means a console logger on stderr
	// at warn level.
	Logger *zap.Logger
	// Verbose enables stack traces in the output.
	Verbose bool
}

var (
	stderrLogger     *zap.Logger
	stderrLoggerOnce sync.Once
)

// NewConsoleLogger returns a zap logger that writes human-readable entries
// to stderr at or above the given level.
func NewConsoleLogger(level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	stderrLoggerOnce.Do(func() {
		stderrLogger = NewConsoleLogger(zapcore.WarnLevel)
	})
	return stderrLogger
}

// HandleError logs a DocsError at warn level.
func (h *LogHandler) HandleError(err *DocsError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Key != "" {
		fields = append(fields, zap.String("key", err.Key))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Warn("docskit error", fields...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("docskit panic", fields...)
}

// HandleBuildError logs a BuildError at error level.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("widget", err.Widget),
		zap.String("element", err.Element),
	}
	if err.Recovered != nil {
		fields = append(fields, zap.Any("recovered", err.Recovered))
	}
	if err.Err != nil {
		fields = append(fields, zap.Error(err.Err))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("docskit build error", fields...)
}
