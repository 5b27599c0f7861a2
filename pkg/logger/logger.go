package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/M0nkiiii/Screentime-Management/pkg/config"
)

type contextKey string

// requestIDKey carries the per-request ID set by the request context
// middleware; WithContext picks it up as a log field.
const requestIDKey contextKey = "request_id"

// Logger is the service logger. It wraps logrus and owns the rolling file
// writer when file output is configured.
type Logger struct {
	raw    *logrus.Logger
	closer io.Closer
}

var globalLogger = &Logger{raw: logrus.StandardLogger()}

// NewLogger builds a logger from the log section of the config.
func NewLogger(cfg *config.Config) *Logger {
	raw := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	raw.SetLevel(level)

	if cfg.Log.Format == "json" {
		raw.SetFormatter(&logrus.JSONFormatter{})
	} else {
		raw.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l := &Logger{raw: raw}
	if cfg.Log.Output == "file" && cfg.Log.Filename != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Log.Filename,
			MaxSize:    cfg.Log.MaxSize,
			MaxAge:     cfg.Log.MaxAge,
			MaxBackups: cfg.Log.MaxBackups,
			Compress:   cfg.Log.Compress,
		}
		raw.SetOutput(rotator)
		l.closer = rotator
	} else {
		raw.SetOutput(os.Stdout)
	}
	return l
}

// SetGlobalLogger installs l as the logger used by the package-level
// functions. Called once during startup.
func SetGlobalLogger(l *Logger) {
	if l != nil {
		globalLogger = l
	}
}

// Close flushes and closes the underlying writer if there is one.
func (l *Logger) Close() {
	if l.closer != nil {
		_ = l.closer.Close()
	}
}

// ContextWithRequestID returns ctx carrying a request ID for WithContext.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID, empty if absent.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithContext returns an entry annotated with the request ID when present.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(globalLogger.raw)
	if ctx == nil {
		return entry
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}

func Debugf(format string, args ...interface{}) {
	globalLogger.raw.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	globalLogger.raw.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	globalLogger.raw.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	globalLogger.raw.Errorf(format, args...)
}

// Fatal logs the message and exits.
func Fatal(msg string) {
	globalLogger.raw.Fatal(msg)
}
