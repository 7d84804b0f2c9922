// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyClientIP  ContextKey = "client_ip"
	ContextKeyMethod    ContextKey = "method"
	ContextKeyPath      ContextKey = "path"
	ContextKeyTaskType  ContextKey = "task_type"
	ContextKeyTaskID    ContextKey = "task_id"
	ContextKeySaleID    ContextKey = "sale_id"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level          string
	Format         string
	Output         string
	AddSource      bool
	SampleRate     float64
	EnableSampling bool
	Environment    string
	ServiceName    string
	ServiceVersion string
}

// Logger wraps slog.Logger with context extraction
type Logger struct {
	*slog.Logger
	config *LogConfig
}

var defaultLogger *Logger

// SetupLogger builds the process logger and installs it as the slog default
func SetupLogger(level string, format string) *Logger {
	config := &LogConfig{
		Level:          level,
		Format:         format,
		Output:         "stdout",
		AddSource:      level == "debug",
		ServiceName:    os.Getenv("SERVICE_NAME"),
		ServiceVersion: os.Getenv("SERVICE_VERSION"),
		Environment:    os.Getenv("APP_ENV"),
	}

	logger := NewLogger(config, getWriter(config.Output))
	defaultLogger = logger
	slog.SetDefault(logger.Logger)

	return logger
}

// NewLogger creates a logger writing to w, or to config.Output when w is nil
func NewLogger(config *LogConfig, w io.Writer) *Logger {
	if config == nil {
		config = &LogConfig{Level: "info", Format: "json"}
	}
	if w == nil {
		w = getWriter(config.Output)
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(config.Level),
		AddSource: config.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return replaceAttr(config, groups, a)
		},
	}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = NewPrettyTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	handler = NewContextHandler(handler)

	if config.EnableSampling && config.SampleRate > 0 && config.SampleRate < 1.0 {
		handler = NewSamplingHandler(handler, config.SampleRate)
	}

	handler = NewSanitizationHandler(handler)

	var attrs []slog.Attr
	if config.ServiceName != "" {
		attrs = append(attrs, slog.String("service", config.ServiceName))
	}
	if config.ServiceVersion != "" {
		attrs = append(attrs, slog.String("version", config.ServiceVersion))
	}
	if config.Environment != "" {
		attrs = append(attrs, slog.String("env", config.Environment))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return &Logger{
		Logger: slog.New(handler),
		config: config,
	}
}

// WithContext returns a logger carrying the context values as attributes
func (l *Logger) WithContext(ctx context.Context) *slog.Logger {
	attrs := extractContextAttrs(ctx)
	if len(attrs) > 0 {
		return l.Logger.With(attrs...)
	}
	return l.Logger
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID stores the request id for log extraction
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, id)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

func getWriter(output string) io.Writer {
	switch output {
	case "stderr":
		return os.Stderr
	case "stdout", "":
		return os.Stdout
	}
	if filename, ok := strings.CutPrefix(output, "file:"); ok {
		file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return os.Stdout
		}
		return file
	}
	return os.Stdout
}

var contextKeys = []ContextKey{
	ContextKeyRequestID,
	ContextKeyClientIP,
	ContextKeyMethod,
	ContextKeyPath,
	ContextKeyTaskType,
	ContextKeyTaskID,
	ContextKeySaleID,
}

func extractContextAttrs(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}

	var attrs []any
	for _, key := range contextKeys {
		val := ctx.Value(key)
		if val == nil {
			continue
		}
		keyStr := string(key)
		switch v := val.(type) {
		case string:
			if v != "" {
				attrs = append(attrs, slog.String(keyStr, v))
			}
		case int64:
			attrs = append(attrs, slog.Int64(keyStr, v))
		case int:
			attrs = append(attrs, slog.Int(keyStr, v))
		case uuid.UUID:
			attrs = append(attrs, slog.String(keyStr, v.String()))
		default:
			attrs = append(attrs, slog.Any(keyStr, v))
		}
	}
	return attrs
}

func replaceAttr(config *LogConfig, _ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.UTC().Format(time.RFC3339Nano))
		}
	}

	// some aggregators want "severity"
	if a.Key == slog.LevelKey && config.Format == "json" {
		a.Key = "severity"
	}

	if strings.HasSuffix(a.Key, "_ms") {
		if d, ok := a.Value.Any().(time.Duration); ok {
			a.Value = slog.Float64Value(float64(d.Microseconds()) / 1000)
		}
	}

	return a
}

// GetDefault returns the process logger
func GetDefault() *Logger {
	if defaultLogger == nil {
		defaultLogger = NewLogger(nil, os.Stdout)
	}
	return defaultLogger
}

// FromContext returns the default logger enriched with ctx values
func FromContext(ctx context.Context) *slog.Logger {
	return GetDefault().WithContext(ctx)
}
