// internal/pkg/logger/handlers.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
)

// ContextHandler adds request and task values from the context to each record
type ContextHandler struct {
	handler slog.Handler
}

func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, a := range extractContextAttrs(ctx) {
		if attr, ok := a.(slog.Attr); ok {
			record.AddAttrs(attr)
		}
	}
	return h.handler.Handle(ctx, record)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// SamplingHandler drops a share of debug and info records
type SamplingHandler struct {
	handler    slog.Handler
	sampleRate float64
	mu         *sync.Mutex
	rng        *rand.Rand
}

func NewSamplingHandler(handler slog.Handler, sampleRate float64) *SamplingHandler {
	return &SamplingHandler{
		handler:    handler,
		sampleRate: sampleRate,
		mu:         &sync.Mutex{},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (h *SamplingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return h.handler.Enabled(ctx, level)
	}

	h.mu.Lock()
	sample := h.rng.Float64() < h.sampleRate
	h.mu.Unlock()

	return sample && h.handler.Enabled(ctx, level)
}

func (h *SamplingHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.handler.Handle(ctx, record)
}

func (h *SamplingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SamplingHandler{handler: h.handler.WithAttrs(attrs), sampleRate: h.sampleRate, mu: h.mu, rng: h.rng}
}

func (h *SamplingHandler) WithGroup(name string) slog.Handler {
	return &SamplingHandler{handler: h.handler.WithGroup(name), sampleRate: h.sampleRate, mu: h.mu, rng: h.rng}
}

// SanitizationHandler masks credentials in messages and attributes
type SanitizationHandler struct {
	handler   slog.Handler
	patterns  []*regexp.Regexp
	blacklist []string
}

func NewSanitizationHandler(handler slog.Handler) *SanitizationHandler {
	return &SanitizationHandler{
		handler: handler,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(password|pwd|secret|token|api[-_]?key)\s*[:=]\s*["']?([^"'\s@]+)`),
			// credentials embedded in connection URLs
			regexp.MustCompile(`(://[^:/\s]+):([^@\s]+)@`),
		},
		blacklist: []string{"password", "pwd", "secret", "token", "api_key", "access_key"},
	}
}

func (h *SanitizationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *SanitizationHandler) Handle(ctx context.Context, record slog.Record) error {
	clean := slog.NewRecord(record.Time, record.Level, h.sanitizeString(record.Message), record.PC)
	record.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(h.sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clean)
}

func (h *SanitizationHandler) sanitizeAttr(attr slog.Attr) slog.Attr {
	lowerKey := strings.ToLower(attr.Key)
	for _, blacklisted := range h.blacklist {
		if strings.Contains(lowerKey, blacklisted) {
			attr.Value = slog.StringValue("***REDACTED***")
			return attr
		}
	}

	if attr.Value.Kind() == slog.KindString {
		attr.Value = slog.StringValue(h.sanitizeString(attr.Value.String()))
	}
	return attr
}

func (h *SanitizationHandler) sanitizeString(s string) string {
	s = h.patterns[0].ReplaceAllString(s, "$1=***REDACTED***")
	return h.patterns[1].ReplaceAllString(s, "$1:***REDACTED***@")
}

func (h *SanitizationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clean[i] = h.sanitizeAttr(a)
	}
	return &SanitizationHandler{handler: h.handler.WithAttrs(clean), patterns: h.patterns, blacklist: h.blacklist}
}

func (h *SanitizationHandler) WithGroup(name string) slog.Handler {
	return &SanitizationHandler{handler: h.handler.WithGroup(name), patterns: h.patterns, blacklist: h.blacklist}
}

// PrettyTextHandler writes colored single-line records for local development
type PrettyTextHandler struct {
	opts  *slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func NewPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyTextHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyTextHandler{opts: opts, mu: &sync.Mutex{}, w: w}
}

func (h *PrettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	const reset = "\033[0m"
	level := r.Level.String()

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s%s%s %s",
		levelColor(r.Level),
		r.Time.Format("2006-01-02 15:04:05.000"),
		level,
		reset,
		strings.Repeat(" ", max(0, 6-len(level))),
		r.Message,
	)

	write := func(a slog.Attr) bool {
		fmt.Fprintf(&b, " \033[36m%s%s=%v", a.Key, reset, a.Value)
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *PrettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &PrettyTextHandler{opts: h.opts, mu: h.mu, w: h.w, attrs: merged}
}

// WithGroup is flattened for text output
func (h *PrettyTextHandler) WithGroup(string) slog.Handler {
	return h
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "\033[31m"
	case level >= slog.LevelWarn:
		return "\033[33m"
	case level >= slog.LevelInfo:
		return "\033[34m"
	default:
		return "\033[37m"
	}
}
