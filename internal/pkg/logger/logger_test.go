// internal/pkg/logger/logger_test.go
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_ContextValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LogConfig{Level: "info", Format: "json", ServiceName: "cdi-api"}, &buf)

	ctx := WithRequestID(context.Background(), "req-42")
	ctx = context.WithValue(ctx, ContextKeySaleID, int64(7))
	l.InfoContext(ctx, "sale recorded")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "sale recorded", entry["msg"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, float64(7), entry["sale_id"])
	assert.Equal(t, "cdi-api", entry["service"])
}

func TestLogger_Sanitization(t *testing.T) {
	tests := []struct {
		name    string
		log     func(l *slog.Logger)
		key     string
		want    string
		notWant string
	}{
		{
			name:    "sensitive_key",
			log:     func(l *slog.Logger) { l.Info("connect", slog.String("password", "hunter2")) },
			key:     "password",
			want:    "***REDACTED***",
			notWant: "hunter2",
		},
		{
			name:    "url_credentials",
			log:     func(l *slog.Logger) { l.Info("connect", slog.String("dsn", "postgres://cdi:hunter2@db:5432/cdi")) },
			key:     "dsn",
			want:    "postgres://cdi:***REDACTED***@db:5432/cdi",
			notWant: "hunter2",
		},
		{
			name: "plain_value",
			log:  func(l *slog.Logger) { l.Info("lookup", slog.String("set", "CMM")) },
			key:  "set",
			want: "CMM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(&LogConfig{Level: "info", Format: "json"}, &buf)
			tt.log(l.Logger)

			entry := decodeLine(t, &buf)
			assert.Equal(t, tt.want, entry[tt.key])
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LogConfig{Level: "warn", Format: "text"}, &buf)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", slog.String("lot", "card:1"))
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "lot")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}
