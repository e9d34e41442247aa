package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func handle(t *testing.T, cfg *Config, tag string) string {
	t.Helper()
	cfg.process()

	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	h := newFilteringHandler(base, cfg)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0)
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	assert.NoError(t, h.Handle(context.Background(), r))
	return buf.String()
}

func TestFilteringHandlerPassesUntaggedByDefault(t *testing.T) {
	out := handle(t, &Config{}, "")
	assert.Contains(t, out, "msg")
}

func TestFilteringHandlerEnabledTags(t *testing.T) {
	cfg := &Config{EnabledTags: []string{"gesture"}}

	assert.Contains(t, handle(t, cfg, "gesture"), "msg")
	assert.Empty(t, handle(t, cfg, "event"))
	// Untagged messages are dropped when an allow-list is active.
	assert.Empty(t, handle(t, cfg, ""))
}

func TestFilteringHandlerDisabledTagsWin(t *testing.T) {
	cfg := &Config{
		EnabledTags:  []string{"gesture"},
		DisabledTags: []string{"gesture"},
	}
	assert.Empty(t, handle(t, cfg, "gesture"))
}

func TestFilteringHandlerTagsAreCaseInsensitive(t *testing.T) {
	cfg := &Config{EnabledTags: []string{"Gesture"}}
	assert.Contains(t, handle(t, cfg, "GESTURE"), "msg")
}

func TestLevelParsing(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"err", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.Level(), "level %q", tt.in)
	}
}
