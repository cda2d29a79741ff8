package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewHandler_DefaultsToInfo(t *testing.T) {
	h := NewHandler()

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestNewHandlerWithLevel_FiltersBelowConfiguredLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		check   slog.Level
		enabled bool
	}{
		{name: "debug handler passes debug", level: slog.LevelDebug, check: slog.LevelDebug, enabled: true},
		{name: "warn handler drops info", level: slog.LevelWarn, check: slog.LevelInfo, enabled: false},
		{name: "warn handler passes error", level: slog.LevelWarn, check: slog.LevelError, enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandlerWithLevel(tt.level)
			assert.Equal(t, tt.enabled, h.Enabled(context.Background(), tt.check))
		})
	}
}

func TestShouldSkipLog_DropsGatewayChatter(t *testing.T) {
	noisy := slog.NewRecord(time.Now(), slog.LevelDebug, "Sending Gateway command", 0)
	assert.True(t, shouldSkipLog(&noisy))

	normal := slog.NewRecord(time.Now(), slog.LevelInfo, "nation founded", 0)
	assert.False(t, shouldSkipLog(&normal))
}

func TestLogType_ReadsTypeAttr(t *testing.T) {
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "paid salary", 0)
	r.AddAttrs(slog.String("type", "econ"))

	assert.Equal(t, TypeEconomy, logType(&r, nil))
	assert.Equal(t, TypeSystem, logType(&slog.Record{}, nil))
}
