package xlog_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/macvendor/pkg/observability/xlog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    xlog.Level
		wantErr bool
	}{
		{"debug", xlog.LevelDebug, false},
		{"INFO", xlog.LevelInfo, false},
		{" Warn ", xlog.LevelWarn, false},
		{"warning", xlog.LevelWarn, false},
		{"error", xlog.LevelError, false},
		{"trace", xlog.LevelInfo, true},
		{"", xlog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := xlog.ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, xlog.ErrUnknownLevel)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", xlog.LevelDebug.String())
	assert.Equal(t, "ERROR", xlog.LevelError.String())
	assert.Equal(t, slog.Level(2).String(), xlog.Level(2).String())
}

func TestLevel_Text(t *testing.T) {
	text, err := xlog.LevelWarn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "WARN", string(text))

	var l xlog.Level
	require.NoError(t, l.UnmarshalText([]byte("debug")))
	assert.Equal(t, xlog.LevelDebug, l)
	assert.ErrorIs(t, l.UnmarshalText([]byte("verbose")), xlog.ErrUnknownLevel)
	assert.Equal(t, xlog.LevelDebug, l, "failed unmarshal leaves value unchanged")
}
