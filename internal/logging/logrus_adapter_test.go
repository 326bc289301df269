package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "chatty",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)
		})
	}
}

func TestLogrusAdapter_FieldsAndError(t *testing.T) {
	underlying := logrus.New()
	var buf bytes.Buffer
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithError(errors.New("boom")).
		WithField("merchant", "uber").
		Warn("lookup failed")

	out := buf.String()
	assert.Contains(t, out, "lookup failed")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "uber")
}

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("plain")
	mock.WithField("key", "value").Warn("derived")

	require.Len(t, mock.Entries(), 2)
	assert.True(t, mock.HasEntry("INFO", "plain"))
	assert.True(t, mock.HasEntry("WARN", "derived"))
	assert.Equal(t, "key", mock.Entries()[1].Fields[0].Key)
}
