// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kgo"
)

// TestNopLogger tests the default logger.
func TestNopLogger(t *testing.T) {
	t.Parallel()

	l := &nopLogger{}
	assert.Equal(t, kgo.LogLevelNone, l.Level())
	l.Log(kgo.LogLevelError, "dropped", "key", "value") // must not panic
}

// TestZerologLogger tests the zerolog adapter.
func TestZerologLogger(t *testing.T) {
	t.Parallel()

	t.Run("level mapping", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			zlevel   zerolog.Level
			expected kgo.LogLevel
		}{
			{zerolog.TraceLevel, kgo.LogLevelDebug},
			{zerolog.DebugLevel, kgo.LogLevelDebug},
			{zerolog.InfoLevel, kgo.LogLevelInfo},
			{zerolog.WarnLevel, kgo.LogLevelWarn},
			{zerolog.ErrorLevel, kgo.LogLevelError},
			{zerolog.Disabled, kgo.LogLevelNone},
		}

		for _, tt := range tests {
			l := &ZerologLogger{Logger: zerolog.New(nil).Level(tt.zlevel)}
			assert.Equal(t, tt.expected, l.Level(), "zerolog level %s", tt.zlevel)
		}
	})

	t.Run("log writes message and key-values", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := &ZerologLogger{Logger: zerolog.New(&buf)}

		l.Log(kgo.LogLevelWarn, "failed to deliver record, dropping",
			"topic", "events", "error", "broker error")

		out := buf.String()
		assert.Contains(t, out, `"level":"warn"`)
		assert.Contains(t, out, "failed to deliver record, dropping")
		assert.Contains(t, out, `"topic":"events"`)
		assert.Contains(t, out, `"error":"broker error"`)
	})

	t.Run("none level drops the message", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := &ZerologLogger{Logger: zerolog.New(&buf)}

		l.Log(kgo.LogLevelNone, "should not appear")
		assert.Empty(t, buf.String())
	})

	t.Run("odd trailing key is ignored", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := &ZerologLogger{Logger: zerolog.New(&buf)}

		l.Log(kgo.LogLevelInfo, "msg", "key1", "value1", "dangling")
		out := buf.String()
		assert.Contains(t, out, `"key1":"value1"`)
		assert.NotContains(t, out, "dangling")
	})
}
