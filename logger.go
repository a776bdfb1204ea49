// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// nopLogger, the default logger, drops everything.
type nopLogger struct{}

func (*nopLogger) Level() kgo.LogLevel { return kgo.LogLevelNone }
func (*nopLogger) Log(kgo.LogLevel, string, ...any) {
}

// ZerologLogger adapts a zerolog.Logger to the kgo.Logger interface, so
// services already on zerolog can feed the Producer, the Writer, and
// franz-go's own internals through one logger.
type ZerologLogger struct {
	Logger zerolog.Logger
}

// Level maps the zerolog level to the kgo level.
func (z *ZerologLogger) Level() kgo.LogLevel {
	switch z.Logger.GetLevel() {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return kgo.LogLevelDebug
	case zerolog.InfoLevel:
		return kgo.LogLevelInfo
	case zerolog.WarnLevel:
		return kgo.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return kgo.LogLevelError
	default:
		return kgo.LogLevelNone
	}
}

// Log writes the message and key/value pairs at the corresponding zerolog level.
func (z *ZerologLogger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	var ev *zerolog.Event
	switch level {
	case kgo.LogLevelError:
		ev = z.Logger.Error()
	case kgo.LogLevelWarn:
		ev = z.Logger.Warn()
	case kgo.LogLevelInfo:
		ev = z.Logger.Info()
	case kgo.LogLevelDebug:
		ev = z.Logger.Debug()
	default:
		return
	}

	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		ev = ev.Interface(key, keyvals[i+1])
	}
	ev.Msg(msg)
}

// Verify that *ZerologLogger implements kgo.Logger at compile time.
var _ kgo.Logger = (*ZerologLogger)(nil)
