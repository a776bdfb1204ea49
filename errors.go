// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import "errors"

var (
	// ErrValidation indicates configuration validation failed.
	ErrValidation = &metricError{
		metric:  "validation_error",
		message: "validation error",
	}

	// ErrNotStarted indicates the producer has not been started.
	ErrNotStarted = &metricError{
		metric:  "not_started",
		message: "producer not started",
	}

	// ErrAlreadyStarted indicates the producer has already been started.
	ErrAlreadyStarted = &metricError{
		metric:  "already_started",
		message: "producer already started",
	}

	// ErrBroker indicates the Kafka broker rejected a record.
	ErrBroker = &metricError{
		metric:  "broker_error",
		message: "broker error",
	}

	// ErrTimeout indicates the delivery timeout elapsed before the broker
	// acknowledged a record.
	ErrTimeout = &metricError{
		metric:  "timeout",
		message: "timeout",
	}

	// ErrBufferFull indicates a record was dropped at submission time because
	// the producer buffer was at capacity.
	ErrBufferFull = &metricError{
		metric:  "buffer_full",
		message: "buffer full",
	}

	// ErrUpstream indicates the upstream source failed. The writer that
	// observed it is terminal.
	ErrUpstream = &metricError{
		metric:  "upstream_error",
		message: "upstream error",
	}
)

// metricError is an internal error type that wraps errors with a type classification
// for metrics and observability. The errorType field provides a string label for grouping
// errors in metrics systems.
type metricError struct {
	metric  string // Type classification for metrics (e.g., "broker_error", "validation_error")
	message string // Human-readable message
}

// Error implements the error interface.
func (e *metricError) Error() string {
	return e.message
}

func (e *metricError) Metric() string {
	return e.metric
}

func (e *metricError) Is(target error) bool {
	if t, ok := target.(*metricError); ok {
		return e.message == t.message
	}
	return false
}

// errorType extracts the error type string for metrics classification.
// Walks the error chain to find metricError types.
func errorType(err error) string {
	if err == nil {
		return ""
	}

	// Walk the error chain to find a metricError
	var me *metricError
	if errors.As(err, &me) {
		return me.Metric()
	}

	return "unknown"
}
