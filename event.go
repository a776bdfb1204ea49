// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import "time"

// DeliveryEvent describes the resolution of one submitted record, success or
// failure. Events are the writer's observability channel: yields carry no
// broker placement, so partition/offset (and swallowed failures) are only
// visible here.
type DeliveryEvent struct {
	// Topic is the Kafka topic the record was published to (or attempted to publish to).
	Topic string

	// Key is the partition key derived for the record.
	Key string

	// Payload is the original record payload.
	Payload string

	// Partition is the partition the record landed on (success only).
	Partition int32

	// Offset is the offset the record was written at (success only).
	Offset int64

	// Error is the error that occurred during delivery (nil for successes).
	Error error

	// ErrorType is the error classification (empty for successes).
	// Values: "broker_error", "timeout", "buffer_full", "not_started", etc.
	ErrorType string

	// Duration is the time from submission to resolution.
	Duration time.Duration
}
