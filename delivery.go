// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import "sync/atomic"

// Delivery is the resolved outcome of a submitted record.
//
// Exactly one of the two shapes is populated: Partition and Offset on
// success, Err and Payload (the original payload, for logging or dead-letter
// handling) on failure.
type Delivery struct {
	// Partition is the partition the record landed on (success only).
	Partition int32

	// Offset is the offset the record was written at (success only).
	Offset int64

	// Err is the delivery error (nil on success).
	Err error

	// Payload is the original record payload (failure only).
	Payload string
}

// InFlight tracks a single record submitted to Kafka whose outcome has not
// yet been observed. It is resolved exactly once, from the producer's promise
// callback, and may be polled from any one goroutine.
type InFlight struct {
	// outcome is set exactly once when the promise fires. Lock-free reads
	// keep Poll non-blocking.
	outcome atomic.Pointer[Delivery]
}

// Poll reports the delivery outcome without blocking. It returns (nil, false)
// while the record is still in flight, and the resolved Delivery once the
// broker (or the producer's timeout) has decided its fate. After resolution
// every call returns the same outcome.
func (f *InFlight) Poll() (*Delivery, bool) {
	d := f.outcome.Load()
	if d == nil {
		return nil, false
	}
	return d, true
}

// resolve records the outcome. Called once, from the promise callback.
func (f *InFlight) resolve(d *Delivery) {
	f.outcome.Store(d)
}

// resolvedInFlight returns a handle that is already resolved as failed.
// Used when submission cannot even be attempted (e.g., producer not started).
func resolvedInFlight(err error, payload string) *InFlight {
	f := &InFlight{}
	f.resolve(&Delivery{Err: err, Payload: payload})
	return f
}
