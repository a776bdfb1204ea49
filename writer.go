// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import (
	"context"
	"errors"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/xmidt-org/eventor"
)

// PublishClient is the publish side a Writer depends on. Submit must not
// block; the returned handle resolves asynchronously. *Producer is the
// production implementation.
type PublishClient interface {
	Submit(ctx context.Context, topic, key, payload string) *InFlight
}

// Verify that *Producer implements PublishClient at compile time.
var _ PublishClient = (*Producer)(nil)

// writerState tracks the writer through its lifecycle.
type writerState int

const (
	// writerRunning covers both Idle (no delivery outstanding) and
	// AwaitingDelivery (outstanding != nil).
	writerRunning writerState = iota

	// writerEnded means the source ended; terminal.
	writerEnded

	// writerFailed means the source errored; terminal.
	writerFailed
)

// Writer bridges an upstream Source to Kafka one message at a time. Each
// polled message is keyed, submitted through the PublishClient, and the
// writer waits for that delivery to resolve before pulling more input, so at
// most one record is ever in flight and records reach the client in source
// order.
//
// Delivery failures are logged, reported to delivery listeners, and then
// dropped; the writer moves on to the next message. Only a source error fails
// the writer itself.
//
// A Writer is driven from a single goroutine via Poll (or a helper such as
// Collect). It is not safe for concurrent use.
type Writer struct {
	// Logger is the logger instance (same interface as franz-go).
	// Optional. If nil, a no-op logger is used. Set before the first Poll.
	Logger kgo.Logger

	source    Source
	topic     string
	generator KeyGenerator
	client    PublishClient

	state writerState
	err   error

	// outstanding is the at-most-one pending delivery.
	outstanding *InFlight

	// Submission details retained for the DeliveryEvent of the outstanding record.
	key       string
	payload   string
	submitted time.Time

	// deliveryListeners is the event broadcaster for DeliveryEvent notifications.
	deliveryListeners eventor.Eventor[func(*DeliveryEvent)]
}

// NewWriter returns a Writer that publishes every message produced by source
// to topic, keyed by generator, through client. The writer performs no I/O
// until it is polled.
//
// The source and client are owned by the writer for its lifetime and must not
// be polled or driven elsewhere.
func NewWriter(source Source, topic string, generator KeyGenerator, client PublishClient) *Writer {
	return &Writer{
		source:    source,
		topic:     topic,
		generator: generator,
		client:    client,
	}
}

// AddDeliveryListener adds a listener for when a record has been either
// delivered or failed to deliver.
//
// Failed events carry the original payload, so a listener is the place to
// hang metrics, alerting, or a caller-built dead-letter path.
//
// The returned function removes the listener. Listeners are called from the
// polling goroutine during Poll.
func (w *Writer) AddDeliveryListener(fn func(*DeliveryEvent)) func() {
	return w.deliveryListeners.Add(fn)
}

// Poll advances the writer by one step and never blocks.
//
// Results:
//   - StepSuspend: no progress yet; poll again once the source or the pending
//     delivery may have advanced. Also returned right after a submission and
//     after a swallowed delivery failure.
//   - StepYield: one message was delivered and confirmed.
//   - StepEnd: the source ended; terminal.
//   - StepFailed: the source errored; terminal. The error is returned wrapped
//     with ErrUpstream.
//
// Terminal states repeat: once StepEnd or StepFailed has been returned, every
// later call returns the same step (and, for StepFailed, the same error)
// without polling the source or submitting records.
func (w *Writer) Poll(ctx context.Context) (Step, error) {
	switch w.state {
	case writerEnded:
		return StepEnd, nil
	case writerFailed:
		return StepFailed, w.err
	}

	if w.outstanding != nil {
		d, ok := w.outstanding.Poll()
		if !ok {
			return StepSuspend, nil
		}
		w.outstanding = nil

		w.dispatchEvent(d)

		if d.Err != nil {
			// Log-and-continue: the record is dropped, the stream is not failed.
			w.log().Log(kgo.LogLevelWarn, "failed to deliver record, dropping",
				"topic", w.topic, "error", d.Err.Error())
			return StepSuspend, nil
		}

		w.log().Log(kgo.LogLevelDebug, "record delivered",
			"topic", w.topic, "partition", d.Partition, "offset", d.Offset)
		return StepYield, nil
	}

	msg, state, err := w.source.Poll()
	if err != nil {
		w.state = writerFailed
		w.err = errors.Join(ErrUpstream, err)
		return StepFailed, w.err
	}

	switch state {
	case SourceNotReady:
		return StepSuspend, nil
	case SourceEnd:
		w.state = writerEnded
		return StepEnd, nil
	}

	w.key = w.generator.Generate(msg)
	w.payload = msg
	w.submitted = time.Now()
	w.outstanding = w.client.Submit(ctx, w.topic, w.key, msg)

	// The submission has not resolved yet; the next poll checks on it.
	return StepSuspend, nil
}

// dispatchEvent dispatches a DeliveryEvent for the resolved delivery to all
// registered listeners.
func (w *Writer) dispatchEvent(d *Delivery) {
	event := DeliveryEvent{
		Topic:     w.topic,
		Key:       w.key,
		Payload:   w.payload,
		Partition: d.Partition,
		Offset:    d.Offset,
		Error:     d.Err,
		ErrorType: errorType(d.Err),
		Duration:  time.Since(w.submitted),
	}

	w.deliveryListeners.Visit(func(listener func(*DeliveryEvent)) {
		listener(&event)
	})
}

func (w *Writer) log() kgo.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return &nopLogger{}
}
