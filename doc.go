// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package streamkafka bridges an asynchronous sequence of text messages into
// Kafka, publishing strictly one record at a time.
//
// # Overview
//
// The package centers on the Writer, a non-blocking state machine that pulls
// messages from a Source, derives a partition key per message via a
// KeyGenerator, and submits each record through a PublishClient. The writer
// never has more than one unacknowledged record in flight: message N+1 is not
// submitted until message N's delivery has resolved, which gives per-writer
// total ordering of submissions at the cost of pipelined throughput.
//
// # Quick Start
//
// Create a Producer, feed a channel-backed source through a Writer, and drive
// it with Collect:
//
//	producer := &streamkafka.Producer{
//	    Brokers: []string{"localhost:9092"},
//	}
//	if err := producer.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer producer.Stop(context.Background())
//
//	msgs := make(chan string, 100)
//	writer := streamkafka.NewWriter(
//	    streamkafka.NewChanSource(msgs),
//	    "events",
//	    streamkafka.MessageKeyGenerator{},
//	    producer,
//	)
//
//	go func() {
//	    msgs <- "string1"
//	    msgs <- "string2"
//	    msgs <- "string3"
//	    close(msgs)
//	}()
//
//	delivered, err := streamkafka.Collect(context.Background(), writer)
//
// # Polling Contract
//
// Writer.Poll returns one of four steps: StepSuspend (no progress now, poll
// again later), StepYield (one message fully handled), StepEnd (source
// exhausted, terminal), or StepFailed (source errored, terminal). Collect is
// a ready-made drive loop; callers with their own scheduler can poll
// directly, re-invoking on StepSuspend once the source or the pending
// delivery may have advanced.
//
// # Error Handling
//
// The writer deliberately swallows delivery failures: a rejected or timed-out
// record is logged, reported to delivery listeners with its original payload,
// and then dropped, and the writer moves on to the next message. Only an
// upstream source error terminates the writer and surfaces to the caller.
// Counting yields therefore gives delivered messages, not consumed ones.
//
// # Observability
//
// Broker placement never rides on a yield. Partition and offset, along with
// swallowed failures, are reported through delivery listeners:
//
//	writer.AddDeliveryListener(func(e *streamkafka.DeliveryEvent) {
//	    if e.Error != nil {
//	        deadletter.Save(e.Payload)
//	    }
//	})
//
// Logging goes through franz-go's kgo.Logger interface on both the Producer
// and the Writer; ZerologLogger adapts a zerolog.Logger to it.
//
// # Concurrency
//
// A Writer is single-goroutine: it exclusively owns its Source and is driven
// by one poll loop. A Producer is safe for concurrent use and may back many
// writers; for independent streams, run one writer per source on its own
// goroutine rather than sharing one writer.
package streamkafka
