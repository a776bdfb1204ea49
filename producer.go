// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl"
)

// DefaultDeliveryTimeout bounds how long a submitted record may stay
// unacknowledged before it is failed. Applied when DeliveryTimeout is zero.
const DefaultDeliveryTimeout = time.Second

// clientFactory is a function that creates a Kafka client from options.
// This allows dependency injection for testing.
type clientFactory func(opts ...kgo.Opt) (kafkaClient, error)

// defaultClientFactory is the production client factory that uses franz-go.
func defaultClientFactory(opts ...kgo.Opt) (kafkaClient, error) {
	return kgo.NewClient(opts...)
}

// Producer is the publish client: it submits text records to Kafka and hands
// back InFlight handles that resolve asynchronously.
//
// Thread Safety: All methods are safe for concurrent use by multiple
// goroutines. A single Producer may back any number of Writers, each on its
// own topic.
type Producer struct {
	// --- STATIC CONFIGURATION (set before Start, immutable after) ---

	// Brokers is the list of Kafka broker addresses.
	// Required. Each address must be in "host:port" format.
	Brokers []string

	// SASL configures SASL authentication.
	// Optional. If nil, no authentication is used.
	SASL sasl.Mechanism

	// TLS configures TLS encryption.
	// Optional. If nil, plaintext connections are used.
	TLS *tls.Config

	// MaxBufferedRecords sets the maximum number of records to buffer.
	// Zero or negative values disable this limit.
	// Default: 0 (no limit on record count).
	MaxBufferedRecords int

	// MaxBufferedBytes sets the maximum bytes of records to buffer.
	// Zero or negative values disable this limit.
	// Default: 0 (no limit on bytes).
	MaxBufferedBytes int

	// DeliveryTimeout bounds how long a record may stay unacknowledged before
	// its InFlight resolves as failed with ErrTimeout.
	// Zero means DefaultDeliveryTimeout; negative disables the bound.
	DeliveryTimeout time.Duration

	// CleanupTimeout sets the maximum time to wait for buffered messages
	// to flush on shutdown. Zero or negative values mean no timeout.
	// Default: 0 (no timeout).
	CleanupTimeout time.Duration

	// MaxRetries controls retry behavior on broker failures.
	// <=0: No retries, fail immediately (default).
	// >0: Retry up to this many times.
	// Default: 0 (no retries, fail fast).
	MaxRetries int

	// AllowAutoTopicCreation enables automatic topic creation when publishing to non-existent topics.
	// Default: false (safer for production - prevents typos from creating topics).
	AllowAutoTopicCreation bool

	// Linger delays record batches to improve batching.
	// Default: 0 (send immediately).
	Linger time.Duration

	// Acks specifies the broker acknowledgment requirement.
	// Optional. Empty uses the franz-go default (all ISR replicas).
	Acks Acks

	// CompressionCodec selects the batch compression algorithm.
	// Optional. Empty or "none" disables compression.
	CompressionCodec Compression

	// Logger is the logger instance (same interface as franz-go).
	// Optional. If nil, a no-op logger will be used.
	Logger kgo.Logger

	// --- INTERNAL FIELDS (not for user configuration) ---

	// logger is for internal use only.
	// The actively used logger instance (never nil, defaults to nopLogger).
	logger kgo.Logger

	// clientFactory is for internal use only (testing hook).
	// Creates Kafka clients, can be overridden for mocking in tests.
	clientFactory clientFactory

	// clientMu is for internal use only.
	// Protects the client field during Start/Stop operations.
	clientMu sync.Mutex

	// client is for internal use only.
	// The Kafka client instance, initialized in Start() and closed in Stop().
	client kafkaClient
}

// Start connects to Kafka and begins operation.
// Must be called before Submit().
//
// Returns an error if:
//   - Configuration is invalid (missing brokers, invalid Acks, etc.)
//   - Cannot connect to brokers
//   - Authentication failure (SASL/TLS)
//   - Already started
func (p *Producer) Start() error {
	p.clientMu.Lock()
	defer p.clientMu.Unlock()

	if p.client != nil {
		return ErrAlreadyStarted
	}

	// Set default client factory if not configured
	if p.clientFactory == nil {
		p.clientFactory = defaultClientFactory
	}

	// Set default logger if not configured
	logger := p.Logger
	if logger == nil {
		logger = &nopLogger{}
	}
	p.logger = logger

	// Validate configuration
	if err := p.validate(); err != nil {
		return err
	}

	// Build franz-go client options from config
	opts := p.toKgoOpts()

	// Create client using factory (allows testing)
	client, err := p.clientFactory(opts...)
	if err != nil {
		return fmt.Errorf("failed to create Kafka client: %w", err)
	}

	p.client = client
	p.logger.Log(kgo.LogLevelInfo, "Producer started successfully")

	return nil
}

// Stop gracefully shuts down and flushes buffered records.
// Blocks until records are sent or timeout occurs.
// Safe to call multiple times (idempotent).
func (p *Producer) Stop(ctx context.Context) {
	p.clientMu.Lock()
	defer p.clientMu.Unlock()

	if p.client == nil {
		return // Already stopped or never started
	}

	p.logger.Log(kgo.LogLevelInfo, "Stopping producer, flushing buffered records")

	// Apply CleanupTimeout only if the context doesn't already have a deadline.
	// This respects caller-provided timeouts while providing a sensible default.
	if p.CleanupTimeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.CleanupTimeout)
			defer cancel()
		}
	}

	// Flush all buffered records
	if err := p.client.Flush(ctx); err != nil {
		p.logger.Log(kgo.LogLevelWarn, "flush incomplete during shutdown", "error", err.Error())
	}

	// Close the client
	p.client.Close()
	p.client = nil

	p.logger.Log(kgo.LogLevelInfo, "Producer stopped successfully")
}

// Submit hands one record to Kafka and returns an InFlight handle tracking
// its outcome. Submit never blocks: if the producer buffer is full the handle
// resolves as failed with ErrBufferFull, and if the producer is not started
// it resolves immediately with ErrNotStarted.
//
// The ctx only bounds the submission; cancelling it fails records that have
// not yet been sent.
func (p *Producer) Submit(ctx context.Context, topic, key, payload string) *InFlight {
	// Get client reference while holding lock (brief hold)
	p.clientMu.Lock()
	client := p.client
	p.clientMu.Unlock()

	if client == nil {
		return resolvedInFlight(ErrNotStarted, payload)
	}

	f := &InFlight{}
	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(key),
		Value: []byte(payload),
	}

	client.TryProduce(ctx, record, func(r *kgo.Record, err error) {
		if err != nil {
			f.resolve(&Delivery{
				Err:     classifyDeliveryError(err),
				Payload: payload,
			})
			return
		}
		f.resolve(&Delivery{
			Partition: r.Partition,
			Offset:    r.Offset,
		})
	})

	return f
}

// classifyDeliveryError joins the raw franz-go error with the matching
// sentinel so callers can use errors.Is and errorType.
func classifyDeliveryError(err error) error {
	switch {
	case errors.Is(err, kgo.ErrMaxBuffered):
		return errors.Join(ErrBufferFull, err)
	case errors.Is(err, kgo.ErrRecordTimeout), errors.Is(err, context.DeadlineExceeded):
		return errors.Join(ErrTimeout, err)
	default:
		return errors.Join(ErrBroker, err)
	}
}

// BufferedRecords returns the current and maximum buffer counts and bytes.
// Thread-safe with zero overhead.
// Returns zeros if limits are disabled or client not started.
//
// Returns:
//   - currentRecords: Number of records currently buffered
//   - maxRecords: Configured MaxBufferedRecords value (0 if disabled)
//   - currentBytes: Bytes currently buffered
//   - maxBytes: Configured MaxBufferedBytes value (0 if disabled)
func (p *Producer) BufferedRecords() (currentRecords, maxRecords int, currentBytes, maxBytes int64) {
	maxRecords = p.MaxBufferedRecords
	maxBytes = int64(p.MaxBufferedBytes)

	// Get client reference while holding lock (brief hold)
	p.clientMu.Lock()
	client := p.client
	p.clientMu.Unlock()

	if client == nil {
		return 0, 0, 0, 0
	}

	currentRecords = int(client.BufferedProduceRecords())
	currentBytes = client.BufferedProduceBytes()

	return currentRecords, maxRecords, currentBytes, maxBytes
}

// validate validates the Producer's configuration.
// Called during Start() to ensure fail-fast behavior.
func (p *Producer) validate() error {
	if len(p.Brokers) == 0 {
		return errors.Join(ErrValidation, fmt.Errorf("brokers list is required"))
	}

	// Validate each broker address
	for i, broker := range p.Brokers {
		if broker == "" {
			return errors.Join(ErrValidation, fmt.Errorf("broker %d is empty", i))
		}
	}

	if err := validateAcks(p.Acks); err != nil {
		return err
	}

	return validateCompression(p.CompressionCodec)
}

// toKgoOpts converts the Producer's configuration to franz-go client options.
// Returns a slice of kgo.Opt that can be passed to kgo.NewClient().
func (p *Producer) toKgoOpts() []kgo.Opt {
	opts := []kgo.Opt{
		kgo.SeedBrokers(p.Brokers...),
	}

	// Configure franz-go logging
	if p.logger != nil {
		opts = append(opts, kgo.WithLogger(p.logger))
	}

	// Add auto-topic creation if enabled
	if p.AllowAutoTopicCreation {
		opts = append(opts, kgo.AllowAutoTopicCreation())
	}

	// Add SASL config if provided
	if p.SASL != nil {
		opts = append(opts, kgo.SASL(p.SASL))
	}

	// Add TLS config if provided
	if p.TLS != nil {
		opts = append(opts, kgo.DialTLSConfig(p.TLS))
	}

	// Add buffering config (both limits are independent)
	if p.MaxBufferedRecords > 0 {
		opts = append(opts, kgo.MaxBufferedRecords(p.MaxBufferedRecords))
	}

	if p.MaxBufferedBytes > 0 {
		opts = append(opts, kgo.MaxBufferedBytes(p.MaxBufferedBytes))
	}

	// Add delivery timeout (0 = default, negative = disabled)
	if p.DeliveryTimeout == 0 {
		opts = append(opts, kgo.RecordDeliveryTimeout(DefaultDeliveryTimeout))
	} else if p.DeliveryTimeout > 0 {
		opts = append(opts, kgo.RecordDeliveryTimeout(p.DeliveryTimeout))
	}

	// Add retry config (only if > 0)
	// <=0 = no retries (fail fast), N = retry N times
	if p.MaxRetries > 0 {
		opts = append(opts, kgo.RequestRetries(p.MaxRetries))
	}

	// Add linger time
	if p.Linger > 0 {
		opts = append(opts, kgo.ProducerLinger(p.Linger))
	}

	// Add acks requirement
	switch p.Acks {
	case AcksAll:
		opts = append(opts, kgo.RequiredAcks(kgo.AllISRAcks()))
	case AcksLeader:
		// franz-go requires idempotency off for anything below all-ISR acks.
		opts = append(opts, kgo.RequiredAcks(kgo.LeaderAck()), kgo.DisableIdempotentWrite())
	case AcksNone:
		opts = append(opts, kgo.RequiredAcks(kgo.NoAck()), kgo.DisableIdempotentWrite())
	}

	// Add compression
	switch p.CompressionCodec {
	case CompressionSnappy:
		opts = append(opts, kgo.ProducerBatchCompression(kgo.SnappyCompression()))
	case CompressionGzip:
		opts = append(opts, kgo.ProducerBatchCompression(kgo.GzipCompression()))
	case CompressionLz4:
		opts = append(opts, kgo.ProducerBatchCompression(kgo.Lz4Compression()))
	case CompressionZstd:
		opts = append(opts, kgo.ProducerBatchCompression(kgo.ZstdCompression()))
	case CompressionNone, "":
		opts = append(opts, kgo.ProducerBatchCompression(kgo.NoCompression()))
	}

	return opts
}
