// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import "sync/atomic"

// KeyGenerator derives the Kafka partition key for a message.
//
// Generate must be callable synchronously and has no error return; any
// derivation problem must be absorbed by the generator itself (typically by
// falling back to a fixed key).
type KeyGenerator interface {
	Generate(msg string) string
}

// KeyGeneratorFunc adapts a plain function to the KeyGenerator interface.
type KeyGeneratorFunc func(msg string) string

// Generate calls f.
func (f KeyGeneratorFunc) Generate(msg string) string { return f(msg) }

// MessageKeyGenerator uses the message itself as the key, so identical
// payloads land on the same partition.
type MessageKeyGenerator struct{}

// Generate returns msg unchanged.
func (MessageKeyGenerator) Generate(msg string) string { return msg }

// StaticKeyGenerator keys every message with the same fixed value, pinning
// all of a writer's output to one partition.
type StaticKeyGenerator struct {
	Key string
}

// Generate returns the configured key.
func (g StaticKeyGenerator) Generate(string) string { return g.Key }

// HashKeyGenerator picks one of a fixed set of keys by FNV-1a hash of the
// message, so identical payloads always get the same key while the key space
// stays bounded. An empty key set falls back to the empty key.
type HashKeyGenerator struct {
	Keys []string
}

// Generate returns the key whose bucket the message hashes into.
func (g HashKeyGenerator) Generate(msg string) string {
	if len(g.Keys) == 0 {
		return ""
	}
	return g.Keys[hashString(msg, len(g.Keys))]
}

// RoundRobinKeyGenerator cycles through a fixed set of keys, spreading
// messages evenly regardless of content. An empty key set falls back to the
// empty key.
//
// The zero value is ready to use once Keys is set.
type RoundRobinKeyGenerator struct {
	Keys    []string
	counter atomic.Uint64
}

// Generate returns the next key in the cycle.
func (g *RoundRobinKeyGenerator) Generate(string) string {
	if len(g.Keys) == 0 {
		return ""
	}

	//nolint:gosec // G115: Modulo ensures result fits in int range
	return g.Keys[int((g.counter.Add(1)-1)%uint64(len(g.Keys)))]
}
