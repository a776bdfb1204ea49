// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

// SourceState reports what a Source poll produced.
type SourceState int

const (
	// SourceNotReady indicates no message is available right now. Poll again
	// once the source may have produced more input.
	SourceNotReady SourceState = iota

	// SourceReady indicates the poll produced a message.
	SourceReady

	// SourceEnd indicates the source ended and will never produce again.
	SourceEnd
)

// String returns the string representation of the SourceState.
func (s SourceState) String() string {
	switch s {
	case SourceNotReady:
		return "NotReady"
	case SourceReady:
		return "Ready"
	case SourceEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Source is a non-blocking producer of text messages, the upstream side of a
// Writer. Poll must never block.
//
// The returned message is meaningful only when state is SourceReady. A non-nil
// error is terminal: the caller stops polling and propagates it. Implementations
// are free to keep reporting SourceEnd (or the same error) on subsequent polls.
type Source interface {
	Poll() (msg string, state SourceState, err error)
}

// ChanSource adapts a Go channel into a Source. A closed channel is reported
// as SourceEnd. ChanSource never reports an error.
//
// The channel may be fed from any number of goroutines; the Source side must
// be polled from a single goroutine like any other Source.
type ChanSource struct {
	ch <-chan string
}

// NewChanSource returns a Source that drains the given channel.
func NewChanSource(ch <-chan string) *ChanSource {
	return &ChanSource{ch: ch}
}

// Poll performs a non-blocking receive on the channel.
func (s *ChanSource) Poll() (string, SourceState, error) {
	select {
	case msg, ok := <-s.ch:
		if !ok {
			return "", SourceEnd, nil
		}
		return msg, SourceReady, nil
	default:
		return "", SourceNotReady, nil
	}
}

// Verify that *ChanSource implements Source at compile time.
var _ Source = (*ChanSource)(nil)
