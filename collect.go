// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Collect drives a writer to completion and returns how many messages were
// delivered. It is the built-in cooperative scheduler for callers that do not
// bring their own: it polls the writer, sleeping with exponential backoff
// between consecutive StepSuspend results and resetting the backoff whenever
// the writer makes progress.
//
// Collect returns when the writer ends (count, nil), the writer fails
// (count so far, the upstream error), or ctx is cancelled (count so far,
// ctx.Err()). Cancelling ctx abandons any pending delivery.
func Collect(ctx context.Context, w *Writer) (int, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Millisecond
	bo.MaxInterval = 50 * time.Millisecond
	bo.MaxElapsedTime = 0 // poll until the writer terminates
	bo.Reset()

	count := 0
	for {
		step, err := w.Poll(ctx)
		switch step {
		case StepYield:
			count++
			bo.Reset()
		case StepEnd:
			return count, nil
		case StepFailed:
			return count, err
		case StepSuspend:
			select {
			case <-ctx.Done():
				return count, ctx.Err()
			case <-time.After(bo.NextBackOff()):
			}
		}
	}
}
