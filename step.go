// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package streamkafka

// Step represents the result of a single Writer.Poll() call.
type Step int

const (
	// StepSuspend indicates no progress was possible this call. The writer is
	// waiting on the upstream source or an in-flight delivery; poll again once
	// either may have advanced.
	StepSuspend Step = iota

	// StepYield indicates exactly one message was delivered and confirmed.
	StepYield

	// StepEnd indicates the upstream source ended and no delivery is pending.
	// The writer is terminal.
	StepEnd

	// StepFailed indicates the upstream source reported an error. The writer
	// is terminal; the error accompanies the step.
	StepFailed
)

// String returns the string representation of the Step.
func (s Step) String() string {
	switch s {
	case StepSuspend:
		return "Suspend"
	case StepYield:
		return "Yield"
	case StepEnd:
		return "End"
	case StepFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
