package delivery

import (
	"fmt"

	"gooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It is derived from the recorded lifecycle transitions with a fixed
// precedence, so a record carrying several transition marks always reports
// a single unambiguous state.
//
// State transitions:
//
//	Pending ──> Waiting ──> Delivered ──> Returned
//	               │            │
//	               └────────────┴──> Disabled
//
// Disabling is reachable from any non-disabled state; a delivery that was
// already handed out may still be returned after being disabled.
// No transition may be undone.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending indicates no concrete delivery point has been chosen yet.
	Pending

	// Waiting indicates the delivery is registered and nothing has been
	// recorded against it. This is the working state for hand-out.
	Waiting

	// Delivered indicates the good was handed to the recipient.
	Delivered

	// Returned indicates the recipient gave the good back after delivery.
	Returned

	// Disabled indicates the record was withdrawn by an operator.
	Disabled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Waiting:   "Waiting",
		Delivered: "Delivered",
		Returned:  "Returned",
		Disabled:  "Disabled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Waiting:   "Waiting",
		Delivered: "Delivered",
		Returned:  "Returned",
		Disabled:  "Disabled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
