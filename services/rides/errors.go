package rides

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLocations is returned when a search or booking is attempted
	// before both pickup and destination are set
	ErrMissingLocations = errors.New("pickup and destination must be set")

	// ErrUnknownProvider is returned when the provider id does not match any
	// offer from the latest search
	ErrUnknownProvider = errors.New("unknown ride provider")

	// ErrRideInProgress is returned when a booking is attempted while another
	// ride occupies the active slot
	ErrRideInProgress = errors.New("an active ride already exists")

	// ErrRideNotFound is returned when an operation names a ride that is not
	// the current active ride
	ErrRideNotFound = errors.New("no active ride with that id")

	// ErrNotCancellable is returned when a cancel is attempted after pickup
	ErrNotCancellable = errors.New("ride can no longer be cancelled")
)

// StepError reports which step of the select/init/confirm sequence failed.
// The first failing step aborts the whole sequence.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("booking step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
