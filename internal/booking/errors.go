package booking

import (
	"errors"
	"fmt"
)

var ErrSpecialBookingRequired = errors.New("vehicle requires a special booking")

type SpecialBookingRequiredError struct {
	VehicleCode string
	Reason      string
}

func (e *SpecialBookingRequiredError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrSpecialBookingRequired, e.VehicleCode, e.Reason)
}

func (e *SpecialBookingRequiredError) Unwrap() error {
	return ErrSpecialBookingRequired
}
