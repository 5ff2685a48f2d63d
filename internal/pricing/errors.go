package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVehicle = errors.New("unknown vehicle")
	ErrUnknownMode    = errors.New("unknown booking mode")
)

// UnknownVehicleError means the catalog and the rate card are out of sync.
type UnknownVehicleError struct {
	Code string
	Mode Mode
}

func (e *UnknownVehicleError) Error() string {
	return fmt.Sprintf("no %s fare for vehicle %s", e.Mode, e.Code)
}

func (e *UnknownVehicleError) Unwrap() error {
	return ErrUnknownVehicle
}
