package fleet

import (
	"errors"
	"fmt"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("vehicle %s not found", e.Code)
}

func (e *NotFoundError) Unwrap() error {
	return ErrVehicleNotFound
}
