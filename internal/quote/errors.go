package quote

import (
	"errors"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid trip request")

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InvalidRequestError lists every field that failed validation.
type InvalidRequestError struct {
	Violations []FieldViolation
}

func (e *InvalidRequestError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func (e *InvalidRequestError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// OrNil returns nil when nothing was violated so callers can return it directly.
func (e *InvalidRequestError) OrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
