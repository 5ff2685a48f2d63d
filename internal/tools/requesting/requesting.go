package requesting

import (
	"errors"
	"fmt"
	"net/http"
	"os"
)

type ErrorKind string

const (
	ErrorKindTimeout    ErrorKind = "timeout"
	ErrorKindConnection ErrorKind = "connection"
	ErrorKindStatus     ErrorKind = "status"
)

type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Response   *http.Response
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Retryable reports whether repeating an idempotent request could succeed.
func (e *RequestError) Retryable() bool {
	switch e.Kind {
	case ErrorKindTimeout, ErrorKindConnection:
		return true
	}
	return e.StatusCode >= http.StatusInternalServerError
}

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors classifies the outcome of a round trip. On a non 2xx status
// the response is kept on the error so callers can read the body.
func RequestErrors(response *http.Response, err error) (*http.Response, *RequestError) {
	if err != nil {
		if os.IsTimeout(err) || errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, &RequestError{Kind: ErrorKindTimeout, Message: err.Error()}
		}

		return nil, &RequestError{Kind: ErrorKindConnection, Message: err.Error()}
	}

	if !isValidResponse(response.StatusCode) {
		return nil, &RequestError{
			Kind:       ErrorKindStatus,
			StatusCode: response.StatusCode,
			Message:    fmt.Sprintf("service returned status code %d", response.StatusCode),
			Response:   response,
		}
	}

	return response, nil
}
