package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps network failures (DNS, timeout, connection refused).
	ErrTransport = errors.New("gemini: failed to call API")

	// ErrDecode wraps responses whose body is not valid JSON.
	ErrDecode = errors.New("gemini: failed to decode response")
)

// APIError is returned when the endpoint answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}
