package explorer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when the explorer answers without a body.
	ErrEmptyResponse = errors.New("empty response from explorer")

	// ErrUpstreamFailure matches every *APIError.
	ErrUpstreamFailure = errors.New("explorer reported a failure")
)

// APIError is a failure reported by the explorer itself, either through a
// non-2xx status code or through the envelope status field.
type APIError struct {
	StatusCode int    // HTTP status code of the answer
	Message    string // message supplied by the explorer, possibly empty
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("explorer returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("explorer returned status %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is ErrUpstreamFailure.
func (e *APIError) Is(target error) bool {
	return target == ErrUpstreamFailure
}
