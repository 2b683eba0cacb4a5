package adapter

import (
	"errors"
	"fmt"
)

// ErrTransport is matched by every failure to obtain a 2xx response,
// including network errors and [*TransportError].
var ErrTransport = errors.New("transport error")

// TransportError is returned for a non-2xx HTTP response.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	// Status is the canonical status text, e.g. "Not Found".
	Status string
	Body   string
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is reports ErrTransport as a match so callers need not care whether the
// failure came from the network or from the response status.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
