package httpclient

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks a request that could not even be constructed, e.g. a
// missing or unparseable engine base URL.
var ErrInvalidConfig = errors.New("recengine: invalid client configuration")

// TransportError wraps a failure where no HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("recengine: transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Detail carries the engine's structured
// message when the body decoded, or a generic status message when it didn't.
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string { return fmt.Sprintf("recengine: server: %s", e.Detail) }

// DecodeError is a 2xx response whose body did not match the expected schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("recengine: decode: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
