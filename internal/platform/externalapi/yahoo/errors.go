package yahoo

import (
	"errors"
	"fmt"
)

// ErrAuth is returned when the provider never issues a usable credential
// during the session handshake (missing cookie, rejected or empty crumb).
var ErrAuth = errors.New("yahoo: credential acquisition failed")

// UpstreamError is returned when a data request reaches the provider but
// comes back with a non-2xx status, or when the transport itself fails
// (Status is 0 in that case).
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("yahoo: upstream request failed: %v", e.Err)
	}
	return fmt.Sprintf("yahoo: upstream status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
