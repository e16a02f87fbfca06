package gintrace

import "errors"

// Common plugin errors
var (
	// ErrInvalidHost is returned by Register when the engine is nil.
	ErrInvalidHost = errors.New("gintrace: invalid host engine")

	// ErrMissingServiceName is returned by New when Config.ServiceName is empty.
	ErrMissingServiceName = errors.New("gintrace: service name is required")
)

// IsInvalidHostError checks if the error is an invalid host error.
func IsInvalidHostError(err error) bool {
	return errors.Is(err, ErrInvalidHost)
}

// IsMissingServiceNameError checks if the error is a missing service name error.
func IsMissingServiceNameError(err error) bool {
	return errors.Is(err, ErrMissingServiceName)
}
