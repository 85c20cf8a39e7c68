package cfkit

import "errors"

var (
	// ErrLibraryClosed is returned when Close is called twice.
	ErrLibraryClosed = errors.New("cfkit: library already closed")

	// ErrLeaked is returned by Close under FailOnLeak when owned references
	// created since Open were never released.
	ErrLeaked = errors.New("cfkit: owned references leaked")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("cfkit: invalid config")
)
