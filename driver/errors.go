package driver

import "errors"

// Predefined errors
var (
	// ErrUnsupportedScheme is returned when a connection string's scheme
	// matches no registered driver.
	ErrUnsupportedScheme = errors.New("tablesql driver: unsupported connection scheme")

	// ErrInvalidDSN is returned when a connection string cannot be parsed.
	ErrInvalidDSN = errors.New("tablesql driver: invalid connection string")
)
