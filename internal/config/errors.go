package config

import "errors"

// Validation errors for configuration values.
var (
	// ErrInvalidPeriod indicates a base period that is zero, negative or not finite.
	ErrInvalidPeriod = errors.New("config: base period must be positive")

	// ErrInvalidDivisor indicates a divisor that would not make added hands faster.
	ErrInvalidDivisor = errors.New("config: period divisor must be greater than 1")

	// ErrInvalidLength indicates a non-positive hand length.
	ErrInvalidLength = errors.New("config: hand length must be positive")

	// ErrInvalidWindow indicates window dimensions or frame rate out of range.
	ErrInvalidWindow = errors.New("config: invalid window settings")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("config: unknown preset")
)
