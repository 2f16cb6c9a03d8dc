package fourier

import "errors"

var (
	// ErrInvalidTimestep is returned when a resampling step is not a finite positive number.
	ErrInvalidTimestep = errors.New("timestep must be a finite positive number")
	// ErrLengthMismatch is returned when real and imaginary parts differ in length.
	ErrLengthMismatch = errors.New("real and imaginary parts differ in length")
	// ErrNegativeCount is returned when a negative component count is requested.
	ErrNegativeCount = errors.New("component count must not be negative")
	// ErrNegativeAmplitude is returned when a component has a negative or NaN amplitude.
	ErrNegativeAmplitude = errors.New("component amplitude must not be negative")
)
