package smix

import "errors"

var (
	// ErrNilBuffer is returned when SMix is called with a nil data pointer.
	ErrNilBuffer = errors.New("smix: nil data buffer")

	// ErrInvalidLength is returned when the data buffer length does not
	// divide evenly into elementsCount blocks of 128 bytes each.
	ErrInvalidLength = errors.New("smix: data length is not a multiple of 128*elementsCount")

	// ErrInvalidElementCount is returned when elementsCount is zero or
	// negative, or when SMixElement's elementIndex is outside
	// [0, elementsCount).
	ErrInvalidElementCount = errors.New("smix: elementsCount must be >= 1")

	// ErrInvalidCost is returned when processingCost (N) is zero or does not
	// fit in 32 bits.
	ErrInvalidCost = errors.New("smix: processingCost must be a positive integer that fits in 32 bits")

	// ErrAllocation is returned when an aligned buffer could not be
	// allocated. Any buffers already constructed for the same invocation
	// are released before this error is returned.
	ErrAllocation = errors.New("smix: allocation failed")

	// ErrUnsupportedISA is returned when no dispatch implementation is
	// registered for the detected (or overridden) instruction set.
	ErrUnsupportedISA = errors.New("smix: no implementation registered for instruction set")
)
