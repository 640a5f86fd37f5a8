package kdf

import "errors"

var (
	// ErrInvalidN is returned when N is not a power of two greater than 1,
	// or does not fit the uint32 SMix requires.
	ErrInvalidN = errors.New("kdf: N must be a power of two greater than 1 and fit in 32 bits")

	// ErrInvalidR is returned when r is not positive.
	ErrInvalidR = errors.New("kdf: r must be > 0")

	// ErrInvalidP is returned when p is not positive.
	ErrInvalidP = errors.New("kdf: p must be > 0")

	// ErrInvalidKeyLen is returned when keyLen is not positive.
	ErrInvalidKeyLen = errors.New("kdf: keyLen must be > 0")

	// ErrParametersTooLarge is returned when r*p is not below 2^30 (the
	// classic scrypt bound), or when 128*r*p, 256*r or 128*r*N bytes would
	// not fit in an int.
	ErrParametersTooLarge = errors.New("kdf: parameters are too large: r*p must fit in the classic scrypt 32-bit memory bound")
)
