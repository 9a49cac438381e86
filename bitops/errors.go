package bitops

import "errors"

var (
	// ErrPadTooSmall indicates a pad count smaller than the minimal
	// big-endian encoding of the value
	ErrPadTooSmall = errors.New("bitops: pad count smaller than minimal octet length")

	// ErrTooManyOctets indicates an octet sequence longer than the 8 octets
	// a 64-bit word can hold
	ErrTooManyOctets = errors.New("bitops: octet sequence longer than 8 bytes")

	// ErrHexOverflow indicates a hex numeral encoding a value wider than 64 bits
	ErrHexOverflow = errors.New("bitops: hex value exceeds 64 bits")

	// ErrInvalidHexDigit indicates a character outside [0-9a-fA-F]
	ErrInvalidHexDigit = errors.New("bitops: invalid hex digit")

	// ErrOddHexLength indicates a hex string that does not split into octet pairs
	ErrOddHexLength = errors.New("bitops: odd-length hex string")
)
