package bitops

import (
	"fmt"
	"math/bits"
)

// PadDefault is the octet count of a full 64-bit word and the default pad
// length for Octets and ToHex.
const PadDefault = 8

// octetLen returns the minimal number of octets needed to encode v.
// Zero still takes one octet.
func octetLen(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 7) / 8
}

// Octets encodes v as a big-endian octet sequence of exactly pad bytes,
// most-significant octet first, left-padded with zero octets. pad must be
// at least the minimal encoded length of v; a pad too small to hold the
// value is an error rather than a truncated result.
func Octets(v uint64, pad int) ([]byte, error) {
	if pad < 1 {
		return nil, fmt.Errorf("%w: pad %d", ErrPadTooSmall, pad)
	}
	if n := octetLen(v); pad < n {
		return nil, fmt.Errorf("%w: pad %d, value needs %d", ErrPadTooSmall, pad, n)
	}
	out := make([]byte, pad)
	for i := 0; i < PadDefault && i < pad; i++ {
		out[pad-1-i] = byte(Extract(Mask(8, uint(8*i)), v))
	}
	return out, nil
}

// FromOctets reconstructs the 64-bit word encoded by the big-endian octet
// sequence b, depositing each octet at its byte-aligned offset. It is the
// exact inverse of Octets for sequences of up to 8 octets; longer
// sequences are an error.
func FromOctets(b []byte) (uint64, error) {
	if len(b) > PadDefault {
		return 0, fmt.Errorf("%w: %d bytes", ErrTooManyOctets, len(b))
	}
	var v uint64
	n := len(b)
	for i := 0; i < n; i++ {
		v = Deposit(Mask(8, uint(8*i)), v, uint64(b[n-1-i]))
	}
	return v, nil
}

// UnsignedOctets builds an octet sequence from explicit values, narrowing
// each element independently to an unsigned octet.
func UnsignedOctets(vals ...uint64) []byte {
	out := make([]byte, len(vals))
	for i, v := range vals {
		out[i] = Uint8(v)
	}
	return out
}

// SignedOctets builds an octet sequence from explicit values, narrowing
// each element independently to a signed octet and storing its bit
// pattern. SignedOctets(-1) and UnsignedOctets(255) denote the same octet.
func SignedOctets(vals ...int64) []byte {
	out := make([]byte, len(vals))
	for i, v := range vals {
		out[i] = byte(Int8(uint64(v)))
	}
	return out
}
