package bitops

import (
	"fmt"
	"math/bits"
)

// Mask returns a 64-bit mask with width contiguous one bits starting at
// bit offset. width may be 0 through 64, offset 0 through 63, and the run
// must fit in the word (width+offset <= 64).
//
// Mask arguments are expected to be compile-time constants describing a
// field layout; an out-of-range pair is a programming error and panics
// rather than returning a clamped mask.
func Mask(width, offset uint) uint64 {
	if width > 64 || offset > 63 || width+offset > 64 {
		panic(fmt.Sprintf("bitops: invalid mask width %d at offset %d", width, offset))
	}
	if width == 0 {
		return 0
	}
	return (^uint64(0) >> (64 - width)) << offset
}

// MaskOffset returns the bit offset of the lowest set bit of mask m.
// MaskOffset(0) is 0.
func MaskOffset(m uint64) int {
	if m == 0 {
		return 0
	}
	return bits.TrailingZeros64(m)
}

// MaskWidth returns the width in bits of the contiguous run encoded by
// mask m. The result is only meaningful for masks produced by Mask.
func MaskWidth(m uint64) int {
	return bits.OnesCount64(m)
}

// BitCount returns the number of set bits in x.
func BitCount(x uint64) int {
	return bits.OnesCount64(x)
}
