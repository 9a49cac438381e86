// Package bitops is the binary-encoding core underneath the octuuid library.
//
// It provides the primitives needed to pack and unpack 128-bit identifier
// values as pairs of 64-bit words: contiguous bitmask construction and
// introspection, bitfield load/deposit, fixed-width unsigned/signed
// narrowing, big-endian octet-vector conversion, and a hex codec.
//
// All words and masks are uint64 values. Every function is a pure,
// deterministic function of its inputs; nothing here allocates long-lived
// state, so the package is safe for unsynchronized concurrent use.
//
// A mask encodes a contiguous run of set bits by (width, offset):
//
//	Mask(8, 8)          == 0xff00
//	MaskWidth(0xff00)   == 8
//	MaskOffset(0xff00)  == 8
//	Extract(0xff00, 0x1234) == 0x12
//
// Octet vectors are big-endian and left-padded with zero octets to a fixed
// length (8 by default), which is what the UUID layer relies on when it
// splits a 128-bit identifier into two words:
//
//	Octets(256, 2)  == []byte{1, 0}
//	ToHex(0)        == "0000000000000000"
package bitops
