package bitops

// Fixed-width narrowing views of a 64-bit word.
//
// The UintN functions keep the low n bits of the word and return them in
// the smallest unsigned type that holds the full unsigned range. The IntN
// functions reinterpret the same narrowed bit pattern as an n-bit
// two's-complement value; they change the reading of the bits, not the
// bits themselves.

// Uint4 returns the low 4 bits of v.
func Uint4(v uint64) uint8 { return uint8(v & 0xf) }

// Uint8 returns the low 8 bits of v.
func Uint8(v uint64) uint8 { return uint8(v) }

// Uint16 returns the low 16 bits of v.
func Uint16(v uint64) uint16 { return uint16(v) }

// Uint24 returns the low 24 bits of v.
func Uint24(v uint64) uint32 { return uint32(v & 0xffffff) }

// Uint32 returns the low 32 bits of v.
func Uint32(v uint64) uint32 { return uint32(v) }

// Uint48 returns the low 48 bits of v.
func Uint48(v uint64) uint64 { return v & 0xffffffffffff }

// Uint56 returns the low 56 bits of v.
func Uint56(v uint64) uint64 { return v & 0xffffffffffffff }

// Uint64 returns v unchanged. It exists so the full width family is
// addressable uniformly.
func Uint64(v uint64) uint64 { return v }

// Int8 reinterprets the low 8 bits of v as a signed octet.
func Int8(v uint64) int8 { return int8(Uint8(v)) }

// Int16 reinterprets the low 16 bits of v as a signed 16-bit value.
func Int16(v uint64) int16 { return int16(Uint16(v)) }

// Int32 reinterprets the low 32 bits of v as a signed 32-bit value.
func Int32(v uint64) int32 { return int32(Uint32(v)) }

// Int64 reinterprets v as a signed 64-bit value.
func Int64(v uint64) int64 { return int64(v) }
