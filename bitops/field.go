package bitops

// Extract returns the bitfield of word selected by mask, right-justified
// to bit 0. The result is always an unsigned field value.
func Extract(mask, word uint64) uint64 {
	off := MaskOffset(mask)
	return (mask >> off) & (word >> off)
}

// Deposit returns word with the bitfield selected by mask replaced by
// value. value is shifted into position and truncated to the field width;
// bits of word outside the mask are preserved unchanged.
//
// Writing back a field just read is a no-op:
//
//	Deposit(m, w, Extract(m, w)) == w
func Deposit(mask, word, value uint64) uint64 {
	return (word &^ mask) | (mask & (value << MaskOffset(mask)))
}
