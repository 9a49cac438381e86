package bitops

import "fmt"

// hexDigits is the nibble lookup table. Encoding is always lowercase;
// decoding accepts either case.
const hexDigits = "0123456789abcdef"

// OctetHex returns the two-character hex encoding of a single octet,
// high nibble first.
func OctetHex(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xf]})
}

// BytesToHex hex-encodes an octet sequence in order, two lowercase
// characters per octet, no separators.
func BytesToHex(b []byte) string {
	out := make([]byte, 0, 2*len(b))
	for _, o := range b {
		out = append(out, hexDigits[o>>4], hexDigits[o&0xf])
	}
	return string(out)
}

// ToHex returns the 16-character hex encoding of the full 64-bit word v,
// i.e. the encoding of its default-padded octet sequence. ToHex(0) is
// "0000000000000000".
func ToHex(v uint64) string {
	oct, err := Octets(v, PadDefault)
	if err != nil {
		// A 64-bit word always fits in 8 octets.
		panic(err)
	}
	return BytesToHex(oct)
}

// TextToHex hex-encodes the UTF-8 bytes of s.
func TextToHex(s string) string {
	return BytesToHex([]byte(s))
}

// hexNibble decodes one hex digit, accepting both cases.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// FromHex parses s as a base-16 numeral into a 64-bit word. Leading zero
// digits are tolerated, but a numeral with more than 16 significant digits
// encodes a value wider than 64 bits and fails with ErrHexOverflow; a
// character outside [0-9a-fA-F] fails with ErrInvalidHexDigit naming the
// offending character. The parse never partially succeeds.
func FromHex(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidHexDigit)
	}
	var v uint64
	digits := 0
	for i := 0; i < len(s); i++ {
		n, ok := hexNibble(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q at index %d", ErrInvalidHexDigit, s[i], i)
		}
		if digits > 0 || n != 0 {
			digits++
		}
		if digits > 16 {
			return 0, fmt.Errorf("%w: %q", ErrHexOverflow, s)
		}
		v = v<<4 | uint64(n)
	}
	return v, nil
}

// BytesFromHex decodes a hex string into its octet sequence, one octet per
// digit pair. Decoding is byte-sequential, so byte boundaries and leading
// zero octets survive; it is the inverse of BytesToHex.
func BytesFromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d characters", ErrOddHexLength, len(s))
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, ok := hexNibble(s[2*i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidHexDigit, s[2*i], 2*i)
		}
		lo, ok := hexNibble(s[2*i+1])
		if !ok {
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidHexDigit, s[2*i+1], 2*i+1)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// TextFromHex decodes a hex string produced by TextToHex back into text,
// reading the decoded octets as UTF-8. Decoding goes pair by pair rather
// than through a single integer, so multi-byte payloads with leading zero
// octets round-trip intact.
func TextFromHex(s string) (string, error) {
	b, err := BytesFromHex(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
