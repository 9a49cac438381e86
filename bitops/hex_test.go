package bitops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOctetHex(t *testing.T) {
	require.Equal(t, "ff", OctetHex(255))
	require.Equal(t, "00", OctetHex(0))
	require.Equal(t, "10", OctetHex(16))
	require.Equal(t, "0f", OctetHex(15))
	require.Equal(t, "a5", OctetHex(0xa5))
}

func TestBytesToHex(t *testing.T) {
	require.Equal(t, "", BytesToHex(nil))
	require.Equal(t, "00ff10", BytesToHex([]byte{0, 255, 16}))
	require.Equal(t, "deadbeef", BytesToHex([]byte{0xde, 0xad, 0xbe, 0xef}))
}

func TestToHex(t *testing.T) {
	require.Equal(t, "0000000000000000", ToHex(0))
	require.Equal(t, "00000000000000ff", ToHex(255))
	require.Equal(t, "deadbeefcafef00d", ToHex(0xdeadbeefcafef00d))
	require.Equal(t, "ffffffffffffffff", ToHex(0xffffffffffffffff))
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"00", 0},
		{"ff", 255},
		{"FF", 255},
		{"10", 16},
		{"deadbeefcafef00d", 0xdeadbeefcafef00d},
		{"ffffffffffffffff", 0xffffffffffffffff},
		// Leading zeros do not count against the 64-bit width.
		{"000000000000000000ff", 255},
	}

	for _, tt := range tests {
		got, err := FromHex(tt.in)
		require.NoError(t, err, "FromHex(%q)", tt.in)
		require.Equal(t, tt.want, got, "FromHex(%q)", tt.in)
	}
}

func TestFromHexErrors(t *testing.T) {
	_, err := FromHex("")
	require.ErrorIs(t, err, ErrInvalidHexDigit)

	_, err = FromHex("12g4")
	require.ErrorIs(t, err, ErrInvalidHexDigit)
	require.Contains(t, err.Error(), "'g'")

	// 17 significant digits encode more than 64 bits.
	_, err = FromHex("1ffffffffffffffff")
	require.ErrorIs(t, err, ErrHexOverflow)
}

func TestHexRoundTrip(t *testing.T) {
	values := []uint64{
		0,
		1,
		255,
		0x1234,
		0xdeadbeefcafef00d,
		0x8000000000000000,
		0xffffffffffffffff,
	}

	for _, v := range values {
		got, err := FromHex(ToHex(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestBytesFromHex(t *testing.T) {
	b, err := BytesFromHex("00ff10")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 255, 16}, b)

	b, err = BytesFromHex("DEADBEEF")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	b, err = BytesFromHex("")
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestBytesFromHexErrors(t *testing.T) {
	_, err := BytesFromHex("abc")
	require.ErrorIs(t, err, ErrOddHexLength)

	_, err = BytesFromHex("zz")
	require.ErrorIs(t, err, ErrInvalidHexDigit)

	_, err = BytesFromHex("az")
	require.ErrorIs(t, err, ErrInvalidHexDigit)
}

func TestTextHexRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"a",
		"hello",
		"héllo wörld",
		"\x00leading zero byte",
		"null\x00inside",
	}

	for _, s := range tests {
		enc := TextToHex(s)
		dec, err := TextFromHex(enc)
		require.NoError(t, err)
		require.Equal(t, s, dec, "round trip of %q", s)
	}
}

func TestTextToHex(t *testing.T) {
	require.Equal(t, "68656c6c6f", TextToHex("hello"))
	// Leading zero octets survive byte-sequential decoding; a single-integer
	// round trip would drop them.
	enc := TextToHex("\x00A")
	require.Equal(t, "0041", enc)
	dec, err := TextFromHex(enc)
	require.NoError(t, err)
	require.Equal(t, "\x00A", dec)
}
