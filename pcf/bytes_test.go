package pcf

import (
	"testing"
)

func TestDecodeBigEndian(t *testing.T) {
	cases := []struct {
		bytes []byte
		value uint32
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x00, 0x01}, 1},
		{[]byte{0x12, 0x34}, 0x1234},
		{[]byte{0xFF, 0xFF}, 0xFFFF},
	}
	for _, c := range cases {
		if got := u16(c.bytes); got != uint16(c.value) {
			t.Errorf("u16(% x) = %#x, want %#x", c.bytes, got, c.value)
		}
	}
	if got := u32([]byte{0x12, 0x34, 0x56, 0x78}); got != 0x12345678 {
		t.Errorf("u32 = %#x, want 0x12345678", got)
	}
	if got := i16([]byte{0xFF, 0xFE}); got != -2 {
		t.Errorf("i16 = %d, want -2", got)
	}
	if got := i32([]byte{0xFF, 0xFF, 0xFF, 0xFE}); got != -2 {
		t.Errorf("i32 = %d, want -2", got)
	}
}

func TestDecodeLittleEndian(t *testing.T) {
	if got := u16le([]byte{0x34, 0x12}); got != 0x1234 {
		t.Errorf("u16le = %#x, want 0x1234", got)
	}
	if got := u32le([]byte{0x78, 0x56, 0x34, 0x12}); got != 0x12345678 {
		t.Errorf("u32le = %#x, want 0x12345678", got)
	}
	if got := i16le([]byte{0xFE, 0xFF}); got != -2 {
		t.Errorf("i16le = %d, want -2", got)
	}
	if got := i32le([]byte{0xFE, 0xFF, 0xFF, 0xFF}); got != -2 {
		t.Errorf("i32le = %d, want -2", got)
	}
}

// Decoding the big-endian and little-endian encodings of the same integer
// recovers the original value in both cases.
func TestDecodeRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x80, 0x1234, 0x8000, 0xFFFF, 0x12345678, 0xFFFFFFFF} {
		be := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
		le := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
		if got := u32(be); got != v {
			t.Errorf("u32 round trip of %#x gave %#x", v, got)
		}
		if got := u32le(le); got != v {
			t.Errorf("u32le round trip of %#x gave %#x", v, got)
		}
		if v <= 0xFFFF {
			if got := u16(be[2:]); got != uint16(v) {
				t.Errorf("u16 round trip of %#x gave %#x", v, got)
			}
			if got := u16le(le[:2]); got != uint16(v) {
				t.Errorf("u16le round trip of %#x gave %#x", v, got)
			}
		}
	}
}

func TestBytesPerRow(t *testing.T) {
	cases := []struct {
		width, align, want int
	}{
		{9, 1, 2},
		{8, 1, 1},
		{8, 4, 4},
		{9, 2, 2},
		{17, 2, 4},
		{1, 4, 4},
		{0, 1, 0},
		{0, 2, 0},
		{0, 4, 0},
	}
	for _, c := range cases {
		if got := bytesPerRow(c.width, c.align); got != c.want {
			t.Errorf("bytesPerRow(%d, %d) = %d, want %d", c.width, c.align, got, c.want)
		}
	}
}
