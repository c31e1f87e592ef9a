package pcf

import "io"

// Reading numbers from a font's binary representation.
//
// PCF is a mixed-endianness format: the table of contents is always
// little-endian, while the table payloads of the fonts we support are
// big-endian (the format flags of each table demand MSByte-first, see
// parse.go). Therefore both byte orders live side by side here.

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

func i16(b []byte) int16 {
	return int16(u16(b))
}

func i32(b []byte) int32 {
	return int32(u32(b))
}

func u16le(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[1])<<8 | uint16(b[0])<<0
}

func u32le(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])<<0
}

func i16le(b []byte) int16 {
	return int16(u16le(b))
}

func i32le(b []byte) int32 {
	return int32(u32le(b))
}

// --- Byte source access ----------------------------------------------------

// The byte source of a font is an io.ReadSeeker. Any failure of the source
// is mapped to an IO-kind FontError, tagged with the section that was being
// read at the time.

func readExact(r io.Reader, buf []byte, section string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return errIO(section, err)
	}
	return nil
}

func seekTo(s io.Seeker, offset int64, section string) error {
	if _, err := s.Seek(offset, io.SeekStart); err != nil {
		return errIO(section, err)
	}
	return nil
}

func skip(s io.Seeker, n int64, section string) error {
	if _, err := s.Seek(n, io.SeekCurrent); err != nil {
		return errIO(section, err)
	}
	return nil
}
