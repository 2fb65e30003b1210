package images

import (
	"encoding/binary"
	"errors"
)

// jfifHeader is APP0 segment up to density fields: marker, length 16,
// "JFIF\0", version 1.2 and density units (1 - dots per inch).
var jfifHeader = []byte{0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x02, 0x01}

// withDensity returns JPEG stream carrying JFIF header with dpi density in
// both directions. Streams already having APP0 right after SOI are kept.
func withDensity(data []byte, dpi uint16) ([]byte, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, errors.New("not a jpeg stream")
	}
	if data[2] == 0xFF && data[3] == 0xE0 {
		return data, nil
	}

	out := make([]byte, 0, len(data)+18)
	out = append(out, data[:2]...)
	out = append(out, jfifHeader...)
	out = binary.BigEndian.AppendUint16(out, dpi)
	out = binary.BigEndian.AppendUint16(out, dpi)
	// no thumbnail
	out = append(out, 0x00, 0x00)
	return append(out, data[2:]...), nil
}
