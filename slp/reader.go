package slp

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// byteReader is a bounds-checked view over the raw file bytes. Every
// other part of the decoder reads through it; an access past the end of
// the buffer uniformly yields ErrBadLength instead of a panic.
type byteReader struct {
	data []byte
}

func (r *byteReader) len() int64 {
	return int64(len(r.data))
}

func (r *byteReader) slice(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 || off+n > r.len() {
		return nil, errors.Wrapf(ErrBadLength, "%d bytes at offset %d, file is %d bytes", n, off, r.len())
	}
	return r.data[off : off+n], nil
}

func (r *byteReader) u8(off int64) (uint8, error) {
	b, err := r.slice(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) u16(off int64) (uint16, error) {
	b, err := r.slice(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *byteReader) u32(off int64) (uint32, error) {
	b, err := r.slice(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *byteReader) i32(off int64) (int32, error) {
	v, err := r.u32(off)
	return int32(v), err
}
