package slp

// This file contains the command stream interpreter: the per-row
// drawing program that reconstructs pixel values between the outline
// bounds.

import (
	"github.com/pkg/errors"
)

// endOfRow terminates a row's command stream. The last row's marker
// also terminates the frame; the format has no separate end-of-frame
// byte.
const endOfRow = 0x0F

// playerBlockSize is the stride between the palette blocks reserved for
// the individual players' team colors.
const playerBlockSize = 16

// rowWriter is the output cursor for a single row. Writes outside the
// active span [left, width-right) indicate a corrupt command stream and
// abort the decode.
type rowWriter struct {
	frame *Frame
	y     uint32
	x     uint32
	end   uint32
}

func (w *rowWriter) put(v uint8, tag DrawTag) error {
	if w.x >= w.end {
		return errors.Wrapf(ErrDecode, "row %d overruns its active span at column %d", w.y, w.x)
	}
	i := int(w.y)*w.frame.Width() + int(w.x)
	w.frame.Pixels[i] = v
	w.frame.Tags[i] = tag
	w.x++
	return nil
}

func (w *rowWriter) skip(n int) error {
	w.x += uint32(n)
	if w.x > w.end {
		return errors.Wrapf(ErrDecode, "row %d skips past its active span to column %d", w.y, w.x)
	}
	return nil
}

// interpretRow executes one row's command stream against the frame.
// The cursor starts at the row's left outline bound and must sit
// exactly at width-right when the end-of-row marker arrives.
func interpretRow(r *byteReader, frame *Frame, y uint32, outline outlineEntry, pos int64, player uint8) error {
	w := rowWriter{
		frame: frame,
		y:     y,
		x:     uint32(outline.Left),
		end:   frame.Header.Width - uint32(outline.Right),
	}

	for {
		cmd, err := r.u8(pos)
		if err != nil {
			return errors.Wrapf(err, "row %d command", y)
		}
		pos++

		if cmd == endOfRow {
			if w.x != w.end {
				return errors.Wrapf(ErrInvalidSLP, "row %d ended at column %d, want %d", y, w.x, w.end)
			}
			return nil
		}

		// The opcode lives in the low nibble; the rest of the byte, or
		// a following byte for the large and four-bit encodings, holds
		// the count.
		switch cmd & 0x0F {
		case 0x00, 0x04, 0x08, 0x0C: // block copy
			n, err := sixUpperBits(cmd)
			if err != nil {
				return err
			}
			if pos, err = copyPixels(r, &w, pos, n); err != nil {
				return err
			}

		case 0x01, 0x05, 0x09, 0x0D: // skip pixels
			n, err := sixUpperBits(cmd)
			if err != nil {
				return err
			}
			if err := w.skip(n); err != nil {
				return err
			}

		case 0x02: // large block copy
			n, err := largeLength(r, cmd, &pos)
			if err != nil {
				return err
			}
			if pos, err = copyPixels(r, &w, pos, n); err != nil {
				return err
			}

		case 0x03: // large skip
			n, err := largeLength(r, cmd, &pos)
			if err != nil {
				return err
			}
			if err := w.skip(n); err != nil {
				return err
			}

		case 0x06: // copy and colorize with the player block
			n, err := fourUpperBits(r, cmd, &pos)
			if err != nil {
				return err
			}
			for ; n > 0; n-- {
				rel, err := r.u8(pos)
				if err != nil {
					return err
				}
				pos++
				if err := w.put(rel+player*playerBlockSize, TagPlayerColor); err != nil {
					return err
				}
			}

		case 0x07: // fill with one color
			n, err := fourUpperBits(r, cmd, &pos)
			if err != nil {
				return err
			}
			v, err := r.u8(pos)
			if err != nil {
				return err
			}
			pos++
			for ; n > 0; n-- {
				if err := w.put(v, TagColor); err != nil {
					return err
				}
			}

		case 0x0A: // fill with one player-block color
			n, err := fourUpperBits(r, cmd, &pos)
			if err != nil {
				return err
			}
			rel, err := r.u8(pos)
			if err != nil {
				return err
			}
			pos++
			for ; n > 0; n-- {
				if err := w.put(rel+player*playerBlockSize, TagPlayerColor); err != nil {
					return err
				}
			}

		case 0x0B: // shadow run
			n, err := fourUpperBits(r, cmd, &pos)
			if err != nil {
				return err
			}
			for ; n > 0; n-- {
				if err := w.put(0, TagShadow); err != nil {
					return err
				}
			}

		case 0x0E:
			// The extended opcodes (upper nibble selects the variant)
			// never occur in the assets this reader targets.
			return errors.Wrapf(ErrDecode, "row %d: unsupported extended command %#02x", y, cmd)

		default:
			return errors.Wrapf(ErrDecode, "row %d: unknown command %#02x", y, cmd)
		}
	}
}

func copyPixels(r *byteReader, w *rowWriter, pos int64, n int) (int64, error) {
	for ; n > 0; n-- {
		v, err := r.u8(pos)
		if err != nil {
			return pos, err
		}
		pos++
		if err := w.put(v, TagColor); err != nil {
			return pos, err
		}
	}
	return pos, nil
}

// sixUpperBits decodes the count carried in the top six bits of the
// command byte.
func sixUpperBits(cmd uint8) (int, error) {
	n := int(cmd >> 2)
	if n == 0 {
		return 0, errors.Wrapf(ErrBadLength, "zero-length command %#02x", cmd)
	}
	return n, nil
}

// fourUpperBits decodes the count carried in the top four bits of the
// command byte; an exhausted (zero) field escapes to a full count byte.
func fourUpperBits(r *byteReader, cmd uint8, pos *int64) (int, error) {
	n := int(cmd >> 4)
	if n == 0 {
		b, err := r.u8(*pos)
		if err != nil {
			return 0, err
		}
		(*pos)++
		n = int(b)
	}
	return n, nil
}

// largeLength decodes the count of the large copy and skip commands:
// the top four bits of the command byte become the high bits of a
// 12-bit count completed by the next stream byte.
func largeLength(r *byteReader, cmd uint8, pos *int64) (int, error) {
	b, err := r.u8(*pos)
	if err != nil {
		return 0, err
	}
	(*pos)++
	return int(cmd&0xF0)<<4 | int(b), nil
}
