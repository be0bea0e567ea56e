package slp

// This file contains code directly related to decoding the
// slp file format: the file header, the frame directory, and the
// per-frame decode driver.

import (
	"encoding/binary"
	"io"
	"os"
	"unicode/utf8"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	headerSize    = 32
	frameDescSize = 32

	// maxDimension bounds frame width and height so that width*height
	// can never overflow the pixel buffer index arithmetic.
	maxDimension = 1 << 14
)

// version20N is the only version tag this reader recognizes.
var version20N = [4]byte{'2', '.', '0', 'N'}

// Header is the fixed-size structure at the start of every SLP file.
type Header struct {
	// Version should always be `2.0N`.
	Version    [4]byte
	FrameCount uint32
	Comment    [24]byte
}

// FrameHeader is the 32-byte frame directory entry. One exists for
// every frame in the file.
type FrameHeader struct {
	// CmdTableOffset points to an array of uint32 offsets, one per row.
	// Each offset is the position of the first drawing command of that
	// row. The first entry is the first drawing command of the frame.
	CmdTableOffset uint32

	// OutlineTableOffset points to an array of uint16 pairs giving the
	// transparent padding at the left and right edge of each row.
	OutlineTableOffset uint32

	PaletteOffset uint32
	Properties    uint32
	Width         uint32
	Height        uint32
	HotspotX      int32
	HotspotY      int32
}

// File is a fully decoded SLP file.
type File struct {
	Header Header
	Frames []*Frame

	// Player is the player index the player-color commands were decoded
	// against.
	Player uint8
}

// NewFromFile opens and decodes the SLP file at path.
//
// The path must be non-empty and valid UTF-8; violations map to
// ErrEmptyPath and ErrPathEncoding so that callers of the legacy
// convention can tell them apart from decode failures.
func NewFromFile(path string, player uint8) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if !utf8.ValidString(path) {
		return nil, errors.Wrapf(ErrPathEncoding, "%q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening slp")
	}
	defer f.Close()
	return DecodeAll(f, player)
}

// DecodeAll reads an entire SLP file from r and decodes every frame.
//
// player selects the palette block the player-color commands resolve
// against; it only shifts the emitted indices and never touches RGBA.
func DecodeAll(r io.Reader, player uint8) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading slp")
	}
	return decode(data, player)
}

func decode(data []byte, player uint8) (*File, error) {
	r := &byteReader{data: data}

	hdr, err := parseHeader(r)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("slp header: version %q, %d frames", hdr.Version[:], hdr.FrameCount)

	headers := make([]FrameHeader, hdr.FrameCount)
	for i := range headers {
		off := int64(headerSize) + int64(i)*frameDescSize
		fh, err := parseFrameHeader(r, off)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
		glog.V(3).Infof("frame %d: %dx%d, hotspot (%d,%d)", i, fh.Width, fh.Height, fh.HotspotX, fh.HotspotY)
		headers[i] = fh
	}

	// Frames are mutually independent: each has its own outline table
	// and command stream region over the shared read-only byte source.
	file := &File{Header: hdr, Frames: make([]*Frame, hdr.FrameCount), Player: player}
	var g errgroup.Group
	for i, fh := range headers {
		i, fh := i, fh
		g.Go(func() error {
			frame, err := decodeFrame(r, fh, player)
			if err != nil {
				return errors.Wrapf(err, "frame %d", i)
			}
			file.Frames[i] = frame
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return file, nil
}

func parseHeader(r *byteReader) (Header, error) {
	var h Header

	b, err := r.slice(0, headerSize)
	if err != nil {
		return h, errors.Wrap(err, "file shorter than slp header")
	}
	copy(h.Version[:], b[0:4])
	h.FrameCount = binary.LittleEndian.Uint32(b[4:8])
	copy(h.Comment[:], b[8:headerSize])

	if h.Version != version20N {
		return h, errors.Wrapf(ErrInvalidSLP, "unrecognized version tag %q", b[0:4])
	}
	if h.FrameCount == 0 {
		return h, errors.Wrap(ErrInvalidSLP, "file declares no frames")
	}
	if need := int64(headerSize) + int64(h.FrameCount)*frameDescSize; need > r.len() {
		return h, errors.Wrapf(ErrBadLength, "%d frames need %d bytes of directory, file is %d bytes", h.FrameCount, need, r.len())
	}
	return h, nil
}

func parseFrameHeader(r *byteReader, off int64) (FrameHeader, error) {
	var h FrameHeader
	var err error

	if h.CmdTableOffset, err = r.u32(off); err != nil {
		return h, err
	}
	if h.OutlineTableOffset, err = r.u32(off + 4); err != nil {
		return h, err
	}
	if h.PaletteOffset, err = r.u32(off + 8); err != nil {
		return h, err
	}
	if h.Properties, err = r.u32(off + 12); err != nil {
		return h, err
	}
	if h.Width, err = r.u32(off + 16); err != nil {
		return h, err
	}
	if h.Height, err = r.u32(off + 20); err != nil {
		return h, err
	}
	if h.HotspotX, err = r.i32(off + 24); err != nil {
		return h, err
	}
	if h.HotspotY, err = r.i32(off + 28); err != nil {
		return h, err
	}

	if h.Width == 0 || h.Height == 0 {
		return h, errors.Wrapf(ErrInvalidSLP, "degenerate frame size %dx%d", h.Width, h.Height)
	}
	if h.Width > maxDimension || h.Height > maxDimension {
		return h, errors.Wrapf(ErrInvalidSLP, "frame size %dx%d exceeds limit %d", h.Width, h.Height, maxDimension)
	}
	if int64(h.CmdTableOffset) >= r.len() {
		return h, errors.Wrapf(ErrInvalidSLP, "command table offset %d out of bounds", h.CmdTableOffset)
	}
	if int64(h.OutlineTableOffset) >= r.len() {
		return h, errors.Wrapf(ErrInvalidSLP, "outline table offset %d out of bounds", h.OutlineTableOffset)
	}
	return h, nil
}

func decodeFrame(r *byteReader, h FrameHeader, player uint8) (*Frame, error) {
	frame := newFrame(h)
	for y := uint32(0); y < h.Height; y++ {
		entry, err := readOutline(r, h.OutlineTableOffset, y)
		if err != nil {
			return nil, err
		}
		if entry.transparent() {
			// Fully transparent row; the command stream holds nothing
			// for it.
			continue
		}
		if uint32(entry.Left)+uint32(entry.Right) > h.Width {
			return nil, errors.Wrapf(ErrInvalidSLP, "row %d outline %d+%d exceeds width %d", y, entry.Left, entry.Right, h.Width)
		}
		rowOff, err := r.u32(int64(h.CmdTableOffset) + int64(y)*4)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d command offset", y)
		}
		if err := interpretRow(r, frame, y, entry, int64(rowOff), player); err != nil {
			return nil, err
		}
	}
	return frame, nil
}
