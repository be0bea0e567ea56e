package slp

// This file contains slp package's functions related to implementing
// image.Image and the image package's format registry. Everything here
// is a convenience layer; the decoding core only ever deals in palette
// indices and draw tags.

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"

	"github.com/ChariotEngine/Slp/palette"
)

// DefaultPlayer is the player index used when decoding through the
// image package's format registry, where no player can be chosen.
const DefaultPlayer = 2

func init() {
	image.RegisterFormat("slp", "2.0N", Decode, DecodeConfig)
}

// DecodeConfig returns the dimensions of the first frame without
// running the command interpreter.
func DecodeConfig(r io.Reader) (image.Config, error) {
	b := make([]byte, headerSize+frameDescSize)
	if _, err := io.ReadFull(r, b); err != nil {
		return image.Config{}, errors.Wrap(ErrBadLength, "file shorter than header and first frame entry")
	}
	if !bytes.Equal(b[0:4], version20N[:]) {
		return image.Config{}, errors.Wrapf(ErrInvalidSLP, "unrecognized version tag %q", b[0:4])
	}
	if binary.LittleEndian.Uint32(b[4:8]) == 0 {
		return image.Config{}, errors.Wrap(ErrInvalidSLP, "file declares no frames")
	}
	return image.Config{
		ColorModel: palette.Fallback(),
		Width:      int(binary.LittleEndian.Uint32(b[headerSize+16 : headerSize+20])),
		Height:     int(binary.LittleEndian.Uint32(b[headerSize+20 : headerSize+24])),
	}, nil
}

// Decode returns the first frame of the file, resolved over the
// built-in fallback palette.
func Decode(r io.Reader) (image.Image, error) {
	f, err := DecodeAll(r, DefaultPlayer)
	if err != nil {
		return nil, err
	}
	return f.Frames[0].Image(palette.Fallback()), nil
}

// Image resolves the frame's indices and draw tags against pal.
// Player-color pixels look up their already-shifted index; shadow
// pixels become the fixed translucent shadow shade; untouched pixels
// stay fully transparent.
func (f *Frame) Image(pal color.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	if len(pal) == 0 {
		return img
	}
	i := 0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			switch f.Tags[i] {
			case TagColor, TagPlayerColor:
				img.Set(x, y, pal[int(f.Pixels[i])%len(pal)])
			case TagShadow:
				img.Set(x, y, palette.Shadow)
			}
			i++
		}
	}
	return img
}
