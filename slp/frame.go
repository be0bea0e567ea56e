package slp

// DrawTag records which command family produced a pixel. Renderers need
// it to tell an ordinary palette index apart from the player-color and
// shadow reserved meanings, which the decoder never resolves to RGBA.
type DrawTag uint8

const (
	// TagTransparent marks a pixel no command wrote to.
	TagTransparent DrawTag = iota

	// TagColor marks a literal palette index.
	TagColor

	// TagPlayerColor marks an index already shifted into the decoding
	// player's palette block.
	TagPlayerColor

	// TagShadow marks a pixel to render as the fixed shadow shade,
	// independent of the palette.
	TagShadow
)

// Frame is one decoded image of an SLP file.
//
// Pixels holds exactly Width*Height palette indices, row-major from the
// top. Tags runs parallel to it. A Frame is exclusively owned by the
// caller once returned; the decoder keeps no reference to it.
type Frame struct {
	Header FrameHeader
	Pixels []uint8
	Tags   []DrawTag
}

func newFrame(h FrameHeader) *Frame {
	n := int(h.Width) * int(h.Height)
	return &Frame{
		Header: h,
		Pixels: make([]uint8, n),
		Tags:   make([]DrawTag, n),
	}
}

func (f *Frame) Width() int  { return int(f.Header.Width) }
func (f *Frame) Height() int { return int(f.Header.Height) }
