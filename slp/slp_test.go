package slp

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ChariotEngine/Slp/ttesting"
)

// fixtureFrame describes one frame of a synthetic SLP file.
type fixtureFrame struct {
	width, height uint32
	outline       [][2]uint16 // one left/right pair per row
	rows          [][]byte    // command bytes per row; unused for sentinel rows
}

// buildSLP assembles a complete SLP file from the passed frames:
// header, frame directory, then per frame its outline table, row
// command offset table and command streams. Rows whose outline carries
// the transparent sentinel get a garbage command offset, so a decoder
// touching them fails loudly.
func buildSLP(frames ...fixtureFrame) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("2.0N")
	binary.Write(buf, binary.LittleEndian, uint32(len(frames)))
	comment := make([]byte, 24)
	copy(comment, "synthetic fixture")
	buf.Write(comment)

	dirOff := buf.Len()
	buf.Write(make([]byte, frameDescSize*len(frames)))

	type patch struct{ cmdTable, outline uint32 }
	patches := make([]patch, len(frames))

	for i, f := range frames {
		p := patch{outline: uint32(buf.Len())}
		for _, pair := range f.outline {
			binary.Write(buf, binary.LittleEndian, pair[0])
			binary.Write(buf, binary.LittleEndian, pair[1])
		}
		p.cmdTable = uint32(buf.Len())
		rowOff := p.cmdTable + 4*f.height
		for y := uint32(0); y < f.height; y++ {
			if int(y) < len(f.outline) && (outlineEntry{Left: f.outline[y][0], Right: f.outline[y][1]}).transparent() {
				binary.Write(buf, binary.LittleEndian, uint32(0xFFFFFFF0))
				continue
			}
			binary.Write(buf, binary.LittleEndian, rowOff)
			if int(y) < len(f.rows) {
				rowOff += uint32(len(f.rows[y]))
			}
		}
		for y, row := range f.rows {
			if int(y) < len(f.outline) && (outlineEntry{Left: f.outline[y][0], Right: f.outline[y][1]}).transparent() {
				continue
			}
			buf.Write(row)
		}
		patches[i] = p
	}

	data := buf.Bytes()
	for i, f := range frames {
		entry := dirOff + frameDescSize*i
		binary.LittleEndian.PutUint32(data[entry:], patches[i].cmdTable)
		binary.LittleEndian.PutUint32(data[entry+4:], patches[i].outline)
		binary.LittleEndian.PutUint32(data[entry+16:], f.width)
		binary.LittleEndian.PutUint32(data[entry+20:], f.height)
	}
	return data
}

func onePixelFixture() []byte {
	return buildSLP(fixtureFrame{
		width:   1,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x04, 0x2A, endOfRow}},
	})
}

func TestDecodeMinimal(t *testing.T) {
	f, err := decode(onePixelFixture(), 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	ttesting.AssertEqualInt(t, "frame count", len(f.Frames), 1)
	frame := f.Frames[0]
	ttesting.AssertEqualInt(t, "width", frame.Width(), 1)
	ttesting.AssertEqualInt(t, "height", frame.Height(), 1)
	ttesting.AssertEqualInt(t, "buffer length is width*height", len(frame.Pixels), 1)
	ttesting.AssertEqualBytes(t, "literal byte", frame.Pixels, []byte{0x2A})
	if frame.Tags[0] != TagColor {
		t.Errorf("tag: got %d, want TagColor", frame.Tags[0])
	}
}

func TestDecodeDeterministic(t *testing.T) {
	data := buildSLP(fixtureFrame{
		width:   4,
		height:  2,
		outline: [][2]uint16{{1, 1}, {0, 0}},
		rows: [][]byte{
			{0x08, 0x10, 0x20, endOfRow},
			{0x27, 0x33, 0x09, 0x40, 0x50, endOfRow},
		},
	})
	a, err := decode(data, 1)
	if err != nil {
		t.Fatalf("first decode failed: %v", err)
	}
	b, err := decode(data, 1)
	if err != nil {
		t.Fatalf("second decode failed: %v", err)
	}
	ttesting.AssertEqualBytes(t, "pixel buffers identical", a.Frames[0].Pixels, b.Frames[0].Pixels)
}

func TestHeaderBadVersion(t *testing.T) {
	data := onePixelFixture()
	copy(data, "2.1N")
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "unrecognized version tag", err, ErrInvalidSLP)
	ttesting.AssertEqualInt(t, "legacy code", Code(err), CodeInvalidSLP)
}

func TestHeaderTruncated(t *testing.T) {
	_, err := decode(onePixelFixture()[:16], 0)
	ttesting.AssertErrorIs(t, "short header", err, ErrBadLength)
	ttesting.AssertEqualInt(t, "legacy code", Code(err), CodeBadLength)
}

func TestFrameCountExceedsFileLength(t *testing.T) {
	data := onePixelFixture()
	binary.LittleEndian.PutUint32(data[4:], 5)
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "directory longer than file", err, ErrBadLength)
}

func TestZeroFrames(t *testing.T) {
	data := onePixelFixture()
	binary.LittleEndian.PutUint32(data[4:], 0)
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "no frames", err, ErrInvalidSLP)
}

func TestFrameDirectoryOffsetOutOfBounds(t *testing.T) {
	data := onePixelFixture()
	binary.LittleEndian.PutUint32(data[headerSize:], 1<<30) // command table offset
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "command table out of bounds", err, ErrInvalidSLP)
}

func TestDegenerateFrameSize(t *testing.T) {
	data := onePixelFixture()
	binary.LittleEndian.PutUint32(data[headerSize+16:], 0) // width
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "zero width", err, ErrInvalidSLP)
}

func TestOutlineWiderThanRow(t *testing.T) {
	data := buildSLP(fixtureFrame{
		width:   4,
		height:  1,
		outline: [][2]uint16{{3, 2}},
		rows:    [][]byte{{endOfRow}},
	})
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "left+right exceeds width", err, ErrInvalidSLP)
}

func TestTransparentRowConsumesNoCommands(t *testing.T) {
	// Row 0 carries the sentinel and a garbage command offset; decoding
	// succeeds only if the interpreter never consults it.
	f, err := decode(buildSLP(fixtureFrame{
		width:   2,
		height:  2,
		outline: [][2]uint16{{transparentRow, 0}, {0, 0}},
		rows: [][]byte{
			nil,
			{0x08, 0xAA, 0xBB, endOfRow},
		},
	}), 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	frame := f.Frames[0]
	ttesting.AssertEqualBytes(t, "sentinel row stays transparent", frame.Pixels[:2], []byte{0, 0})
	if frame.Tags[0] != TagTransparent || frame.Tags[1] != TagTransparent {
		t.Errorf("sentinel row tags: got %v, want transparent", frame.Tags[:2])
	}
	ttesting.AssertEqualBytes(t, "second row decoded", frame.Pixels[2:], []byte{0xAA, 0xBB})
}

func TestRowUnderfillRejected(t *testing.T) {
	data := buildSLP(fixtureFrame{
		width:   2,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x04, 0xAA, endOfRow}},
	})
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "row shorter than active span", err, ErrInvalidSLP)
}

func TestRowOverrunRejected(t *testing.T) {
	data := buildSLP(fixtureFrame{
		width:   2,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x0C, 0xAA, 0xBB, 0xCC, endOfRow}},
	})
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "copy past active span", err, ErrDecode)
	ttesting.AssertEqualInt(t, "legacy code", Code(err), CodeUnknown)
}

func TestEscapedCountOverrunRejected(t *testing.T) {
	// Fill with an exhausted inline count escaping to a count byte that
	// exceeds the whole row.
	data := buildSLP(fixtureFrame{
		width:   4,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x07, 0x09, 0xAA, endOfRow}},
	})
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "escaped count past active span", err, ErrDecode)
}

func TestZeroLengthShortCommand(t *testing.T) {
	data := buildSLP(fixtureFrame{
		width:   2,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x00, endOfRow}},
	})
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "zero-length copy", err, ErrBadLength)
}

func TestUnknownCommandRejected(t *testing.T) {
	data := buildSLP(fixtureFrame{
		width:   1,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x1F, endOfRow}},
	})
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "unknown command byte", err, ErrDecode)
}

func TestExtendedCommandRejected(t *testing.T) {
	data := buildSLP(fixtureFrame{
		width:   1,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x4E, endOfRow}},
	})
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "extended command", err, ErrDecode)
}

func TestTruncatedCommandStream(t *testing.T) {
	data := buildSLP(fixtureFrame{
		width:   2,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x08, 0xAA}}, // copy 2 runs off the file end
	})
	_, err := decode(data, 0)
	ttesting.AssertErrorIs(t, "stream past file end", err, ErrBadLength)
}

func TestLargeCopyAndSkip(t *testing.T) {
	lits := make([]byte, 17)
	for i := range lits {
		lits[i] = byte(i + 1)
	}
	row := append([]byte{0x02, 17}, lits...)
	row = append(row, 0x0D, endOfRow) // skip 3
	f, err := decode(buildSLP(fixtureFrame{
		width:   20,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{row},
	}), 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	frame := f.Frames[0]
	ttesting.AssertEqualBytes(t, "large copy literals", frame.Pixels[:17], lits)
	ttesting.AssertEqualBytes(t, "skipped tail stays transparent", frame.Pixels[17:], []byte{0, 0, 0})
}

func TestFillCommand(t *testing.T) {
	f, err := decode(buildSLP(fixtureFrame{
		width:   3,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x37, 0x66, endOfRow}},
	}), 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	ttesting.AssertEqualBytes(t, "fill", f.Frames[0].Pixels, []byte{0x66, 0x66, 0x66})
}

func TestPlayerColorCommands(t *testing.T) {
	const player = 3
	f, err := decode(buildSLP(fixtureFrame{
		width:   4,
		height:  1,
		outline: [][2]uint16{{0, 0}},
		rows:    [][]byte{{0x26, 0x01, 0x02, 0x2A, 0x05, endOfRow}},
	}), player)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	frame := f.Frames[0]
	want := []byte{
		0x01 + player*playerBlockSize,
		0x02 + player*playerBlockSize,
		0x05 + player*playerBlockSize,
		0x05 + player*playerBlockSize,
	}
	ttesting.AssertEqualBytes(t, "player block shifted indices", frame.Pixels, want)
	for i, tag := range frame.Tags {
		if tag != TagPlayerColor {
			t.Errorf("tag %d: got %d, want TagPlayerColor", i, tag)
		}
	}
}

func TestShadowRun(t *testing.T) {
	f, err := decode(buildSLP(fixtureFrame{
		width:   3,
		height:  1,
		outline: [][2]uint16{{0, 1}},
		rows:    [][]byte{{0x2B, endOfRow}},
	}), 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	frame := f.Frames[0]
	if frame.Tags[0] != TagShadow || frame.Tags[1] != TagShadow {
		t.Errorf("shadow tags: got %v", frame.Tags[:2])
	}
	if frame.Tags[2] != TagTransparent {
		t.Errorf("right outline pixel: got %d, want TagTransparent", frame.Tags[2])
	}
}

func TestMultiFrame(t *testing.T) {
	f, err := decode(buildSLP(
		fixtureFrame{
			width:   1,
			height:  1,
			outline: [][2]uint16{{0, 0}},
			rows:    [][]byte{{0x04, 0x11, endOfRow}},
		},
		fixtureFrame{
			width:   2,
			height:  1,
			outline: [][2]uint16{{0, 0}},
			rows:    [][]byte{{0x08, 0x21, 0x22, endOfRow}},
		},
		fixtureFrame{
			width:   1,
			height:  2,
			outline: [][2]uint16{{0, 0}, {transparentRow, transparentRow}},
			rows:    [][]byte{{0x04, 0x31, endOfRow}, nil},
		},
	), 0)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	ttesting.AssertEqualInt(t, "frame count", len(f.Frames), 3)
	ttesting.AssertEqualBytes(t, "frame 0", f.Frames[0].Pixels, []byte{0x11})
	ttesting.AssertEqualBytes(t, "frame 1", f.Frames[1].Pixels, []byte{0x21, 0x22})
	ttesting.AssertEqualBytes(t, "frame 2", f.Frames[2].Pixels, []byte{0x31, 0x00})
	for _, fr := range f.Frames {
		ttesting.AssertEqualInt(t, "buffer length is width*height", len(fr.Pixels), fr.Width()*fr.Height())
	}
}

func TestNewFromFilePathErrors(t *testing.T) {
	_, err := NewFromFile("", 0)
	ttesting.AssertErrorIs(t, "empty path", err, ErrEmptyPath)
	ttesting.AssertEqualInt(t, "empty path code", Code(err), CodeEmptyPath)

	_, err = NewFromFile("\xff\xfe.slp", 0)
	ttesting.AssertErrorIs(t, "non-utf8 path", err, ErrPathEncoding)
	ttesting.AssertEqualInt(t, "non-utf8 path code", Code(err), CodePathEncoding)

	_, err = NewFromFile("no/such/file.slp", 0)
	ttesting.AssertEqualInt(t, "missing file is the catch-all", Code(err), CodeUnknown)
}

func TestCode(t *testing.T) {
	ttesting.AssertEqualInt(t, "nil is ok", Code(nil), CodeOK)
}
