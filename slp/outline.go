package slp

// transparentRow in either outline field marks a row with no pixel data
// at all; the command table entry for such a row is meaningless.
const transparentRow = 0x8000

// outlineEntry gives the number of transparent pixels omitted from the
// command stream at each edge of one row. The format stores only the
// span between them, which is its primary compression mechanism.
type outlineEntry struct {
	Left, Right uint16
}

func (e outlineEntry) transparent() bool {
	return e.Left == transparentRow || e.Right == transparentRow
}

func readOutline(r *byteReader, tableOff uint32, row uint32) (outlineEntry, error) {
	var e outlineEntry
	off := int64(tableOff) + int64(row)*4

	var err error
	if e.Left, err = r.u16(off); err != nil {
		return e, err
	}
	if e.Right, err = r.u16(off + 2); err != nil {
		return e, err
	}
	return e, nil
}
