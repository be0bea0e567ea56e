package slp

import (
	"bytes"
	"fmt"
)

// ExampleDecodeAll decodes a one-pixel SLP file held in memory and
// prints the first frame's dimensions and buffer length.
func ExampleDecodeAll() {
	f, err := DecodeAll(bytes.NewReader(onePixelFixture()), 2)
	if err != nil {
		fmt.Printf("failed to decode slp: %s", err)
		return
	}

	frame := f.Frames[0]
	fmt.Printf("image: %dx%d\n", frame.Width(), frame.Height())
	fmt.Printf("image_data_len: %d\n", len(frame.Pixels))
	// Output:
	// image: 1x1
	// image_data_len: 1
}
