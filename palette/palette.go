// Package palette loads the color tables SLP frames are rendered with.
//
// SLP files carry palette indices only; the matching palettes ship
// separately as JASC-PAL text files. This package reads those, exposes
// a built-in preview palette for when no real one is at hand, and holds
// the conventions for the player-color blocks and the shadow shade.
package palette

import (
	"bufio"
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/ChariotEngine/Slp/datafiles"
)

// Shadow is the fixed translucent shade shadow-tagged pixels resolve
// to. It is not part of any palette.
var Shadow = color.RGBA{R: 0, G: 0, B: 0, A: 128}

// PlayerBase returns the first index of the palette block reserved for
// the given player's team color. The decoder emits player-color pixels
// relative to this base.
func PlayerBase(player uint8) uint8 {
	return player * 16
}

// Decode reads a JASC-PAL formatted palette: the "JASC-PAL" magic line,
// the "0100" version line, an entry count, then one "R G B" line per
// entry.
func Decode(r io.Reader) (color.Palette, error) {
	sc := bufio.NewScanner(r)
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	magic, err := next()
	if err != nil {
		return nil, errors.Wrap(err, "reading palette magic")
	}
	if magic != "JASC-PAL" {
		return nil, fmt.Errorf("palette: bad magic %q, want %q", magic, "JASC-PAL")
	}
	version, err := next()
	if err != nil {
		return nil, errors.Wrap(err, "reading palette version")
	}
	if version != "0100" {
		return nil, fmt.Errorf("palette: unsupported version %q", version)
	}
	countLine, err := next()
	if err != nil {
		return nil, errors.Wrap(err, "reading palette entry count")
	}
	count, err := strconv.Atoi(countLine)
	if err != nil || count < 1 || count > 256 {
		return nil, fmt.Errorf("palette: bad entry count %q", countLine)
	}

	pal := make(color.Palette, count)
	for i := range pal {
		line, err := next()
		if err != nil {
			return nil, errors.Wrapf(err, "reading palette entry %d", i)
		}
		var cr, cg, cb uint8
		if _, err := fmt.Sscanf(line, "%d %d %d", &cr, &cg, &cb); err != nil {
			return nil, errors.Wrapf(err, "parsing palette entry %d %q", i, line)
		}
		pal[i] = color.RGBA{R: cr, G: cg, B: cb, A: 0xFF}
	}
	return pal, nil
}

var (
	fallbackOnce sync.Once
	fallback     color.Palette
)

// Fallback returns the built-in 256-entry preview palette: a grayscale
// ramp with tinted player blocks. It stands in when the real palette
// shipped with the game assets is not available; it makes sprites
// recognizable, not color-accurate.
func Fallback() color.Palette {
	fallbackOnce.Do(func() {
		pal, err := Decode(bytes.NewReader(datafiles.FallbackPal))
		if err != nil {
			panic("palette: embedded fallback palette: " + err.Error())
		}
		fallback = pal
	})
	return fallback
}
