// slpprint decodes an SLP sprite container and prints diagnostics and
// terminal previews of its frames.
//
// With no rendering flags it reports the first frame's pixel buffer
// length, mirroring the message of the legacy C harness, plus the
// per-frame dimensions and hotspots.
package main

import (
	"flag"
	"fmt"
	"image/color"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"

	"github.com/ChariotEngine/Slp/palette"
	"github.com/ChariotEngine/Slp/paths"
	"github.com/ChariotEngine/Slp/slp"
)

var (
	player   = flag.Int("player", slp.DefaultPlayer, "player index to decode player-color commands against")
	frameIdx = flag.Int("frame", 0, "frame to render; -1 renders every frame")
	quiet    = flag.Bool("quiet", false, "suppress per-frame diagnostics")

	col      = flag.Bool("col", true, "whether to use color escape sequences at all")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with the terminal's raster protocol (kitty, iterm, sixel)")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to thumbnail frames down to the terminal size")
	render   = flag.Bool("render", false, "whether to render frames to the terminal")

	pngOut = flag.String("png", "", "write the selected frame as PNG to this path")
	gifOut = flag.String("gif", "", "write all frames as an animated GIF to this path")

	slpPath string
	palPath string
)

func setupFilePathFlags() {
	paths.SetupFilePathFlag("sample.slp", "slp_path", &slpPath)
	paths.SetupFilePathFlag("interface.pal", "pal_path", &palPath)
}

func main() {
	setupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	path := slpPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	f, err := slp.NewFromFile(path, uint8(*player))
	if err != nil {
		fail(err)
	}

	first := f.Frames[0]
	fmt.Printf("image_data_len: %d\n", first.Width()*first.Height())
	if !*quiet {
		fmt.Printf("version: %q\n", f.Header.Version[:])
		fmt.Printf("frames: %d\n", f.Header.FrameCount)
		for i, fr := range f.Frames {
			fmt.Printf("frame %d: %dx%d hotspot (%d,%d)\n", i, fr.Width(), fr.Height(), fr.Header.HotspotX, fr.Header.HotspotY)
		}
	}

	pal := loadPalette()

	if *pngOut != "" {
		idx := *frameIdx
		if idx < 0 {
			idx = 0
		}
		if idx >= len(f.Frames) {
			glog.Exitf("frame %d out of range, file has %d frames", idx, len(f.Frames))
		}
		if err := writePNG(*pngOut, f.Frames[idx], pal); err != nil {
			glog.Exitf("writing png: %v", err)
		}
	}
	if *gifOut != "" {
		if err := writeGIF(*gifOut, f.Frames, pal); err != nil {
			glog.Exitf("writing gif: %v", err)
		}
	}

	if *render {
		if *frameIdx < 0 {
			for _, fr := range f.Frames {
				out(fr.Image(pal))
			}
		} else if *frameIdx < len(f.Frames) {
			out(f.Frames[*frameIdx].Image(pal))
		} else {
			glog.Exitf("frame %d out of range, file has %d frames", *frameIdx, len(f.Frames))
		}
	}
}

func loadPalette() color.Palette {
	if palPath == "" {
		return palette.Fallback()
	}
	f, err := paths.NoFindOpen(palPath)
	if err != nil {
		glog.Errorf("opening palette %q: %v; using fallback", palPath, err)
		return palette.Fallback()
	}
	defer f.Close()
	pal, err := palette.Decode(f)
	if err != nil {
		glog.Errorf("parsing palette %q: %v; using fallback", palPath, err)
		return palette.Fallback()
	}
	return pal
}

// fail prints the legacy harness's message for the error's code and
// exits.
func fail(err error) {
	switch slp.Code(err) {
	case slp.CodeEmptyPath:
		glog.Exitf("'slp_path' was empty! (%v)", err)
	case slp.CodePathEncoding:
		glog.Exitf("'slp_path' contained non-utf8 characters! (%v)", err)
	case slp.CodeInvalidSLP:
		glog.Exitf("Invalid SLP! (%v)", err)
	case slp.CodeBadLength:
		glog.Exitf("SLP had a bad length (%v)", err)
	default:
		glog.Exitf("An unknown error occurred while decoding the SLP (%v)", err)
	}
}
