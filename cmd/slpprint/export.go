package main

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"

	"github.com/andybons/gogif"
	"github.com/pkg/errors"

	"github.com/ChariotEngine/Slp/slp"
)

func writePNG(path string, frame *slp.Frame, pal color.Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating png")
	}
	defer f.Close()
	return png.Encode(f, frame.Image(pal))
}

// writeGIF encodes every frame of the file into an animated GIF, with
// a median-cut quantize pass per frame since the resolved frames carry
// translucent shadow pixels an image/gif palette cannot hold directly.
func writeGIF(path string, frames []*slp.Frame, pal color.Palette) error {
	g := &gif.GIF{}
	quantizer := gogif.MedianCutQuantizer{NumColor: 256}
	for _, fr := range frames {
		img := fr.Image(pal)
		p := image.NewPaletted(img.Bounds(), nil)
		quantizer.Quantize(p, img.Bounds(), img, image.Point{})
		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, 10)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating gif")
	}
	defer f.Close()
	return gif.EncodeAll(f, g)
}
