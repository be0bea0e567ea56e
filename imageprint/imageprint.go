// Package imageprint prints decoded sprite frames on the terminal.
// UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/gookit/color"
)

// opaque reports whether the pixel should be drawn at all. Sprite
// frames are mostly transparent border, which stays as bare terminal
// background.
func opaque(c ic.Color) bool {
	_, _, _, a := c.RGBA()
	return a > 0
}

// Print24bit draws an image two rows per terminal line with half-block
// characters, changing the foreground for the upper and the background
// for the lower pixel.
func Print24bit(i image.Image) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			up := i.At(x, y)
			lo := ic.Color(ic.RGBA{})
			if y+1 < b.Max.Y {
				lo = i.At(x, y+1)
			}
			switch {
			case opaque(up) && opaque(lo):
				ur, ug, ub, _ := up.RGBA()
				lr, lg, lb, _ := lo.RGBA()
				fmt.Printf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
					uint8(ur>>8), uint8(ug>>8), uint8(ub>>8),
					uint8(lr>>8), uint8(lg>>8), uint8(lb>>8))
			case opaque(up):
				ur, ug, ub, _ := up.RGBA()
				fmt.Printf("\x1b[38;2;%d;%d;%dm▀\x1b[0m", uint8(ur>>8), uint8(ug>>8), uint8(ub>>8))
			case opaque(lo):
				lr, lg, lb, _ := lo.RGBA()
				fmt.Printf("\x1b[38;2;%d;%d;%dm▄\x1b[0m", uint8(lr>>8), uint8(lg>>8), uint8(lb>>8))
			default:
				fmt.Printf(" ")
			}
		}
		fmt.Printf("\n")
	}
}

// Print256Color draws an image one pixel per double-width cell, letting
// gookit map each color onto the 256-color cube.
func Print256Color(i image.Image, blanks bool) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := i.At(x, y)
			if !opaque(c) {
				fmt.Printf("  ")
				continue
			}
			cr, cg, cb, _ := c.RGBA()
			d := color.RGB(uint8(cr>>8), uint8(cg>>8), uint8(cb>>8), true)
			if blanks {
				d.Printf("  ")
			} else {
				d.Printf("%s", shadeGlyph(cr, cg, cb))
			}
		}
		fmt.Printf("\x1b[0m\n")
	}
}

// PrintNoColor draws an image as plain ascii art, for terminals and
// logs that take no escape sequences.
func PrintNoColor(i image.Image) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := i.At(x, y)
			if !opaque(c) {
				fmt.Printf("  ")
				continue
			}
			cr, cg, cb, _ := c.RGBA()
			fmt.Printf("%s", shadeGlyph(cr, cg, cb))
		}
		fmt.Printf("\n")
	}
}

func shadeGlyph(cr, cg, cb uint32) string {
	switch a := ((cr + cg + cb) / 3) >> 8; {
	case a < 32:
		return ".."
	case a < 64:
		return "--"
	case a < 128:
		return "=="
	default:
		return "##"
	}
}

// PrintRasTerm draws an image with the terminal's native raster
// protocol: kitty, iTerm/WezTerm, or sixel with a median-cut quantize
// pass for the sixel palette.
func PrintRasTerm(i image.Image) {
	if rasterm.IsTermKitty() {
		rasterm.Settings{}.KittyWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return
	}
	if rasterm.IsTermItermWez() {
		rasterm.Settings{}.ItermWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.Point{})

		rasterm.Settings{}.SixelWriteImage(os.Stdout, palettedImage)
		fmt.Printf("\n")
		return
	}
}

// PrintITerm draws an image using iTerm2's inline image escape
// sequence.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(i image.Image, fn string) {
	if !rasterm.IsTermItermWez() {
		return
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, i)
	bEnc.Close()
	fmt.Printf("\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
}
