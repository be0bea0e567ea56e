package main

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/ChariotEngine/Slp/imageprint"
)

func out(img image.Image) {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (*rasterm || *iterm) {
				// Prefer native size if there's a chance we print an
				// actual image rather than character cells.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
			} else if termSize.WSCol != 0 && termSize.WSRow != 0 {
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow*2, img, resize.NearestNeighbor)
			}
		}
	}

	if *rasterm {
		imageprint.PrintRasTerm(img)
	} else if *iterm {
		imageprint.PrintITerm(img, "frame.png")
	} else if !*col {
		imageprint.PrintNoColor(img)
	} else if *col256 {
		imageprint.Print256Color(img, *blanks)
	} else {
		imageprint.Print24bit(img)
	}
}
