// Package datafiles carries the data files embedded into the binary.
package datafiles

import _ "embed"

// FallbackPal is the JASC-PAL source of palette.Fallback.
//
//go:embed fallback.pal
var FallbackPal []byte
