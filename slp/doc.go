// Package slp implements a reader for the SLP sprite container format
// used by the Genie engine family of games.
//
// An SLP file holds one or more frames of palette-indexed raster data,
// compressed per scanline with an outline table and a small drawing
// command language. The decoder produces raw palette indices together
// with per-pixel draw tags; resolving player colors and shadows into
// RGBA is left to the renderer. See Frame.Image for a convenience
// resolver.
package slp
