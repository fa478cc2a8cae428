// Package rasterizer turns the glyphs of a scalable font into 8-bit
// anti-aliased coverage bitmaps.
//
// A [Rasterizer] behaves like a single glyph slot: the caller configures a
// pixel height, loads one character at a time, renders it and queries its
// bounding box. The slot owns one bitmap buffer that is overwritten by the
// next call, so callers that keep bitmaps must copy them out first.
//
// # Backends
//
// Rasterizers are created by named backends:
//
//   - "ximage" (default): outlines from golang.org/x/image/font/opentype
//   - "gotext": outlines from github.com/go-text/typesetting
//
// Both fill outlines with golang.org/x/image/vector. Custom backends can be
// registered:
//
//	rasterizer.RegisterBackend("mybackend", myBackend)
//	r, err := rasterizer.Open("mybackend", fontData)
package rasterizer
