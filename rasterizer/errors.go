package rasterizer

import "errors"

// Sentinel errors for rasterizer package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("rasterizer: empty font data")

	// ErrUnknownBackend is returned by Open for an unregistered backend name.
	ErrUnknownBackend = errors.New("rasterizer: unknown backend")

	// ErrNoPixelSize is returned when a character is loaded before
	// SetPixelHeight succeeded.
	ErrNoPixelSize = errors.New("rasterizer: pixel height not set")

	// ErrNoGlyphLoaded is returned when rendering or measuring before LoadChar.
	ErrNoGlyphLoaded = errors.New("rasterizer: no glyph loaded")

	// ErrUnsupportedGlyph is returned for glyphs without a vector outline
	// (bitmap or SVG glyphs).
	ErrUnsupportedGlyph = errors.New("rasterizer: glyph has no outline")
)
