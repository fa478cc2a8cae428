package fontatlas

import (
	"errors"
	"fmt"
)

// ErrInvalidBitmap is returned when a rasterizer reports a bitmap whose
// dimensions do not describe its buffer.
var ErrInvalidBitmap = errors.New("fontatlas: invalid glyph bitmap")

// ConfigError represents a configuration validation error.
// It is always returned before any glyph is rasterized.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fontatlas: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Stage identifies the rasterization step that failed.
type Stage uint8

const (
	// StageSetPixelSize is the configuration of the raster height.
	StageSetPixelSize Stage = iota

	// StageLoadChar is the lookup and loading of a character's glyph.
	StageLoadChar

	// StageRenderGlyph is the rendering of the coverage bitmap.
	StageRenderGlyph

	// StageGlyphBounds is the bounding box query.
	StageGlyphBounds
)

// String returns a string representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageSetPixelSize:
		return "set-pixel-size"
	case StageLoadChar:
		return "load-char"
	case StageRenderGlyph:
		return "render-glyph"
	case StageGlyphBounds:
		return "glyph-bounds"
	default:
		return "unknown"
	}
}

// SampleError is returned when the rasterizer fails while sampling glyphs.
// Sampling stops at the first failure.
type SampleError struct {
	Stage Stage

	// CodePoint is the atlas code point being sampled. It is zero for
	// StageSetPixelSize.
	CodePoint int

	// PixelSize is the requested raster height.
	PixelSize int

	Err error
}

func (e *SampleError) Error() string {
	var msg string
	switch e.Stage {
	case StageSetPixelSize:
		msg = fmt.Sprintf("fontatlas: failed to set the glyph size to %d pixels", e.PixelSize)
	case StageLoadChar:
		msg = fmt.Sprintf("fontatlas: failed to load the character with code point %d", e.CodePoint)
	case StageRenderGlyph:
		msg = fmt.Sprintf("fontatlas: could not render the code point %d", e.CodePoint)
	case StageGlyphBounds:
		msg = fmt.Sprintf("fontatlas: could not extract the glyph bounds for the code point %d", e.CodePoint)
	default:
		msg = fmt.Sprintf("fontatlas: sampling failed at code point %d", e.CodePoint)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SampleError) Unwrap() error {
	return e.Err
}
