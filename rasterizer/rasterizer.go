package rasterizer

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/fontatlas/internal/coverage"
)

// Bitmap is a rendered coverage bitmap.
//
// Buffer holds Rows rows of Pitch bytes each, one coverage byte per pixel.
// It aliases the rasterizer's internal storage and is only valid until the
// next call on the rasterizer that produced it.
type Bitmap struct {
	Rows   int
	Width  int
	Pitch  int
	Buffer []byte
}

// Bounds is a glyph's control box in whole pixels, y pointing up from the
// baseline. Coordinates are truncated toward negative infinity.
type Bounds struct {
	XMin, YMin, XMax, YMax int64
}

// Rasterizer renders glyphs of one font, one character at a time.
//
// Implementations are stateful and not safe for concurrent use.
type Rasterizer interface {
	// SetPixelHeight sets the target raster height (pixels per em).
	// The width scales proportionally.
	SetPixelHeight(px int) error

	// LoadChar loads the glyph mapped to r. Characters missing from the
	// font load the font's .notdef glyph.
	LoadChar(r rune) error

	// RenderGlyph renders the loaded glyph. The returned bitmap is
	// invalidated by the next call on the rasterizer.
	RenderGlyph() (Bitmap, error)

	// GlyphBounds returns the control box of the loaded glyph.
	GlyphBounds() (Bounds, error)
}

// Namer is implemented by rasterizers that can report the font family name.
type Namer interface {
	FamilyName() string
}

// Backend creates rasterizers from raw font data (TTF or OTF).
type Backend interface {
	Open(data []byte) (Rasterizer, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(data []byte) (Rasterizer, error)

// Open implements Backend.Open.
func (f BackendFunc) Open(data []byte) (Rasterizer, error) {
	return f(data)
}

// MaxPixelHeight is the largest pixel height a backend accepts: its 26.6
// fixed-point value still fits in an int32.
const MaxPixelHeight = math.MaxInt32 >> 6

// checkPixelHeight validates a SetPixelHeight argument.
func checkPixelHeight(px int) error {
	if px <= 0 || px > MaxPixelHeight {
		return fmt.Errorf("rasterizer: invalid pixel height %d", px)
	}
	return nil
}

// DefaultBackend is the name of the backend used when none is selected.
const DefaultBackend = "ximage"

// backendRegistry holds registered backends.
var backendRegistry = map[string]Backend{
	"ximage": BackendFunc(openXImage),
	"gotext": BackendFunc(openGoText),
}

// RegisterBackend registers a custom backend under name, replacing any
// backend previously registered under the same name.
func RegisterBackend(name string, b Backend) {
	backendRegistry[name] = b
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backendRegistry))
	for name := range backendRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Open parses data with the named backend. An empty name selects
// DefaultBackend.
func Open(name string, data []byte) (Rasterizer, error) {
	if name == "" {
		name = DefaultBackend
	}
	b, ok := backendRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return b.Open(data)
}

// glyphSlot holds the single loaded outline and rendered mask shared by the
// built-in backends.
type glyphSlot struct {
	outline coverage.Outline
	filler  coverage.Filler
	loaded  bool
}

// reset empties the slot's outline for the next character.
func (s *glyphSlot) reset() {
	s.outline.Segments = s.outline.Segments[:0]
	s.loaded = false
}

// add appends one segment to the slot's outline.
func (s *glyphSlot) add(op coverage.Op, pts ...coverage.Point) {
	seg := coverage.Segment{Op: op}
	copy(seg.Points[:], pts)
	s.outline.Segments = append(s.outline.Segments, seg)
}

func (s *glyphSlot) render() (Bitmap, error) {
	if !s.loaded {
		return Bitmap{}, ErrNoGlyphLoaded
	}
	mask := s.filler.Fill(&s.outline)
	size := mask.Bounds().Size()
	return Bitmap{
		Rows:   size.Y,
		Width:  size.X,
		Pitch:  mask.Stride,
		Buffer: mask.Pix,
	}, nil
}

func (s *glyphSlot) bounds() (Bounds, error) {
	if !s.loaded {
		return Bounds{}, ErrNoGlyphLoaded
	}
	minX, minY, maxX, maxY := s.outline.ControlBox()
	return Bounds{
		XMin: int64(math.Floor(float64(minX))),
		YMin: int64(math.Floor(float64(minY))),
		XMax: int64(math.Floor(float64(maxX))),
		YMax: int64(math.Floor(float64(maxY))),
	}, nil
}
