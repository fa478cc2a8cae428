package fontatlas

import "fmt"

// Grid layout constants. A 16×16 grid has one slot per byte value; the
// slots for code points 0-32 stay empty.
const (
	GridColumns = 16
	GridRows    = 16

	// SpaceCodePoint is synthesized in the metadata and never rasterized.
	SpaceCodePoint = 32

	// FirstCodePoint and LastCodePoint bound the sampled range.
	FirstCodePoint = 33
	LastCodePoint  = 255
)

// MaxSlotGlyphSize bounds the slot size so that the atlas buffer size,
// 4*(16*slot)^2 bytes, stays representable.
const MaxSlotGlyphSize = 1 << 14

// AtlasSpec describes the dimensions of the atlas and of each glyph in it.
// Construct it with NewAtlasSpec.
type AtlasSpec struct {
	// Origin is the coordinate origin of the stored image.
	Origin Origin

	// Width and Height are the atlas size in pixels.
	Width  int
	Height int

	// Rows is the number of glyphs per column, Columns the number per row.
	Rows    int
	Columns int

	// Padding is the number of pixels in each slot reserved for outlines.
	Padding int

	// SlotGlyphSize is the size of one grid slot in pixels, padding included.
	SlotGlyphSize int

	// GlyphSize is the raster height of a glyph: SlotGlyphSize - Padding.
	GlyphSize int
}

// NewAtlasSpec derives the atlas geometry for a 16×16 grid of
// slotGlyphSize pixel slots.
func NewAtlasSpec(origin Origin, slotGlyphSize, padding int) (AtlasSpec, error) {
	if slotGlyphSize <= 0 {
		return AtlasSpec{}, &ConfigError{Field: "slot glyph size", Value: slotGlyphSize, Reason: "must be greater than zero"}
	}
	if slotGlyphSize > MaxSlotGlyphSize {
		return AtlasSpec{}, &ConfigError{
			Field:  "slot glyph size",
			Value:  slotGlyphSize,
			Reason: fmt.Sprintf("must not exceed %d pixels", MaxSlotGlyphSize),
		}
	}
	if padding < 0 {
		return AtlasSpec{}, &ConfigError{Field: "padding", Value: padding, Reason: "must be non-negative"}
	}
	if padding > slotGlyphSize {
		return AtlasSpec{}, &ConfigError{
			Field:  "padding",
			Value:  padding,
			Reason: fmt.Sprintf("is larger than the glyph slot size (%d pixels)", slotGlyphSize),
		}
	}
	return AtlasSpec{
		Origin:        origin,
		Width:         GridColumns * slotGlyphSize,
		Height:        GridRows * slotGlyphSize,
		Rows:          GridRows,
		Columns:       GridColumns,
		Padding:       padding,
		SlotGlyphSize: slotGlyphSize,
		GlyphSize:     slotGlyphSize - padding,
	}, nil
}

// Validate checks the invariants between the spec's fields.
func (s AtlasSpec) Validate() error {
	switch {
	case s.Origin != BottomLeft && s.Origin != TopLeft:
		return &ConfigError{Field: "origin", Value: s.Origin, Reason: "unknown origin"}
	case s.SlotGlyphSize <= 0:
		return &ConfigError{Field: "slot glyph size", Value: s.SlotGlyphSize, Reason: "must be greater than zero"}
	case s.SlotGlyphSize > MaxSlotGlyphSize:
		return &ConfigError{Field: "slot glyph size", Value: s.SlotGlyphSize, Reason: fmt.Sprintf("must not exceed %d pixels", MaxSlotGlyphSize)}
	case s.Rows != GridRows || s.Columns != GridColumns:
		return &ConfigError{Field: "grid", Value: [2]int{s.Columns, s.Rows}, Reason: "must be 16x16"}
	case s.Padding < 0 || s.Padding > s.SlotGlyphSize:
		return &ConfigError{Field: "padding", Value: s.Padding, Reason: "must be between zero and the glyph slot size"}
	case s.Width != s.Columns*s.SlotGlyphSize || s.Height != s.Rows*s.SlotGlyphSize:
		return &ConfigError{Field: "atlas size", Value: [2]int{s.Width, s.Height}, Reason: "must be the grid size times the slot size"}
	case s.GlyphSize != s.SlotGlyphSize-s.Padding:
		return &ConfigError{Field: "glyph size", Value: s.GlyphSize, Reason: "must be the slot size minus the padding"}
	}
	return nil
}

// Slot returns the grid cell of a code point: its order after the space
// character, laid out row-major.
func (s AtlasSpec) Slot(codePoint int) (row, column int) {
	order := codePoint - SpaceCodePoint
	return order / s.Columns, order % s.Columns
}
