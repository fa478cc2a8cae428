package fontatlas

// GlyphMetadata locates one glyph in the atlas. All lengths are normalized
// to the unit interval: x_min and y_min by the atlas size, width, height and
// y_offset by the slot size.
type GlyphMetadata struct {
	CodePoint int

	// Row and Column are the glyph's grid cell.
	Row    int
	Column int

	Width  float32
	Height float32
	XMin   float32
	YMin   float32

	// YOffset moves the glyph box onto the baseline.
	YOffset float32
}

// spaceMetadata is the fixed entry for the space character: no ink, half a
// slot of advance.
var spaceMetadata = GlyphMetadata{
	CodePoint: SpaceCodePoint,
	Width:     0.5,
	Height:    1.0,
}

// BuildMetadata computes the metadata of every sampled glyph, plus the
// space character, which is always present.
//
// The glyph box spans the bitmap plus the full padding while the bitmap
// itself is drawn padding/2 into the slot, so the box is centered on the ink.
func BuildMetadata(table GlyphTable, spec AtlasSpec) map[int]GlyphMetadata {
	metadata := make(map[int]GlyphMetadata, len(table)+1)
	metadata[SpaceCodePoint] = spaceMetadata

	slot := float32(spec.SlotGlyphSize)
	padding := float32(spec.Padding)
	for c, g := range table {
		if c <= SpaceCodePoint || c > LastCodePoint {
			continue
		}
		row, column := spec.Slot(c)
		metadata[c] = GlyphMetadata{
			CodePoint: c,
			Row:       row,
			Column:    column,
			Width:     float32(g.Width+spec.Padding) / slot,
			Height:    float32(g.Rows+spec.Padding) / slot,
			XMin:      float32(column*spec.SlotGlyphSize) / float32(spec.Width),
			YMin:      float32(row*spec.SlotGlyphSize) / float32(spec.Height),
			YOffset:   -(padding - float32(g.YMin)) / slot,
		}
	}
	return metadata
}
