package fontatlas

// GlyphRecord holds the sampled bitmap and metrics of one glyph.
type GlyphRecord struct {
	// Rows is the bitmap height in pixels.
	Rows int

	// Width is the bitmap width in pixels.
	Width int

	// Pitch is the number of bytes per bitmap row. It is at least Width.
	Pitch int

	// YMin is the bottom of the glyph's box relative to the baseline, in
	// whole pixels. Descenders make it negative.
	YMin int64

	// Bitmap is the glyph's own copy of the coverage bitmap, Rows*Pitch bytes.
	Bitmap []byte
}

// coverage returns the coverage byte at (x, y) of the glyph's ink box.
// Rows are addressed by Width, the layout atlas readers expect.
func (g *GlyphRecord) coverage(x, y int) byte {
	i := y*g.Width + x
	if i >= len(g.Bitmap) {
		return 0
	}
	return g.Bitmap[i]
}

// contains reports whether (x, y) lies inside the glyph's ink box.
func (g *GlyphRecord) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Rows
}

// GlyphTable maps code points in [FirstCodePoint, LastCodePoint] to their
// sampled glyphs.
type GlyphTable map[int]GlyphRecord
