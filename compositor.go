package fontatlas

// Compose packs the sampled glyphs into an atlas image.
//
// Each glyph is drawn padding/2 pixels into its slot from the top-left
// corner. Pixels outside every glyph's ink box are transparent black, and
// ink pixels carry the coverage in all four channels, making a white mask.
// For a BottomLeft origin the finished buffer is flipped vertically.
func Compose(table GlyphTable, spec AtlasSpec) *AtlasImage {
	img := NewAtlasImage(spec.Width, spec.Height, spec.Origin)
	i := 0
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			v, ok := slotCoverage(table, spec, x, y)
			if ok {
				img.data[i+0] = v
				img.data[i+1] = v
				img.data[i+2] = v
				img.data[i+3] = v
			}
			i += 4
		}
	}

	if spec.Origin == BottomLeft {
		img.FlipVertical()
	}
	return img
}

// slotCoverage returns the coverage of the glyph covering atlas pixel
// (x, y) in top-left orientation, or false for padding, empty slots and
// pixels past the ink box.
func slotCoverage(table GlyphTable, spec AtlasSpec, x, y int) (byte, bool) {
	column := x / spec.SlotGlyphSize
	row := y / spec.SlotGlyphSize
	codePoint := row*spec.Columns + column + SpaceCodePoint
	if codePoint <= SpaceCodePoint || codePoint > LastCodePoint {
		return 0, false
	}
	g, ok := table[codePoint]
	if !ok {
		return 0, false
	}

	// padding/2 truncates for odd padding, matching existing atlases.
	half := spec.Padding / 2
	xLoc := x%spec.SlotGlyphSize - half
	yLoc := y%spec.SlotGlyphSize - half
	if !g.contains(xLoc, yLoc) {
		return 0, false
	}
	return g.coverage(xLoc, yLoc), true
}
