package fontatlas

import (
	"fmt"

	"github.com/gogpu/fontatlas/rasterizer"
)

// Sample rasterizes every code point in [FirstCodePoint, LastCodePoint] at
// spec.GlyphSize pixels and returns the owned glyph records.
//
// The rasterizer overwrites its bitmap on every call, so each bitmap is
// copied into the table before the next code point is loaded. The first
// failure aborts sampling with a *SampleError; no partial table is returned.
func Sample(r rasterizer.Rasterizer, spec AtlasSpec, opts ...Option) (GlyphTable, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	log := Logger()

	if err := r.SetPixelHeight(spec.GlyphSize); err != nil {
		return nil, &SampleError{Stage: StageSetPixelSize, PixelSize: spec.GlyphSize, Err: err}
	}
	log.Debug("fontatlas: pixel size set", "glyph_size", spec.GlyphSize, "charset", o.charset.Name())

	table := make(GlyphTable, LastCodePoint-FirstCodePoint+1)
	for c := FirstCodePoint; c <= LastCodePoint; c++ {
		rec, err := sampleGlyph(r, c, o.charset.Rune(c))
		if err != nil {
			err.PixelSize = spec.GlyphSize
			return nil, err
		}
		table[c] = rec
		log.Debug("fontatlas: glyph sampled",
			"code_point", c, "width", rec.Width, "rows", rec.Rows, "pitch", rec.Pitch, "y_min", rec.YMin)
	}
	return table, nil
}

// sampleGlyph loads, renders, copies and measures a single glyph.
func sampleGlyph(r rasterizer.Rasterizer, codePoint int, ch rune) (GlyphRecord, *SampleError) {
	if err := r.LoadChar(ch); err != nil {
		return GlyphRecord{}, &SampleError{Stage: StageLoadChar, CodePoint: codePoint, Err: err}
	}

	bm, err := r.RenderGlyph()
	if err != nil {
		return GlyphRecord{}, &SampleError{Stage: StageRenderGlyph, CodePoint: codePoint, Err: err}
	}
	if err := checkBitmap(bm); err != nil {
		return GlyphRecord{}, &SampleError{Stage: StageRenderGlyph, CodePoint: codePoint, Err: err}
	}

	// bm.Buffer is invalidated by the next rasterizer call.
	data := make([]byte, bm.Rows*bm.Pitch)
	copy(data, bm.Buffer)

	b, err := r.GlyphBounds()
	if err != nil {
		return GlyphRecord{}, &SampleError{Stage: StageGlyphBounds, CodePoint: codePoint, Err: err}
	}

	return GlyphRecord{
		Rows:   bm.Rows,
		Width:  bm.Width,
		Pitch:  bm.Pitch,
		YMin:   b.YMin,
		Bitmap: data,
	}, nil
}

func checkBitmap(bm rasterizer.Bitmap) error {
	if bm.Rows < 0 || bm.Width < 0 || bm.Pitch < bm.Width {
		return fmt.Errorf("%w: %dx%d with pitch %d", ErrInvalidBitmap, bm.Width, bm.Rows, bm.Pitch)
	}
	if len(bm.Buffer) < bm.Rows*bm.Pitch {
		return fmt.Errorf("%w: %d bytes for %d rows of %d", ErrInvalidBitmap, len(bm.Buffer), bm.Rows, bm.Pitch)
	}
	return nil
}
