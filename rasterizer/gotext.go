package rasterizer

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/fontatlas/internal/coverage"
)

// gotextRasterizer implements Rasterizer using go-text/typesetting outlines.
//
// font.Face is not safe for concurrent use, which matches the single glyph
// slot contract of Rasterizer.
type gotextRasterizer struct {
	face  *font.Face
	scale float32
	slot  glyphSlot
}

// openGoText implements the "gotext" backend.
func openGoText(data []byte) (Rasterizer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("rasterizer: failed to parse font: %w", err)
	}
	if face.Upem() == 0 {
		return nil, fmt.Errorf("rasterizer: font has zero units per em")
	}
	return &gotextRasterizer{face: face}, nil
}

// SetPixelHeight implements Rasterizer.SetPixelHeight.
func (g *gotextRasterizer) SetPixelHeight(px int) error {
	if err := checkPixelHeight(px); err != nil {
		return err
	}
	g.scale = float32(px) / float32(g.face.Upem())
	g.slot.reset()
	return nil
}

// LoadChar implements Rasterizer.LoadChar.
func (g *gotextRasterizer) LoadChar(r rune) error {
	if g.scale == 0 {
		return ErrNoPixelSize
	}
	g.slot.reset()

	// A missing character maps to GID 0, the .notdef glyph.
	gid, _ := g.face.NominalGlyph(r)
	outline, ok := g.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return fmt.Errorf("%w: %U", ErrUnsupportedGlyph, r)
	}

	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			g.slot.add(coverage.OpMoveTo, toUnits(seg.Args[0]))
		case ot.SegmentOpLineTo:
			g.slot.add(coverage.OpLineTo, toUnits(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			g.slot.add(coverage.OpQuadTo, toUnits(seg.Args[0]), toUnits(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			g.slot.add(coverage.OpCubicTo, toUnits(seg.Args[0]), toUnits(seg.Args[1]), toUnits(seg.Args[2]))
		}
	}
	g.slot.outline.Scale(g.scale)
	g.slot.loaded = true
	return nil
}

// RenderGlyph implements Rasterizer.RenderGlyph.
func (g *gotextRasterizer) RenderGlyph() (Bitmap, error) {
	return g.slot.render()
}

// GlyphBounds implements Rasterizer.GlyphBounds.
func (g *gotextRasterizer) GlyphBounds() (Bounds, error) {
	return g.slot.bounds()
}

// toUnits converts a font-unit outline point, already y-up.
func toUnits(p ot.SegmentPoint) coverage.Point {
	return coverage.Point{X: p.X, Y: p.Y}
}
