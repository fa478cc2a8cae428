package rasterizer

import (
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontatlas/internal/coverage"
)

// ximageRasterizer implements Rasterizer using golang.org/x/image/font/opentype.
type ximageRasterizer struct {
	font *opentype.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
	slot glyphSlot
}

// openXImage implements the "ximage" backend.
func openXImage(data []byte) (Rasterizer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rasterizer: failed to parse font: %w", err)
	}
	return &ximageRasterizer{font: f}, nil
}

// SetPixelHeight implements Rasterizer.SetPixelHeight.
func (x *ximageRasterizer) SetPixelHeight(px int) error {
	if err := checkPixelHeight(px); err != nil {
		return err
	}
	x.ppem = fixed.I(px)
	x.slot.reset()
	return nil
}

// LoadChar implements Rasterizer.LoadChar.
func (x *ximageRasterizer) LoadChar(r rune) error {
	if x.ppem == 0 {
		return ErrNoPixelSize
	}
	x.slot.reset()

	idx, err := x.font.GlyphIndex(&x.buf, r)
	if err != nil {
		return fmt.Errorf("rasterizer: glyph index for %U: %w", r, err)
	}
	segments, err := x.font.LoadGlyph(&x.buf, idx, x.ppem, nil)
	if err != nil {
		return fmt.Errorf("rasterizer: load glyph %d for %U: %w", idx, r, err)
	}

	// sfnt segments are 26.6 fixed point with y pointing down.
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x.slot.add(coverage.OpMoveTo, toPoint(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			x.slot.add(coverage.OpLineTo, toPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			x.slot.add(coverage.OpQuadTo, toPoint(seg.Args[0]), toPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			x.slot.add(coverage.OpCubicTo, toPoint(seg.Args[0]), toPoint(seg.Args[1]), toPoint(seg.Args[2]))
		}
	}
	x.slot.loaded = true
	return nil
}

// RenderGlyph implements Rasterizer.RenderGlyph.
func (x *ximageRasterizer) RenderGlyph() (Bitmap, error) {
	return x.slot.render()
}

// GlyphBounds implements Rasterizer.GlyphBounds.
func (x *ximageRasterizer) GlyphBounds() (Bounds, error) {
	return x.slot.bounds()
}

// FamilyName implements Namer.FamilyName.
func (x *ximageRasterizer) FamilyName() string {
	if name, err := x.font.Name(&x.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// toPoint converts a y-down 26.6 point to y-up pixels.
func toPoint(p fixed.Point26_6) coverage.Point {
	return coverage.Point{
		X: float32(p.X) / 64,
		Y: -float32(p.Y) / 64,
	}
}
