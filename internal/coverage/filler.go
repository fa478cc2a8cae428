package coverage

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Filler rasterizes outlines into a single mask that it owns.
// Every call to Fill overwrites the mask returned by the previous call.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	rast vector.Rasterizer
	mask image.Alpha
}

// Fill rasterizes o with non-zero winding into the filler's mask.
//
// The mask covers the outline's control box rounded out to whole pixels,
// with row 0 at the top. It always starts at (0, 0) and has Stride equal to
// its width.
func (f *Filler) Fill(o *Outline) *image.Alpha {
	minX, minY, maxX, maxY := o.ControlBox()
	dr := image.Rect(
		int(math.Floor(float64(minX))),
		int(math.Floor(float64(-maxY))),
		int(math.Ceil(float64(maxX))),
		int(math.Ceil(float64(-minY))),
	)
	w, h := dr.Dx(), dr.Dy()
	f.resize(w, h)
	if w == 0 || h == 0 {
		return &f.mask
	}

	ox, oy := float32(dr.Min.X), float32(dr.Min.Y)
	tx := func(p Point) (float32, float32) { return p.X - ox, -p.Y - oy }

	f.rast.Reset(w, h)
	f.rast.DrawOp = draw.Src
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case OpMoveTo:
			if open {
				f.rast.ClosePath()
			}
			f.rast.MoveTo(tx(seg.Points[0]))
			open = true
		case OpLineTo:
			f.rast.LineTo(tx(seg.Points[0]))
		case OpQuadTo:
			bx, by := tx(seg.Points[0])
			cx, cy := tx(seg.Points[1])
			f.rast.QuadTo(bx, by, cx, cy)
		case OpCubicTo:
			bx, by := tx(seg.Points[0])
			cx, cy := tx(seg.Points[1])
			dx, dy := tx(seg.Points[2])
			f.rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		f.rast.ClosePath()
	}
	f.rast.Draw(&f.mask, f.mask.Bounds(), image.Opaque, image.Point{})
	return &f.mask
}

// resize prepares the mask for a w×h glyph, reusing its pixel storage.
func (f *Filler) resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	n := w * h
	if cap(f.mask.Pix) < n {
		f.mask.Pix = make([]uint8, n)
	}
	f.mask.Pix = f.mask.Pix[:n]
	clear(f.mask.Pix)
	f.mask.Stride = w
	f.mask.Rect = image.Rect(0, 0, w, h)
}
