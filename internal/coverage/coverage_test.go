package coverage

import (
	"image"
	"testing"
)

func square(x0, y0, x1, y1 float32) *Outline {
	return &Outline{Segments: []Segment{
		{Op: OpMoveTo, Points: [3]Point{{X: x0, Y: y0}}},
		{Op: OpLineTo, Points: [3]Point{{X: x1, Y: y0}}},
		{Op: OpLineTo, Points: [3]Point{{X: x1, Y: y1}}},
		{Op: OpLineTo, Points: [3]Point{{X: x0, Y: y1}}},
	}}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpMoveTo, "MoveTo"},
		{OpLineTo, "LineTo"},
		{OpQuadTo, "QuadTo"},
		{OpCubicTo, "CubicTo"},
		{Op(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestControlBox(t *testing.T) {
	o := &Outline{Segments: []Segment{
		{Op: OpMoveTo, Points: [3]Point{{X: 1, Y: -2}}},
		{Op: OpQuadTo, Points: [3]Point{{X: 5, Y: 7}, {X: 3, Y: 0}}},
		{Op: OpLineTo, Points: [3]Point{{X: 1, Y: -2}, {X: 100, Y: 100}}},
	}}
	minX, minY, maxX, maxY := o.ControlBox()
	if minX != 1 || minY != -2 || maxX != 5 || maxY != 7 {
		t.Errorf("ControlBox() = (%v,%v,%v,%v), want (1,-2,5,7)", minX, minY, maxX, maxY)
	}

	var empty Outline
	if a, b, c, d := empty.ControlBox(); a != 0 || b != 0 || c != 0 || d != 0 {
		t.Errorf("empty ControlBox() = (%v,%v,%v,%v), want zeros", a, b, c, d)
	}
}

func TestScale(t *testing.T) {
	o := square(0, 0, 2, 3).Scale(2)
	_, _, maxX, maxY := o.ControlBox()
	if maxX != 4 || maxY != 6 {
		t.Errorf("scaled max = (%v,%v), want (4,6)", maxX, maxY)
	}
	var nilOutline *Outline
	if nilOutline.Scale(3) != nil {
		t.Error("Scale on nil outline should return nil")
	}
}

func TestFillSquare(t *testing.T) {
	var f Filler
	mask := f.Fill(square(0, -1, 4, 3))

	if mask.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("mask bounds = %v, want 4x4 at origin", mask.Bounds())
	}
	if mask.Stride != 4 {
		t.Errorf("Stride = %d, want 4", mask.Stride)
	}
	for i, v := range mask.Pix {
		if v < 0xfe {
			t.Errorf("Pix[%d] = %d, want fully covered", i, v)
		}
	}
}

func TestFillHalfCoverage(t *testing.T) {
	var f Filler
	mask := f.Fill(square(0, 0, 2.5, 1))
	if mask.Bounds().Dx() != 3 {
		t.Fatalf("width = %d, want 3", mask.Bounds().Dx())
	}
	edge := mask.Pix[2]
	if edge < 0x70 || edge > 0x90 {
		t.Errorf("half-covered pixel = %d, want about 128", edge)
	}
}

func TestFillReusesMask(t *testing.T) {
	var f Filler
	first := f.Fill(square(0, 0, 8, 8))
	second := f.Fill(square(0, 0, 2, 2))
	if first != second {
		t.Fatal("Fill should return the same mask on every call")
	}
	if len(second.Pix) != 4 {
		t.Errorf("len(Pix) = %d, want 4", len(second.Pix))
	}
}

func TestFillEmpty(t *testing.T) {
	var f Filler
	mask := f.Fill(&Outline{})
	if !mask.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", mask.Bounds())
	}
	if len(mask.Pix) != 0 || mask.Stride != 0 {
		t.Errorf("empty mask has %d bytes, stride %d", len(mask.Pix), mask.Stride)
	}
}

func TestFillOrientation(t *testing.T) {
	var f Filler
	// A y-up triangle with its wide edge on top.
	mask := f.Fill(&Outline{Segments: []Segment{
		{Op: OpMoveTo, Points: [3]Point{{X: 0, Y: 4}}},
		{Op: OpLineTo, Points: [3]Point{{X: 4, Y: 4}}},
		{Op: OpLineTo, Points: [3]Point{{X: 2, Y: 0}}},
	}})
	if mask.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("mask bounds = %v", mask.Bounds())
	}
	top, bottom := mask.AlphaAt(0, 0).A, mask.AlphaAt(0, 3).A
	if top <= bottom {
		t.Errorf("corner coverage top %d, bottom %d: want row 0 at the top", top, bottom)
	}
}
