package fontatlas

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/fontatlas/rasterizer"
)

var errBoom = errors.New("boom")

// fakeRasterizer renders every glyph as a solid block filled with the low
// byte of its rune. Like a real glyph slot it keeps one buffer and
// overwrites it on every render.
type fakeRasterizer struct {
	px     int
	cur    rune
	loaded bool
	buf    []byte
	calls  []string
	runes  []rune

	// padPitch is added to every row's width to exercise pitch > width.
	padPitch int

	// failStage/failAt inject an error at one stage; failAt < 0 disables it.
	failStage Stage
	failAt    rune

	// badBitmap makes RenderGlyph report a pitch smaller than the width.
	badBitmap bool

	name string
}

func newFake() *fakeRasterizer {
	return &fakeRasterizer{buf: make([]byte, 0, 4096), failAt: -1}
}

// fakeDims returns the deterministic bitmap size and bearing used for r.
func fakeDims(r rune) (w, h int, yMin int64) {
	return 1 + int(r)%5, 2 + int(r)%7, -(int64(r) % 3)
}

func (f *fakeRasterizer) fail(stage Stage) bool {
	return f.failStage == stage && (stage == StageSetPixelSize || f.cur == f.failAt) && f.failAt >= 0
}

func (f *fakeRasterizer) SetPixelHeight(px int) error {
	f.calls = append(f.calls, fmt.Sprintf("size %d", px))
	if f.fail(StageSetPixelSize) {
		return errBoom
	}
	f.px = px
	return nil
}

func (f *fakeRasterizer) LoadChar(r rune) error {
	f.calls = append(f.calls, fmt.Sprintf("load %d", r))
	f.runes = append(f.runes, r)
	f.cur = r
	f.loaded = false
	if f.fail(StageLoadChar) {
		return errBoom
	}
	f.loaded = true
	return nil
}

func (f *fakeRasterizer) RenderGlyph() (rasterizer.Bitmap, error) {
	f.calls = append(f.calls, fmt.Sprintf("render %d", f.cur))
	if !f.loaded {
		return rasterizer.Bitmap{}, rasterizer.ErrNoGlyphLoaded
	}
	if f.fail(StageRenderGlyph) {
		return rasterizer.Bitmap{}, errBoom
	}
	w, h, _ := fakeDims(f.cur)
	pitch := w + f.padPitch
	f.buf = f.buf[:h*pitch]
	for i := range f.buf {
		f.buf[i] = byte(f.cur)
	}
	if f.badBitmap {
		pitch = w - 1
	}
	return rasterizer.Bitmap{Rows: h, Width: w, Pitch: pitch, Buffer: f.buf}, nil
}

func (f *fakeRasterizer) GlyphBounds() (rasterizer.Bounds, error) {
	f.calls = append(f.calls, fmt.Sprintf("bounds %d", f.cur))
	if f.fail(StageGlyphBounds) {
		return rasterizer.Bounds{}, errBoom
	}
	w, h, yMin := fakeDims(f.cur)
	return rasterizer.Bounds{XMax: int64(w), YMin: yMin, YMax: yMin + int64(h)}, nil
}

// namedFake adds a family name to fakeRasterizer.
type namedFake struct {
	*fakeRasterizer
}

func (n namedFake) FamilyName() string { return n.name }

func mustSpec(t testing.TB, origin Origin, slot, padding int) AtlasSpec {
	t.Helper()
	spec, err := NewAtlasSpec(origin, slot, padding)
	if err != nil {
		t.Fatalf("NewAtlasSpec(%v, %d, %d) failed: %v", origin, slot, padding, err)
	}
	return spec
}
