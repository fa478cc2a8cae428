package fontatlas

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// AtlasImage is the atlas pixel buffer: 4 bytes (R, G, B, A) per pixel,
// row-major, stored in the orientation given by its origin.
type AtlasImage struct {
	width  int
	height int
	origin Origin
	data   []uint8
}

// NewAtlasImage creates a transparent black image with the given dimensions.
func NewAtlasImage(width, height int, origin Origin) *AtlasImage {
	return &AtlasImage{
		width:  width,
		height: height,
		origin: origin,
		data:   make([]uint8, width*height*4),
	}
}

// ImageFromNRGBA copies img into a new AtlasImage tagged with origin.
// Pixel bytes are taken as stored; no orientation change is applied.
func ImageFromNRGBA(img *image.NRGBA, origin Origin) *AtlasImage {
	b := img.Bounds()
	p := NewAtlasImage(b.Dx(), b.Dy(), origin)
	rowBytes := p.width * 4
	for y := 0; y < p.height; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(p.data[y*rowBytes:(y+1)*rowBytes], src[:rowBytes])
	}
	return p
}

// FromImage converts any image to an AtlasImage tagged with origin.
func FromImage(img image.Image, origin Origin) *AtlasImage {
	if n, ok := img.(*image.NRGBA); ok {
		return ImageFromNRGBA(n, origin)
	}
	b := img.Bounds()
	p := NewAtlasImage(b.Dx(), b.Dy(), origin)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := (y*p.width + x) * 4
			p.data[i+0] = c.R
			p.data[i+1] = c.G
			p.data[i+2] = c.B
			p.data[i+3] = c.A
		}
	}
	return p
}

// Width returns the width of the image.
func (p *AtlasImage) Width() int {
	return p.width
}

// Height returns the height of the image.
func (p *AtlasImage) Height() int {
	return p.height
}

// Origin returns the coordinate origin the image was stored for.
func (p *AtlasImage) Origin() Origin {
	return p.origin
}

// Data returns the raw pixel data (RGBA format).
func (p *AtlasImage) Data() []uint8 {
	return p.data
}

// FlipVertical swaps row i with row height-1-i for every row.
// Flipping twice restores the original buffer.
func (p *AtlasImage) FlipVertical() {
	rowBytes := p.width * 4
	for top, bottom := 0, p.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := p.data[top*rowBytes : (top+1)*rowBytes]
		b := p.data[bottom*rowBytes : (bottom+1)*rowBytes]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// ToNRGBA converts the atlas to an image.NRGBA. The bytes are copied
// unchanged: glyph pixels carry straight alpha.
func (p *AtlasImage) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the atlas to w as a PNG image.
func (p *AtlasImage) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToNRGBA())
}

// SavePNG saves the atlas to a PNG file.
func (p *AtlasImage) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *AtlasImage) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *AtlasImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *AtlasImage) ColorModel() color.Model {
	return color.NRGBAModel
}
