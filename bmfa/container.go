package bmfa

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/fontatlas"
)

// Entry names inside a container.
const (
	MetadataEntry = "metadata.json"
	ImageEntry    = "atlas.png"
)

// Extension is the file extension of atlas containers.
const Extension = ".bmfa"

// MaxMetadataSize bounds the decompressed size of metadata.json.
const MaxMetadataSize = 16 << 20

type glyphJSON struct {
	CodePoint int     `json:"code_point"`
	Row       int     `json:"row"`
	Column    int     `json:"column"`
	Width     float32 `json:"width"`
	Height    float32 `json:"height"`
	XMin      float32 `json:"x_min"`
	YMin      float32 `json:"y_min"`
	YOffset   float32 `json:"y_offset"`
}

type metadataJSON struct {
	Origin        fontatlas.Origin  `json:"origin"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	Rows          int               `json:"rows"`
	Columns       int               `json:"columns"`
	Padding       int               `json:"padding"`
	SlotGlyphSize int               `json:"slot_glyph_size"`
	GlyphSize     int               `json:"glyph_size"`
	GlyphMetadata map[int]glyphJSON `json:"glyph_metadata"`
	Charset       string            `json:"charset,omitempty"`
	FontName      string            `json:"font_name,omitempty"`
}

func toJSON(m *fontatlas.AtlasMetadata) metadataJSON {
	doc := metadataJSON{
		Origin:        m.Origin,
		Width:         m.Width,
		Height:        m.Height,
		Rows:          m.Rows,
		Columns:       m.Columns,
		Padding:       m.Padding,
		SlotGlyphSize: m.SlotGlyphSize,
		GlyphSize:     m.GlyphSize,
		GlyphMetadata: make(map[int]glyphJSON, len(m.Glyphs)),
		Charset:       m.Charset,
		FontName:      m.FontName,
	}
	for c, g := range m.Glyphs {
		doc.GlyphMetadata[c] = glyphJSON(g)
	}
	return doc
}

func (doc *metadataJSON) metadata() (fontatlas.AtlasMetadata, error) {
	m := fontatlas.AtlasMetadata{
		Origin:        doc.Origin,
		Width:         doc.Width,
		Height:        doc.Height,
		Rows:          doc.Rows,
		Columns:       doc.Columns,
		Padding:       doc.Padding,
		SlotGlyphSize: doc.SlotGlyphSize,
		GlyphSize:     doc.GlyphSize,
		Glyphs:        make(map[int]fontatlas.GlyphMetadata, len(doc.GlyphMetadata)),
		Charset:       doc.Charset,
		FontName:      doc.FontName,
	}
	if err := m.Spec().Validate(); err != nil {
		return m, err
	}
	for c, g := range doc.GlyphMetadata {
		if c < fontatlas.SpaceCodePoint || c > fontatlas.LastCodePoint {
			return m, fmt.Errorf("%w: code point %d outside [%d, %d]",
				ErrInvalidMetadata, c, fontatlas.SpaceCodePoint, fontatlas.LastCodePoint)
		}
		if g.CodePoint != c {
			return m, fmt.Errorf("%w: entry %d has code point %d", ErrInvalidMetadata, c, g.CodePoint)
		}
		m.Glyphs[c] = fontatlas.GlyphMetadata(g)
	}
	if want := fontatlas.LastCodePoint - fontatlas.SpaceCodePoint + 1; len(m.Glyphs) != want {
		for c := fontatlas.SpaceCodePoint; c <= fontatlas.LastCodePoint; c++ {
			if _, ok := m.Glyphs[c]; !ok {
				return m, fmt.Errorf("%w: no entry for code point %d", ErrInvalidMetadata, c)
			}
		}
	}
	return m, nil
}

// Encode writes atlas to w as a container.
func Encode(w io.Writer, atlas *fontatlas.Atlas) error {
	zw := zip.NewWriter(w)

	mw, err := zw.CreateHeader(&zip.FileHeader{Name: MetadataEntry, Method: zip.Deflate})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(mw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(&atlas.Metadata)); err != nil {
		return fmt.Errorf("bmfa: failed to encode metadata: %w", err)
	}

	// PNG data is already compressed.
	iw, err := zw.CreateHeader(&zip.FileHeader{Name: ImageEntry, Method: zip.Store})
	if err != nil {
		return err
	}
	if err := atlas.Image.EncodePNG(iw); err != nil {
		return fmt.Errorf("bmfa: failed to encode atlas image: %w", err)
	}
	return zw.Close()
}

// Decode reads a container of the given size from r.
//
// The geometry is validated, glyph_metadata must hold exactly one entry for
// each code point in [32, 255], and the image must have exactly the recorded
// width and height. The image is returned in its stored orientation.
func Decode(r io.ReaderAt, size int64) (*fontatlas.Atlas, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("bmfa: not a container: %w", err)
	}

	var doc metadataJSON
	if err := readEntry(zr, MetadataEntry, func(rc io.Reader) error {
		dec := json.NewDecoder(io.LimitReader(rc, MaxMetadataSize))
		if err := dec.Decode(&doc); err != nil {
			return fmt.Errorf("bmfa: failed to decode metadata: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	md, err := doc.metadata()
	if err != nil {
		return nil, err
	}

	atlas := &fontatlas.Atlas{Metadata: md}
	if err := readEntry(zr, ImageEntry, func(rc io.Reader) error {
		img, err := png.Decode(rc)
		if err != nil {
			return fmt.Errorf("bmfa: failed to decode atlas image: %w", err)
		}
		b := img.Bounds()
		if b.Dx() != md.Width || b.Dy() != md.Height {
			return fmt.Errorf("%w: image is %dx%d, metadata says %dx%d",
				ErrImageSize, b.Dx(), b.Dy(), md.Width, md.Height)
		}
		atlas.Image = fontatlas.FromImage(img, md.Origin)
		return nil
	}); err != nil {
		return nil, err
	}
	return atlas, nil
}

func readEntry(zr *zip.Reader, name string, fn func(io.Reader) error) error {
	f, err := zr.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissingEntry, name)
	}
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteFile writes atlas to a new container at path. It refuses to
// overwrite an existing file, and removes the partial file if writing fails.
func WriteFile(path string, atlas *fontatlas.Atlas) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("bmfa: could not create atlas file %s: %w", path, err)
	}
	err = Encode(f, atlas)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("bmfa: could not create atlas file %s: %w", path, err)
	}

	fontatlas.Logger().Info("bmfa: atlas file written", "path", path)
	return nil
}

// ReadFile reads the container at path.
func ReadFile(path string) (*fontatlas.Atlas, error) {
	// #nosec G304 -- atlas path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return Decode(f, info.Size())
}
