package fontatlas

import (
	"fmt"
	"os"
	"slices"

	"github.com/gogpu/fontatlas/rasterizer"
)

// AtlasMetadata bundles the packing parameters with the glyph metadata.
type AtlasMetadata struct {
	Origin        Origin
	Width         int
	Height        int
	Rows          int
	Columns       int
	Padding       int
	SlotGlyphSize int
	GlyphSize     int

	// Glyphs has one entry per code point in {32} ∪ [33, 255].
	Glyphs map[int]GlyphMetadata

	// Charset is the IANA name of the code page used to fill the slots.
	Charset string

	// FontName is the family name of the source font, if known.
	FontName string
}

// Spec returns the geometry recorded in the metadata.
func (m *AtlasMetadata) Spec() AtlasSpec {
	return AtlasSpec{
		Origin:        m.Origin,
		Width:         m.Width,
		Height:        m.Height,
		Rows:          m.Rows,
		Columns:       m.Columns,
		Padding:       m.Padding,
		SlotGlyphSize: m.SlotGlyphSize,
		GlyphSize:     m.GlyphSize,
	}
}

// Atlas is a generated bitmap font atlas: metadata plus image.
type Atlas struct {
	Metadata AtlasMetadata
	Image    *AtlasImage
}

// Glyph returns the metadata of a code point.
func (a *Atlas) Glyph(codePoint int) (GlyphMetadata, bool) {
	g, ok := a.Metadata.Glyphs[codePoint]
	return g, ok
}

// Generate samples every glyph from r and builds the atlas image and
// metadata. Any failure aborts generation; no partial atlas is returned.
func Generate(r rasterizer.Rasterizer, spec AtlasSpec, opts ...Option) (*Atlas, error) {
	o := applyOptions(opts)

	table, err := Sample(r, spec, opts...)
	if err != nil {
		return nil, err
	}

	atlas := &Atlas{
		Metadata: AtlasMetadata{
			Origin:        spec.Origin,
			Width:         spec.Width,
			Height:        spec.Height,
			Rows:          spec.Rows,
			Columns:       spec.Columns,
			Padding:       spec.Padding,
			SlotGlyphSize: spec.SlotGlyphSize,
			GlyphSize:     spec.GlyphSize,
			Glyphs:        BuildMetadata(table, spec),
			Charset:       o.charset.Name(),
		},
		Image: Compose(table, spec),
	}
	if n, ok := r.(rasterizer.Namer); ok {
		atlas.Metadata.FontName = n.FamilyName()
	}

	Logger().Info("fontatlas: atlas generated",
		"width", spec.Width, "height", spec.Height,
		"glyphs", len(atlas.Metadata.Glyphs), "origin", spec.Origin.String())
	return atlas, nil
}

// GenerateFromFile opens a TTF or OTF file with the selected backend and
// generates its atlas.
func GenerateFromFile(path string, spec AtlasSpec, opts ...Option) (*Atlas, error) {
	o := applyOptions(opts)
	if o.backend != "" && !slices.Contains(rasterizer.Backends(), o.backend) {
		return nil, &ConfigError{Field: "backend", Value: o.backend, Reason: "is not registered"}
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: could not open font file %s: %w", path, err)
	}
	r, err := rasterizer.Open(o.backend, data)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: could not open font file %s: %w", path, err)
	}
	return Generate(r, spec, opts...)
}
