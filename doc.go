// Package fontatlas converts scalable fonts into bitmap font atlases.
//
// An atlas is a single RGBA image holding the glyphs for code points 33-255
// on a fixed 16×16 grid of equally sized slots, plus normalized metadata
// that tells a renderer where each glyph lives in the texture.
//
// The pipeline runs in four steps:
//
//   - NewAtlasSpec derives the grid geometry from a slot size and padding
//   - Sample drives a rasterizer.Rasterizer over the code point range and
//     copies every bitmap out of the rasterizer's reused buffer
//   - BuildMetadata computes UV-space boxes and baseline offsets
//   - Compose packs the bitmaps into the image and orients it for the
//     selected origin
//
// Generate and GenerateFromFile run all of them. Any failure aborts the
// whole run: no partial atlas is ever produced.
//
// # Example usage
//
//	spec, err := fontatlas.NewAtlasSpec(fontatlas.BottomLeft, 64, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	atlas, err := fontatlas.GenerateFromFile("Roboto-Regular.ttf", spec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := bmfa.WriteFile("roboto.bmfa", atlas); err != nil {
//	    log.Fatal(err)
//	}
//
// The bmfa sub-package reads and writes the atlas container format.
package fontatlas
