// Package bmfa reads and writes bitmap font atlas containers.
//
// A .bmfa file is a zip archive holding two entries:
//
//	metadata.json  atlas geometry and per-glyph metadata
//	atlas.png      the atlas image, stored in the orientation named by origin
//
// The metadata document looks like:
//
//	{
//	  "origin": "BottomLeft",
//	  "width": 1024, "height": 1024, "rows": 16, "columns": 16,
//	  "padding": 0, "slot_glyph_size": 64, "glyph_size": 64,
//	  "glyph_metadata": {
//	    "65": {"code_point": 65, "row": 2, "column": 1, "width": 0.5, ...}
//	  },
//	  "charset": "ISO-8859-1",
//	  "font_name": "Go"
//	}
//
// The package also writes a plain-text listing of the glyph metadata, one
// line per code point, for tools that do not read JSON.
package bmfa
