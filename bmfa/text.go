package bmfa

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/fontatlas"
)

// TextHeader is the first line of the plain-text metadata listing.
const TextHeader = "#code_point x_min width y_min height y_offset"

// WriteText writes the glyph metadata as text: the header line, then one
// line per glyph in ascending code point order.
func WriteText(w io.Writer, glyphs map[int]fontatlas.GlyphMetadata) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, TextHeader)
	for _, c := range slices.Sorted(maps.Keys(glyphs)) {
		g := glyphs[c]
		fmt.Fprintf(bw, "%d %s %s %s %s %s\n", g.CodePoint,
			formatFloat(g.XMin), formatFloat(g.Width),
			formatFloat(g.YMin), formatFloat(g.Height),
			formatFloat(g.YOffset))
	}
	return bw.Flush()
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// ReadText parses a listing written by WriteText. Row and column are not
// listed; they are recomputed from the code point on the 16-column grid.
func ReadText(r io.Reader) (map[int]fontatlas.GlyphMetadata, error) {
	glyphs := make(map[int]fontatlas.GlyphMetadata)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidMetadata, n, err)
		}
		if _, dup := glyphs[g.CodePoint]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate code point %d", ErrInvalidMetadata, n, g.CodePoint)
		}
		glyphs[g.CodePoint] = g
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return glyphs, nil
}

func parseLine(line string) (fontatlas.GlyphMetadata, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return fontatlas.GlyphMetadata{}, fmt.Errorf("want 6 fields, got %d", len(fields))
	}
	c, err := strconv.Atoi(fields[0])
	if err != nil {
		return fontatlas.GlyphMetadata{}, err
	}
	if c < fontatlas.SpaceCodePoint || c > fontatlas.LastCodePoint {
		return fontatlas.GlyphMetadata{}, fmt.Errorf("code point %d out of range", c)
	}

	var v [5]float32
	for i, f := range fields[1:] {
		x, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return fontatlas.GlyphMetadata{}, err
		}
		v[i] = float32(x)
	}

	order := c - fontatlas.SpaceCodePoint
	return fontatlas.GlyphMetadata{
		CodePoint: c,
		Row:       order / fontatlas.GridColumns,
		Column:    order % fontatlas.GridColumns,
		XMin:      v[0],
		Width:     v[1],
		YMin:      v[2],
		Height:    v[3],
		YOffset:   v[4],
	}, nil
}
