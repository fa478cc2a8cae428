package bmfa

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/fontatlas"
)

func TestWriteText(t *testing.T) {
	glyphs := map[int]fontatlas.GlyphMetadata{
		65: {CodePoint: 65, Row: 2, Column: 1, Width: 0.375, Height: 0.53125, XMin: 0.0625, YMin: 0.125, YOffset: -0.09375},
		32: {CodePoint: 32, Width: 0.5, Height: 1},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, glyphs); err != nil {
		t.Fatal(err)
	}
	want := TextHeader + "\n" +
		"32 0 0.5 0 1 0\n" +
		"65 0.0625 0.375 0.125 0.53125 -0.09375\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestText_RoundTrip(t *testing.T) {
	want := testAtlas(t, fontatlas.BottomLeft).Metadata.Glyphs

	var buf bytes.Buffer
	if err := WriteText(&buf, want); err != nil {
		t.Fatal(err)
	}
	lines := strings.Count(buf.String(), "\n")
	if lines != len(want)+1 {
		t.Errorf("wrote %d lines, want %d", lines, len(want)+1)
	}

	got, err := ReadText(&buf)
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
}

func TestReadText_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short line", "65 0 0 0 0\n"},
		{"bad code point", "x 0 0 0 0 0\n"},
		{"bad float", "65 0 zero 0 0 0\n"},
		{"out of range", "256 0 0 0 0 0\n"},
		{"duplicate", "65 0 0 0 0 0\n65 0 0 0 0 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(TextHeader + "\n" + tt.input))
			if !errors.Is(err, ErrInvalidMetadata) {
				t.Errorf("err = %v, want ErrInvalidMetadata", err)
			}
		})
	}
}

func TestReadText_SkipsCommentsAndBlankLines(t *testing.T) {
	got, err := ReadText(strings.NewReader("# generated\n\n33 0.0625 0.25 0 0.5 -0.125\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]fontatlas.GlyphMetadata{
		33: {CodePoint: 33, Row: 0, Column: 1, XMin: 0.0625, Width: 0.25, Height: 0.5, YOffset: -0.125},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
}
