package fontatlas

import (
	"errors"
	"testing"
)

func TestNewAtlasSpec_Default(t *testing.T) {
	spec := mustSpec(t, BottomLeft, 64, 0)
	if spec.Width != 1024 || spec.Height != 1024 {
		t.Errorf("atlas = %dx%d, want 1024x1024", spec.Width, spec.Height)
	}
	if spec.Rows != 16 || spec.Columns != 16 {
		t.Errorf("grid = %dx%d, want 16x16", spec.Columns, spec.Rows)
	}
	if spec.GlyphSize != 64 {
		t.Errorf("GlyphSize = %d, want 64", spec.GlyphSize)
	}
}

func TestNewAtlasSpec_Invariants(t *testing.T) {
	for _, slot := range []int{1, 7, 32, 64, 100} {
		for _, padding := range []int{0, 1, 3, slot / 2, slot} {
			if padding > slot {
				continue
			}
			spec := mustSpec(t, TopLeft, slot, padding)
			if spec.Columns*spec.SlotGlyphSize != spec.Width {
				t.Errorf("slot %d: columns*slot = %d, width = %d", slot, spec.Columns*spec.SlotGlyphSize, spec.Width)
			}
			if spec.Rows*spec.SlotGlyphSize != spec.Height {
				t.Errorf("slot %d: rows*slot = %d, height = %d", slot, spec.Rows*spec.SlotGlyphSize, spec.Height)
			}
			if spec.GlyphSize != slot-padding {
				t.Errorf("slot %d padding %d: GlyphSize = %d", slot, padding, spec.GlyphSize)
			}
			if err := spec.Validate(); err != nil {
				t.Errorf("Validate() = %v for constructed spec", err)
			}
		}
	}
}

func TestNewAtlasSpec_Errors(t *testing.T) {
	tests := []struct {
		name          string
		slot, padding int
		field         string
	}{
		{"zero slot", 0, 0, "slot glyph size"},
		{"negative slot", -4, 0, "slot glyph size"},
		{"negative padding", 16, -1, "padding"},
		{"padding larger than slot", 16, 17, "padding"},
		{"slot too large", MaxSlotGlyphSize + 1, 0, "slot glyph size"},
		{"slot overflows the atlas size", 1 << 30, 0, "slot glyph size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAtlasSpec(BottomLeft, tt.slot, tt.padding)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestNewAtlasSpec_LargestSlot(t *testing.T) {
	spec := mustSpec(t, TopLeft, MaxSlotGlyphSize, 0)
	if spec.Width != 16*MaxSlotGlyphSize || spec.Height != 16*MaxSlotGlyphSize {
		t.Errorf("atlas %dx%d", spec.Width, spec.Height)
	}
}

func TestAtlasSpec_Validate(t *testing.T) {
	base := mustSpec(t, BottomLeft, 32, 4)
	tests := []struct {
		name   string
		modify func(*AtlasSpec)
	}{
		{"width", func(s *AtlasSpec) { s.Width++ }},
		{"height", func(s *AtlasSpec) { s.Height = 0 }},
		{"glyph size", func(s *AtlasSpec) { s.GlyphSize = 32 }},
		{"padding", func(s *AtlasSpec) { s.Padding = 33 }},
		{"grid", func(s *AtlasSpec) { s.Columns = 8 }},
		{"origin", func(s *AtlasSpec) { s.Origin = Origin(9) }},
		{"slot", func(s *AtlasSpec) { s.SlotGlyphSize = 0 }},
		{"oversized slot", func(s *AtlasSpec) {
			s.SlotGlyphSize = 1 << 30
			s.Width, s.Height = 16<<30, 16<<30
			s.GlyphSize = s.SlotGlyphSize - s.Padding
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.modify(&s)
			var cfgErr *ConfigError
			if err := s.Validate(); !errors.As(err, &cfgErr) {
				t.Errorf("Validate() = %v, want *ConfigError", err)
			}
		})
	}
}

func TestAtlasSpec_Slot(t *testing.T) {
	spec := mustSpec(t, BottomLeft, 64, 0)
	tests := []struct {
		codePoint   int
		row, column int
	}{
		{32, 0, 0},
		{33, 0, 1},
		{47, 0, 15},
		{48, 1, 0},
		{65, 2, 1}, // 'A': order 33
		{255, 13, 15},
	}
	for _, tt := range tests {
		row, column := spec.Slot(tt.codePoint)
		if row != tt.row || column != tt.column {
			t.Errorf("Slot(%d) = (%d, %d), want (%d, %d)", tt.codePoint, row, column, tt.row, tt.column)
		}
	}
}

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		in   string
		want Origin
		ok   bool
	}{
		{"bottom-left", BottomLeft, true},
		{"top-left", TopLeft, true},
		{"BottomLeft", 0, false},
		{"", 0, false},
		{"center", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseOrigin(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ParseOrigin(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
			continue
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Field != "origin" {
			t.Errorf("ParseOrigin(%q) error = %v, want origin *ConfigError", tt.in, err)
		}
	}
}

func TestOrigin_Text(t *testing.T) {
	for _, o := range []Origin{BottomLeft, TopLeft} {
		text, err := o.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", o, err)
		}
		var back Origin
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != o {
			t.Errorf("round trip of %v gave %v", o, back)
		}
	}

	var o Origin
	if err := o.UnmarshalText([]byte("top-left")); err != nil || o != TopLeft {
		t.Errorf("UnmarshalText(top-left) = %v, %v", o, err)
	}
	if err := o.UnmarshalText([]byte("Middle")); err == nil {
		t.Error("UnmarshalText(Middle) should fail")
	}
	if _, err := Origin(7).MarshalText(); err == nil {
		t.Error("MarshalText of unknown origin should fail")
	}
}
