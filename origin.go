package fontatlas

import "fmt"

// Origin is the corner of the atlas image that coordinates are measured from.
type Origin uint8

const (
	// BottomLeft places row 0 of the stored image at the bottom, as OpenGL
	// textures expect. It is the default.
	BottomLeft Origin = iota

	// TopLeft stores the image as composed, row 0 at the top.
	TopLeft
)

// ParseOrigin parses the command-line spelling of an origin:
// "bottom-left" or "top-left".
func ParseOrigin(s string) (Origin, error) {
	switch s {
	case "bottom-left":
		return BottomLeft, nil
	case "top-left":
		return TopLeft, nil
	default:
		return 0, &ConfigError{Field: "origin", Value: fmt.Sprintf("%q", s), Reason: "must be bottom-left or top-left"}
	}
}

// String returns the command-line spelling of the origin.
func (o Origin) String() string {
	switch o {
	case BottomLeft:
		return "bottom-left"
	case TopLeft:
		return "top-left"
	default:
		return fmt.Sprintf("Origin(%d)", uint8(o))
	}
}

// MarshalText encodes the origin as stored in atlas files.
func (o Origin) MarshalText() ([]byte, error) {
	switch o {
	case BottomLeft:
		return []byte("BottomLeft"), nil
	case TopLeft:
		return []byte("TopLeft"), nil
	default:
		return nil, fmt.Errorf("fontatlas: cannot encode %s", o)
	}
}

// UnmarshalText accepts both the atlas file and the command-line spellings.
func (o *Origin) UnmarshalText(text []byte) error {
	switch string(text) {
	case "BottomLeft", "bottom-left":
		*o = BottomLeft
	case "TopLeft", "top-left":
		*o = TopLeft
	default:
		return &ConfigError{Field: "origin", Value: fmt.Sprintf("%q", text), Reason: "must be BottomLeft or TopLeft"}
	}
	return nil
}
