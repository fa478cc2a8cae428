package bmfa

import "errors"

var (
	// ErrMissingEntry is returned when a container lacks metadata.json or
	// atlas.png.
	ErrMissingEntry = errors.New("bmfa: missing container entry")

	// ErrImageSize is returned when the atlas image does not match the
	// dimensions recorded in the metadata.
	ErrImageSize = errors.New("bmfa: atlas image size does not match metadata")

	// ErrInvalidMetadata is returned for malformed glyph metadata.
	ErrInvalidMetadata = errors.New("bmfa: invalid glyph metadata")
)
