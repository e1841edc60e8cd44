package imaging

import "errors"

var (
	// ErrImageLoad indicates the source image could not be opened or decoded.
	ErrImageLoad = errors.New("cannot load image")

	// ErrInvalidColor indicates a color argument that is neither a known
	// color name nor a valid hex string.
	ErrInvalidColor = errors.New("invalid color")
)
