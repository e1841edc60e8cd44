package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load reads and decodes a source image from disk.
//
// The concrete return type depends on the source format and color model
// (e.g. *image.NRGBA, *image.YCbCr). Errors wrap ErrImageLoad.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrImageLoad, path, err)
	}
	return img, nil
}

// ReadDimensions returns an image's pixel size by decoding only its header.
// No pixel data is read, so this stays cheap even for very large files.
func ReadDimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: read header of %s: %v", ErrImageLoad, path, err)
	}
	return cfg.Width, cfg.Height, nil
}
