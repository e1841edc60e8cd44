package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropTile extracts one page tile's pixel region from the resampled poster
// image. The returned image always holds its own pixel copy.
//
// The rectangle must be non-empty and lie inside the image bounds. The
// layout planner guarantees both for its own tiles, so a failure here means
// the caller cropped an image that was never resampled to the plan's size.
func CropTile(img image.Image, rect image.Rectangle) (image.Image, error) {
	bounds := img.Bounds()
	if !rect.In(bounds) {
		return nil, fmt.Errorf("tile region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if rect.Empty() {
		return nil, fmt.Errorf("empty tile region (%d,%d)-(%d,%d)",
			rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	}
	return imaging.Crop(img, rect), nil
}
