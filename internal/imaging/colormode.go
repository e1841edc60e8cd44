package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// bwLevel is the luminance cutoff for black-and-white conversion.
const bwLevel = 128

// ToBlackAndWhite flattens an image to pure black and white around a fixed
// mid-gray cutoff. Every output pixel is either full black or full white;
// mid-tone detail does not survive.
func ToBlackAndWhite(img image.Image) image.Image {
	return segment.Threshold(img, bwLevel)
}
