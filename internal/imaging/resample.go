package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// aspectTolerance is the largest width/height ratio difference still treated
// as the same shape.
const aspectTolerance = 1e-4

// Resample scales img to exactly width x height pixels using Lanczos
// filtering. The source is returned untouched when it already has the target
// size.
func Resample(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// AspectMismatch compares the source image shape against the poster shape.
// It returns both width/height ratios and whether they differ enough that
// resampling will visibly distort the print.
func AspectMismatch(srcW, srcH, dstW, dstH int) (srcRatio, dstRatio float64, mismatch bool) {
	srcRatio = float64(srcW) / float64(srcH)
	dstRatio = float64(dstW) / float64(dstH)
	return srcRatio, dstRatio, math.Abs(srcRatio-dstRatio) > aspectTolerance
}
