package layout

import (
	"fmt"
	"math"
)

// Grid is the page arrangement chosen for a poster: how many columns and
// rows of letter pages, and which way the pages are turned.
type Grid struct {
	Columns     int
	Rows        int
	Orientation Orientation
}

// Pages returns the total page count of the grid.
func (g Grid) Pages() int {
	return g.Columns * g.Rows
}

// ComputeGrid picks the page grid for a poster.
//
// The portrait arrangement is computed first. When spec.AllowRotate is set
// the landscape arrangement is computed as well and the one with fewer total
// pages wins. On a tie the pages follow the poster image's own shape:
// imageAspect > 1 (wider than tall) picks landscape, anything else portrait.
//
// imageAspect is the source image's width divided by its height. It only
// breaks ties; it never changes a page count.
//
// Returns ErrInvalidConfig (wrapped) when the spec fails validation or the
// aspect ratio is not positive.
func ComputeGrid(spec PosterSpec, imageAspect float64) (Grid, error) {
	if err := spec.Validate(); err != nil {
		return Grid{}, err
	}
	if imageAspect <= 0 {
		return Grid{}, fmt.Errorf("%w: image aspect ratio %g must be positive", ErrInvalidConfig, imageAspect)
	}

	portrait := gridFor(spec, Portrait)
	if !spec.AllowRotate {
		return portrait, nil
	}

	landscape := gridFor(spec, Landscape)
	switch {
	case landscape.Pages() < portrait.Pages():
		return landscape, nil
	case portrait.Pages() < landscape.Pages():
		return portrait, nil
	case imageAspect > 1:
		return landscape, nil
	default:
		return portrait, nil
	}
}

// PreviewPageCount reports how many pages a poster needs without reading
// any image data beyond its aspect ratio.
func PreviewPageCount(spec PosterSpec, imageAspect float64) (int, error) {
	grid, err := ComputeGrid(spec, imageAspect)
	if err != nil {
		return 0, err
	}
	return grid.Pages(), nil
}

// gridFor computes the page counts for one orientation.
func gridFor(spec PosterSpec, o Orientation) Grid {
	page := LetterPage().Oriented(o)
	return Grid{
		Columns:     pagesAcross(spec.WidthIn, page.UsableWidthIn, spec.OverlapIn, spec.DPI),
		Rows:        pagesAcross(spec.HeightIn, page.UsableHeightIn, spec.OverlapIn, spec.DPI),
		Orientation: o,
	}
}

// pagesAcross returns the number of pages needed to span one poster
// dimension. A dimension that fits on a single page needs exactly one page,
// with no overlap charged. Otherwise each page past the first advances by
// (usable - overlap) inches, so the count is
//
//	ceil((poster - overlap) / (usable - overlap))
//
// The inch-space ceiling is then reconciled with the integer pixel walk used
// by ComputeTiles: when float rounding lands the division exactly on a page
// boundary the two can disagree by one, so the count is nudged until the
// final page holds at least one fresh pixel and the walk still reaches the
// poster's last pixel.
func pagesAcross(posterIn, usableIn, overlapIn float64, dpi int) int {
	n := 1
	if posterIn > usableIn {
		n = int(math.Ceil((posterIn - overlapIn) / (usableIn - overlapIn)))
	}

	total := pixels(posterIn, dpi)
	tile := pixels(usableIn, dpi)
	advance := tile - pixels(overlapIn, dpi)
	for n > 1 && (n-1)*advance >= total {
		n--
	}
	for (n-1)*advance+tile < total {
		n++
	}
	return n
}
