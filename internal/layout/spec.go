package layout

import (
	"errors"
	"fmt"
	"math"
)

// Physical page constants for US letter stock. The margin is baked into the
// printer-safe area and is not user configurable.
const (
	LetterWidthIn  = 8.5
	LetterHeightIn = 11.0
	PageMarginIn   = 0.25
)

// ErrInvalidConfig reports a poster specification that cannot produce a
// valid page plan.
var ErrInvalidConfig = errors.New("invalid poster configuration")

// Orientation selects how letter pages are turned in the output document.
type Orientation int

const (
	// Portrait keeps pages upright: 8" x 10.5" printable.
	Portrait Orientation = iota

	// Landscape turns pages sideways: 10.5" x 8" printable.
	Landscape
)

// String returns "portrait" or "landscape".
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// PosterSpec describes the poster the user wants to print.
type PosterSpec struct {
	// WidthIn is the finished poster width in inches.
	WidthIn float64

	// HeightIn is the finished poster height in inches.
	HeightIn float64

	// DPI is the print resolution in pixels per inch.
	DPI int

	// OverlapIn is the strip, in inches, that adjacent pages repeat so the
	// printed sheets can be glued together.
	OverlapIn float64

	// AllowRotate permits landscape pages when that lowers the page count.
	AllowRotate bool
}

// Validate checks that the specification can produce a page plan.
//
// It rejects non-positive poster dimensions, a non-positive DPI, a negative
// overlap, and an overlap so large that a page stops contributing fresh
// poster area. The wrapped error is always ErrInvalidConfig.
func (s PosterSpec) Validate() error {
	if s.WidthIn <= 0 || s.HeightIn <= 0 {
		return fmt.Errorf("%w: poster size %gx%g inches must be positive", ErrInvalidConfig, s.WidthIn, s.HeightIn)
	}
	if s.DPI <= 0 {
		return fmt.Errorf("%w: dpi %d must be positive", ErrInvalidConfig, s.DPI)
	}
	if s.OverlapIn < 0 {
		return fmt.Errorf("%w: overlap %g inches must not be negative", ErrInvalidConfig, s.OverlapIn)
	}

	// The tightest constraint is the short printable side, which is the same
	// for both orientations.
	page := LetterPage()
	limit := page.UsableWidthIn
	if page.UsableHeightIn < limit {
		limit = page.UsableHeightIn
	}
	if s.OverlapIn >= limit {
		return fmt.Errorf("%w: overlap %g inches consumes the entire %gx%g inch printable area",
			ErrInvalidConfig, s.OverlapIn, page.UsableWidthIn, page.UsableHeightIn)
	}
	if pixels(s.OverlapIn, s.DPI) >= pixels(limit, s.DPI) {
		return fmt.Errorf("%w: overlap %g inches at %d dpi leaves no fresh pixels per page",
			ErrInvalidConfig, s.OverlapIn, s.DPI)
	}
	return nil
}

// PageSize is the printable area of one page in inches, after margins.
type PageSize struct {
	UsableWidthIn  float64
	UsableHeightIn float64
}

// LetterPage returns the portrait printable area of a US letter sheet with
// the standard margin applied: 8" x 10.5".
func LetterPage() PageSize {
	return PageSize{
		UsableWidthIn:  LetterWidthIn - 2*PageMarginIn,
		UsableHeightIn: LetterHeightIn - 2*PageMarginIn,
	}
}

// Oriented returns the printable area with its dimensions arranged for the
// given page orientation.
func (p PageSize) Oriented(o Orientation) PageSize {
	if o == Landscape {
		return PageSize{UsableWidthIn: p.UsableHeightIn, UsableHeightIn: p.UsableWidthIn}
	}
	return p
}

// pixels converts a physical length to device pixels, rounding half away
// from zero.
func pixels(inches float64, dpi int) int {
	return int(math.Round(inches * float64(dpi)))
}
