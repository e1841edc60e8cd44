package poster

import (
	"context"
	"image"
	"image/color"

	"github.com/ironsheep/imposter/internal/imaging"
	"github.com/ironsheep/imposter/internal/layout"
	"github.com/ironsheep/imposter/internal/pdfdoc"
)

// ImageSource supplies the source image and its dimensions.
type ImageSource interface {
	// Dimensions returns the pixel size without reading pixel data.
	Dimensions(path string) (width, height int, err error)

	// Load decodes the full image.
	Load(path string) (image.Image, error)
}

// Resampler scales an image to an exact pixel size.
type Resampler interface {
	Resample(img image.Image, width, height int) image.Image
}

// PageEncoder receives finished tiles in row-major order and writes the
// output document.
type PageEncoder interface {
	AddPage(tile layout.Tile, img image.Image) error
	WriteFile(path string) error
}

// Progress receives user-facing status messages while a poster is built.
type Progress interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopProgress struct{}

func (nopProgress) Infof(string, ...any) {}
func (nopProgress) Warnf(string, ...any) {}

// Request holds everything one invocation needs.
type Request struct {
	ImagePath  string
	OutputPath string
	Spec       layout.PosterSpec

	// BlackAndWhite flattens the image to pure black and white before
	// tiling.
	BlackAndWhite bool

	// LineColor is the alignment-line color: a name or a hex string.
	// Empty means black.
	LineColor string
}

// Result reports what a successful run produced.
type Result struct {
	Plan layout.Plan
}

// Generator builds posters. The zero value is not usable; call New, then
// replace collaborators as needed.
type Generator struct {
	Source    ImageSource
	Resampler Resampler

	// NewEncoder creates the page encoder for one run.
	NewEncoder func(plan layout.Plan, lineColor color.RGBA) PageEncoder

	Progress Progress
}

// New returns a Generator wired to the real collaborators: file-based image
// loading, Lanczos resampling, and PDF page encoding.
func New() *Generator {
	return &Generator{
		Source:    fileSource{},
		Resampler: lanczos{},
		NewEncoder: func(plan layout.Plan, lineColor color.RGBA) PageEncoder {
			return pdfdoc.New(plan, lineColor)
		},
		Progress: nopProgress{},
	}
}

// Preview computes the page grid for a request without touching pixel data.
func (g *Generator) Preview(req Request) (layout.Grid, error) {
	if err := req.Spec.Validate(); err != nil {
		return layout.Grid{}, err
	}
	if _, err := lineColor(req.LineColor); err != nil {
		return layout.Grid{}, err
	}

	w, h, err := g.Source.Dimensions(req.ImagePath)
	if err != nil {
		return layout.Grid{}, err
	}
	return layout.ComputeGrid(req.Spec, float64(w)/float64(h))
}

// Generate runs the full pipeline and writes the output document.
//
// The context is checked between pages; a big poster at print resolution is
// hundreds of pages and each one costs a crop plus a PNG encode.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Spec.Validate(); err != nil {
		return nil, err
	}
	lc, err := lineColor(req.LineColor)
	if err != nil {
		return nil, err
	}

	srcW, srcH, err := g.Source.Dimensions(req.ImagePath)
	if err != nil {
		return nil, err
	}

	grid, err := layout.ComputeGrid(req.Spec, float64(srcW)/float64(srcH))
	if err != nil {
		return nil, err
	}
	plan := layout.ComputeTiles(grid, req.Spec)

	g.Progress.Infof("Poster size: %g\" x %g\"", req.Spec.WidthIn, req.Spec.HeightIn)
	g.Progress.Infof("DPI: %d", req.Spec.DPI)
	g.Progress.Infof("Overlap: %g\"", req.Spec.OverlapIn)
	if grid.Orientation == layout.Landscape {
		g.Progress.Infof("Turning pages landscape to save paper")
	}
	g.Progress.Infof("Will need %d columns x %d rows = %d total pages",
		grid.Columns, grid.Rows, grid.Pages())

	img, err := g.Source.Load(req.ImagePath)
	if err != nil {
		return nil, err
	}

	if req.BlackAndWhite {
		img = imaging.ToBlackAndWhite(img)
		g.Progress.Infof("Converted to black and white")
	}

	if srcRatio, dstRatio, mismatch := imaging.AspectMismatch(
		srcW, srcH, plan.TotalWidthPx, plan.TotalHeightPx); mismatch {
		g.Progress.Warnf("input aspect ratio %.4f != target %.4f; the print will be stretched",
			srcRatio, dstRatio)
	}

	g.Progress.Infof("Resizing image to %dx%d", plan.TotalWidthPx, plan.TotalHeightPx)
	img = g.Resampler.Resample(img, plan.TotalWidthPx, plan.TotalHeightPx)

	enc := g.NewEncoder(plan, lc)
	for _, tile := range plan.Tiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		segment, err := imaging.CropTile(img, tile.Rect)
		if err != nil {
			return nil, err
		}
		g.Progress.Infof("Page %2d: segment %dx%d has size %dx%d",
			plan.PageNumber(tile), tile.Col+1, tile.Row+1, tile.Rect.Dx(), tile.Rect.Dy())

		if err := enc.AddPage(tile, segment); err != nil {
			return nil, err
		}
	}

	if err := enc.WriteFile(req.OutputPath); err != nil {
		return nil, err
	}
	return &Result{Plan: plan}, nil
}

// lineColor resolves the request's line color, defaulting to black.
func lineColor(s string) (color.RGBA, error) {
	if s == "" {
		s = "black"
	}
	return imaging.ParseColor(s)
}

// fileSource reads images from disk via the imaging package.
type fileSource struct{}

func (fileSource) Dimensions(path string) (int, int, error) { return imaging.ReadDimensions(path) }
func (fileSource) Load(path string) (image.Image, error)    { return imaging.Load(path) }

// lanczos resamples via the imaging package.
type lanczos struct{}

func (lanczos) Resample(img image.Image, w, h int) image.Image {
	return imaging.Resample(img, w, h)
}
