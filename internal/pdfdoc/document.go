package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/ironsheep/imposter/internal/layout"
)

// ErrOutputWrite indicates the output document could not be produced or
// saved to disk.
var ErrOutputWrite = errors.New("cannot write output document")

const (
	// Line widths and dash patterns, in points. The page itself is laid out
	// in inches.
	pt = 1.0 / 72

	labelFont = "Helvetica"
	labelSize = 10
)

// Document is a poster PDF under construction. Pages are appended one tile
// at a time, in the plan's row-major order, then the whole document is
// written out at once.
type Document struct {
	pdf  *fpdf.Fpdf
	plan layout.Plan
	line color.RGBA

	// Page geometry in inches, arranged for the plan's orientation.
	pageW, pageH float64
	usable       layout.PageSize
}

// New starts an empty document for the given plan. Pages are US letter,
// turned according to the plan's orientation, with the tile pixels placed
// inside the standard printable margin.
func New(plan layout.Plan, lineColor color.RGBA) *Document {
	orient := "P"
	pageW, pageH := layout.LetterWidthIn, layout.LetterHeightIn
	if plan.Grid.Orientation == layout.Landscape {
		orient = "L"
		pageW, pageH = pageH, pageW
	}

	pdf := fpdf.New(orient, "in", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(labelFont, "", labelSize)

	return &Document{
		pdf:    pdf,
		plan:   plan,
		line:   lineColor,
		pageW:  pageW,
		pageH:  pageH,
		usable: layout.LetterPage().Oriented(plan.Grid.Orientation),
	}
}

// AddPage appends one page showing the given tile's pixels.
//
// The image must hold exactly the tile's pixel region. Interior tiles fill
// the whole printable area; clamped edge tiles are scaled by the same
// pixels-per-inch factor, so they come out proportionally smaller and stay
// aligned with the top-left of the printable area. That keeps a shortened
// last row joined to the row above it once the sheets are trimmed.
func (d *Document) AddPage(tile layout.Tile, img image.Image) error {
	b := img.Bounds()
	if b.Dx() != tile.Rect.Dx() || b.Dy() != tile.Rect.Dy() {
		return fmt.Errorf("%w: page %d image is %dx%d, tile needs %dx%d",
			ErrOutputWrite, d.plan.PageNumber(tile), b.Dx(), b.Dy(), tile.Rect.Dx(), tile.Rect.Dy())
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: encode page %d: %v", ErrOutputWrite, d.plan.PageNumber(tile), err)
	}

	margin := layout.PageMarginIn
	imgW := d.usable.UsableWidthIn * float64(b.Dx()) / float64(d.plan.TileWidthPx)
	imgH := d.usable.UsableHeightIn * float64(b.Dy()) / float64(d.plan.TileHeightPx)

	d.pdf.AddPage()

	name := fmt.Sprintf("tile-%d", d.plan.PageNumber(tile))
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, &buf)
	d.pdf.ImageOptions(name, margin, margin, imgW, imgH, false, opts, 0, "")

	d.drawAlignmentLines(tile, imgW, imgH)
	d.drawTrimBox(tile, imgW, imgH)
	d.drawLabel(tile)

	if d.pdf.Err() {
		return fmt.Errorf("%w: page %d: %v", ErrOutputWrite, d.plan.PageNumber(tile), d.pdf.Error())
	}
	return nil
}

// drawAlignmentLines strokes a finely dashed line at each overlap offset.
// Edges on the poster boundary have no neighboring page and get no line.
func (d *Document) drawAlignmentLines(tile layout.Tile, imgW, imgH float64) {
	margin := layout.PageMarginIn
	overlap := d.plan.Spec.OverlapIn

	d.pdf.SetDrawColor(int(d.line.R), int(d.line.G), int(d.line.B))
	d.pdf.SetLineWidth(1 * pt)
	d.pdf.SetDashPattern([]float64{1 * pt, 8 * pt}, 0)

	if tile.Col > 0 {
		x := margin + overlap
		d.pdf.Line(x, margin, x, margin+imgH)
	}
	if tile.Col < d.plan.Grid.Columns-1 {
		x := margin + d.usable.UsableWidthIn - overlap
		d.pdf.Line(x, margin, x, margin+imgH)
	}
	if tile.Row > 0 {
		y := margin + overlap
		d.pdf.Line(margin, y, margin+imgW, y)
	}
	if tile.Row < d.plan.Grid.Rows-1 {
		y := margin + d.usable.UsableHeightIn - overlap
		d.pdf.Line(margin, y, margin+imgW, y)
	}
}

// drawTrimBox strokes a coarsely dashed rectangle around the image area.
// On the last column and row the box shrinks with the clamped tile, so the
// box always traces exactly where to cut.
func (d *Document) drawTrimBox(tile layout.Tile, imgW, imgH float64) {
	margin := layout.PageMarginIn

	boxW := d.usable.UsableWidthIn
	if tile.Col == d.plan.Grid.Columns-1 {
		boxW = imgW
	}
	boxH := d.usable.UsableHeightIn
	if tile.Row == d.plan.Grid.Rows-1 {
		boxH = imgH
	}

	d.pdf.SetDashPattern([]float64{6 * pt, 3 * pt}, 0)
	d.pdf.Rect(margin, margin, boxW, boxH, "D")
}

// drawLabel writes "Page N (row r, col c)" in the bottom-left corner,
// outside the printable area.
func (d *Document) drawLabel(tile layout.Tile) {
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Text(10*pt, d.pageH-10*pt, fmt.Sprintf("Page %d (row %d, col %d)",
		d.plan.PageNumber(tile), tile.Row+1, tile.Col+1))
}

// PageCount returns the number of pages appended so far.
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// WriteFile saves the finished document. Errors wrap ErrOutputWrite.
func (d *Document) WriteFile(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}
