package layout

import "image"

// Tile is one page's slice of the poster in poster pixel space.
type Tile struct {
	// Rect is the half-open pixel rectangle this page shows. Interior tiles
	// measure the full nominal tile size; tiles on the right and bottom
	// edges are clamped to the poster boundary and may be smaller.
	Rect image.Rectangle

	// Col and Row are the tile's zero-based position in the grid.
	Col int
	Row int
}

// Plan is the complete tiling of a poster: the chosen grid, the pixel
// geometry shared by every page, and one Tile per page in row-major order.
type Plan struct {
	Spec PosterSpec
	Grid Grid

	// TotalWidthPx and TotalHeightPx are the poster dimensions in pixels.
	TotalWidthPx  int
	TotalHeightPx int

	// OverlapPx is the repeated strip between adjacent pages in pixels.
	OverlapPx int

	// TileWidthPx and TileHeightPx are the nominal (unclamped) tile
	// dimensions: the printable page area at the poster's DPI.
	TileWidthPx  int
	TileHeightPx int

	Tiles []Tile
}

// PageNumber returns the 1-based output page for a tile: pages run left to
// right, then top to bottom.
func (p Plan) PageNumber(t Tile) int {
	return t.Row*p.Grid.Columns + t.Col + 1
}

// ComputeTiles expands a grid into per-page pixel rectangles.
//
// Each column starts (tile width - overlap) pixels after the previous one,
// and each row (tile height - overlap) below, so consecutive tiles share
// exactly OverlapPx pixels. Right-edge and bottom-edge tiles are clamped to
// the poster boundary rather than padded, which is why edge tiles can be
// smaller than the nominal size. The union of all rectangles covers the
// poster exactly.
func ComputeTiles(grid Grid, spec PosterSpec) Plan {
	page := LetterPage().Oriented(grid.Orientation)

	plan := Plan{
		Spec:          spec,
		Grid:          grid,
		TotalWidthPx:  pixels(spec.WidthIn, spec.DPI),
		TotalHeightPx: pixels(spec.HeightIn, spec.DPI),
		OverlapPx:     pixels(spec.OverlapIn, spec.DPI),
		TileWidthPx:   pixels(page.UsableWidthIn, spec.DPI),
		TileHeightPx:  pixels(page.UsableHeightIn, spec.DPI),
	}

	plan.Tiles = make([]Tile, 0, grid.Pages())
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			left := col * (plan.TileWidthPx - plan.OverlapPx)
			top := row * (plan.TileHeightPx - plan.OverlapPx)

			right := left + plan.TileWidthPx
			if right > plan.TotalWidthPx {
				right = plan.TotalWidthPx
			}
			bottom := top + plan.TileHeightPx
			if bottom > plan.TotalHeightPx {
				bottom = plan.TotalHeightPx
			}

			plan.Tiles = append(plan.Tiles, Tile{
				Rect: image.Rect(left, top, right, bottom),
				Col:  col,
				Row:  row,
			})
		}
	}
	return plan
}
