// Package layout computes the page plan that turns one poster into a grid
// of overlapping letter-sized tiles.
//
// The package is pure geometry: it never reads pixels and never touches the
// filesystem. Callers describe the poster with a PosterSpec (physical size,
// print resolution, overlap) and receive a Grid (how many columns and rows of
// pages, at which page orientation) and a Plan (the exact pixel rectangle each
// page shows). Rendering those rectangles is the caller's concern.
//
// # Geometry Model
//
// Every page is a US letter sheet with a fixed 0.25" margin on all four
// sides, leaving an 8" x 10.5" printable area in portrait. Pages in one
// document share a single orientation; switching to landscape swaps the
// printable dimensions, it never rotates the poster image.
//
// Adjacent pages repeat a strip of the poster so the printed sheets can be
// glued with physical overlap. A poster dimension that fits on a single page
// needs exactly one page regardless of overlap.
//
// # Coordinate System
//
// Tile rectangles live in poster pixel space: (0,0) is the poster's top-left
// corner, X grows rightward, Y grows downward, and the full poster spans
// width_in x dpi by height_in x dpi pixels. Tiles are emitted row-major, left
// to right then top to bottom, matching the page order of the output
// document.
//
// # Rounding
//
// All inch-to-pixel conversions round half away from zero. Page counts come
// from a ceiling division in inch space and are then reconciled against the
// integer pixel walk, so the last column and row always contain at least one
// fresh pixel and the union of all tiles covers the poster exactly.
package layout
