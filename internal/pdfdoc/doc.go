// Package pdfdoc turns a poster plan into the multi-page PDF the user
// actually prints. Each tile from the layout plan becomes one US letter page
// carrying the tile's pixels plus the assembly aids: dashed alignment lines
// at the overlap offsets, a dashed box around the printable area for
// trimming, and a page label with the tile's grid position.
//
// The package draws in page space (inches, top-left origin). All pixel
// geometry comes from the layout plan; pdfdoc never recomputes it.
package pdfdoc
