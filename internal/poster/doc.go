// Package poster runs the whole pipeline: plan the page grid, load and
// prepare the source image, cut it into tiles, and hand each tile to the
// page encoder.
//
// The pipeline talks to its collaborators through small interfaces so tests
// can swap in fakes. The real collaborators live in the imaging and pdfdoc
// packages and are wired up by New.
//
// Everything that can fail from bad configuration fails before the source
// image is opened: the poster spec, the line color, and the page grid are
// all checked first. There is no partial output — either every page is
// encoded and the document saved, or an error is returned and nothing is
// written.
package poster
