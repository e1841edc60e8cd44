// Package imaging handles the pixel side of poster generation: decoding the
// source image, scaling it to the poster's print size, optional
// black-and-white conversion, and cutting out the page tiles the layout
// planner asked for.
//
// Geometry decisions live in the layout package; everything here operates on
// concrete pixels. All coordinates follow the standard image convention:
// (0,0) at the top-left corner, X increasing rightward, Y increasing
// downward, rectangles half-open.
//
// # Supported Formats
//
// Load and ReadDimensions accept PNG, JPEG, GIF, BMP, TIFF, and WebP.
// Encoding the output pages is the pdfdoc package's concern.
//
// # Error Handling
//
// Failures to open or decode a source file wrap ErrImageLoad. Color
// arguments that cannot be resolved wrap ErrInvalidColor. Both work with
// errors.Is.
package imaging
