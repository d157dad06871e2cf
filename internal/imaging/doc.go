// Package imaging loads source images and prepares them for placeholder
// generation.
//
// Images are read once through ImageCache and then reduced by Thumbnail: an
// optional crop, a Lanczos downscale into a bounding box (100x100 by
// default) and an optional Gaussian blur. The result is always an
// *image.NRGBA with bounds starting at (0,0), which is the pixel layout the
// PNG data-URI encoder expects.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left. For
// regions, (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Thumbnail never modifies its input.
package imaging
