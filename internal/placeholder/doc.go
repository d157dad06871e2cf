// Package placeholder turns compact perceptual hashes into small displayable
// images.
//
// A placeholder hash (BlurHash) is decoded into a tiny RGBA pixel grid by a
// Decoder, and the grid is serialized into a PNG data URI with
// internal/pngdata. The result can be inlined directly into HTML or JSON as
// a loading placeholder.
//
// Hashes are produced by Encode, which shrinks the source image to at most
// 100x100 before hashing. Only the shape of the color field survives, so a
// hash is typically 20-30 characters regardless of the source size.
package placeholder
