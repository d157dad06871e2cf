// Package pngdata serializes raw RGBA pixel grids into minimal PNG images
// and base64 data URIs.
//
// The encoder writes exactly one image layout: 8-bit RGBA, non-interlaced,
// scanline filter "None", and the three chunks IHDR, IDAT and IEND. It is
// meant for small placeholder thumbnails (typically 100x100 or less) where a
// full encoder is unnecessary.
//
// # Output Format
//
// A container is the 8-byte PNG signature followed by:
//   - IHDR: width, height (big-endian uint32), bit depth 8, color type 6,
//     compression 0, filter 0, interlace 0
//   - IDAT: zlib stream of the raw scanlines, each prefixed with filter byte 0
//   - IEND: empty
//
// Every chunk is framed as length ‖ type ‖ data ‖ CRC-32(type ‖ data), with
// all integers in network byte order.
//
// # Compression
//
// Compression is delegated to a Compressor. The default is a zlib writer from
// github.com/klauspost/compress at best compression, so identical input
// always produces identical output.
//
// # Thread Safety
//
// Encoder values are immutable after construction and safe for concurrent
// use. The CRC lookup table is built once per process on first use.
package pngdata
