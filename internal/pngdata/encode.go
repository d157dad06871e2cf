package pngdata

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/klauspost/compress/zlib"
)

// DataURIPrefix is prepended to the base64 container by DataURI.
const DataURIPrefix = "data:image/png;base64,"

const (
	bitDepth      = 8
	colorTypeRGBA = 6
	bytesPerPixel = 4

	// maxDimension is the largest width or height IHDR can carry.
	maxDimension = math.MaxInt32
)

// ErrInvalidDimensions reports a pixel buffer whose size does not match the
// requested width and height, or dimensions PNG cannot represent.
var ErrInvalidDimensions = errors.New("pngdata: invalid dimensions")

// Option configures an Encoder.
type Option func(*Encoder)

// WithCompressor replaces the default zlib compressor.
func WithCompressor(c Compressor) Option {
	return func(e *Encoder) {
		e.compressor = c
	}
}

// WithLevel sets the compression level passed to the Compressor.
func WithLevel(level int) Option {
	return func(e *Encoder) {
		e.level = level
	}
}

// Encoder turns RGBA pixel buffers into PNG containers.
type Encoder struct {
	compressor Compressor
	level      int
}

// NewEncoder returns an Encoder using ZlibCompressor at best compression
// unless overridden by opts.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		compressor: ZlibCompressor{},
		level:      zlib.BestCompression,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncoder = NewEncoder()

// RGBAToDataURI encodes pix with the default Encoder and returns a
// "data:image/png;base64," URI.
func RGBAToDataURI(pix []byte, width, height int) (string, error) {
	return defaultEncoder.DataURI(pix, width, height)
}

// DataURI is like Encode but returns the container as a base64 data URI.
func (e *Encoder) DataURI(pix []byte, width, height int) (string, error) {
	container, err := e.Encode(pix, width, height)
	if err != nil {
		return "", err
	}
	return DataURIPrefix + base64.StdEncoding.EncodeToString(container), nil
}

// Encode returns the PNG container for a row-major, non-premultiplied RGBA
// buffer of exactly width*height*4 bytes. pix is not modified.
//
// # Errors
//
//   - ErrInvalidDimensions (wrapped) if width or height is not in 1..2^31-1
//     or len(pix) != width*height*4
//   - the Compressor's error, wrapped, if compression fails
func (e *Encoder) Encode(pix []byte, width, height int) ([]byte, error) {
	if err := validate(pix, width, height); err != nil {
		return nil, err
	}

	compressed, err := e.compressor.Compress(rawStream(pix, width, height), e.level)
	if err != nil {
		return nil, fmt.Errorf("failed to compress image data: %w", err)
	}

	out := make([]byte, 0, len(signature)+3*12+13+len(compressed))
	out = append(out, signature...)
	out = appendChunk(out, typeIHDR, header(width, height))
	out = appendChunk(out, typeIDAT, compressed)
	out = appendChunk(out, typeIEND, nil)
	return out, nil
}

func validate(pix []byte, width, height int) error {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	rowBytes := width * bytesPerPixel
	if rowBytes/bytesPerPixel != width || height > math.MaxInt/rowBytes {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	if want := rowBytes * height; len(pix) != want {
		return fmt.Errorf("%w: buffer has %d bytes, %dx%d RGBA needs %d",
			ErrInvalidDimensions, len(pix), width, height, want)
	}
	return nil
}

// header builds the 13-byte IHDR payload.
func header(width, height int) []byte {
	var h [13]byte
	binary.BigEndian.PutUint32(h[0:4], uint32(width))
	binary.BigEndian.PutUint32(h[4:8], uint32(height))
	h[8] = bitDepth
	h[9] = colorTypeRGBA
	h[10] = 0 // deflate
	h[11] = 0 // adaptive filtering
	h[12] = 0 // no interlace
	return h[:]
}

// rawStream prefixes every row with filter type 0 (None).
func rawStream(pix []byte, width, height int) []byte {
	stride := width * bytesPerPixel
	raw := make([]byte, 0, height*(1+stride))
	for y := 0; y < height; y++ {
		raw = append(raw, 0)
		raw = append(raw, pix[y*stride:(y+1)*stride]...)
	}
	return raw
}
