package placeholder

import (
	"errors"
	"fmt"

	"github.com/buckket/go-blurhash"

	"github.com/ironsheep/placeholder-tools-mcp/internal/pngdata"
)

const (
	// DefaultDecodeSize is the edge length used when no size is requested.
	DefaultDecodeSize = 32

	// MaxDecodeSize bounds decoded placeholders; they are never meant to be
	// full-size images.
	MaxDecodeSize = 100
)

// ErrInvalidSize is returned when a decode size is negative or above
// MaxDecodeSize.
var ErrInvalidSize = errors.New("placeholder: invalid decode size")

// Decoder expands a placeholder hash into RGBA pixels.
type Decoder interface {
	DecodeToRGBA(hash []byte) (*Pixels, error)
}

// BlurHashDecoder decodes BlurHash strings. Zero fields select defaults:
// DefaultDecodeSize for Width and Height, and 1 for Punch.
type BlurHashDecoder struct {
	Width  int
	Height int

	// Punch scales the AC components; values above 1 increase contrast.
	Punch int
}

// DecodeToRGBA implements Decoder.
func (d BlurHashDecoder) DecodeToRGBA(hash []byte) (*Pixels, error) {
	w, h := d.Width, d.Height
	if w == 0 {
		w = DefaultDecodeSize
	}
	if h == 0 {
		h = DefaultDecodeSize
	}
	if w < 0 || h < 0 || w > MaxDecodeSize || h > MaxDecodeSize {
		return nil, fmt.Errorf("%w: %dx%d (max %d)", ErrInvalidSize, w, h, MaxDecodeSize)
	}
	punch := d.Punch
	if punch <= 0 {
		punch = 1
	}

	img, err := blurhash.Decode(string(hash), w, h, punch)
	if err != nil {
		return nil, fmt.Errorf("failed to decode blurhash: %w", err)
	}
	return FromImage(img), nil
}

// SizeFor picks a decode size that keeps the aspect ratio of an origW x origH
// image with the longer side at DefaultDecodeSize. Unknown (non-positive)
// dimensions yield a square.
func SizeFor(origW, origH int) (int, int) {
	if origW <= 0 || origH <= 0 {
		return DefaultDecodeSize, DefaultDecodeSize
	}
	if origW >= origH {
		h := (origH*DefaultDecodeSize + origW/2) / origW
		return DefaultDecodeSize, max(h, 1)
	}
	w := (origW*DefaultDecodeSize + origH/2) / origH
	return max(w, 1), DefaultDecodeSize
}

// Result is a decoded placeholder ready for display.
type Result struct {
	DataURI      string `json:"data_uri"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AverageColor string `json:"average_color"`
}

// DataURI decodes hash with dec and serializes the pixels with enc.
// A nil enc uses pngdata's defaults.
func DataURI(dec Decoder, enc *pngdata.Encoder, hash []byte) (*Result, error) {
	if enc == nil {
		enc = pngdata.NewEncoder()
	}

	px, err := dec.DecodeToRGBA(hash)
	if err != nil {
		return nil, err
	}

	uri, err := enc.DataURI(px.Pix, px.Width, px.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}

	return &Result{
		DataURI:      uri,
		Width:        px.Width,
		Height:       px.Height,
		AverageColor: AverageColor(px),
	}, nil
}
