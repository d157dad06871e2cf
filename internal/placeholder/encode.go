package placeholder

import (
	"errors"
	"fmt"
	"image"

	"github.com/buckket/go-blurhash"
	"github.com/disintegration/imaging"
)

// MaxEncodeSize is the largest edge hashed by Encode; larger images are
// shrunk first. The hash only keeps low frequencies, so detail beyond this
// is wasted work.
const MaxEncodeSize = 100

// ErrInvalidComponents is returned when a component count is outside 1..9.
var ErrInvalidComponents = errors.New("placeholder: components must be between 1 and 9")

// Hash is an encoded placeholder together with the source image's geometry.
type Hash struct {
	Hash     string `json:"hash"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	HasAlpha bool   `json:"has_alpha"`
}

// Encode computes a BlurHash with componentsX x componentsY components.
// Width and Height in the result are those of img, not of the thumbnail
// that was hashed.
func Encode(img image.Image, componentsX, componentsY int) (*Hash, error) {
	if componentsX < 1 || componentsX > 9 || componentsY < 1 || componentsY > 9 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidComponents, componentsX, componentsY)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("cannot hash empty image")
	}

	thumb := imaging.Fit(img, MaxEncodeSize, MaxEncodeSize, imaging.Lanczos)

	hash, err := blurhash.Encode(componentsX, componentsY, thumb)
	if err != nil {
		return nil, fmt.Errorf("failed to encode blurhash: %w", err)
	}

	return &Hash{
		Hash:     hash,
		Width:    b.Dx(),
		Height:   b.Dy(),
		HasAlpha: !thumb.Opaque(),
	}, nil
}
