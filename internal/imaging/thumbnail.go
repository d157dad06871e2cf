package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// DefaultThumbnailSize is the longest edge produced by Thumbnail when
// MaxSize is not set. Placeholders are rarely useful above this.
const DefaultThumbnailSize = 100

// MaxBlurRadius bounds ThumbnailOptions.Blur.
const MaxBlurRadius = 100

// ThumbnailOptions controls Thumbnail.
type ThumbnailOptions struct {
	// Region optionally restricts the source to a rectangle before resizing.
	Region *Region

	// MaxSize is the maximum width and height of the result. Images already
	// inside the box are not enlarged. Zero selects DefaultThumbnailSize;
	// a negative value disables resizing.
	MaxSize int

	// Blur is a Gaussian blur radius in pixels, applied after resizing.
	// Zero disables blurring.
	Blur float64
}

// Thumbnail crops, shrinks and optionally blurs img, returning a new image
// whose bounds start at (0,0).
//
// # Errors
//
//   - Region outside the image bounds, or with x1 >= x2 or y1 >= y2
//   - Blur outside 0..MaxBlurRadius
func Thumbnail(img image.Image, opts ThumbnailOptions) (*image.NRGBA, error) {
	if opts.Blur < 0 || opts.Blur > MaxBlurRadius {
		return nil, fmt.Errorf("blur radius %.1f outside 0-%d", opts.Blur, MaxBlurRadius)
	}

	var out *image.NRGBA
	if r := opts.Region; r != nil {
		bounds := img.Bounds()
		if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		out = imaging.Crop(img, image.Rect(r.X1, r.Y1, r.X2, r.Y2))
	} else {
		out = imaging.Clone(img)
	}

	size := opts.MaxSize
	if size == 0 {
		size = DefaultThumbnailSize
	}
	if size > 0 {
		out = imaging.Fit(out, size, size, imaging.Lanczos)
	}

	if opts.Blur > 0 {
		// bild works in premultiplied RGBA; convert back for the encoder
		out = imaging.Clone(blur.Gaussian(out, opts.Blur))
	}

	return out, nil
}
