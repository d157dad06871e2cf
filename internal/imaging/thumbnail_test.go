package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestThumbnail_DefaultSize(t *testing.T) {
	img := createPatternImage(400, 200)

	thumb, err := Thumbnail(img, ThumbnailOptions{})
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	if b := thumb.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50", b.Dx(), b.Dy())
	}
	if thumb.Bounds().Min != (image.Point{}) {
		t.Errorf("origin: got %v, want (0,0)", thumb.Bounds().Min)
	}
}

func TestThumbnail_NoUpscale(t *testing.T) {
	img := createPatternImage(20, 10)

	thumb, err := Thumbnail(img, ThumbnailOptions{MaxSize: 64})
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}
	if b := thumb.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", b.Dx(), b.Dy())
	}
}

func TestThumbnail_ResizeDisabled(t *testing.T) {
	img := createPatternImage(300, 300)

	thumb, err := Thumbnail(img, ThumbnailOptions{MaxSize: -1})
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}
	if b := thumb.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Errorf("dimensions: got %dx%d, want 300x300", b.Dx(), b.Dy())
	}
}

func TestThumbnail_Region(t *testing.T) {
	img := createPatternImage(100, 100)

	thumb, err := Thumbnail(img, ThumbnailOptions{Region: &Region{X1: 50, Y1: 0, X2: 100, Y2: 50}})
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	if b := thumb.Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Fatalf("dimensions: got %dx%d, want 50x50", b.Dx(), b.Dy())
	}
	if c := thumb.NRGBAAt(25, 25); c.R != 0 || c.G != 255 || c.B != 0 {
		t.Errorf("center color: got %v, want green", c)
	}
}

func TestThumbnail_InvalidRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name   string
		region Region
	}{
		{"x1 negative", Region{-1, 0, 50, 50}},
		{"y2 too large", Region{0, 0, 50, 101}},
		{"empty width", Region{10, 10, 10, 20}},
		{"inverted", Region{50, 50, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.region
			if _, err := Thumbnail(img, ThumbnailOptions{Region: &r}); err == nil {
				t.Error("Thumbnail should fail for an invalid region")
			}
		})
	}
}

func TestThumbnail_Blur(t *testing.T) {
	img := createPatternImage(40, 40)

	sharp, err := Thumbnail(img, ThumbnailOptions{})
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}
	blurred, err := Thumbnail(img, ThumbnailOptions{Blur: 4})
	if err != nil {
		t.Fatalf("Thumbnail with blur failed: %v", err)
	}

	if blurred.Bounds() != sharp.Bounds() {
		t.Fatalf("blur changed bounds: %v vs %v", blurred.Bounds(), sharp.Bounds())
	}

	// On the red/green boundary the blurred image mixes both colors
	c := blurred.NRGBAAt(20, 5)
	if c.R == 0 || c.G == 0 {
		t.Errorf("boundary pixel after blur: got %v, want a red/green mix", c)
	}
}

func TestThumbnail_InvalidBlur(t *testing.T) {
	img := createPatternImage(10, 10)

	for _, radius := range []float64{-1, MaxBlurRadius + 1} {
		if _, err := Thumbnail(img, ThumbnailOptions{Blur: radius}); err == nil {
			t.Errorf("Thumbnail should fail for blur radius %.0f", radius)
		}
	}
}

func TestThumbnail_DoesNotModifyInput(t *testing.T) {
	img := createPatternImage(30, 30)
	before := append([]byte{}, img.Pix...)

	if _, err := Thumbnail(img, ThumbnailOptions{MaxSize: 10, Blur: 2}); err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}
	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatal("Thumbnail modified its input")
		}
	}
}
