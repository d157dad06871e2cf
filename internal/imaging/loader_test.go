package imaging

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// createTestImage creates a simple test image file and returns its path.
// The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.Len() != 0 {
		t.Errorf("new cache Len: got %d, want 0", cache.Len())
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 40, 30, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	img, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", b.Dx(), b.Dy())
	}

	// Second load must come from the cache even if the file is gone
	os.Remove(imgPath)
	again, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if again != img {
		t.Error("cached Load returned a different image")
	}
}

func TestImageCache_LoadErrors(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("Load should fail for a missing file")
	}

	notImage := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(notImage, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(notImage); err == nil {
		t.Error("Load should fail for a non-image file")
	}
	if cache.Len() != 0 {
		t.Errorf("failed loads should not be cached, Len = %d", cache.Len())
	}
}

func TestImageCache_EvictAndClear(t *testing.T) {
	cache := NewImageCache()
	a := createTestImage(t, 5, 5, color.White)
	b := createTestImage(t, 5, 5, color.Black)
	defer os.Remove(a)
	defer os.Remove(b)

	for _, p := range []string{a, b} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}
	if cache.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", cache.Len())
	}

	cache.Evict(a)
	if cache.Len() != 1 {
		t.Errorf("Len after Evict: got %d, want 1", cache.Len())
	}

	// Should not panic
	cache.Evict("/nonexistent/path")

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", cache.Len())
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{128, 128, 128, 255})
	defer os.Remove(imgPath)

	var wg sync.WaitGroup
	errors := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Load(imgPath)
			if err != nil {
				errors <- err
			}
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})
	defer os.Remove(imgPath)

	info, err := LoadImageInfo(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 200 || info.Height != 150 {
		t.Errorf("dimensions: got %dx%d, want 200x150", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestLoadImageInfo_FormatFromContent(t *testing.T) {
	// A GIF saved with a .png extension is still reported as gif
	path := filepath.Join(t.TempDir(), "mislabeled.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.Black, color.White})
	if err := gif.Encode(f, img, nil); err != nil {
		f.Close()
		t.Fatalf("failed to encode gif: %v", err)
	}
	f.Close()

	info, err := LoadImageInfo(NewImageCache(), path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Format != "gif" {
		t.Errorf("Format: got %s, want gif", info.Format)
	}
}
