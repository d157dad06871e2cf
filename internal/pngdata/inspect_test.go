package pngdata

import (
	"errors"
	"testing"
)

func TestParseDataURI(t *testing.T) {
	uri, err := RGBAToDataURI([]byte{1, 2, 3, 4}, 1, 1)
	if err != nil {
		t.Fatalf("RGBAToDataURI failed: %v", err)
	}

	container, err := ParseDataURI(uri)
	if err != nil {
		t.Fatalf("ParseDataURI failed: %v", err)
	}
	if string(container[:8]) != signature {
		t.Errorf("signature: got % x", container[:8])
	}
}

func TestParseDataURI_Errors(t *testing.T) {
	if _, err := ParseDataURI("data:image/jpeg;base64,AAAA"); !errors.Is(err, ErrNotDataURI) {
		t.Errorf("jpeg URI: got %v, want ErrNotDataURI", err)
	}
	if _, err := ParseDataURI(DataURIPrefix + "!!!"); err == nil {
		t.Error("invalid base64 should fail")
	}
}

func TestInspect(t *testing.T) {
	container, err := NewEncoder().Encode(createGradient(7, 3), 7, 3)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	info, err := Inspect(container)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Width != 7 || info.Height != 3 {
		t.Errorf("dimensions: got %dx%d, want 7x3", info.Width, info.Height)
	}
	if info.BitDepth != 8 || info.ColorType != 6 || info.Interlace != 0 {
		t.Errorf("header: depth %d, color %d, interlace %d", info.BitDepth, info.ColorType, info.Interlace)
	}
	if info.Size != len(container) {
		t.Errorf("Size: got %d, want %d", info.Size, len(container))
	}
	if len(info.Chunks) != 3 {
		t.Fatalf("chunks: got %d, want 3", len(info.Chunks))
	}
	if c := info.Chunks[2]; c.Type != "IEND" || c.Length != 0 || c.CRC != "ae426082" {
		t.Errorf("IEND: got %+v", c)
	}
}

func TestInspect_MissingHeader(t *testing.T) {
	container := append([]byte(signature), appendChunk(nil, typeIEND, nil)...)

	if _, err := Inspect(container); err == nil {
		t.Error("Inspect should fail without IHDR")
	}
}
