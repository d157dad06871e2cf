package pngdata

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// Compressor produces a zlib (RFC 1950) stream from raw bytes. Level follows
// the compress/flate convention: 0 stores, 9 is best compression.
type Compressor interface {
	Compress(raw []byte, level int) ([]byte, error)
}

// ZlibCompressor is the default Compressor, backed by klauspost/compress.
type ZlibCompressor struct{}

// Compress implements Compressor.
func (ZlibCompressor) Compress(raw []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(raw)/2 + 64)

	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, fmt.Errorf("failed to compress scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush zlib stream: %w", err)
	}
	return buf.Bytes(), nil
}
