package pngdata

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// ErrNotDataURI is returned by ParseDataURI for strings without
// DataURIPrefix.
var ErrNotDataURI = errors.New("pngdata: not a PNG data URI")

// ParseDataURI returns the container bytes embedded in a PNG data URI.
func ParseDataURI(uri string) ([]byte, error) {
	payload, ok := strings.CutPrefix(uri, DataURIPrefix)
	if !ok {
		return nil, ErrNotDataURI
	}
	container, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return container, nil
}

// ChunkInfo summarizes one chunk for display.
type ChunkInfo struct {
	Type   string `json:"type"`
	Length int    `json:"length"`
	CRC    string `json:"crc"`
}

// Info is the header and chunk layout of a container.
type Info struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	BitDepth  int         `json:"bit_depth"`
	ColorType int         `json:"color_type"`
	Interlace int         `json:"interlace"`
	Size      int         `json:"size_bytes"`
	Chunks    []ChunkInfo `json:"chunks"`
}

// Inspect validates container with Chunks and decodes its IHDR.
func Inspect(container []byte) (*Info, error) {
	chunks, err := Chunks(container)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 || chunks[0].Type != "IHDR" || len(chunks[0].Data) != 13 {
		return nil, fmt.Errorf("pngdata: first chunk is not a 13-byte IHDR")
	}

	h := chunks[0].Data
	info := &Info{
		Width:     int(binary.BigEndian.Uint32(h[0:4])),
		Height:    int(binary.BigEndian.Uint32(h[4:8])),
		BitDepth:  int(h[8]),
		ColorType: int(h[9]),
		Interlace: int(h[12]),
		Size:      len(container),
		Chunks:    make([]ChunkInfo, len(chunks)),
	}
	for i, c := range chunks {
		info.Chunks[i] = ChunkInfo{
			Type:   c.Type,
			Length: len(c.Data),
			CRC:    fmt.Sprintf("%08x", c.CRC),
		}
	}
	return info, nil
}
