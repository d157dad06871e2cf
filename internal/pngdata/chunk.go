package pngdata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// signature opens every PNG file.
const signature = "\x89PNG\r\n\x1a\n"

// chunkType is a 4-byte chunk tag. Using an array keeps the length fixed.
type chunkType [4]byte

var (
	typeIHDR = chunkType{'I', 'H', 'D', 'R'}
	typeIDAT = chunkType{'I', 'D', 'A', 'T'}
	typeIEND = chunkType{'I', 'E', 'N', 'D'}
)

// appendChunk appends the framed chunk length ‖ type ‖ data ‖ crc to dst.
func appendChunk(dst []byte, typ chunkType, data []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	dst = append(dst, typ[:]...)
	dst = append(dst, data...)
	crc := Update(Update(0, typ[:]), data)
	return binary.BigEndian.AppendUint32(dst, crc)
}

var (
	// ErrBadSignature is returned by Chunks when the input does not start with
	// the PNG signature.
	ErrBadSignature = errors.New("pngdata: missing PNG signature")

	// ErrTruncated is returned by Chunks when a chunk runs past the input.
	ErrTruncated = errors.New("pngdata: truncated chunk")

	// ErrChecksum is returned by Chunks when a stored CRC does not match.
	ErrChecksum = errors.New("pngdata: chunk checksum mismatch")
)

// Chunk is one framed record of a PNG container.
type Chunk struct {
	Type string `json:"type"`
	Data []byte `json:"-"`
	CRC  uint32 `json:"crc"`
}

// Chunks splits a PNG container into its chunks, verifying the signature and
// every checksum. It stops after IEND. The chunk data is not decompressed.
func Chunks(container []byte) ([]Chunk, error) {
	if !bytes.HasPrefix(container, []byte(signature)) {
		return nil, ErrBadSignature
	}
	rest := container[len(signature):]

	var chunks []Chunk
	for len(rest) > 0 {
		if len(rest) < 12 {
			return nil, ErrTruncated
		}
		n := binary.BigEndian.Uint32(rest[:4])
		if uint64(n) > uint64(len(rest)-12) {
			return nil, fmt.Errorf("%w: length %d exceeds remaining %d bytes", ErrTruncated, n, len(rest)-12)
		}
		body := rest[4 : 8+n]
		stored := binary.BigEndian.Uint32(rest[8+n : 12+n])
		if got := Checksum(body); got != stored {
			return nil, fmt.Errorf("%w: %s stored %08x, computed %08x", ErrChecksum, body[:4], stored, got)
		}
		c := Chunk{
			Type: string(body[:4]),
			Data: body[4:],
			CRC:  stored,
		}
		chunks = append(chunks, c)
		rest = rest[12+n:]
		if c.Type == "IEND" {
			break
		}
	}
	return chunks, nil
}
