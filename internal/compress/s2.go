package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Codec stores rendered SVG as one S2 block. S2 trades a slightly worse
// ratio than LZ4 for faster encoding.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 block codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress encodes data into one S2 block.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes one S2 block. The decoded length stored in the block
// header is checked against MaxDecompressedSize before allocating.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if size > MaxDecompressedSize {
		return nil, fmt.Errorf("s2 decompression failed: size %d exceeds %d bytes", size, MaxDecompressedSize)
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	return out, nil
}
