package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec stores rendered SVG as a single LZ4 block.
//
// LZ4 blocks carry no length, so every block is prefixed with the
// uncompressed size as a uvarint. Decompress allocates exactly that much.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 block codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress writes the size prefix followed by one LZ4 block.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	head := binary.PutUvarint(dst, uint64(len(data)))

	lc := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[head:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:head+n], nil
}

// Decompress reads the size prefix and decodes the block into a buffer of
// that size.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, head := binary.Uvarint(data)
	if head <= 0 {
		return nil, fmt.Errorf("lz4 decompression failed: invalid size prefix")
	}
	if size > MaxDecompressedSize {
		return nil, fmt.Errorf("lz4 decompression failed: size %d exceeds %d bytes", size, MaxDecompressedSize)
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data[head:], out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4 decompression failed: got %d bytes, want %d", n, size)
	}

	return out, nil
}
