package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec handles gzip streams, the usual transfer encoding of vector tiles.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a new gzip codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress compresses data into a single gzip member.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress reads all gzip members of data.
func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	if len(out) > MaxDecompressedSize {
		return nil, fmt.Errorf("gzip decompression failed: output exceeds %d bytes", MaxDecompressedSize)
	}

	return out, nil
}
