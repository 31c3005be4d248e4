package compress

// NoOpCodec keeps cache entries uncompressed, trading memory for the
// decompression cost on every cache hit.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that stores data as-is.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data itself.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
