// Package compress wraps the compression formats used for tile payloads and
// for cached renderings.
//
// Tile servers commonly deliver vector tiles gzip or zstd compressed; Detect
// and Decompress recognize both by their magic bytes. The block codecs (LZ4,
// S2) have no framing and are only used for data this module wrote itself.
package compress

import (
	"bytes"
	"fmt"
)

// Type identifies a compression format
type Type uint8

const (
	TypeNone Type = iota
	TypeGzip
	TypeZstd
	TypeLZ4
	TypeS2
)

// String returns the name of the compression type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeGzip:
		return "gzip"
	case TypeZstd:
		return "zstd"
	case TypeLZ4:
		return "lz4"
	case TypeS2:
		return "s2"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ParseType parses a compression type name as returned by Type.String.
func ParseType(name string) (Type, error) {
	for t := TypeNone; t <= TypeS2; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return TypeNone, fmt.Errorf("unknown compression type %q", name)
}

// Compressor compresses a complete buffer.
//
// The returned slice is newly allocated and owned by the caller; the input
// is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same type.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// MaxDecompressedSize bounds the output of every decompressor in this package
const MaxDecompressedSize = 128 * 1024 * 1024

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeGzip: NewGzipCodec(),
	TypeZstd: NewZstdCodec(),
	TypeLZ4:  NewLZ4Codec(),
	TypeS2:   NewS2Codec(),
}

// GetCodec retrieves the built-in Codec for the compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Detect returns the framed compression format of data, or TypeNone.
//
// Only self-describing formats are detected. An uncompressed vector tile
// starts with a protobuf field tag (0x1a for layers) and never matches.
func Detect(data []byte) Type {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return TypeGzip
	case bytes.HasPrefix(data, zstdMagic):
		return TypeZstd
	default:
		return TypeNone
	}
}

// Decompress decompresses gzip or zstd data and returns other data unchanged.
// The detected type is returned along with the payload.
func Decompress(data []byte) ([]byte, Type, error) {
	t := Detect(data)
	if t == TypeNone {
		return data, t, nil
	}

	codec, err := GetCodec(t)
	if err != nil {
		return nil, t, err
	}
	out, err := codec.Decompress(data)
	if err != nil {
		return nil, t, err
	}

	return out, t, nil
}
