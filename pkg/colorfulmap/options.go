package colorfulmap

import (
	"io"

	"github.com/pyfisch/colorful-map/internal/painter"
)

// RenderOptions configures rendering behavior.
type RenderOptions struct {
	// OutputExtent is the pixel size of the rendered tile. Default is 256.
	OutputExtent float32

	// DefaultSortRank is the rank of features without a sort_rank tag.
	// Default is 500, above regular map content.
	DefaultSortRank uint16

	// SkipInvalidFeatures leaves malformed features out instead of failing
	// the whole tile. Default is false.
	SkipInvalidFeatures bool

	// CollectFeatures keeps a record of every painted feature for
	// Tile.Features and the hit testing queries. Default is false.
	CollectFeatures bool

	// LayerFilter restricts rendering to the named layers. Empty renders all.
	LayerFilter []string

	// Decompress detects gzip and zstd compressed payloads and decompresses
	// them before decoding. Default is true.
	Decompress bool

	// ErrorLog receives one line for every skipped feature. Nil discards them.
	ErrorLog io.Writer
}

// DefaultRenderOptions returns default options.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		OutputExtent:        256,
		DefaultSortRank:     painter.DefaultSortRank,
		SkipInvalidFeatures: false,
		CollectFeatures:     false,
		LayerFilter:         nil,
		Decompress:          true,
		ErrorLog:            nil,
	}
}

func (o RenderOptions) paintOptions() painter.PaintOptions {
	return painter.PaintOptions{
		OutputExtent:        o.OutputExtent,
		DefaultSortRank:     o.DefaultSortRank,
		SkipInvalidFeatures: o.SkipInvalidFeatures,
		CollectFeatures:     o.CollectFeatures,
		LayerFilter:         o.LayerFilter,
		ErrorLog:            o.ErrorLog,
	}
}

// CacheOptions configures a TileCache.
type CacheOptions struct {
	// MaxMemory bounds the compressed size of all cached tiles in bytes.
	// Zero means unlimited.
	MaxMemory int64

	// Compression names the codec for cached SVG: "lz4" (default), "s2",
	// "zstd", "gzip" or "none".
	Compression string
}

// DefaultCacheOptions returns a 64MB LZ4 compressed cache.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		MaxMemory:   64 * 1024 * 1024,
		Compression: "lz4",
	}
}
