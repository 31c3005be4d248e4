package painter

import "io"

// PaintOptions configures painting behavior
type PaintOptions struct {
	// OutputExtent is the width and height of the output in pixels.
	// Layer coordinates are scaled by OutputExtent / layer extent.
	// Default: 256
	OutputExtent float32

	// DefaultSortRank is used for features without a sort_rank tag
	// Default: 500
	DefaultSortRank uint16

	// SkipInvalidFeatures: if true, features that fail to decode or paint are
	// left out and painting continues with the next feature.
	// Default: false (the first error aborts the whole tile)
	SkipInvalidFeatures bool

	// CollectFeatures: if true, the result lists every painted feature with
	// its pixel bounds
	// Default: false
	CollectFeatures bool

	// LayerFilter: if non-empty, only paint these layers
	// Empty means paint all layers
	LayerFilter []string

	// ErrorLog receives one line per skipped feature when SkipInvalidFeatures
	// is set. Nil discards the messages.
	ErrorLog io.Writer
}

// DefaultPaintOptions returns paint options with defaults
func DefaultPaintOptions() PaintOptions {
	return PaintOptions{
		OutputExtent:        256,
		DefaultSortRank:     DefaultSortRank,
		SkipInvalidFeatures: false,
		CollectFeatures:     false,
		LayerFilter:         nil,
		ErrorLog:            nil,
	}
}
