// Package painter renders decoded vector tiles as SVG path fragments.
//
// Every line string and polygon of a tile becomes one <path> element. Paths
// are grouped by their sort_rank tag and emitted in ascending rank order, so
// features with a higher rank are drawn on top. Points are not drawn.
package painter

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt/vectortile"
)

// Painter paints vector tiles.
type Painter interface {
	// Paint renders a tile with default options
	Paint(tile *vectortile.Tile) (*Result, error)

	// PaintWithOptions renders a tile with custom options
	PaintWithOptions(tile *vectortile.Tile, opts PaintOptions) (*Result, error)
}

// Result is the output of painting one tile.
type Result struct {
	// SVG holds the concatenated <path> elements, meant to be embedded in an
	// enclosing <svg> element
	SVG string

	// Painted counts features that produced a path
	Painted int
	// Skipped counts features left out with SkipInvalidFeatures
	Skipped int

	// Features lists painted features in paint order (CollectFeatures only)
	Features []PaintedFeature
}

// PaintedFeature describes a feature that was painted
type PaintedFeature struct {
	Layer    string
	Kind     string
	ID       int64
	HasID    bool
	Type     GeometryType
	SortRank uint16

	// Bounds is the pixel space bounding box; only valid if HasBounds
	Bounds    orb.Bound
	HasBounds bool
}

func newPaintedFeature(f *Feature) PaintedFeature {
	kind, _ := f.Kind()
	bounds, ok := f.Bounds()
	return PaintedFeature{
		Layer:     f.Layer,
		Kind:      kind,
		ID:        f.ID,
		HasID:     f.HasID,
		Type:      f.Type,
		SortRank:  f.SortRank,
		Bounds:    bounds,
		HasBounds: ok,
	}
}

// defaultPainter implements the Painter interface
type defaultPainter struct{}

// NewPainter creates a new tile painter
func NewPainter() Painter {
	return &defaultPainter{}
}

// Paint renders a tile with default options
func (p *defaultPainter) Paint(tile *vectortile.Tile) (*Result, error) {
	return p.PaintWithOptions(tile, DefaultPaintOptions())
}

// PaintWithOptions renders a tile with custom options
func (p *defaultPainter) PaintWithOptions(tile *vectortile.Tile, opts PaintOptions) (*Result, error) {
	return PaintTile(tile, opts)
}

// PaintTile paints every layer of the tile into one rank store and
// serializes it.
//
// Without SkipInvalidFeatures the first error aborts the tile and no result
// is returned.
func PaintTile(tile *vectortile.Tile, opts PaintOptions) (*Result, error) {
	if opts.OutputExtent <= 0 {
		opts.OutputExtent = DefaultPaintOptions().OutputExtent
	}

	store := NewRankStore()
	result := &Result{}

	for _, raw := range tile.GetLayers() {
		if len(opts.LayerFilter) > 0 && !slices.Contains(opts.LayerFilter, raw.GetName()) {
			continue
		}

		layer, err := NewLayer(raw, opts.OutputExtent)
		if err != nil {
			if !opts.SkipInvalidFeatures {
				return nil, err
			}
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "%v: skipped %d features\n", err, len(raw.GetFeatures()))
			}
			result.Skipped += len(raw.GetFeatures())
			continue
		}
		if err := layer.Paint(store, opts, result); err != nil {
			return nil, err
		}
	}

	result.SVG = store.Finish()
	return result, nil
}
