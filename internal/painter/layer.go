package painter

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb/encoding/mvt/vectortile"
)

// Layer groups features of similar type and use.
//
// Layers are the storage unit of vector tiles: every layer carries its own
// extent and its own key and value dictionaries.
type Layer struct {
	raw   *vectortile.Tile_Layer
	scale float32
}

// NewLayer wraps a raw layer. The scale maps the layer extent onto
// outputExtent pixels.
func NewLayer(raw *vectortile.Tile_Layer, outputExtent float32) (*Layer, error) {
	extent := raw.GetExtent()
	if extent == 0 {
		return nil, &ErrInvalidExtent{Layer: raw.GetName(), Extent: extent}
	}
	return &Layer{
		raw:   raw,
		scale: outputExtent / float32(extent),
	}, nil
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.raw.GetName()
}

// Scale returns the factor applied to layer coordinates.
func (l *Layer) Scale() float32 {
	return l.scale
}

// Len returns the number of features in the layer.
func (l *Layer) Len() int {
	return len(l.raw.GetFeatures())
}

// Tags decodes the tags of a feature using the layer dictionaries.
func (l *Layer) Tags(tags []uint32) (TagMap, error) {
	return DecodeTagMap(l.raw.GetKeys(), l.raw.GetValues(), tags)
}

// Feature decodes the tags of the i-th feature and returns its view.
func (l *Layer) Feature(i int, defaultRank uint16) (*Feature, error) {
	raw := l.raw.GetFeatures()[i]
	tags, err := l.Tags(raw.GetTags())
	if err != nil {
		return nil, err
	}
	return NewFeature(raw, tags, l.Name(), l.scale, defaultRank), nil
}

// Paint paints all features of the layer into the store.
//
// Without SkipInvalidFeatures the first failing feature stops painting and
// its error is returned; text already written for that feature stays in the
// store. With SkipInvalidFeatures every feature is painted into a scratch
// buffer first, so skipped features leave no output behind.
func (l *Layer) Paint(store *RankStore, opts PaintOptions, result *Result) error {
	var scratch strings.Builder

	for i := range l.raw.GetFeatures() {
		feature, err := l.Feature(i, opts.DefaultSortRank)
		if err == nil {
			if opts.SkipInvalidFeatures {
				scratch.Reset()
				err = feature.Paint(&scratch)
				if err == nil {
					store.Select(feature.SortRank).WriteString(scratch.String())
				}
			} else {
				err = feature.Paint(store.Select(feature.SortRank))
			}
		}

		if err != nil {
			if !opts.SkipInvalidFeatures {
				return fmt.Errorf("layer %q, feature %d: %w", l.Name(), i, err)
			}
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "layer %q feature %d: skipped: %v\n", l.Name(), i, err)
			}
			result.Skipped++
			continue
		}

		if !feature.Paintable() {
			continue
		}
		result.Painted++
		if opts.CollectFeatures {
			result.Features = append(result.Features, newPaintedFeature(feature))
		}
	}

	return nil
}
