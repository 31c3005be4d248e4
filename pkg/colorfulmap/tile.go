package colorfulmap

import (
	"cmp"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/pyfisch/colorful-map/internal/painter"
)

// Tile is a rendered vector tile.
//
// All fields are private; Features and the hit testing queries are only
// populated when the tile was rendered with CollectFeatures.
type Tile struct {
	svg          string
	painted      int
	skipped      int
	features     []Feature
	spatialIndex *spatialIndex
}

// SVG returns the rendered <path> elements in drawing order. Embed them in
// an <svg> element, for example with WrapSVG.
func (t *Tile) SVG() string { return t.svg }

// Painted returns the number of features drawn.
func (t *Tile) Painted() int { return t.painted }

// Skipped returns the number of features left out because they were
// malformed. Always zero unless SkipInvalidFeatures was set.
func (t *Tile) Skipped() int { return t.skipped }

// Features returns the painted features in the order they were read.
func (t *Tile) Features() []Feature { return t.features }

// FeatureCount returns the number of collected features.
func (t *Tile) FeatureCount() int { return len(t.features) }

// Feature describes one painted feature of a tile.
type Feature struct {
	layer        string
	kind         string
	id           int64
	hasID        bool
	geometryType GeometryType
	sortRank     uint16
	bounds       Bounds
	hasBounds    bool

	// seq is the position in paint order
	seq int
}

// Layer returns the name of the layer containing the feature.
func (f Feature) Layer() string { return f.layer }

// Kind returns the kind tag, also used as CSS class "kind-{kind}".
func (f Feature) Kind() string { return f.kind }

// ID returns the feature id and whether the feature has one.
func (f Feature) ID() (int64, bool) { return f.id, f.hasID }

// GeometryType returns LineString or Polygon.
func (f Feature) GeometryType() GeometryType { return f.geometryType }

// SortRank returns the rank the feature was drawn at.
func (f Feature) SortRank() uint16 { return f.sortRank }

// Bounds returns the pixel bounding box of the feature. Features with an
// empty geometry have no bounds.
func (f Feature) Bounds() (Bounds, bool) { return f.bounds, f.hasBounds }

// GeometryType represents the type of a painted geometry.
type GeometryType int

const (
	// GeometryTypeLineString represents a line composed of connected points.
	GeometryTypeLineString GeometryType = iota + 1

	// GeometryTypePolygon represents one or more polygons with holes.
	GeometryTypePolygon
)

// String returns the string representation of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// convertResult converts an internal paint result to a public tile
func convertResult(result *painter.Result) *Tile {
	tile := &Tile{
		svg:     result.SVG,
		painted: result.Painted,
		skipped: result.Skipped,
	}
	if len(result.Features) == 0 {
		return tile
	}

	tile.features = make([]Feature, len(result.Features))
	for i, f := range result.Features {
		feature := Feature{
			layer:     f.Layer,
			kind:      f.Kind,
			id:        f.ID,
			hasID:     f.HasID,
			sortRank:  f.SortRank,
			hasBounds: f.HasBounds,
			seq:       i,
		}
		switch f.Type {
		case painter.GeometryTypeLineString:
			feature.geometryType = GeometryTypeLineString
		case painter.GeometryTypePolygon:
			feature.geometryType = GeometryTypePolygon
		}
		if f.HasBounds {
			feature.bounds = Bounds{
				MinX: f.Bounds.Min.X(),
				MinY: f.Bounds.Min.Y(),
				MaxX: f.Bounds.Max.X(),
				MaxY: f.Bounds.Max.Y(),
			}
		}
		tile.features[i] = feature
	}

	tile.buildSpatialIndex()
	return tile
}

// spatialIndex provides O(log n) hit testing using an R-tree.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature *Feature
}

// minExtent pads every rectangle handed to the R-tree. The tree rejects
// empty rectangles and does not count touching edges as intersecting.
const minExtent = 0.0001

// Bounds implements rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	return boundsRect(f.feature.bounds)
}

func boundsRect(b Bounds) rtreego.Rect {
	b = b.Expand(minExtent)
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{b.MaxX - b.MinX, b.MaxY - b.MinY})
	return rect
}

func (t *Tile) buildSpatialIndex() {
	rtree := rtreego.NewTree(2, 25, 50)
	for i := range t.features {
		if !t.features[i].hasBounds {
			continue
		}
		rtree.Insert(&indexedFeature{feature: &t.features[i]})
	}

	t.spatialIndex = &spatialIndex{rtree: rtree}
}

// FeaturesAt returns the features whose bounding box contains the pixel
// (x, y), in drawing order: the last feature is drawn on top.
func (t *Tile) FeaturesAt(x, y float64) []Feature {
	point := Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
	return t.query(point, func(b Bounds) bool { return b.Contains(x, y) })
}

// FeaturesInBounds returns the features whose bounding box intersects the
// given pixel rectangle, in drawing order.
//
// Example:
//
//	// features in the top left quarter of the tile
//	features := tile.FeaturesInBounds(colorfulmap.Bounds{MaxX: 128, MaxY: 128})
func (t *Tile) FeaturesInBounds(bounds Bounds) []Feature {
	return t.query(bounds, bounds.Intersects)
}

func (t *Tile) query(bounds Bounds, match func(Bounds) bool) []Feature {
	if bounds.MinX > bounds.MaxX || bounds.MinY > bounds.MaxY {
		return nil
	}

	var result []Feature
	if t.spatialIndex == nil || t.spatialIndex.rtree == nil {
		// No spatial index, fallback to linear search
		for _, f := range t.features {
			if f.hasBounds && match(f.bounds) {
				result = append(result, f)
			}
		}
	} else {
		for _, spatial := range t.spatialIndex.rtree.SearchIntersect(boundsRect(bounds)) {
			f := spatial.(*indexedFeature).feature
			// candidates are padded by minExtent
			if match(f.bounds) {
				result = append(result, *f)
			}
		}
	}

	slices.SortFunc(result, func(a, b Feature) int {
		if c := cmp.Compare(a.sortRank, b.sortRank); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return result
}
