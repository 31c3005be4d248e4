package painter

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt/vectortile"
)

// DefaultSortRank is used for features without a sort_rank tag. These are
// usually labels, displayed above all other content.
const DefaultSortRank uint16 = 500

// GeometryType represents the type of a feature geometry
type GeometryType int

const (
	GeometryTypeUnknown GeometryType = iota
	GeometryTypePoint
	GeometryTypeLineString
	GeometryTypePolygon
)

// String returns the string representation of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// geomTypeFromWire converts the vector tile enum to GeometryType
func geomTypeFromWire(t vectortile.Tile_GeomType) GeometryType {
	switch t {
	case vectortile.Tile_POINT:
		return GeometryTypePoint
	case vectortile.Tile_LINESTRING:
		return GeometryTypeLineString
	case vectortile.Tile_POLYGON:
		return GeometryTypePolygon
	default:
		return GeometryTypeUnknown
	}
}

// pathWriter is satisfied by Rank and by *strings.Builder scratch buffers
type pathWriter interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

// attrEscaper keeps tag text from breaking out of an attribute value
var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// Feature is a view over one vector tile feature with its decoded tags.
//
// Features are created and painted one at a time while painting a layer and
// do not outlive it.
type Feature struct {
	// ID comes from the "id" tag, or from the feature record when the tag is absent
	ID    int64
	HasID bool

	Type     GeometryType
	Tags     TagMap
	Geometry []uint32

	// Layer is the name of the containing layer
	Layer string
	// Scale converts layer coordinates to output pixels
	Scale float32
	// SortRank is the rank this feature is drawn at
	SortRank uint16

	bounds    orb.Bound
	hasBounds bool
}

// NewFeature creates a feature view from a raw feature and its decoded tags.
func NewFeature(raw *vectortile.Tile_Feature, tags TagMap, layer string, scale float32, defaultRank uint16) *Feature {
	f := &Feature{
		Type:     geomTypeFromWire(raw.GetType()),
		Tags:     tags,
		Geometry: raw.GetGeometry(),
		Layer:    layer,
		Scale:    scale,
		SortRank: defaultRank,
	}

	if v, ok := tags["id"]; ok {
		f.ID, f.HasID = v.Int64()
	}
	if !f.HasID && raw.Id != nil {
		f.ID, f.HasID = int64(*raw.Id), true
	}

	if v, ok := tags["sort_rank"]; ok {
		if rank, ok := v.Uint16(); ok {
			f.SortRank = rank
		}
	}

	return f
}

// Kind returns the "kind" tag if it is a string.
func (f *Feature) Kind() (string, bool) {
	v, ok := f.Tags["kind"]
	if !ok {
		return "", false
	}
	return v.Str()
}

// Paintable reports whether Paint produces output for this feature.
// Points usually carry labels and are not drawn; unknown geometries are ignored.
func (f *Feature) Paintable() bool {
	return f.Type == GeometryTypeLineString || f.Type == GeometryTypePolygon
}

// Bounds returns the pixel space bounding box of the painted geometry.
// It is only known after a successful Paint of a feature with vertices.
func (f *Feature) Bounds() (orb.Bound, bool) {
	return f.bounds, f.hasBounds
}

// Paint writes the SVG fragment of the feature to w.
//
// Line strings and polygons become one <path> element. Text written before an
// error is not rolled back.
func (f *Feature) Paint(w pathWriter) error {
	if !f.Paintable() {
		return nil
	}

	w.WriteString("<path")
	if err := f.paintMetadata(w); err != nil {
		return err
	}
	// multi-polygons have holes and are filled with the even-odd rule in SVG
	if err := f.paintDescription(w, f.Type == GeometryTypePolygon); err != nil {
		return err
	}
	w.WriteString("></path>\n")

	return nil
}

// paintMetadata writes
// class="layer-{} kind-{} (boundary)? (is_tunnel)? (is_bridge)? min-zoom-{}" (data-id="{}")?
func (f *Feature) paintMetadata(w pathWriter) error {
	kind, ok := f.Kind()
	if !ok {
		return &ErrMissingRequiredTag{Tag: "kind"}
	}

	w.WriteString(` class="layer-`)
	attrEscaper.WriteString(w, f.Layer)
	w.WriteString(" kind-")
	attrEscaper.WriteString(w, kind)

	for _, flag := range []string{"boundary", "is_tunnel", "is_bridge"} {
		if v, ok := f.Tags[flag]; ok && v.Truthy() {
			w.WriteByte(' ')
			w.WriteString(flag)
		}
	}

	var minZoom float32
	if v, ok := f.Tags["min_zoom"]; ok {
		minZoom, _ = v.Float32()
	}
	var scratch [32]byte
	w.WriteString(" min-zoom-")
	w.Write(appendFloat32(scratch[:0], float32(math.Floor(float64(minZoom)))))
	w.WriteByte('"')

	if f.HasID {
		w.WriteString(` data-id="`)
		w.Write(strconv.AppendInt(scratch[:0], f.ID, 10))
		w.WriteByte('"')
	}

	return nil
}

// paintDescription writes the d attribute by draining a Cursor over the geometry.
func (f *Feature) paintDescription(w pathWriter, closePath bool) error {
	var (
		scratch [64]byte
		bounds  orb.Bound
		started bool
	)

	w.WriteString(` d="`)
	for cmd, err := range NewCursor(f.Geometry, f.Scale).All() {
		if err != nil {
			return err
		}

		switch cmd.Op {
		case OpMoveTo, OpLineTo:
			buf := append(scratch[:0], cmd.Op.String()...)
			buf = append(buf, ' ')
			buf = appendFloat32(buf, cmd.X)
			buf = append(buf, ' ')
			buf = appendFloat32(buf, cmd.Y)
			buf = append(buf, ' ')
			w.Write(buf)

			p := orb.Point{float64(cmd.X), float64(cmd.Y)}
			if !started {
				bounds = orb.Bound{Min: p, Max: p}
				started = true
			} else {
				bounds = bounds.Extend(p)
			}
		case OpClosePath:
			if !closePath {
				return ErrIllegalClosePath
			}
			w.WriteString("Z ")
		}
	}
	w.WriteByte('"')

	f.bounds, f.hasBounds = bounds, started
	return nil
}
