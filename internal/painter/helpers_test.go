package painter

import (
	"github.com/gogo/protobuf/proto"
	"github.com/paulmach/orb/encoding/mvt/vectortile"
)

type testTag struct {
	key   string
	value *vectortile.Tile_Value
}

type testFeature struct {
	id       *uint64
	typ      vectortile.Tile_GeomType
	tags     []testTag
	rawTags  []uint32
	geometry []uint32
}

func str(s string) *vectortile.Tile_Value {
	return &vectortile.Tile_Value{StringValue: proto.String(s)}
}

func u64(u uint64) *vectortile.Tile_Value {
	return &vectortile.Tile_Value{UintValue: proto.Uint64(u)}
}

func i64(i int64) *vectortile.Tile_Value {
	return &vectortile.Tile_Value{IntValue: proto.Int64(i)}
}

func f32(f float32) *vectortile.Tile_Value {
	return &vectortile.Tile_Value{FloatValue: proto.Float32(f)}
}

func boolv(b bool) *vectortile.Tile_Value {
	return &vectortile.Tile_Value{BoolValue: proto.Bool(b)}
}

// newTestLayer builds a layer; every tag gets its own dictionary entries.
// rawTags, when set, replace the generated tag list.
func newTestLayer(name string, extent uint32, features ...testFeature) *vectortile.Tile_Layer {
	layer := &vectortile.Tile_Layer{
		Version: proto.Uint32(2),
		Name:    proto.String(name),
		Extent:  proto.Uint32(extent),
	}

	for _, f := range features {
		raw := &vectortile.Tile_Feature{
			Id:       f.id,
			Type:     f.typ.Enum(),
			Geometry: f.geometry,
		}
		for _, tag := range f.tags {
			raw.Tags = append(raw.Tags, uint32(len(layer.Keys)), uint32(len(layer.Values)))
			layer.Keys = append(layer.Keys, tag.key)
			layer.Values = append(layer.Values, tag.value)
		}
		if f.rawTags != nil {
			raw.Tags = f.rawTags
		}
		layer.Features = append(layer.Features, raw)
	}

	return layer
}

// square returns a closed ring from (x, y) with the given side length.
func square(x, y, side int32) []uint32 {
	return []uint32{
		CommandWord(OpMoveTo, 1), EncodeZigzag(x), EncodeZigzag(y),
		CommandWord(OpLineTo, 3),
		EncodeZigzag(side), EncodeZigzag(0),
		EncodeZigzag(0), EncodeZigzag(side),
		EncodeZigzag(-side), EncodeZigzag(0),
		CommandWord(OpClosePath, 1),
	}
}

// line returns a two point line string.
func line(x1, y1, x2, y2 int32) []uint32 {
	return []uint32{
		CommandWord(OpMoveTo, 1), EncodeZigzag(x1), EncodeZigzag(y1),
		CommandWord(OpLineTo, 1), EncodeZigzag(x2 - x1), EncodeZigzag(y2 - y1),
	}
}
