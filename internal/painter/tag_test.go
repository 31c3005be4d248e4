package painter

import (
	"errors"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/paulmach/orb/encoding/mvt/vectortile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWire(t *testing.T) {
	tests := []struct {
		name  string
		input *vectortile.Tile_Value
		want  Value
	}{
		{"string", &vectortile.Tile_Value{StringValue: proto.String("water")}, StringValue("water")},
		{"float", &vectortile.Tile_Value{FloatValue: proto.Float32(1.5)}, Float32Value(1.5)},
		{"double", &vectortile.Tile_Value{DoubleValue: proto.Float64(2.25)}, Float64Value(2.25)},
		{"int", &vectortile.Tile_Value{IntValue: proto.Int64(-7)}, Int64Value(-7)},
		{"uint", &vectortile.Tile_Value{UintValue: proto.Uint64(7)}, Uint64Value(7)},
		{"sint", &vectortile.Tile_Value{SintValue: proto.Int64(-3)}, Int64Value(-3)},
		{"bool", &vectortile.Tile_Value{BoolValue: proto.Bool(true)}, BoolValue(true)},
		{
			"first slot wins",
			&vectortile.Tile_Value{StringValue: proto.String("x"), IntValue: proto.Int64(1)},
			StringValue("x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromWire(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromWireEmpty(t *testing.T) {
	_, err := FromWire(&vectortile.Tile_Value{})
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = FromWire(nil)
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestValueAccessors(t *testing.T) {
	t.Run("Int64", func(t *testing.T) {
		i, ok := Int64Value(-5).Int64()
		assert.True(t, ok)
		assert.Equal(t, int64(-5), i)

		i, ok = Uint64Value(1 << 63).Int64()
		assert.True(t, ok)
		assert.Equal(t, int64(-1<<63), i)

		_, ok = Float64Value(1).Int64()
		assert.False(t, ok)
		_, ok = StringValue("1").Int64()
		assert.False(t, ok)
	})

	t.Run("Uint16 truncates", func(t *testing.T) {
		r, ok := Int64Value(70000).Uint16()
		assert.True(t, ok)
		assert.Equal(t, uint16(70000-65536), r)

		r, ok = Int64Value(-1).Uint16()
		assert.True(t, ok)
		assert.Equal(t, uint16(65535), r)

		r, ok = Uint64Value(42).Uint16()
		assert.True(t, ok)
		assert.Equal(t, uint16(42), r)

		_, ok = BoolValue(true).Uint16()
		assert.False(t, ok)
	})

	t.Run("Str", func(t *testing.T) {
		s, ok := StringValue("road").Str()
		assert.True(t, ok)
		assert.Equal(t, "road", s)

		_, ok = Int64Value(1).Str()
		assert.False(t, ok)
	})

	t.Run("Truthy", func(t *testing.T) {
		assert.True(t, BoolValue(true).Truthy())
		assert.False(t, BoolValue(false).Truthy())
		assert.True(t, Int64Value(-1).Truthy())
		assert.True(t, Uint64Value(1).Truthy())
		assert.False(t, Int64Value(0).Truthy())
		assert.False(t, Float32Value(1).Truthy())
		assert.False(t, Float64Value(1).Truthy())
		assert.False(t, StringValue("yes").Truthy())
		assert.False(t, Value{}.Truthy())
	})

	t.Run("Float32", func(t *testing.T) {
		f, ok := Float32Value(13.5).Float32()
		assert.True(t, ok)
		assert.Equal(t, float32(13.5), f)

		f, ok = Float64Value(0.1).Float32()
		assert.True(t, ok)
		assert.Equal(t, float32(0.1), f)

		_, ok = Int64Value(13).Float32()
		assert.False(t, ok)
	})

	assert.Equal(t, ValueUint64, Uint64Value(1).Type())
	assert.Equal(t, "Bool", ValueBool.String())
	assert.Equal(t, `"a"`, StringValue("a").String())
	assert.Equal(t, "<empty>", Value{}.String())
}

func TestDecodeTagMap(t *testing.T) {
	keys := []string{"kind", "sort_rank", "name"}
	values := []*vectortile.Tile_Value{
		{StringValue: proto.String("water")},
		{UintValue: proto.Uint64(42)},
		{StringValue: proto.String("ocean")},
		{StringValue: proto.String("lake")},
	}

	tags, err := DecodeTagMap(keys, values, []uint32{0, 0, 1, 1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, TagMap{
		"kind":      StringValue("water"),
		"sort_rank": Uint64Value(42),
		"name":      StringValue("ocean"),
	}, tags)

	t.Run("last write wins", func(t *testing.T) {
		tags, err := DecodeTagMap(keys, values, []uint32{2, 2, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, TagMap{"name": StringValue("lake")}, tags)
	})

	t.Run("empty", func(t *testing.T) {
		tags, err := DecodeTagMap(keys, values, nil)
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("odd list", func(t *testing.T) {
		_, err := DecodeTagMap(keys, values, []uint32{0, 0, 1})
		var odd *ErrOddTagList
		require.ErrorAs(t, err, &odd)
		assert.Equal(t, 3, odd.Len)
	})

	t.Run("key out of range", func(t *testing.T) {
		_, err := DecodeTagMap(keys, values, []uint32{3, 0})
		var oor *ErrTagIndexOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, uint32(3), oor.Key)
		assert.Equal(t, 3, oor.Keys)
	})

	t.Run("value out of range", func(t *testing.T) {
		_, err := DecodeTagMap(keys, values, []uint32{0, 4})
		var oor *ErrTagIndexOutOfRange
		assert.ErrorAs(t, err, &oor)
	})

	t.Run("empty value", func(t *testing.T) {
		_, err := DecodeTagMap([]string{"kind"}, []*vectortile.Tile_Value{{}}, []uint32{0, 0})
		assert.True(t, errors.Is(err, ErrEmptyValue))
		assert.Contains(t, err.Error(), `tag "kind"`)
	})
}
