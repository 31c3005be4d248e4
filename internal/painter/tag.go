package painter

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb/encoding/mvt/vectortile"
)

// ValueType identifies which payload of a Value is set
type ValueType uint8

const (
	ValueString ValueType = iota + 1
	ValueFloat32
	ValueFloat64
	ValueInt64
	ValueUint64
	ValueBool
)

// String returns the name of the value type.
func (t ValueType) String() string {
	switch t {
	case ValueString:
		return "String"
	case ValueFloat32:
		return "Float32"
	case ValueFloat64:
		return "Float64"
	case ValueInt64:
		return "Int64"
	case ValueUint64:
		return "Uint64"
	case ValueBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Value is a typed tag value: a string, a number or a boolean.
//
// Exactly one payload is set. The zero Value is invalid and only returned
// together with an error.
type Value struct {
	typ ValueType
	s   string
	f64 float64
	i   int64
	u   uint64
	b   bool
}

// TagMap holds the decoded tags of one feature.
type TagMap map[string]Value

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{typ: ValueString, s: s}
}

// Float32Value returns a float32 Value.
func Float32Value(f float32) Value {
	return Value{typ: ValueFloat32, f64: float64(f)}
}

// Float64Value returns a float64 Value.
func Float64Value(f float64) Value {
	return Value{typ: ValueFloat64, f64: f}
}

// Int64Value returns a signed integer Value.
func Int64Value(i int64) Value {
	return Value{typ: ValueInt64, i: i}
}

// Uint64Value returns an unsigned integer Value.
func Uint64Value(u uint64) Value {
	return Value{typ: ValueUint64, u: u}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{typ: ValueBool, b: b}
}

// FromWire converts a layer dictionary value into a Value.
//
// The first populated slot wins, in field order. Signed (sint) integers map
// to Int64 like plain int values. Returns ErrEmptyValue if no slot is set.
func FromWire(value *vectortile.Tile_Value) (Value, error) {
	switch {
	case value == nil:
		return Value{}, ErrEmptyValue
	case value.StringValue != nil:
		return StringValue(*value.StringValue), nil
	case value.FloatValue != nil:
		return Float32Value(*value.FloatValue), nil
	case value.DoubleValue != nil:
		return Float64Value(*value.DoubleValue), nil
	case value.IntValue != nil:
		return Int64Value(*value.IntValue), nil
	case value.UintValue != nil:
		return Uint64Value(*value.UintValue), nil
	case value.SintValue != nil:
		return Int64Value(*value.SintValue), nil
	case value.BoolValue != nil:
		return BoolValue(*value.BoolValue), nil
	default:
		return Value{}, ErrEmptyValue
	}
}

// Type returns the payload type.
func (v Value) Type() ValueType {
	return v.typ
}

// Int64 converts integer values to int64. Unsigned values are cast.
func (v Value) Int64() (int64, bool) {
	switch v.typ {
	case ValueInt64:
		return v.i, true
	case ValueUint64:
		return int64(v.u), true
	default:
		return 0, false
	}
}

// Uint16 converts integer values to uint16, truncating out of range values.
func (v Value) Uint16() (uint16, bool) {
	switch v.typ {
	case ValueInt64:
		return uint16(v.i), true
	case ValueUint64:
		return uint16(v.u), true
	default:
		return 0, false
	}
}

// Str returns the string payload.
func (v Value) Str() (string, bool) {
	if v.typ != ValueString {
		return "", false
	}
	return v.s, true
}

// Truthy reports whether the value is true or a non-zero integer.
// Floats and strings are never truthy.
func (v Value) Truthy() bool {
	if v.typ == ValueBool {
		return v.b
	}
	i, ok := v.Int64()
	return ok && i != 0
}

// Float32 returns float values as float32; float64 values are narrowed.
// Integer values are not converted.
func (v Value) Float32() (float32, bool) {
	switch v.typ {
	case ValueFloat32, ValueFloat64:
		return float32(v.f64), true
	default:
		return 0, false
	}
}

// String formats the value for debugging.
func (v Value) String() string {
	switch v.typ {
	case ValueString:
		return strconv.Quote(v.s)
	case ValueFloat32:
		return strconv.FormatFloat(v.f64, 'g', -1, 32)
	case ValueFloat64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case ValueInt64:
		return strconv.FormatInt(v.i, 10)
	case ValueUint64:
		return strconv.FormatUint(v.u, 10)
	case ValueBool:
		return strconv.FormatBool(v.b)
	default:
		return "<empty>"
	}
}

// DecodeTagMap resolves the tag index pairs of a feature against the layer
// dictionaries.
//
// Even positions of tags index keys, odd positions index values. Later pairs
// overwrite earlier ones with the same key.
func DecodeTagMap(keys []string, values []*vectortile.Tile_Value, tags []uint32) (TagMap, error) {
	if len(tags)%2 != 0 {
		return nil, &ErrOddTagList{Len: len(tags)}
	}

	tagMap := make(TagMap, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		k, v := tags[i], tags[i+1]
		if int(k) >= len(keys) || int(v) >= len(values) {
			return nil, &ErrTagIndexOutOfRange{
				Key:    k,
				Value:  v,
				Keys:   len(keys),
				Values: len(values),
			}
		}
		value, err := FromWire(values[v])
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", keys[k], err)
		}
		tagMap[keys[k]] = value
	}

	return tagMap, nil
}
