package painter

import (
	"errors"
	"fmt"
)

// ErrEmptyValue indicates a tag value with none of its payload slots set
var ErrEmptyValue = errors.New("mvt: a value must contain data")

// ErrIllegalClosePath indicates a ClosePath command inside a line string.
// Only polygons may close their rings.
var ErrIllegalClosePath = errors.New("close path not allowed")

// ErrMalformedGeometry indicates a geometry stream that cannot be decoded
type ErrMalformedGeometry struct {
	// Command is the command id being decoded when the stream broke
	Command uint32
	Reason  string
}

func (e *ErrMalformedGeometry) Error() string {
	return fmt.Sprintf("mvt: malformed geometry (command %d): %s", e.Command, e.Reason)
}

// ErrOddTagList indicates a feature tag list that is not made of pairs
type ErrOddTagList struct {
	Len int
}

func (e *ErrOddTagList) Error() string {
	return fmt.Sprintf("mvt: a tag list must be an even number of integers, got %d", e.Len)
}

// ErrTagIndexOutOfRange indicates a tag pair pointing outside the layer dictionary
type ErrTagIndexOutOfRange struct {
	Key, Value   uint32
	Keys, Values int
}

func (e *ErrTagIndexOutOfRange) Error() string {
	return fmt.Sprintf("mvt: there is no such tag key/value: key %d of %d, value %d of %d",
		e.Key, e.Keys, e.Value, e.Values)
}

// ErrMissingRequiredTag indicates a painted feature without a mandatory tag
type ErrMissingRequiredTag struct {
	Tag string
}

func (e *ErrMissingRequiredTag) Error() string {
	return fmt.Sprintf("%s is required", e.Tag)
}

// ErrInvalidExtent indicates a layer whose extent cannot produce a scale factor
type ErrInvalidExtent struct {
	Layer  string
	Extent uint32
}

func (e *ErrInvalidExtent) Error() string {
	return fmt.Sprintf("layer %q: invalid extent %d", e.Layer, e.Extent)
}
