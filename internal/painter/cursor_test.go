package painter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, geometry []uint32, scale float32) ([]Command, []error) {
	t.Helper()
	var (
		cmds []Command
		errs []error
	)
	for cmd, err := range NewCursor(geometry, scale).All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds, errs
}

func TestZigzag(t *testing.T) {
	tests := []struct {
		word uint32
		want int32
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{4, 2},
		{10, 5},
		{math.MaxUint32 - 1, math.MaxInt32},
		{math.MaxUint32, math.MinInt32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeZigzag(tt.word), "decode %d", tt.word)
		assert.Equal(t, tt.word, EncodeZigzag(tt.want), "encode %d", tt.want)
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 2, -2, 127, -128, 4096, -4096, math.MaxInt32, math.MinInt32}
	for v := int32(-70000); v <= 70000; v += 37 {
		values = append(values, v)
	}

	for _, v := range values {
		require.Equal(t, v, DecodeZigzag(EncodeZigzag(v)), "value %d", v)
	}
}

func TestCommandWord(t *testing.T) {
	word := CommandWord(OpLineTo, 3)
	assert.Equal(t, uint32(2|3<<3), word)
	assert.Equal(t, uint32(15), CommandWord(OpClosePath, 1))
	assert.Equal(t, "M", OpMoveTo.String())
	assert.Equal(t, "CommandOp(4)", CommandOp(4).String())
}

func TestCursorSingleMoveTo(t *testing.T) {
	geometry := []uint32{CommandWord(OpMoveTo, 1), EncodeZigzag(5), EncodeZigzag(5)}

	cmds, errs := collect(t, geometry, 1)
	assert.Empty(t, errs)
	assert.Equal(t, []Command{MoveTo(5, 5)}, cmds)
}

func TestCursorRepeatedLineToIsCumulative(t *testing.T) {
	geometry := []uint32{
		CommandWord(OpLineTo, 2),
		EncodeZigzag(3), EncodeZigzag(0),
		EncodeZigzag(0), EncodeZigzag(4),
	}

	cmds, errs := collect(t, geometry, 1)
	assert.Empty(t, errs)
	assert.Equal(t, []Command{LineTo(3, 0), LineTo(3, 4)}, cmds)
}

func TestCursorPolygonRing(t *testing.T) {
	geometry := []uint32{
		CommandWord(OpMoveTo, 1), EncodeZigzag(2), EncodeZigzag(2),
		CommandWord(OpLineTo, 2), EncodeZigzag(4), EncodeZigzag(0), EncodeZigzag(0), EncodeZigzag(4),
		CommandWord(OpClosePath, 1),
		CommandWord(OpMoveTo, 1), EncodeZigzag(-1), EncodeZigzag(-1),
	}

	cmds, errs := collect(t, geometry, 0.5)
	assert.Empty(t, errs)
	assert.Equal(t, []Command{
		MoveTo(1, 1),
		LineTo(3, 1),
		LineTo(3, 3),
		ClosePath(),
		MoveTo(2.5, 2.5),
	}, cmds)
}

func TestCursorClosePathRepeat(t *testing.T) {
	cmds, errs := collect(t, []uint32{CommandWord(OpClosePath, 2)}, 1)
	assert.Empty(t, errs)
	assert.Equal(t, []Command{ClosePath(), ClosePath()}, cmds)
}

func TestCursorSkipsZeroCount(t *testing.T) {
	geometry := []uint32{
		CommandWord(OpClosePath, 0),
		CommandWord(OpMoveTo, 0),
		CommandWord(OpMoveTo, 1), EncodeZigzag(1), EncodeZigzag(1),
	}

	cmds, errs := collect(t, geometry, 1)
	assert.Empty(t, errs)
	assert.Equal(t, []Command{MoveTo(1, 1)}, cmds)
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor(nil, 1)
	assert.False(t, c.Next())
	assert.NoError(t, c.Err())
	assert.False(t, c.Next())
}

func TestCursorErrors(t *testing.T) {
	tests := []struct {
		name     string
		geometry []uint32
		before   []Command
	}{
		{
			name:     "LineTo with one trailing word",
			geometry: []uint32{CommandWord(OpLineTo, 1), EncodeZigzag(3)},
		},
		{
			name:     "MoveTo without parameters",
			geometry: []uint32{CommandWord(OpMoveTo, 1)},
		},
		{
			name: "repeat count exceeds parameters",
			geometry: []uint32{
				CommandWord(OpLineTo, 2), EncodeZigzag(1), EncodeZigzag(1),
			},
			before: []Command{LineTo(1, 1)},
		},
		{
			name:     "unknown command id",
			geometry: []uint32{CommandWord(CommandOp(3), 1), 0, 0},
		},
		{
			name: "unknown command id after valid ones",
			geometry: []uint32{
				CommandWord(OpMoveTo, 1), EncodeZigzag(4), EncodeZigzag(4),
				CommandWord(CommandOp(5), 1),
				CommandWord(OpLineTo, 1), EncodeZigzag(1), EncodeZigzag(1),
			},
			before: []Command{MoveTo(4, 4)},
		},
		{
			name:     "unknown command id with zero count",
			geometry: []uint32{3},
		},
		{
			name:     "command id zero",
			geometry: []uint32{0},
		},
		{
			name: "unknown zero count command after MoveTo",
			geometry: []uint32{
				CommandWord(OpMoveTo, 1), EncodeZigzag(5), EncodeZigzag(5),
				4,
			},
			before: []Command{MoveTo(5, 5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, errs := collect(t, tt.geometry, 1)
			assert.Equal(t, tt.before, cmds)
			require.Len(t, errs, 1)

			var malformed *ErrMalformedGeometry
			assert.ErrorAs(t, errs[0], &malformed)
		})
	}
}

func TestCursorPoisonedAfterError(t *testing.T) {
	c := NewCursor([]uint32{CommandWord(OpLineTo, 1), EncodeZigzag(3)}, 1)

	require.False(t, c.Next())
	require.Error(t, c.Err())
	assert.Equal(t, Command{}, c.Command())

	for i := 0; i < 3; i++ {
		assert.False(t, c.Next())
	}

	// the error is reported exactly once by All
	var items int
	for range c.All() {
		items++
	}
	assert.Equal(t, 1, items)
	for range c.All() {
		items++
	}
	assert.Equal(t, 1, items)
}

func TestCursorAllStopsEarly(t *testing.T) {
	geometry := []uint32{
		CommandWord(OpLineTo, 3),
		EncodeZigzag(1), EncodeZigzag(1),
		EncodeZigzag(1), EncodeZigzag(1),
		EncodeZigzag(1), EncodeZigzag(1),
	}
	c := NewCursor(geometry, 1)

	for cmd := range c.All() {
		assert.Equal(t, LineTo(1, 1), cmd)
		break
	}

	// resumes where the loop stopped
	require.True(t, c.Next())
	assert.Equal(t, LineTo(2, 2), c.Command())
}
