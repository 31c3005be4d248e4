package painter

import (
	"fmt"
	"iter"
)

// CommandOp is the id of a geometry command, the low 3 bits of a command word
type CommandOp uint32

const (
	OpMoveTo    CommandOp = 1
	OpLineTo    CommandOp = 2
	OpClosePath CommandOp = 7
)

// String returns the SVG path letter for the command.
func (op CommandOp) String() string {
	switch op {
	case OpMoveTo:
		return "M"
	case OpLineTo:
		return "L"
	case OpClosePath:
		return "Z"
	default:
		return fmt.Sprintf("CommandOp(%d)", uint32(op))
	}
}

// Command is one drawing instruction of a path.
//
// (0, 0) is the upper left corner of the tile and all coordinates are
// absolute and already scaled to the output extent. X and Y are zero
// for ClosePath.
type Command struct {
	Op   CommandOp
	X, Y float32
}

// MoveTo returns a command moving the pen to (x, y).
func MoveTo(x, y float32) Command { return Command{Op: OpMoveTo, X: x, Y: y} }

// LineTo returns a command drawing a line to (x, y).
func LineTo(x, y float32) Command { return Command{Op: OpLineTo, X: x, Y: y} }

// ClosePath returns a command returning to the first point of the ring.
func ClosePath() Command { return Command{Op: OpClosePath} }

// DecodeZigzag decodes a 32 bit integer according to the protobuf zigzag rules.
//
// Even words map to word/2, odd words to -(word+1)/2.
func DecodeZigzag(word uint32) int32 {
	return int32(word>>1) ^ -int32(word&1)
}

// EncodeZigzag is the inverse of DecodeZigzag.
func EncodeZigzag(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

// CommandWord packs a command id and its repeat count into one word.
func CommandWord(op CommandOp, count uint32) uint32 {
	return uint32(op)&0x7 | count<<3
}

// Cursor iterates over the commands of one geometry (line or polygon).
//
// The cursor reads the command-encoded word stream lazily. Parameter words
// are zigzag encoded deltas, accumulated into a running position that starts
// at (0, 0) for every geometry. A cursor is not restartable; create a new one
// per geometry.
//
//	c := NewCursor(feature.GetGeometry(), scale)
//	for c.Next() {
//	    cmd := c.Command()
//	    ...
//	}
//	if err := c.Err(); err != nil {
//	    return err
//	}
type Cursor struct {
	geometry []uint32
	pos      int

	id    uint32
	count uint32

	x, y  int32
	scale float32

	cmd      Command
	err      error
	done     bool
	reported bool
}

// NewCursor returns a cursor over the geometry words. Decoded integer
// positions are multiplied by scale.
func NewCursor(geometry []uint32, scale float32) *Cursor {
	return &Cursor{
		geometry: geometry,
		scale:    scale,
	}
}

// Next advances to the next command. It returns false when the stream is
// exhausted or a decode error occurred. Once it returned false it never
// returns true again.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}

	// valid command words with a zero repeat count are skipped
	for c.count == 0 {
		if c.pos >= len(c.geometry) {
			c.done = true
			return false
		}
		word := c.geometry[c.pos]
		c.pos++
		c.id = word & 0x7
		c.count = word >> 3

		switch CommandOp(c.id) {
		case OpMoveTo, OpLineTo, OpClosePath:
		default:
			return c.fail(&ErrMalformedGeometry{
				Command: c.id,
				Reason:  "command integer, expected 1, 2 or 7",
			})
		}
	}
	c.count--

	switch CommandOp(c.id) {
	case OpMoveTo, OpLineTo:
		if len(c.geometry)-c.pos < 2 {
			return c.fail(&ErrMalformedGeometry{
				Command: c.id,
				Reason:  "expected at least two remaining integers in geometry",
			})
		}
		c.x += DecodeZigzag(c.geometry[c.pos])
		c.y += DecodeZigzag(c.geometry[c.pos+1])
		c.pos += 2
		c.cmd = Command{
			Op: CommandOp(c.id),
			X:  float32(c.x) * c.scale,
			Y:  float32(c.y) * c.scale,
		}
		return true
	default:
		c.cmd = ClosePath()
		return true
	}
}

// fail poisons the cursor so no further commands are produced.
func (c *Cursor) fail(err error) bool {
	c.err = err
	c.done = true
	c.cmd = Command{}
	return false
}

// Command returns the command produced by the last successful call to Next.
func (c *Cursor) Command() Command {
	return c.cmd
}

// Err returns the decode error that stopped the cursor, if any.
func (c *Cursor) Err() error {
	return c.err
}

// All returns the remaining commands as a sequence. A decode error is yielded
// once, as the final element.
func (c *Cursor) All() iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		for c.Next() {
			if !yield(c.cmd, nil) {
				return
			}
		}
		if c.err != nil && !c.reported {
			c.reported = true
			yield(Command{}, c.err)
		}
	}
}
