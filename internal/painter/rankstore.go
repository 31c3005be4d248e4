package painter

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// RankStore stores the visualization of a map tile.
//
// A map tile has many different sort ranks. All features on the same rank
// are painted at the same time: features with a low rank are painted first
// and partially covered by higher ranking features painted later.
//
// The store keeps one text buffer per rank in use. Text is appended to a
// rank through the handle returned by Select and serialized in ascending
// rank order by Finish. A running byte count lets Finish allocate the result
// exactly once.
type RankStore struct {
	ranks map[uint16]*strings.Builder
	size  int
}

// NewRankStore creates a new, empty store.
func NewRankStore() *RankStore {
	return &RankStore{
		ranks: make(map[uint16]*strings.Builder),
	}
}

// Select returns the rank for editing, creating an empty one if needed.
//
// A Rank is a handle keyed by the rank number: every write goes through the
// store, so holding handles to several ranks at once is safe. A handle stays
// usable after Finish and then writes to the emptied store.
func (s *RankStore) Select(rank uint16) Rank {
	s.buffer(rank)
	return Rank{store: s, rank: rank}
}

// buffer returns the text buffer of rank, creating it if needed.
func (s *RankStore) buffer(rank uint16) *strings.Builder {
	if s.ranks == nil {
		s.ranks = make(map[uint16]*strings.Builder)
	}
	buf, ok := s.ranks[rank]
	if !ok {
		buf = &strings.Builder{}
		s.ranks[rank] = buf
	}
	return buf
}

// Len returns the number of bytes stored across all ranks.
func (s *RankStore) Len() int {
	return s.size
}

// Ranks returns the ranks in use in ascending order.
func (s *RankStore) Ranks() []uint16 {
	return slices.Sorted(maps.Keys(s.ranks))
}

// Finish serializes ("paints") the store and empties it.
//
// The text of every rank is concatenated in ascending rank order without
// separators.
func (s *RankStore) Finish() string {
	var out strings.Builder
	out.Grow(s.size)
	for _, rank := range s.Ranks() {
		out.WriteString(s.ranks[rank].String())
	}
	s.ranks = nil
	s.size = 0
	return out.String()
}

// Rank represents one sort rank of the map.
type Rank struct {
	store *RankStore
	rank  uint16
}

// Rank returns the rank number this handle writes to.
func (r Rank) Rank() uint16 {
	return r.rank
}

// Write appends p to the rank.
func (r Rank) Write(p []byte) (int, error) {
	r.store.size += len(p)
	return r.store.buffer(r.rank).Write(p)
}

// WriteString appends s to the rank.
func (r Rank) WriteString(s string) (int, error) {
	r.store.size += len(s)
	return r.store.buffer(r.rank).WriteString(s)
}

// WriteByte appends a single byte to the rank.
func (r Rank) WriteByte(c byte) error {
	r.store.size++
	return r.store.buffer(r.rank).WriteByte(c)
}

// WriteRune appends the UTF-8 encoding of c to the rank.
func (r Rank) WriteRune(c rune) (int, error) {
	n, err := r.store.buffer(r.rank).WriteRune(c)
	r.store.size += n
	return n, err
}

// Printf appends formatted text to the rank.
func (r Rank) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// WriteFloat32 appends the shortest decimal representation of f, never
// using exponent notation.
func (r Rank) WriteFloat32(f float32) {
	var scratch [32]byte
	r.Write(appendFloat32(scratch[:0], f))
}

func appendFloat32(dst []byte, f float32) []byte {
	return strconv.AppendFloat(dst, float64(f), 'f', -1, 32)
}
