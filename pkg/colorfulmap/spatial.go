package colorfulmap

// Bounds represents a bounding box in tile pixel coordinates.
//
// (0, 0) is the upper left corner of the tile; Y grows downwards.
type Bounds struct {
	MinX float64 // Left edge
	MinY float64 // Top edge
	MaxX float64 // Right edge
	MaxY float64 // Bottom edge
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}
