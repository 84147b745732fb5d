package board

// Board is the static wall/open layout of the puzzle grid. It is immutable
// once built: the constructor deep-copies its input and all methods are
// read-only, so a single Board may back any number of concurrent searches.
type Board struct {
	width, height int
	open          []bool // row-major: open[y*width+x]
	openCount     int
}

// New constructs a Board from a non-empty, rectangular open-cell mask,
// where open[y][x] == true marks a traversable cell.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrNoOpenCell on bad input.
// Complexity: O(W×H) time and memory.
func New(open [][]bool) (*Board, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(open), len(open[0])
	for _, row := range open {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	mask := make([]bool, w*h)
	count := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if open[y][x] {
				mask[y*w+x] = true
				count++
			}
		}
	}
	if count == 0 {
		return nil, ErrNoOpenCell
	}

	return &Board{width: w, height: h, open: mask, openCount: count}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// OpenCount returns the number of traversable cells.
func (b *Board) OpenCount() int { return b.openCount }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// IsOpen reports whether p is an in-bounds open cell.
// Complexity: O(1).
func (b *Board) IsOpen(p Point) bool {
	return b.InBounds(p) && b.open[p.Y*b.width+p.X]
}

// CellAt returns the cell class at p. Out-of-bounds positions are Wall.
func (b *Board) CellAt(p Point) Cell {
	if b.IsOpen(p) {
		return Open
	}

	return Wall
}
