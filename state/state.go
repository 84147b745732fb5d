package state

import (
	"strconv"

	"github.com/vacworld/vacworld/board"
)

// State is one configuration of the vacuum world: the agent position plus a
// per-cell dirt-level grid. States are immutable value objects: every
// transition produces a fresh State, so frontier and visited-set entries can
// never alias each other's dirt. Two states are equal iff position and dirt
// grids are element-wise equal, and Key respects that equality.
type State struct {
	pos           board.Point
	width, height int
	dirt          []byte // row-major: dirt[y*width+x]
	total         int    // sum of all dirt levels, cached
}

// New constructs a State from an agent position and a dirt-level grid.
// The grid is deep-copied; dirt[y][x] must lie in [0, MaxDirtLevel].
// Returns ErrEmptyDirt, ErrNonRectangular, or ErrDirtLevel on bad input.
// Complexity: O(W×H).
func New(pos board.Point, dirt [][]int) (State, error) {
	if len(dirt) == 0 || len(dirt[0]) == 0 {
		return State{}, ErrEmptyDirt
	}
	h, w := len(dirt), len(dirt[0])
	grid := make([]byte, w*h)
	total := 0
	for y, row := range dirt {
		if len(row) != w {
			return State{}, ErrNonRectangular
		}
		for x, lvl := range row {
			if lvl < 0 || lvl > MaxDirtLevel {
				return State{}, ErrDirtLevel
			}
			grid[y*w+x] = byte(lvl)
			total += lvl
		}
	}

	return State{pos: pos, width: w, height: h, dirt: grid, total: total}, nil
}

// Pos returns the agent position.
func (s State) Pos() board.Point { return s.pos }

// Dims returns the dirt-grid dimensions as (width, height).
func (s State) Dims() (w, h int) { return s.width, s.height }

// DirtAt returns the dirt level at p, or 0 when p is out of bounds.
func (s State) DirtAt(p board.Point) int {
	if p.X < 0 || p.X >= s.width || p.Y < 0 || p.Y >= s.height {
		return 0
	}

	return int(s.dirt[p.Y*s.width+p.X])
}

// TotalDirt returns the sum of all remaining dirt levels.
// Complexity: O(1) (cached at construction and on each transition).
func (s State) TotalDirt() int { return s.total }

// Clean reports whether every cell's dirt level is zero.
func (s State) Clean() bool { return s.total == 0 }

// DirtyCells returns the positions of all cells with dirt level > 0,
// in row-major order. Complexity: O(W×H).
func (s State) DirtyCells() []board.Point {
	var cells []board.Point
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.dirt[y*s.width+x] > 0 {
				cells = append(cells, board.Point{X: x, Y: y})
			}
		}
	}

	return cells
}

// Equal reports element-wise equality of position and dirt grids.
func (s State) Equal(o State) bool {
	if s.pos != o.pos || s.width != o.width || s.height != o.height || s.total != o.total {
		return false
	}
	for i := range s.dirt {
		if s.dirt[i] != o.dirt[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string encoding of the state, suitable as a map
// key for visited and best-cost tables. Two states have the same Key iff
// they are Equal. Complexity: O(W×H).
func (s State) Key() string {
	buf := make([]byte, 0, len(s.dirt)+12)
	buf = strconv.AppendInt(buf, int64(s.pos.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(s.pos.Y), 10)
	buf = append(buf, ':')
	for _, lvl := range s.dirt {
		buf = append(buf, '0'+lvl)
	}

	return string(buf)
}

// withPos returns a copy of s at a new position, sharing the dirt grid.
// Safe because dirt is never mutated in place.
func (s State) withPos(p board.Point) State {
	s.pos = p

	return s
}

// withCleaned returns a copy of s whose current cell lost one dirt level.
// The dirt grid is cloned on write so sibling states stay independent.
func (s State) withCleaned() State {
	grid := make([]byte, len(s.dirt))
	copy(grid, s.dirt)
	grid[s.pos.Y*s.width+s.pos.X]--

	return State{
		pos:    s.pos,
		width:  s.width,
		height: s.height,
		dirt:   grid,
		total:  s.total - 1,
	}
}
