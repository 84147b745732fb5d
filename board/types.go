// Package board defines core types and sentinel errors for the vacuum-world
// board: the static wall/open layout plus the parser that converts a grid of
// recognized cell labels into a Board, its initial dirt, and the start and
// finish positions.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and label parsing.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("board: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrNoOpenCell indicates a board without a single open cell.
	ErrNoOpenCell = errors.New("board: at least one open cell is required")
	// ErrUnknownLabel indicates a recognized label missing from the legend.
	ErrUnknownLabel = errors.New("board: label not present in legend")
	// ErrNoStart indicates the label grid contains no start marker.
	ErrNoStart = errors.New("board: start marker missing")
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("board: more than one start marker")
	// ErrNoFinish indicates the label grid contains no finish marker.
	ErrNoFinish = errors.New("board: finish marker missing")
	// ErrDuplicateFinish indicates more than one finish marker.
	ErrDuplicateFinish = errors.New("board: more than one finish marker")
)

// Cell classifies a single board position as impassable or traversable.
type Cell int

const (
	// Wall cells may never hold the agent.
	Wall Cell = iota
	// Open cells are traversable and may carry dirt.
	Open
)

// Point is an (X, Y) grid coordinate. X grows rightward, Y grows downward.
// Point is a comparable value type and safe to use as a map key.
type Point struct {
	X, Y int
}

// String renders the point as "x,y" for error messages and logs.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Manhattan returns the L1 distance between p and q.
// Complexity: O(1).
func (p Point) Manhattan(q Point) int {
	dx := p.X - q.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - q.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Direction identifies one of the four orthogonal moves.
type Direction int

const (
	// Up decreases Y.
	Up Direction = iota
	// Down increases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right
)

// directionNames is indexed by Direction.
var directionNames = [...]string{"Up", "Down", "Left", "Right"}

// directionOffsets is indexed by Direction; entries are {dx, dy}.
var directionOffsets = [...][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// String returns the playback label of the direction ("Up", "Down", ...).
func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	return directionOffsets[d][0], directionOffsets[d][1]
}

// Step returns the point one cell away from p in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()

	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Meaning is the semantic class a recognized cell label maps to.
type Meaning int

const (
	// MeaningWall marks an impassable cell.
	MeaningWall Meaning = iota
	// MeaningOpen marks a traversable, clean cell.
	MeaningOpen
	// MeaningStart marks the agent's initial cell (open, clean, unique).
	MeaningStart
	// MeaningFinish marks the target cell (open, clean, unique).
	MeaningFinish
	// MeaningDirt1 marks an open cell with dirt level 1.
	MeaningDirt1
	// MeaningDirt2 marks an open cell with dirt level 2.
	MeaningDirt2
)

// Legend maps recognized cell labels (as produced by the board-reading
// classifier) to their Meaning. The classifier owns the label vocabulary;
// the parser only consumes the mapping.
type Legend map[string]Meaning

// Layout is the parse result handed to the search engine: the immutable
// Board, the initial per-cell dirt levels (same dimensions as the board,
// zero on clean and wall cells), and the unique start and finish positions.
type Layout struct {
	Board  *Board
	Dirt   [][]int
	Start  Point
	Finish Point
}
