// Package board models the static layout of a vacuum-world puzzle and parses
// it out of the label grid produced by board recognition.
//
// # What
//
//   - Board: an immutable W×H mask of Wall/Open cells with O(1) bounds and
//     adjacency queries (InBounds, IsOpen, CellAt).
//   - Point and Direction: grid coordinates and the four orthogonal moves,
//     with Step/Delta helpers and Manhattan distance.
//   - Parse: a pure function turning a rectangular grid of recognized labels
//     plus a Legend (label → Meaning table) into a Layout — the Board, the
//     initial per-cell dirt levels, and the unique start/finish positions.
//
// # Why
//
//	The recognition layer knows only which symbol sits in each photographed
//	cell; the search engine needs a validated, immutable structure. Parse is
//	the single seam between the two: it enforces exactly-one start/finish,
//	rectangularity, and legend coverage, and fails with a sentinel error
//	otherwise. Nothing here performs I/O or recognition.
//
// # Determinism
//
//	Boards are immutable after construction, so repeated searches over the
//	same Layout observe identical adjacency.
//
// # Errors
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNoOpenCell for malformed masks.
//   - ErrUnknownLabel when a label is missing from the Legend.
//   - ErrNoStart / ErrDuplicateStart, ErrNoFinish / ErrDuplicateFinish when
//     the marker count is not exactly one.
//
// # Usage
//
//	legend := board.Legend{
//	    "w": board.MeaningWall,
//	    "o": board.MeaningOpen,
//	    "s": board.MeaningStart,
//	    "f": board.MeaningFinish,
//	    "1": board.MeaningDirt1,
//	    "2": board.MeaningDirt2,
//	}
//	layout, err := board.Parse(labels, legend)
//	if err != nil {
//	    // one of the sentinel errors above
//	}
//	_ = layout.Board.IsOpen(layout.Start) // always true
package board
