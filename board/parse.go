package board

import "fmt"

// Parse converts a rectangular grid of recognized cell labels into a Layout,
// using legend to map each label to its Meaning. It is a pure function of
// its input: no side effects, and the returned Layout shares no memory with
// the label grid.
//
// Rules:
//   - exactly one start marker and exactly one finish marker must appear;
//   - start and finish cells are open and clean;
//   - dirt markers make the cell open with the marker's level;
//   - plain open cells default to dirt level 0.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownLabel (wrapped with the
// offending label and position), ErrNoStart, ErrDuplicateStart, ErrNoFinish,
// ErrDuplicateFinish, or ErrNoOpenCell.
// Complexity: O(W×H) time and memory.
func Parse(labels [][]string, legend Legend) (*Layout, error) {
	if len(labels) == 0 || len(labels[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(labels), len(labels[0])
	for _, row := range labels {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	open := make([][]bool, h)
	dirt := make([][]int, h)
	var start, finish Point
	seenStart, seenFinish := false, false

	for y := 0; y < h; y++ {
		open[y] = make([]bool, w)
		dirt[y] = make([]int, w)
		for x := 0; x < w; x++ {
			meaning, ok := legend[labels[y][x]]
			if !ok {
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownLabel, labels[y][x], Point{X: x, Y: y})
			}
			switch meaning {
			case MeaningWall:
				// stays closed, dirt 0
			case MeaningOpen:
				open[y][x] = true
			case MeaningStart:
				if seenStart {
					return nil, fmt.Errorf("%w: second marker at %s", ErrDuplicateStart, Point{X: x, Y: y})
				}
				seenStart = true
				start = Point{X: x, Y: y}
				open[y][x] = true
			case MeaningFinish:
				if seenFinish {
					return nil, fmt.Errorf("%w: second marker at %s", ErrDuplicateFinish, Point{X: x, Y: y})
				}
				seenFinish = true
				finish = Point{X: x, Y: y}
				open[y][x] = true
			case MeaningDirt1:
				open[y][x] = true
				dirt[y][x] = 1
			case MeaningDirt2:
				open[y][x] = true
				dirt[y][x] = 2
			}
		}
	}

	if !seenStart {
		return nil, ErrNoStart
	}
	if !seenFinish {
		return nil, ErrNoFinish
	}

	b, err := New(open)
	if err != nil {
		return nil, err
	}

	return &Layout{Board: b, Dirt: dirt, Start: start, Finish: finish}, nil
}
