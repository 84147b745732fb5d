package board_test

import (
	"errors"
	"testing"

	"github.com/vacworld/vacworld/board"
)

//----------------------------------------------------------------------------//
// New and query tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, or fully walled input.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		open [][]bool
		err  error
	}{
		{"EmptyRows", [][]bool{}, board.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, board.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, board.ErrNonRectangular},
		{"AllWalls", [][]bool{{false, false}, {false, false}}, board.ErrNoOpenCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.New(tc.open)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.open, err, tc.err)
			}
		})
	}
}

// TestBoard_Queries checks bounds, openness, and cell classes on a 3×2 mask.
func TestBoard_Queries(t *testing.T) {
	b, err := board.New([][]bool{
		{true, false, true},
		{true, true, false},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Errorf("dims = %dx%d; want 3x2", b.Width(), b.Height())
	}
	if b.OpenCount() != 4 {
		t.Errorf("OpenCount = %d; want 4", b.OpenCount())
	}

	open := []board.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	for _, p := range open {
		if !b.IsOpen(p) {
			t.Errorf("IsOpen(%s) = false; want true", p)
		}
		if b.CellAt(p) != board.Open {
			t.Errorf("CellAt(%s) = Wall; want Open", p)
		}
	}
	walls := []board.Point{{X: 1, Y: 0}, {X: 2, Y: 1}}
	for _, p := range walls {
		if b.IsOpen(p) {
			t.Errorf("IsOpen(%s) = true; want false", p)
		}
	}
	outside := []board.Point{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}}
	for _, p := range outside {
		if b.InBounds(p) {
			t.Errorf("InBounds(%s) = true; want false", p)
		}
		if b.CellAt(p) != board.Wall {
			t.Errorf("CellAt(%s) = Open; want Wall", p)
		}
	}
}

// TestNew_DeepCopies ensures later mutation of the input mask does not leak
// into the Board.
func TestNew_DeepCopies(t *testing.T) {
	mask := [][]bool{{true, true}}
	b, err := board.New(mask)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	mask[0][1] = false
	if !b.IsOpen(board.Point{X: 1, Y: 0}) {
		t.Error("Board observed external mutation of its input mask")
	}
}

//----------------------------------------------------------------------------//
// Point and Direction tests
//----------------------------------------------------------------------------//

// TestPoint_Manhattan checks the L1 distance in all quadrants.
func TestPoint_Manhattan(t *testing.T) {
	p := board.Point{X: 2, Y: 3}
	cases := []struct {
		q    board.Point
		want int
	}{
		{board.Point{X: 2, Y: 3}, 0},
		{board.Point{X: 5, Y: 3}, 3},
		{board.Point{X: 0, Y: 0}, 5},
		{board.Point{X: -1, Y: 7}, 7},
	}
	for _, tc := range cases {
		if got := p.Manhattan(tc.q); got != tc.want {
			t.Errorf("Manhattan(%s, %s) = %d; want %d", p, tc.q, got, tc.want)
		}
	}
}

// TestDirection_StepAndString checks the four offsets and their labels.
func TestDirection_StepAndString(t *testing.T) {
	origin := board.Point{X: 1, Y: 1}
	cases := []struct {
		d    board.Direction
		want board.Point
		name string
	}{
		{board.Up, board.Point{X: 1, Y: 0}, "Up"},
		{board.Down, board.Point{X: 1, Y: 2}, "Down"},
		{board.Left, board.Point{X: 0, Y: 1}, "Left"},
		{board.Right, board.Point{X: 2, Y: 1}, "Right"},
	}
	for _, tc := range cases {
		if got := origin.Step(tc.d); got != tc.want {
			t.Errorf("Step(%v) = %s; want %s", tc.d, got, tc.want)
		}
		if tc.d.String() != tc.name {
			t.Errorf("String() = %q; want %q", tc.d.String(), tc.name)
		}
	}
}
