package search_test

import (
	"errors"
	"fmt"

	"github.com/vacworld/vacworld/board"
	"github.com/vacworld/vacworld/search"
	"github.com/vacworld/vacworld/state"
)

// ExampleSolve plans a route through a small room and prints the action
// sequence the playback layer would animate.
func ExampleSolve() {
	legend := board.Legend{
		"w": board.MeaningWall,
		"o": board.MeaningOpen,
		"s": board.MeaningStart,
		"f": board.MeaningFinish,
		"1": board.MeaningDirt1,
		"2": board.MeaningDirt2,
	}
	labels := [][]string{
		{"s", "1", "f"},
	}
	layout, err := board.Parse(labels, legend)
	if err != nil {
		fmt.Println("parse failed:", err)

		return
	}
	start, err := state.New(layout.Start, layout.Dirt)
	if err != nil {
		fmt.Println("bad start state:", err)

		return
	}

	algo, _ := search.ParseAlgorithm("A*") // selection keys are case-insensitive
	res, err := search.Solve(layout.Board, start, layout.Finish, algo)
	if errors.Is(err, search.ErrNoPath) {
		fmt.Println("no solution")

		return
	}
	if err != nil {
		fmt.Println("search failed:", err)

		return
	}

	for _, a := range res.Actions() {
		fmt.Println(a)
	}
	fmt.Println("cost:", res.Cost)
	// Output:
	// Right
	// Clean
	// Right
	// cost: 3
}

// ExampleReplay validates a returned path against the successor rules.
func ExampleReplay() {
	open := [][]bool{{true, true}}
	b, _ := board.New(open)
	start, _ := state.New(board.Point{X: 0, Y: 0}, [][]int{{0, 0}})
	finish := board.Point{X: 1, Y: 0}

	res, _ := search.BFS(b, start, finish)
	fmt.Println("valid:", search.Replay(b, start, res.Path) == nil)
	// Output:
	// valid: true
}
