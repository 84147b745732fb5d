package search

import (
	"github.com/vacworld/vacworld/board"
	"github.com/vacworld/vacworld/state"
)

// StateDistance is the default heuristic: the total remaining dirt plus the
// largest Manhattan distance from the agent to any cell it still has to
// visit (every dirty cell and the finish).
//
// Admissibility: every remaining dirt level costs one Clean action, and the
// agent must still physically reach each dirty cell and the finish, so the
// single largest Manhattan distance is a simultaneous lower bound on the
// moves. The two terms count disjoint actions (cleans vs. moves), so the
// sum never overestimates.
//
// Consistency: a move shifts every Manhattan term by at most one and leaves
// the dirt total unchanged; a Clean removes one dirt unit and can only drop
// a distance term that is already zero (the agent stands on the cell).
// Either way the estimate changes by at most the unit action cost.
// Complexity: O(W×H).
func StateDistance(s state.State, finish board.Point) int {
	pos := s.Pos()
	maxDist := pos.Manhattan(finish)
	for _, cell := range s.DirtyCells() {
		if d := pos.Manhattan(cell); d > maxDist {
			maxDist = d
		}
	}

	return s.TotalDirt() + maxDist
}
