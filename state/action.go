package state

import (
	"fmt"

	"github.com/vacworld/vacworld/board"
)

// moveActions lists the four moves in the fixed expansion order.
// Successor ordering is part of the determinism contract: BFS and DFS
// results depend on it.
var moveActions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// Validate checks that s is a legal configuration of b: matching dimensions
// and an agent position on an open cell.
// Returns ErrDimensionMismatch or ErrBlockedCell.
func Validate(b *board.Board, s State) error {
	if s.width != b.Width() || s.height != b.Height() {
		return fmt.Errorf("%w: state %dx%d, board %dx%d",
			ErrDimensionMismatch, s.width, s.height, b.Width(), b.Height())
	}
	if !b.IsOpen(s.pos) {
		return fmt.Errorf("%w: %s", ErrBlockedCell, s.pos)
	}

	return nil
}

// Apply applies one action to s on board b and returns the successor state.
// Moves require the destination cell to be open; ActionClean requires dirt
// at the agent position. Returns ErrIllegalAction when the precondition
// fails, ErrUnknownAction for values outside the closed set, or the
// Validate errors for a state/board mismatch. s itself is never mutated.
func Apply(b *board.Board, s State, a Action) (State, error) {
	if err := Validate(b, s); err != nil {
		return State{}, err
	}
	switch {
	case a.IsMove():
		dest := s.pos.Step(a.Direction())
		if !b.IsOpen(dest) {
			return State{}, fmt.Errorf("%w: %v into wall at %s", ErrIllegalAction, a, dest)
		}

		return s.withPos(dest), nil
	case a == ActionClean:
		if s.DirtAt(s.pos) == 0 {
			return State{}, fmt.Errorf("%w: Clean on dirt-free cell %s", ErrIllegalAction, s.pos)
		}

		return s.withCleaned(), nil
	default:
		return State{}, fmt.Errorf("%w: %v", ErrUnknownAction, a)
	}
}

// Successors enumerates the legal (action, successor) pairs of s on b,
// always in the order Up, Down, Left, Right, Clean. The caller is expected
// to have validated s against b once at search entry.
// Complexity: O(W×H) per call, dominated by the dirt-grid clone when the
// cell under the agent is dirty.
func Successors(b *board.Board, s State) []Transition {
	// At most 4 moves + 1 clean.
	out := make([]Transition, 0, 5)
	for _, a := range moveActions {
		dest := s.pos.Step(a.Direction())
		if b.IsOpen(dest) {
			out = append(out, Transition{Action: a, State: s.withPos(dest)})
		}
	}
	if s.DirtAt(s.pos) > 0 {
		out = append(out, Transition{Action: ActionClean, State: s.withCleaned()})
	}

	return out
}
