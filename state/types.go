// Package state defines the dynamic configuration of a vacuum-world search:
// the agent position, the per-cell dirt levels, and the closed set of legal
// actions that transform one configuration into the next.
package state

import (
	"errors"
	"fmt"

	"github.com/vacworld/vacworld/board"
)

// MaxDirtLevel is the highest dirt level a cell may carry. Dirt is consumed
// one level per Clean action, matching the discrete dirt frames of the
// playback layer.
const MaxDirtLevel = 2

// Sentinel errors for state construction and action application.
var (
	// ErrEmptyDirt indicates a dirt grid with no rows or no columns.
	ErrEmptyDirt = errors.New("state: dirt grid must have at least one row and one column")
	// ErrNonRectangular indicates dirt rows of differing lengths.
	ErrNonRectangular = errors.New("state: all dirt rows must have the same length")
	// ErrDirtLevel indicates a dirt level outside [0, MaxDirtLevel].
	ErrDirtLevel = errors.New("state: dirt level out of range")
	// ErrDimensionMismatch indicates state and board dimensions differ.
	ErrDimensionMismatch = errors.New("state: dirt grid dimensions do not match board")
	// ErrBlockedCell indicates an agent position on a wall or out of bounds.
	ErrBlockedCell = errors.New("state: agent position is not an open cell")
	// ErrIllegalAction indicates an action whose precondition does not hold.
	ErrIllegalAction = errors.New("state: action is not legal in this state")
	// ErrUnknownAction indicates an action value outside the closed set.
	ErrUnknownAction = errors.New("state: unknown action")
)

// Action is one step of the agent: a move in one of the four orthogonal
// directions, or cleaning one dirt level off the current cell. ActionNone
// is reserved for the first element of a solution path, which no action
// produced.
type Action int

const (
	// ActionNone marks the start state of a path; it is never legal to apply.
	ActionNone Action = iota
	// ActionUp moves the agent one cell up (Y-1).
	ActionUp
	// ActionDown moves the agent one cell down (Y+1).
	ActionDown
	// ActionLeft moves the agent one cell left (X-1).
	ActionLeft
	// ActionRight moves the agent one cell right (X+1).
	ActionRight
	// ActionClean removes exactly one dirt level from the current cell.
	ActionClean
)

// actionNames is indexed by Action; ActionNone renders empty for playback.
var actionNames = [...]string{"", "Up", "Down", "Left", "Right", "Clean"}

// String returns the playback label of the action.
func (a Action) String() string {
	if a < ActionNone || a > ActionClean {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return actionNames[a]
}

// IsMove reports whether a is one of the four orthogonal moves.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// Direction returns the board.Direction of a move action.
// It panics if a is not a move; guard with IsMove.
func (a Action) Direction() board.Direction {
	switch a {
	case ActionUp:
		return board.Up
	case ActionDown:
		return board.Down
	case ActionLeft:
		return board.Left
	case ActionRight:
		return board.Right
	}
	panic(fmt.Sprintf("state: Direction of non-move %v", a))
}

// Transition pairs a legal action with the state it produces.
type Transition struct {
	Action Action
	State  State
}
