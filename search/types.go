// Package search defines configuration options, result types, and sentinel
// errors for the vacuum-world path-planning engine.
package search

import (
	"context"
	"errors"
	"strings"

	"github.com/vacworld/vacworld/board"
	"github.com/vacworld/vacworld/state"
)

// Sentinel errors for search execution.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("search: board is nil")
	// ErrBlockedFinish is returned when the finish position is not an open cell.
	ErrBlockedFinish = errors.New("search: finish position is not an open cell")
	// ErrNilHeuristic is returned when WithHeuristic is given a nil function.
	ErrNilHeuristic = errors.New("search: heuristic must not be nil")
	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Solve for a key
	// outside {"bfs", "dfs", "a*"}.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
	// ErrNoPath is the NotFound outcome: the frontier emptied before any
	// state satisfied the goal condition. It is a normal result of an
	// unsolvable board, distinct from malformed input.
	ErrNoPath = errors.New("search: no path to goal")
)

// Algorithm selects the frontier discipline of a Solve call. It is a closed
// tagged variant: BreadthFirst and DepthFirst run the uninformed engine with
// FIFO and LIFO frontiers, AStarSearch runs the heuristic-guided engine.
type Algorithm int

const (
	// BreadthFirst expands in FIFO order; the returned path is minimal.
	BreadthFirst Algorithm = iota
	// DepthFirst expands in LIFO order; the path is valid but not minimal.
	DepthFirst
	// AStarSearch orders the frontier by cost + heuristic; with an
	// admissible heuristic the returned path is minimal.
	AStarSearch
)

// algorithmKeys is indexed by Algorithm.
var algorithmKeys = [...]string{"bfs", "dfs", "a*"}

// String returns the selection key of the algorithm ("bfs", "dfs", "a*").
func (a Algorithm) String() string {
	if a < BreadthFirst || a > AStarSearch {
		return "unknown"
	}

	return algorithmKeys[a]
}

// ParseAlgorithm maps a case-insensitive selection key onto an Algorithm.
// Accepted keys are "bfs", "dfs", and "a*"; anything else yields
// ErrUnknownAlgorithm.
func ParseAlgorithm(key string) (Algorithm, error) {
	switch strings.ToLower(key) {
	case "bfs":
		return BreadthFirst, nil
	case "dfs":
		return DepthFirst, nil
	case "a*":
		return AStarSearch, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// Heuristic estimates the number of actions still required to reach the
// goal condition (agent at finish, all dirt removed) from s.
//
// Contract: the estimate must be admissible — never exceed the true minimum
// number of remaining actions — or A* loses its optimality guarantee (not
// its termination). Consistency (|h(s) - h(s')| ≤ 1 across any unit-cost
// action) additionally lets the engine finalize each state the first time
// it is popped. Violations are a programming error; they are not detected
// at runtime, but the test suite cross-checks StateDistance against exact
// BFS distances on small boards.
type Heuristic func(s state.State, finish board.Point) int

// Option configures search behavior via functional arguments. An invalid
// Option (e.g. a nil heuristic) is recorded internally and surfaced as an
// error when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by all search variants.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Heuristic guides AStarSearch; ignored by the uninformed variants.
	Heuristic Heuristic

	// OnExpand is called each time a node is expanded, with its state and
	// path cost. Purely observational.
	OnExpand func(s state.State, cost int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// StateDistance heuristic, no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: StateDistance,
		OnExpand:  func(state.State, int) {},
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the default StateDistance estimate for AStarSearch.
// The function must honor the admissibility contract on Heuristic.
// Passing nil records ErrNilHeuristic, surfaced when the search runs.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = ErrNilHeuristic

			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers an observation callback invoked per expanded node.
func WithOnExpand(fn func(s state.State, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Step is one element of a solution path: a state and the action that
// produced it from the previous step's state. The first step of every path
// carries state.ActionNone.
type Step struct {
	State  state.State
	Action state.Action
}

// Result holds the outcome of a successful search.
//   - Path: the start→goal state/action sequence, owned by the caller.
//   - Cost: number of actions, always len(Path)-1.
//   - Expanded: nodes expanded; deterministic for a fixed board, start,
//     finish, and algorithm.
type Result struct {
	Path     []Step
	Cost     int
	Expanded int
}

// Actions projects the path onto its action sequence, dropping the leading
// ActionNone. Convenient for playback captions and for tests.
func (r *Result) Actions() []state.Action {
	if len(r.Path) <= 1 {
		return nil
	}
	acts := make([]state.Action, 0, len(r.Path)-1)
	for _, st := range r.Path[1:] {
		acts = append(acts, st.Action)
	}

	return acts
}
