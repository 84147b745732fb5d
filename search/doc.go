// Package search plans cleaning routes through the vacuum-world state
// graph: the implicit graph whose vertices are (position, dirt)
// configurations and whose unit-cost edges are legal actions.
//
// # What
//
//   - BFS / DFS: one generic expansion engine parameterized by frontier
//     discipline (FIFO queue or LIFO stack) with a visited-state table, so
//     each distinct state is expanded at most once even when many action
//     sequences revisit it.
//   - AStar: a priority frontier ordered by f = cost + heuristic, a
//     best-known-cost table, and lazy decrease-key (improved states are
//     re-pushed, stale entries skipped on pop).
//   - Solve + ParseAlgorithm: dispatch over the closed {"bfs","dfs","a*"}
//     selection keys used by the hosting application.
//   - StateDistance: the default admissible, consistent heuristic.
//   - Replay: re-applies a returned path step by step, verifying the
//     round-trip law.
//
// # Goal condition
//
//	A state is a goal iff the agent stands on the finish cell and every
//	dirt level is zero.
//
// # Determinism
//
//	Successor order is fixed (Up, Down, Left, Right, Clean) and A* ties
//	break on lower cost then insertion order, so re-running any search on
//	the same inputs yields an identical expansion count and path.
//
// # Optimality
//
//   - BFS: minimal action count, since all actions have unit cost.
//   - AStar: minimal action count, provided the heuristic honors the
//     admissibility contract (StateDistance does).
//   - DFS: a valid path only; it exists as an alternative exploration order.
//
// # Concurrency & resources
//
//	A search runs single-threaded to completion and performs no I/O; hosts
//	wanting a responsive event loop invoke it from their own goroutine, and
//	WithContext offers opt-in cancellation. The frontier, arena, and
//	visited tables are owned by one invocation, so independent searches may
//	run concurrently over the same Board. Memory grows with the number of
//	distinct states explored — exponential in the count of dirty cells —
//	and has no eviction; that bounds solvable board sizes.
//
// # Errors
//
//   - ErrNilBoard, ErrBlockedFinish, state.ErrDimensionMismatch,
//     state.ErrBlockedCell for malformed inputs.
//   - ErrNilHeuristic for an invalid option.
//   - ErrUnknownAlgorithm for selection keys outside the closed set.
//   - ErrNoPath when the goal is unreachable — a normal outcome, not a
//     malfunction; callers present it as "no solution".
//
// # Usage
//
//	algo, err := search.ParseAlgorithm("A*") // case-insensitive
//	if err != nil { ... }
//	res, err := search.Solve(layout.Board, start, layout.Finish, algo)
//	switch {
//	case errors.Is(err, search.ErrNoPath):
//	    // unsolvable board
//	case err != nil:
//	    // malformed input
//	default:
//	    for _, step := range res.Path { ... } // hand to playback
//	}
package search
