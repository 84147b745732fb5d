// Package search implements the vacuum-world path-planning engine: one
// expansion loop over the implicit (position, dirt) state graph,
// parameterized by frontier discipline, plus an A* variant with a
// best-known-cost table and lazy decrease-key.
package search

import (
	"container/heap"
	"fmt"

	"github.com/vacworld/vacworld/board"
	"github.com/vacworld/vacworld/state"
)

// BFS finds a minimum-action plan from start to the goal condition (agent
// at finish, all dirt removed) by breadth-first search. Each distinct state
// is enqueued at most once; with unit action costs the first goal reached
// is optimal. Returns ErrNoPath when the goal is unreachable.
// Complexity: O(S·W·H) time and memory, S = distinct states explored
// (exponential in the number of dirty cells).
func BFS(b *board.Board, start state.State, finish board.Point, opts ...Option) (*Result, error) {
	return uninformed(b, start, finish, false, opts)
}

// DFS explores the same state graph in depth-first order. The returned path
// is legal but carries no minimality guarantee; the variant exists purely
// as an alternative exploration order. Returns ErrNoPath when the goal is
// unreachable.
func DFS(b *board.Board, start state.State, finish board.Point, opts ...Option) (*Result, error) {
	return uninformed(b, start, finish, true, opts)
}

// Solve dispatches on the closed Algorithm set. Use ParseAlgorithm to turn
// an external selection key ("bfs", "dfs", "a*", case-insensitive) into an
// Algorithm first.
func Solve(b *board.Board, start state.State, finish board.Point, algo Algorithm, opts ...Option) (*Result, error) {
	switch algo {
	case BreadthFirst:
		return BFS(b, start, finish, opts...)
	case DepthFirst:
		return DFS(b, start, finish, opts...)
	case AStarSearch:
		return AStar(b, start, finish, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// validate runs the shared precondition checks and builds Options.
func validate(b *board.Board, start state.State, finish board.Point, opts []Option) (Options, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	// Validate inputs in a fixed order.
	if b == nil {
		return o, ErrNilBoard
	}
	if err := state.Validate(b, start); err != nil {
		return o, err
	}
	if !b.IsOpen(finish) {
		return o, fmt.Errorf("%w: %s", ErrBlockedFinish, finish)
	}

	return o, nil
}

// walker encapsulates the mutable state of one uninformed search.
type walker struct {
	b        *board.Board
	finish   board.Point
	opts     Options
	arena    []node
	front    frontier
	seen     map[string]bool // visited or already on the frontier
	expanded int
}

// uninformed runs the generic expansion engine with a FIFO (breadth) or
// LIFO (depth) frontier. The seen table is keyed by state.Key and marked at
// enqueue time, so a state never enters the frontier twice, even via a
// different action path.
func uninformed(b *board.Board, start state.State, finish board.Point, lifo bool, opts []Option) (*Result, error) {
	o, err := validate(b, start, finish, opts)
	if err != nil {
		return nil, err
	}

	w := &walker{
		b:      b,
		finish: finish,
		opts:   o,
		arena:  make([]node, 0, b.OpenCount()),
		front:  newFrontier(lifo),
		seen:   make(map[string]bool, b.OpenCount()),
	}
	w.enqueue(start, -1, state.ActionNone, 0)

	return w.loop()
}

// enqueue appends a fresh arena node, marks its state seen, and pushes its
// index onto the frontier.
func (w *walker) enqueue(s state.State, parent int, a state.Action, cost int) {
	w.seen[s.Key()] = true
	w.arena = append(w.arena, node{state: s, parent: parent, action: a, cost: cost})
	w.front.push(len(w.arena) - 1)
}

// loop pops until the frontier empties, the goal is reached, or the context
// is cancelled.
func (w *walker) loop() (*Result, error) {
	for !w.front.empty() {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		idx := w.front.pop()
		cur := w.arena[idx]
		if goalReached(cur.state, w.finish) {
			return w.result(idx), nil
		}

		w.expanded++
		w.opts.OnExpand(cur.state, cur.cost)
		for _, tr := range state.Successors(w.b, cur.state) {
			if w.seen[tr.State.Key()] {
				continue
			}
			w.enqueue(tr.State, idx, tr.Action, cur.cost+1)
		}
	}

	return nil, ErrNoPath
}

// result materializes a Result from the goal node's back-links.
func (w *walker) result(goal int) *Result {
	return &Result{
		Path:     solutionPath(w.arena, goal),
		Cost:     w.arena[goal].cost,
		Expanded: w.expanded,
	}
}

// runner encapsulates the mutable state of one A* search.
type runner struct {
	b        *board.Board
	finish   board.Point
	opts     Options
	arena    []node
	pq       nodePQ
	best     map[string]int // state key → lowest path cost seen
	seq      int            // insertion counter for deterministic ties
	expanded int
}

// AStar finds a minimum-action plan using a frontier ordered by
// f = cost + heuristic, with ties broken by lower cost and then insertion
// order. The best-known-cost table implements decrease-key lazily: an
// improved state is re-pushed and stale heap entries are skipped when
// popped. The first popped goal is returned, which is optimal because the
// default StateDistance heuristic is admissible and consistent; see the
// Heuristic contract when substituting your own. Returns ErrNoPath when the
// goal is unreachable.
func AStar(b *board.Board, start state.State, finish board.Point, opts ...Option) (*Result, error) {
	o, err := validate(b, start, finish, opts)
	if err != nil {
		return nil, err
	}

	r := &runner{
		b:      b,
		finish: finish,
		opts:   o,
		arena:  make([]node, 0, b.OpenCount()),
		pq:     make(nodePQ, 0, b.OpenCount()),
		best:   make(map[string]int, b.OpenCount()),
	}
	heap.Init(&r.pq)
	r.push(start, -1, state.ActionNone, 0)

	return r.loop()
}

// push appends an arena node, records its cost in the best table, and
// pushes a heap entry at f = g + h.
func (r *runner) push(s state.State, parent int, a state.Action, g int) {
	r.best[s.Key()] = g
	r.arena = append(r.arena, node{state: s, parent: parent, action: a, cost: g})
	heap.Push(&r.pq, pqItem{
		idx: len(r.arena) - 1,
		g:   g,
		f:   g + r.opts.Heuristic(s, r.finish),
		seq: r.seq,
	})
	r.seq++
}

// loop pops in f-order until the goal is popped, the heap empties, or the
// context is cancelled.
func (r *runner) loop() (*Result, error) {
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(pqItem)
		cur := r.arena[item.idx]

		// Stale lazy-decrease-key entry: a cheaper path to this state was
		// recorded after the entry was pushed.
		if best, ok := r.best[cur.state.Key()]; ok && best < item.g {
			continue
		}

		if goalReached(cur.state, r.finish) {
			return &Result{
				Path:     solutionPath(r.arena, item.idx),
				Cost:     cur.cost,
				Expanded: r.expanded,
			}, nil
		}

		r.expanded++
		r.opts.OnExpand(cur.state, cur.cost)
		for _, tr := range state.Successors(r.b, cur.state) {
			g := cur.cost + 1
			if recorded, ok := r.best[tr.State.Key()]; ok && recorded <= g {
				continue
			}
			r.push(tr.State, item.idx, tr.Action, g)
		}
	}

	return nil, ErrNoPath
}
