package search

import (
	"fmt"

	"github.com/vacworld/vacworld/board"
	"github.com/vacworld/vacworld/state"
)

// solutionPath walks parent indices from the goal node back to the root and
// reverses, yielding the start→goal sequence. The first step carries
// ActionNone; every later step's action transforms the previous step's
// state into its own. Pure function over the arena; nodes are not mutated.
func solutionPath(arena []node, goal int) []Step {
	// Walk back to count, then fill in reverse.
	n := 0
	for idx := goal; idx != -1; idx = arena[idx].parent {
		n++
	}
	path := make([]Step, n)
	for idx := goal; idx != -1; idx = arena[idx].parent {
		n--
		path[n] = Step{State: arena[idx].state, Action: arena[idx].action}
	}

	return path
}

// Replay validates a solution path against the successor rules: the first
// step must hold the start state with ActionNone, and applying each later
// step's action to the previous state must reproduce that step's state
// exactly. It is the round-trip law behind every returned Result and a
// cheap sanity check for playback consumers.
func Replay(b *board.Board, start state.State, path []Step) error {
	if b == nil {
		return ErrNilBoard
	}
	if len(path) == 0 {
		return fmt.Errorf("search: empty path")
	}
	if path[0].Action != state.ActionNone {
		return fmt.Errorf("search: first step carries action %v, want none", path[0].Action)
	}
	if !path[0].State.Equal(start) {
		return fmt.Errorf("search: first step does not hold the start state")
	}

	cur := start
	for i, st := range path[1:] {
		next, err := state.Apply(b, cur, st.Action)
		if err != nil {
			return fmt.Errorf("search: step %d: %w", i+1, err)
		}
		if !next.Equal(st.State) {
			return fmt.Errorf("search: step %d: applying %v diverges from recorded state", i+1, st.Action)
		}
		cur = next
	}

	return nil
}
