// Package vacworld is the path-planning core of the vacuum-world demo:
// given a photographed grid puzzle recognized into a labeled cell grid,
// it computes an optimal cleaning route for the vacuum agent and hands an
// ordered state/action sequence to the playback layer.
//
// 🚀 What is vacworld?
//
//	A small, focused search-engine library that brings together:
//		• board/  — immutable wall/open grid + parser from recognized labels
//		• state/  — immutable (position, dirt) configurations & legal actions
//		• search/ — one expansion engine, three disciplines: BFS, DFS, A*
//
// ✨ Why vacworld?
//
//   - Deterministic – fixed successor order and tie-breaking, reproducible
//     expansion counts and paths on every run
//   - Optimal – BFS and A* (with the admissible StateDistance heuristic)
//     both return minimum-action plans
//   - Value semantics – states are cloned on write; no branch of the search
//     can leak a cleaning action into another branch
//   - Pure Go – stdlib only at runtime, testify for tests
//
// Quick ASCII example (W = wall, . = open, s = start, f = finish, 1 = dirt):
//
//	W W W W W
//	W s . 1 W
//	W W . f W
//	W W W W W
//
// Parse the labeled grid with board.Parse, wrap the dirt into a state.State,
// and call search.Solve with one of the Breadth/Depth/AStar variants; the
// returned Result.Path is ready for the playback consumer.
package vacworld
