// Package state models vacuum-world configurations and the actions that
// transform them.
//
// # What
//
//   - State: an immutable (position, dirt-grid) value with structural
//     equality (Equal) and a canonical map key (Key) — the unit the search
//     engine deduplicates on.
//   - Action: the closed set Up/Down/Left/Right/Clean, plus ActionNone for
//     the first element of a solution path. Every action has unit cost.
//   - Apply: one checked transition, used by callers replaying a path.
//   - Successors: the legal transitions of a state, always enumerated in
//     the order Up, Down, Left, Right, Clean.
//
// # Why
//
//	Many action sequences revisit the same (position, dirt) configuration,
//	so the search is over a graph quotiented by state equality, not a tree.
//	That only works if equality and hashing are exact — hence immutable
//	value semantics: a Clean clones the dirt grid, so no branch of the
//	search can see another branch's cleaning.
//
// # Determinism
//
//	Successors returns actions in a fixed order, making expansion order (and
//	therefore the BFS/DFS result) reproducible across runs.
//
// # Dirt semantics
//
//	Dirt levels are discrete, 0..MaxDirtLevel. ActionClean removes exactly
//	one level per application; a level-2 cell needs two Clean actions.
//
// # Errors
//
//   - ErrEmptyDirt, ErrNonRectangular, ErrDirtLevel from New.
//   - ErrDimensionMismatch, ErrBlockedCell from Validate.
//   - ErrIllegalAction, ErrUnknownAction from Apply.
package state
