// Package astar finds minimum-cost paths on occupancy grids with the A*
// search algorithm over 4-connected unit steps.
//
// Overview:
//
//   - A* expands cells in order of f = g + h, where g is the exact cost from the
//     start and h is a heuristic estimate of the remaining cost to the goal.
//   - With the default Manhattan heuristic (admissible and consistent for unit
//     4-connected moves) the first time the goal is popped its path is optimal.
//   - Ties on f are broken by insertion order, so equal-cost alternatives are
//     resolved the same way on every run.
//
// Structure:
//
//   - Frontier:    min-heap of (f, sequence, node) entries; the sequence is a
//     strictly increasing counter assigned at push time.
//   - ExploredSet: dense bitmap of finalized cells; a finalized cell is never
//     pushed again during the same search.
//   - Node arena:  every discovered node lives in one slice and refers to its
//     predecessor by NodeID; the root uses NoParent. The arena forms a tree
//     rooted at the start and is dropped when the search is discarded.
//   - Search:      the driver. Its State moves Idle → Running → {Found, Exhausted}
//     exactly once. Step advances one transition, Run drives it to the end.
//
// Lazy decrease-key:
//
//	A cell may sit in the frontier several times with different g values. The
//	cheapest copy is popped first; later copies hit the ExploredSet and are
//	skipped as stale. No entry is ever updated in place.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          grid pointer is nil.
//   - ErrInvalidEndpoint:  start or goal is out of bounds or on an obstacle.
//     Checked before any search work.
//   - ErrOptionViolation:  an Option received an invalid argument.
//   - ErrExpansionLimit:   WithMaxExpansions cap reached before termination.
//   - ErrEmptyFrontier:    Frontier.Pop on an empty frontier.
//
// An unreachable goal is not an error: FindPath returns an empty path and
// Result.Found is false.
//
// Complexity:
//
//   - Time:  O(C log C) where C = W×H cells; each cell is finalized once and
//     each finalization pushes at most 4 entries.
//   - Space: O(C) for the arena, frontier and explored bitmap.
//
// Thread safety:
//
//	A Search is single-threaded and owns all of its state. The grid is only
//	read, so any number of searches may share one *gridmap.Grid concurrently.
//
// Example:
//
//	g, _ := gridmap.Parse("..#\n...\n")
//	path, err := astar.FindPath(g, gridmap.Pos(0, 0), gridmap.Pos(0, 1))
package astar
