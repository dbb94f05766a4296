// Package gridmap models a rectangular occupancy grid: a fixed table of
// walkable and blocked cells addressed by (row, col) positions.
//
// What:
//
//   - Grid wraps a rectangular [][]bool of walkable flags and is immutable once built.
//   - Answers bounds and walkability queries for path searches.
//   - Enumerates passable 4-neighbors in a fixed order (right, down, left, up).
//   - Renders the map, optionally with a path overlay, for demos and debugging.
//
// Why:
//
//   - Path searches need a read-only map that many independent queries can share.
//   - A fixed neighbor order keeps every search over the grid reproducible.
//
// Construction:
//
//   - New:      from [][]bool, true = walkable.
//   - FromInts: from [][]int, 0 = walkable, anything else = obstacle.
//   - Parse:    from ASCII rows, '.' = walkable, '#' = obstacle.
//
// Complexity:
//
//   - Construction: O(W×H) time and memory (deep copy).
//   - InBounds, IsWalkable, Passable, Index: O(1).
//   - Neighbors: O(1), at most 4 results.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: Parse met a rune other than '.' or '#'.
//   - ErrOutOfBounds: IsWalkable called with a position outside the grid.
//
// Concurrency:
//
//	No method mutates a Grid, so one Grid may be shared across any number
//	of concurrent readers without locking.
package gridmap
