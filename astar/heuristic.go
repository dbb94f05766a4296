package astar

import "github.com/katalvlaran/gridpath/gridmap"

// Heuristic estimates the remaining cost from a to b. It must never return
// a negative value.
type Heuristic func(a, b gridmap.Position) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the exact remaining
// cost on an empty 4-connected unit grid. Admissible and consistent.
func Manhattan(a, b gridmap.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Zero always returns 0, turning A* into uniform-cost search.
func Zero(_, _ gridmap.Position) int {
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
