package astar

import "github.com/katalvlaran/gridpath/gridmap"

// ExploredSet is the closed set: cells that have been popped and expanded.
// It is a dense bitmap over the grid's row-major indices.
type ExploredSet struct {
	grid *gridmap.Grid
	seen []bool
	n    int
}

// NewExploredSet returns an empty set sized for g.
func NewExploredSet(g *gridmap.Grid) *ExploredSet {
	return &ExploredSet{grid: g, seen: make([]bool, g.Len())}
}

// Add marks p as explored. It returns false if p was already present or
// lies outside the grid.
// Complexity: O(1).
func (s *ExploredSet) Add(p gridmap.Position) bool {
	if !s.grid.InBounds(p) {
		return false
	}
	i := s.grid.Index(p)
	if s.seen[i] {
		return false
	}
	s.seen[i] = true
	s.n++

	return true
}

// Contains reports whether p has been explored.
// Complexity: O(1).
func (s *ExploredSet) Contains(p gridmap.Position) bool {
	return s.grid.InBounds(p) && s.seen[s.grid.Index(p)]
}

// Len returns the number of explored cells.
func (s *ExploredSet) Len() int { return s.n }
