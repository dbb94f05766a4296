package astar

import "github.com/katalvlaran/gridpath/gridmap"

// reconstruct follows Parent handles from id back to the root and returns
// the positions in start→id order. An unknown id yields an empty path.
func reconstruct(a *arena, id NodeID) []gridmap.Position {
	path := []gridmap.Position{}
	for cur := id; cur != NoParent; {
		n, ok := a.get(cur)
		if !ok {
			break
		}
		path = append(path, n.Pos)
		cur = n.Parent
	}
	// reverse to get start → id
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
