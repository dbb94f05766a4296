// Package bfs provides breadth-first search over a gridmap.Grid, returning
// unweighted shortest-path distances, parent links and visit order.
//
// BFS explores passable cells in increasing step count from a start cell
// using the grid's fixed 4-neighbor order, with optional hooks, depth
// limiting and cancellation. Because every move costs 1, Depth[p] is the
// exact shortest-path distance to p; the astar tests use it as an oracle.
//
// Complexity: O(W×H) time and memory.
package bfs
