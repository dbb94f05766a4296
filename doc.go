// Package gridpath is an in-memory toolkit for shortest-path queries on
// rectangular occupancy grids.
//
// What is inside:
//
//	gridmap/   — immutable occupancy grid: bounds, walkability, 4-neighbors, rendering
//	astar/     — A* search with a deterministic frontier, explored set and node arena
//	bfs/       — breadth-first search over a grid; unweighted distances and parents
//	navigator/ — instrumented query engine: timeouts, metrics, tracing, batch routing
//
// Quick ASCII example:
//
//	S # . . .
//	* # . # .
//	* . . # .
//	* # # # .
//	* * * * G
//
// is the 8-step route astar.FindPath returns on the tutorial map.
//
// Movement is always one cell up, down, left or right at unit cost.
// Diagonal moves, weighted terrain and replanning on a changing grid are
// out of scope.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
