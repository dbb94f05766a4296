package astar

import "github.com/katalvlaran/gridpath/gridmap"

// NodeID is a stable handle into a search's node arena.
type NodeID int32

// NoParent marks the root of the search tree.
const NoParent NodeID = -1

// Node is one discovered search state.
// Invariant: F == G + H. Parent is NoParent only for the start node.
type Node struct {
	Pos    gridmap.Position
	G      int    // cost from start
	H      int    // heuristic estimate to goal
	F      int    // G + H
	Parent NodeID // predecessor handle
}

// arena owns every node created by one search. Nodes are appended and
// never moved or removed, so a NodeID stays valid for the arena's lifetime.
type arena struct {
	nodes []Node
}

// add stores a new node and returns its handle.
func (a *arena) add(pos gridmap.Position, g, h int, parent NodeID) NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{Pos: pos, G: g, H: h, F: g + h, Parent: parent})
	return id
}

// get returns the node for id; ok is false for unknown handles.
func (a *arena) get(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(a.nodes) {
		return Node{}, false
	}
	return a.nodes[id], true
}

func (a *arena) len() int { return len(a.nodes) }
