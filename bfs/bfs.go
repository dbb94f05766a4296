// Package bfs provides breadth-first search over a gridmap.Grid,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks, depth limiting, and cancellation.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   gridmap.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridmap.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartInvalid for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *gridmap.Grid, start gridmap.Position, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartInvalid, start)
	}

	// Prepare walker
	n := g.Len()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]gridmap.Position, 0, n),
			Depth:  make(map[gridmap.Position]int, n),
			Parent: make(map[gridmap.Position]gridmap.Position, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// Distance returns the number of unit steps on a shortest path from a to b.
// Returns ErrUnreachable if b cannot be reached, plus the errors of BFS.
func Distance(g *gridmap.Grid, a, b gridmap.Position) (int, error) {
	res, err := BFS(g, a)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[b]
	if !ok {
		return 0, fmt.Errorf("%w: %v from %v", ErrUnreachable, b, a)
	}

	return d, nil
}

// enqueue marks p visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(p gridmap.Position, d int, parent *gridmap.Position) {
	w.visited[w.grid.Index(p)] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen passable neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.pos) {
		// first time seen?
		if !w.visited[w.grid.Index(nbr)] {
			parent := item.pos
			w.enqueue(nbr, nextDepth, &parent)
		}
	}
}
