// Package astar implements A* search over a gridmap.Grid.
//
// The driver is a small state machine (Idle → Running → Found | Exhausted)
// that owns its frontier, explored set and node arena for one query.
// Nothing is shared between searches except the read-only grid.
package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// FindPath returns a minimum-cost path from start to goal, both inclusive.
// An empty, non-nil slice with a nil error means the goal is unreachable.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. opts must be valid (ErrOptionViolation).
//  3. start and goal must be in bounds and walkable (ErrInvalidEndpoint).
//
// Cancellation via WithContext returns the context's error, and
// WithMaxExpansions returns ErrExpansionLimit.
func FindPath(g *gridmap.Grid, start, goal gridmap.Position, opts ...Option) ([]gridmap.Position, error) {
	s, err := NewSearch(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	res, err := s.Run()
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search holds the mutable state of one A* query.
// A Search is not safe for concurrent use and cannot be restarted.
type Search struct {
	grid        *gridmap.Grid
	start, goal gridmap.Position
	opts        Options

	state    State
	nodes    arena
	frontier *Frontier
	explored *ExploredSet
	goalID   NodeID
	err      error // sticky failure; every later Step returns it

	expanded, pushed, stale int
}

// NewSearch validates its inputs and returns a Search in the Idle state.
// See FindPath for the validation order and errors.
func NewSearch(g *gridmap.Grid, start, goal gridmap.Position, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	return &Search{
		grid:     g,
		start:    start,
		goal:     goal,
		opts:     o,
		state:    Idle,
		frontier: NewFrontier(g.Len()),
		explored: NewExploredSet(g),
		goalID:   NoParent,
	}, nil
}

// checkEndpoint rejects positions that are outside the grid or blocked.
func checkEndpoint(g *gridmap.Grid, name string, p gridmap.Position) error {
	free, err := g.IsWalkable(p)
	if err != nil {
		return fmt.Errorf("%w: %s %v: %w", ErrInvalidEndpoint, name, p, err)
	}
	if !free {
		return fmt.Errorf("%w: %s %v is an obstacle", ErrInvalidEndpoint, name, p)
	}

	return nil
}

// State returns the current lifecycle state.
func (s *Search) State() State { return s.state }

// Step performs one transition of the search:
//
//   - Idle: seed the frontier with the start node (g=0, f=h) and enter Running.
//   - Running: pop the lowest (f, sequence) node. Popping the goal enters Found.
//     A node whose cell is already explored is skipped as stale. Otherwise the
//     cell is marked explored and every in-bounds, walkable, unexplored
//     4-neighbor is pushed with g+1. An empty frontier enters Exhausted.
//   - Found, Exhausted: no-op.
//
// Context cancellation and the expansion cap are checked once per step;
// after either fires, Step keeps returning the same error.
func (s *Search) Step() (State, error) {
	if s.err != nil {
		return s.state, s.err
	}
	switch s.state {
	case Idle:
		s.seed()
		return s.state, nil
	case Running:
		// cancellation check (once per step)
		select {
		case <-s.opts.Ctx.Done():
			s.err = s.opts.Ctx.Err()
			return s.state, s.err
		default:
		}
		err := s.advance()
		return s.state, err
	default:
		return s.state, nil
	}
}

// Run steps until the search reaches Found or Exhausted and returns the Result.
func (s *Search) Run() (*Result, error) {
	for !s.state.Terminal() {
		if _, err := s.Step(); err != nil {
			return nil, err
		}
	}

	return s.Result(), nil
}

// Result returns the outcome once the search is terminal, nil before.
func (s *Search) Result() *Result {
	if !s.state.Terminal() {
		return nil
	}
	res := &Result{
		Path:     []gridmap.Position{},
		Found:    s.state == Found,
		Expanded: s.expanded,
		Pushed:   s.pushed,
		Stale:    s.stale,
	}
	if res.Found {
		res.Path = reconstruct(&s.nodes, s.goalID)
		res.Cost = s.nodes.nodes[s.goalID].G
	}

	return res
}

// Node returns the arena node behind id.
func (s *Search) Node(id NodeID) (Node, bool) { return s.nodes.get(id) }

// Nodes returns the number of nodes created so far.
func (s *Search) Nodes() int { return s.nodes.len() }

// PathTo reconstructs the start→id path through the search tree.
func (s *Search) PathTo(id NodeID) []gridmap.Position { return reconstruct(&s.nodes, id) }

// Explored reports whether p has been finalized.
func (s *Search) Explored(p gridmap.Position) bool { return s.explored.Contains(p) }

// FrontierLen returns the number of queued frontier entries.
func (s *Search) FrontierLen() int { return s.frontier.Len() }

// seed pushes the root node and enters Running.
func (s *Search) seed() {
	h := s.opts.Heuristic(s.start, s.goal)
	s.push(s.start, 0, h, NoParent)
	s.state = Running
}

// push allocates a node in the arena and queues it.
func (s *Search) push(pos gridmap.Position, g, h int, parent NodeID) {
	id := s.nodes.add(pos, g, h, parent)
	s.frontier.Push(g+h, id)
	s.pushed++
}

// advance processes one frontier entry.
func (s *Search) advance() error {
	if s.frontier.Empty() {
		s.state = Exhausted
		return nil
	}
	id, err := s.frontier.Pop()
	if err != nil {
		s.err = err
		return err
	}
	cur := s.nodes.nodes[id]

	// 1) Goal check happens before the explored check.
	if cur.Pos == s.goal {
		s.goalID = id
		s.state = Found
		return nil
	}

	// 2) Stale duplicate: a cheaper copy was already expanded.
	if !s.explored.Add(cur.Pos) {
		s.stale++
		return nil
	}

	// 3) Expansion cap.
	if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
		s.err = fmt.Errorf("%w: %d", ErrExpansionLimit, s.opts.MaxExpansions)
		return s.err
	}
	s.expanded++
	s.opts.OnExpand(cur)

	// 4) Push every passable, unexplored 4-neighbor unconditionally.
	for _, d := range s.grid.Offsets() {
		next := cur.Pos.Add(d[0], d[1])
		if !s.grid.Passable(next) || s.explored.Contains(next) {
			continue
		}
		s.push(next, cur.G+1, s.opts.Heuristic(next, s.goal), id)
	}

	return nil
}
