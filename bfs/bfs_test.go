package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridmap"
)

func mustParse(t *testing.T, text string) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil grid
	if _, err := bfs.BFS(nil, gridmap.Pos(0, 0)); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g := mustParse(t, ".#")
	// start out of bounds
	if _, err := bfs.BFS(g, gridmap.Pos(0, 5)); !errors.Is(err, bfs.ErrStartInvalid) {
		t.Errorf("out of bounds start: want ErrStartInvalid, got %v", err)
	}
	// start on obstacle
	if _, err := bfs.BFS(g, gridmap.Pos(0, 1)); !errors.Is(err, bfs.ErrStartInvalid) {
		t.Errorf("blocked start: want ErrStartInvalid, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, gridmap.Pos(0, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleCell covers the trivial 1×1 grid.
func TestBFS_SingleCell(t *testing.T) {
	g := mustParse(t, ".")
	res, err := bfs.BFS(g, gridmap.Pos(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []gridmap.Position{{Row: 0, Col: 0}}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[gridmap.Pos(0, 0)]; d != 0 {
		t.Errorf("Depth = %d; want 0", d)
	}
}

// TestBFS_OrderAndDepths checks layering on an open 3×3 grid.
func TestBFS_OrderAndDepths(t *testing.T) {
	g := mustParse(t, "...\n...\n...")
	res, err := bfs.BFS(g, gridmap.Pos(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	want := []gridmap.Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1}, {Row: 1, Col: 0},
		{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0},
		{Row: 1, Col: 2}, {Row: 2, Col: 1},
		{Row: 2, Col: 2},
	}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for _, p := range res.Order {
		if got, want := res.Depth[p], p.Row+p.Col; got != want {
			t.Errorf("Depth[%v] = %d; want %d", p, got, want)
		}
	}
}

// TestBFS_WallsAndPath verifies detours around obstacles and PathTo.
func TestBFS_WallsAndPath(t *testing.T) {
	g := mustParse(t, `
		.#.
		.#.
		...
	`)
	res, err := bfs.BFS(g, gridmap.Pos(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Depth[gridmap.Pos(0, 2)]; got != 6 {
		t.Errorf("Depth[(0,2)] = %d; want 6", got)
	}
	path, err := res.PathTo(gridmap.Pos(0, 2))
	if err != nil {
		t.Fatal(err)
	}
	want := []gridmap.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 2}, {Row: 0, Col: 2}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo = %v; want %v", path, want)
	}
	if _, err := res.PathTo(gridmap.Pos(0, 1)); !errors.Is(err, bfs.ErrUnreachable) {
		t.Errorf("PathTo(wall): want ErrUnreachable, got %v", err)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth limits the explored layers.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustParse(t, ".....")
	res, err := bfs.BFS(g, gridmap.Pos(0, 0), bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []gridmap.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	res, _ = bfs.BFS(g, gridmap.Pos(0, 0), bfs.WithMaxDepth(0))
	if len(res.Order) != 5 {
		t.Errorf("MaxDepth(0) visited %d; want 5", len(res.Order))
	}
}

// TestBFS_Hooks checks OnEnqueue and OnVisit, including abort on error.
func TestBFS_Hooks(t *testing.T) {
	g := mustParse(t, "...")
	var enq []gridmap.Position
	stop := errors.New("stop")
	_, err := bfs.BFS(g, gridmap.Pos(0, 0),
		bfs.WithOnEnqueue(func(p gridmap.Position, _ int) { enq = append(enq, p) }),
		bfs.WithOnVisit(func(p gridmap.Position, depth int) error {
			if depth == 1 {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []gridmap.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueued = %v; want %v", enq, want)
	}
}

// TestBFS_Cancel ensures a canceled context aborts the walk.
func TestBFS_Cancel(t *testing.T) {
	g := mustParse(t, "....")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, gridmap.Pos(0, 0), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestDistance covers reachable and enclosed destinations.
func TestDistance(t *testing.T) {
	g := mustParse(t, `
		..#..
		..#.#
		..##.
	`)
	if d, err := bfs.Distance(g, gridmap.Pos(0, 0), gridmap.Pos(2, 1)); err != nil || d != 3 {
		t.Errorf("Distance = %d, %v; want 3, nil", d, err)
	}
	if _, err := bfs.Distance(g, gridmap.Pos(0, 0), gridmap.Pos(2, 4)); !errors.Is(err, bfs.ErrUnreachable) {
		t.Errorf("enclosed: want ErrUnreachable, got %v", err)
	}
}
