package life

import (
	"errors"
	"testing"
)

func TestGridBoundedGet(t *testing.T) {
	g := newGrid(4, 3, EdgeBounded)
	g.set(1, 2, true)

	if state, err := g.Get(1, 2); err != nil || !bool(state) {
		t.Errorf("Get(1, 2) = %v, %v, want true", state, err)
	}
	if state, err := g.Get(0, 0); err != nil || bool(state) {
		t.Errorf("Get(0, 0) = %v, %v, want false", state, err)
	}

	outside := []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {100, 100}}
	for _, c := range outside {
		if _, err := g.Get(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d) = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
	}
}

func TestGridTorusGetWrapsAround(t *testing.T) {
	g := newGrid(4, 3, EdgeTorus)
	g.set(0, 0, true)

	queries := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{3, 0, true},  //one height below
		{-3, 0, true}, //one height above
		{0, 4, true},  //one width right
		{0, -4, true}, //one width left
		{-3, -4, true},
		{1, 1, false},
		{-1, -1, false}, //wraps to (2, 3)
	}
	for _, q := range queries {
		state, err := g.Get(q.row, q.col)
		if err != nil {
			t.Fatalf("Get(%d, %d) failed: %v", q.row, q.col, err)
		}
		if bool(state) != q.want {
			t.Errorf("Get(%d, %d) = %v, want %v", q.row, q.col, state, q.want)
		}
	}
}

func TestNeighborCountBounded(t *testing.T) {
	g := newGrid(4, 4, EdgeBounded)
	//a block in the top-left corner
	g.set(0, 0, true)
	g.set(0, 1, true)
	g.set(1, 0, true)
	g.set(1, 1, true)

	counts := []struct {
		row, col int
		want     int
	}{
		{0, 0, 3}, //the corner sees only the other block cells
		{1, 1, 3},
		{0, 2, 2},
		{2, 2, 1},
		{3, 3, 0},
	}
	for _, c := range counts {
		if got := g.NeighborCount(c.row, c.col); got != c.want {
			t.Errorf("NeighborCount(%d, %d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}
}

func TestNeighborCountTorus(t *testing.T) {
	g := newGrid(5, 5, EdgeTorus)
	g.set(0, 0, true)

	counts := []struct {
		row, col int
		want     int
	}{
		{4, 4, 1}, //diagonal wrap
		{0, 4, 1},
		{4, 0, 1},
		{1, 1, 1},
		{2, 2, 0},
	}
	for _, c := range counts {
		if got := g.NeighborCount(c.row, c.col); got != c.want {
			t.Errorf("NeighborCount(%d, %d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}
}
