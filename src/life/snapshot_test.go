package life

import (
	"errors"
	"testing"
)

func TestSnapshotIsUnaffectedByLaterWrites(t *testing.T) {
	g := newGrid(6, 6, EdgeBounded)
	g.set(2, 2, true)
	g.gen = 7

	snap := freeze(g)

	g.set(2, 2, false)
	g.set(0, 0, true)

	if state, _ := snap.Query(2, 2); !bool(state) {
		t.Error("Query(2, 2) = false, want the frozen state true")
	}
	if state, _ := snap.Query(0, 0); bool(state) {
		t.Error("Query(0, 0) = true, want the frozen state false")
	}
	if snap.Generation() != 7 {
		t.Errorf("Generation() = %d, want 7", snap.Generation())
	}
}

func TestSnapshotQueryFollowsEdgePolicy(t *testing.T) {
	bounded := newGrid(4, 4, EdgeBounded)
	bounded.set(0, 0, true)
	if _, err := freeze(bounded).Query(4, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Query(4, 0) on a bounded snapshot = %v, want ErrOutOfBounds", err)
	}

	torus := newGrid(4, 4, EdgeTorus)
	torus.set(0, 0, true)
	state, err := freeze(torus).Query(4, 4)
	if err != nil {
		t.Fatalf("Query(4, 4) on a torus snapshot failed: %v", err)
	}
	if !bool(state) {
		t.Error("Query(4, 4) on a torus snapshot = false, want the wrapped cell (0, 0)")
	}
}

func TestSnapshotAliveIsRowMajor(t *testing.T) {
	g := newGrid(5, 4, EdgeBounded)
	seed := []Coord{{3, 1}, {0, 4}, {2, 2}, {0, 1}}
	for _, c := range seed {
		g.set(c.Row, c.Col, true)
	}

	want := []Coord{{0, 1}, {0, 4}, {2, 2}, {3, 1}}
	got := freeze(g).Alive()
	if len(got) != len(want) {
		t.Fatalf("Alive() returned %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Alive()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
