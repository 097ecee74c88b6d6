package life

import "fmt"

//Cell is the binary state of one grid position
type Cell bool

//Coord addresses one cell as (row, col)
type Coord struct {
	Row int
	Col int
}

//EdgePolicy defines what a neighbor query finds beyond the grid edge
//the policy is fixed for the lifetime of a run
type EdgePolicy int

const (
	//EdgeBounded treats everything outside the grid as permanently dead
	EdgeBounded EdgePolicy = iota
	//EdgeTorus wraps coordinates around: the left edge neighbors the right
	//edge and the top edge neighbors the bottom edge
	EdgeTorus
)

func (p EdgePolicy) String() string {
	switch p {
	case EdgeBounded:
		return "bounded"
	case EdgeTorus:
		return "torus"
	}
	return fmt.Sprintf("EdgePolicy(%d)", int(p))
}

//EdgePolicies lists the selectable edge policy names
func EdgePolicies() []string {
	return []string{EdgeBounded.String(), EdgeTorus.String()}
}

//ParseEdgePolicy maps a policy name to its EdgePolicy
func ParseEdgePolicy(name string) (EdgePolicy, error) {
	switch name {
	case "bounded":
		return EdgeBounded, nil
	case "torus":
		return EdgeTorus, nil
	}
	return EdgeBounded, fmt.Errorf("%w: unknown edge policy %q", ErrInvalidConfig, name)
}

//Grid owns the cell matrix for one generation
//the rows share one contiguous backing array, the coordinator swaps whole
//grids between generations and nothing else ever writes to one
type Grid struct {
	width  int
	height int
	edge   EdgePolicy
	gen    int
	cells  [][]Cell
}

//newGrid allocates a dead grid
func newGrid(width int, height int, edge EdgePolicy) *Grid {
	return &Grid{
		width:  width,
		height: height,
		edge:   edge,
		cells:  newCells(width, height),
	}
}

//newCells allocates a height x width matrix over one contiguous buffer
func newCells(width int, height int) [][]Cell {
	rows := make([][]Cell, height)
	b := make([]Cell, width*height)
	for i := range rows {
		start := width * i
		rows[i] = b[start : start+width : start+width]
	}
	return rows
}

//Width returns the fixed number of columns
func (g *Grid) Width() int { return g.width }

//Height returns the fixed number of rows
func (g *Grid) Height() int { return g.height }

//Generation returns the generation number this grid holds
func (g *Grid) Generation() int { return g.gen }

//Edge returns the edge policy fixed for the run
func (g *Grid) Edge() EdgePolicy { return g.edge }

//Get returns the cell state at (row, col)
//under EdgeBounded coordinates outside the grid fail with ErrOutOfBounds,
//under EdgeTorus they wrap around and never fail
func (g *Grid) Get(row int, col int) (Cell, error) {
	return query(g.cells, g.width, g.height, g.edge, row, col)
}

//NeighborCount counts the live cells among the 8-connected neighborhood of
//(row, col) under the grid's edge policy
func (g *Grid) NeighborCount(row int, col int) int {
	return countNeighbors(g.cells, g.width, g.height, g.edge, row, col)
}

//set writes one cell state
//only the coordinator assembling a generation calls this, never concurrently
//for the same cell
func (g *Grid) set(row int, col int, state Cell) {
	g.cells[row][col] = state
}

//at reads a cell with in-range coordinates
func (g *Grid) at(row int, col int) Cell {
	return g.cells[row][col]
}

//liveCells counts the live cells of the whole grid
func (g *Grid) liveCells() int {
	n := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] {
				n++
			}
		}
	}
	return n
}

//query resolves (row, col) against a cell matrix under the edge policy
func query(cells [][]Cell, width int, height int, edge EdgePolicy, row int, col int) (Cell, error) {
	if edge == EdgeTorus {
		return cells[wrap(row, height)][wrap(col, width)], nil
	}
	if row < 0 || col < 0 || row >= height || col >= width {
		return false, fmt.Errorf("%w: cell (%d, %d) outside %dx%d", ErrOutOfBounds, row, col, height, width)
	}
	return cells[row][col], nil
}

//countNeighbors counts the live cells among the 8 neighbors of (row, col)
func countNeighbors(cells [][]Cell, width int, height int, edge EdgePolicy, row int, col int) int {
	live := 0
	for dr := -1; dr < 2; dr++ {
		for dc := -1; dc < 2; dc++ {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			nr := row + dr
			nc := col + dc
			if edge == EdgeTorus {
				nr = wrap(nr, height)
				nc = wrap(nc, width)
			} else if nr < 0 || nc < 0 || nr >= height || nc >= width {
				//skip coordinates outside a bounded grid
				continue
			}
			if cells[nr][nc] {
				live++
			}
		}
	}
	return live
}

//wrap maps v onto [0, n) with toroidal wrap-around
func wrap(v int, n int) int {
	return ((v % n) + n) % n
}
