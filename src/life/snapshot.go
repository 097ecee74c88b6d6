package life

//Snapshot is an immutable copy of the grid at a fixed generation
//one is frozen per tick before any worker starts, shared by every worker of
//that tick without locks because no writer exists for its lifetime, and
//dropped after the join
//viewers get their own snapshots the same way, see Engine.Current
type Snapshot struct {
	width  int
	height int
	edge   EdgePolicy
	gen    int
	cells  [][]Cell
}

//freeze copies the grid state into a fresh snapshot
func freeze(g *Grid) *Snapshot {
	cells := newCells(g.width, g.height)
	for row := range g.cells {
		copy(cells[row], g.cells[row])
	}
	return &Snapshot{
		width:  g.width,
		height: g.height,
		edge:   g.edge,
		gen:    g.gen,
		cells:  cells,
	}
}

//Width returns the number of columns of the frozen grid
func (s *Snapshot) Width() int { return s.width }

//Height returns the number of rows of the frozen grid
func (s *Snapshot) Height() int { return s.height }

//Generation returns the generation number the snapshot was frozen at
func (s *Snapshot) Generation() int { return s.gen }

//Edge returns the edge policy of the frozen grid
func (s *Snapshot) Edge() EdgePolicy { return s.edge }

//Query returns the frozen cell state at (row, col), with Grid.Get semantics
func (s *Snapshot) Query(row int, col int) (Cell, error) {
	return query(s.cells, s.width, s.height, s.edge, row, col)
}

//NeighborCount counts the live cells among the 8 neighbors of (row, col) in
//the frozen state
func (s *Snapshot) NeighborCount(row int, col int) int {
	return countNeighbors(s.cells, s.width, s.height, s.edge, row, col)
}

//at reads a frozen cell with in-range coordinates
func (s *Snapshot) at(row int, col int) Cell {
	return s.cells[row][col]
}

//Walk visits every frozen cell in row-major order
func (s *Snapshot) Walk(cb func(row int, col int, state Cell)) {
	for row := range s.cells {
		for col := range s.cells[row] {
			cb(row, col, s.cells[row][col])
		}
	}
}

//Alive collects the coordinates of the live cells in row-major order
func (s *Snapshot) Alive() []Coord {
	cells := make([]Coord, 0)
	for row := range s.cells {
		for col := range s.cells[row] {
			if s.cells[row][col] {
				cells = append(cells, Coord{Row: row, Col: col})
			}
		}
	}
	return cells
}
