package life

/*
	Exclusive-partition strategy

	the coordinator cuts one private tile per partition out of the frozen
	snapshot: the partition's rows plus one halo row above and below,
	wrapped under EdgeTorus and left dead under EdgeBounded
	each worker owns its tile and a private output buffer outright,
	computes, and hands the buffer back over a channel, the coordinator
	stitches the rows into the output grid after the join
	costs one extra copy of the grid per tick, buys exclusive memory
	ownership by construction instead of by partition-plan discipline
*/
type exclusiveStrategy struct{}

func (exclusiveStrategy) name() string {
	return ExclusiveStrategy
}

//tile is the private input handed to one worker: the partition's rows
//surrounded by their halo, with enough geometry to count neighbors locally
//rows[0] and rows[len-1] are the halo, rows[1:len-1] the partition
type tile struct {
	part  Partition
	width int
	edge  EdgePolicy
	rows  [][]Cell
}

//tileResult carries one worker's computed rows back to the coordinator
type tileResult struct {
	idx  int
	part Partition
	rows [][]Cell
	partitionResult
}

func (exclusiveStrategy) compute(snap *Snapshot, parts []Partition, out *Grid, rule Rule) (tickStats, error) {
	resultCh := make(chan tileResult, len(parts))
	for i := range parts {
		go func(i int, t tile) {
			resultCh <- computeTile(i, t, rule)
		}(i, cutTile(snap, parts[i]))
	}
	//join: collect every tile before looking at failures so no worker is
	//left behind writing to the channel of a finished tick
	results := make([]partitionResult, len(parts))
	tiles := make([][][]Cell, len(parts))
	for range parts {
		r := <-resultCh
		results[r.idx] = r.partitionResult
		tiles[r.idx] = r.rows
	}
	stats, err := collectStats(results)
	if err != nil {
		return tickStats{}, err
	}
	for i, p := range parts {
		stitch(out, p, tiles[i])
	}
	return stats, nil
}

//cutTile copies the partition's rows and their halo out of the snapshot
func cutTile(snap *Snapshot, part Partition) tile {
	t := tile{
		part:  part,
		width: snap.width,
		edge:  snap.edge,
		rows:  newCells(snap.width, part.Rows()+2),
	}
	for i := range t.rows {
		row := part.Start - 1 + i
		if snap.edge == EdgeTorus {
			row = wrap(row, snap.height)
		} else if row < 0 || row >= snap.height {
			//halo beyond a bounded edge stays dead
			continue
		}
		copy(t.rows[i], snap.cells[row])
	}
	return t
}

//computeTile fills a private output buffer for the tile's partition rows
func computeTile(idx int, t tile, rule Rule) (res tileResult) {
	res.idx = idx
	res.part = t.part
	defer recoverFailure(t.part, &res.err)
	res.rows = newCells(t.width, t.part.Rows())
	for r := 0; r < t.part.Rows(); r++ {
		for col := 0; col < t.width; col++ {
			alive := bool(t.rows[r+1][col])
			next := rule(alive, t.neighborCount(r, col))
			res.rows[r][col] = Cell(next)
			if next {
				res.liveCells++
			}
			res.changed = res.changed || next != alive
		}
	}
	return
}

//neighborCount counts the live neighbors of partition row r, column col
//inside the tile: the halo rows answer the vertical edges, the edge policy
//the horizontal ones
func (t tile) neighborCount(r int, col int) int {
	live := 0
	for dr := -1; dr < 2; dr++ {
		for dc := -1; dc < 2; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nc := col + dc
			if t.edge == EdgeTorus {
				nc = wrap(nc, t.width)
			} else if nc < 0 || nc >= t.width {
				continue
			}
			if t.rows[r+1+dr][nc] {
				live++
			}
		}
	}
	return live
}

//stitch writes one worker's computed rows into the output grid
func stitch(out *Grid, part Partition, rows [][]Cell) {
	for i, row := range rows {
		copy(out.cells[part.Start+i], row)
	}
}
