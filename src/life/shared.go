package life

import "sync"

/*
	Shared-snapshot strategy

	every worker reads the one frozen snapshot of the previous generation
	and writes its results directly into the disjoint row range of the
	output grid its partition names
	nothing is copied per worker, correctness rests on the partition plan
	covering every row exactly once and on the snapshot staying frozen
	until the join
*/
type sharedStrategy struct{}

func (sharedStrategy) name() string {
	return SharedStrategy
}

func (sharedStrategy) compute(snap *Snapshot, parts []Partition, out *Grid, rule Rule) (tickStats, error) {
	results := make([]partitionResult, len(parts))
	var waitGroup sync.WaitGroup
	for i := range parts {
		waitGroup.Add(1)
		go func(i int) {
			defer waitGroup.Done()
			results[i] = computePartition(snap, parts[i], out, rule)
		}(i)
	}
	waitGroup.Wait()
	return collectStats(results)
}

//computePartition fills the partition's rows of the output grid from the
//snapshot
func computePartition(snap *Snapshot, part Partition, out *Grid, rule Rule) (res partitionResult) {
	defer recoverFailure(part, &res.err)
	for row := part.Start; row < part.End; row++ {
		for col := 0; col < snap.width; col++ {
			alive := bool(snap.at(row, col))
			next := rule(alive, snap.NeighborCount(row, col))
			out.set(row, col, Cell(next))
			if next {
				res.liveCells++
			}
			res.changed = res.changed || next != alive
		}
	}
	return
}
