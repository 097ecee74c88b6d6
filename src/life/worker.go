package life

import "fmt"

const (
	//SharedStrategy shares one frozen snapshot among all workers, which
	//write their results straight into disjoint row ranges of the output
	//grid
	SharedStrategy = "shared"
	//ExclusiveStrategy hands every worker a private copy of its rows plus
	//halo and stitches the returned rows into the output grid after the join
	ExclusiveStrategy = "exclusive"
)

//Strategies lists the selectable sharing strategy names
func Strategies() []string {
	return []string{SharedStrategy, ExclusiveStrategy}
}

//strategy is the sharing discipline the workers of a tick run under
//compute fills out from the frozen snapshot, one worker per partition, and
//returns only after every worker finished
type strategy interface {
	name() string
	compute(snap *Snapshot, parts []Partition, out *Grid, rule Rule) (tickStats, error)
}

func strategyByName(name string) (strategy, error) {
	switch name {
	case SharedStrategy:
		return sharedStrategy{}, nil
	case ExclusiveStrategy:
		return exclusiveStrategy{}, nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, name)
}

//partitionResult is what one worker reports for its partition
type partitionResult struct {
	liveCells int
	changed   bool
	err       error
}

//tickStats aggregates the worker reports of one tick
type tickStats struct {
	liveCells int
	changed   bool
}

//collectStats merges the worker reports, the first failure aborts the tick
func collectStats(results []partitionResult) (tickStats, error) {
	var stats tickStats
	for _, r := range results {
		if r.err != nil {
			return tickStats{}, r.err
		}
		stats.liveCells += r.liveCells
		stats.changed = stats.changed || r.changed
	}
	return stats, nil
}

//recoverFailure converts a worker panic into an ErrWorkerFailure report so
//one broken rule call cannot take the process down
func recoverFailure(part Partition, errp *error) {
	if r := recover(); r != nil {
		*errp = fmt.Errorf("%w: partition %v: %v", ErrWorkerFailure, part, r)
	}
}
