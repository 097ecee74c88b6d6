package life

import "fmt"

//Partition is a contiguous [Start, End) range of rows owned by exactly one
//worker for exactly one tick
//workers write only inside their own range, reads at the range edge are
//answered by the frozen snapshot and never by a neighbor's in-progress rows
type Partition struct {
	Start int
	End   int
}

//Rows returns the number of rows in the partition
func (p Partition) Rows() int {
	return p.End - p.Start
}

func (p Partition) String() string {
	return fmt.Sprintf("[%d, %d)", p.Start, p.End)
}

//Plan splits height rows into at most workers contiguous partitions
//every partition gets height/workers rows and the first height%workers of
//them one extra, so the partitions are pairwise disjoint and cover
//[0, height) exactly
//a worker count above height is clamped to one row per worker, a count
//below one fails with ErrInvalidConfig
//the plan is pure: identical inputs yield the identical partitioning
func Plan(height int, workers int) ([]Partition, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: worker count %d, want at least 1", ErrInvalidConfig, workers)
	}
	if height < 1 {
		return nil, fmt.Errorf("%w: height %d, want at least 1", ErrInvalidConfig, height)
	}
	if workers > height {
		workers = height
	}
	parts := make([]Partition, workers)
	base := height / workers
	extra := height % workers
	start := 0
	for i := range parts {
		rows := base
		if i < extra {
			rows++
		}
		parts[i] = Partition{Start: start, End: start + rows}
		start += rows
	}
	return parts, nil
}
