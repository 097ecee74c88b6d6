package life

//Rule decides the next state of one cell from its current state and its live
//neighbor count
//a rule must be pure: the workers of a tick call it concurrently, once per
//cell per generation
type Rule func(alive bool, liveNeighbors int) bool

//Conway is the classic B3/S23 rule: a live cell survives with two or three
//live neighbors, a dead cell is born with exactly three
func Conway(alive bool, liveNeighbors int) bool {
	return liveNeighbors == 3 || (alive && liveNeighbors == 2)
}
