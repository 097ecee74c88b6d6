package life

import (
	"errors"
	"fmt"
	"time"
)

var (
	//ErrInvalidConfig rejects bad dimensions, worker counts, strategy
	//names, edge policy names and seed coordinates at initialization
	ErrInvalidConfig = errors.New("life: invalid config")
	//ErrOutOfBounds reports a cell query outside a bounded grid
	ErrOutOfBounds = errors.New("life: out of bounds")
	//ErrWorkerFailure reports a worker that did not complete its partition
	//the tick is aborted and the previous generation stays the last valid
	//state
	ErrWorkerFailure = errors.New("life: worker failure")
)

//Engine advances one cellular automaton through successive generations
//
//every tick freezes the grid into a snapshot, fans the partitions out to
//one worker goroutine each against a fresh output grid, joins them (the
//only synchronization barrier of the tick) and swaps the output in as the
//next generation, so a partially computed grid is never observable
//
//an Engine is built for exactly one owner and is not safe for concurrent
//use, Simulator wraps it when several goroutines need access
type Engine struct {
	opts     Options
	grid     *Grid
	parts    []Partition
	rule     Rule
	strat    strategy
	stats    tickStats
	stepTime time.Duration
}

//NewEngine validates the configuration, seeds the generation-0 grid with
//the given live cells and plans the partitions once for the run's lifetime
//a worker count above the grid height is clamped to the height, every other
//violation fails with ErrInvalidConfig
func NewEngine(o *Options, seed []Coord) (*Engine, error) {
	if o == nil {
		o = &DefaultOptions
	}
	opts := *o
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d, want at least 1x1", ErrInvalidConfig, opts.Width, opts.Height)
	}
	if opts.Rule == nil {
		opts.Rule = Conway
	}
	if opts.Strategy == "" {
		opts.Strategy = DefStrategy
	}
	strat, err := strategyByName(opts.Strategy)
	if err != nil {
		return nil, err
	}
	parts, err := Plan(opts.Height, opts.Workers)
	if err != nil {
		return nil, err
	}
	opts.Advanced = make(map[string]interface{})
	opts.Advanced["Strategy"] = strat.name()
	opts.Advanced["Edge"] = opts.Edge.String()
	opts.Advanced["Workers"] = len(parts)
	opts.Advanced["Rows per worker"] = parts[0].Rows()

	e := &Engine{
		opts:  opts,
		grid:  newGrid(opts.Width, opts.Height, opts.Edge),
		parts: parts,
		rule:  opts.Rule,
		strat: strat,
	}
	if err := e.Settle(seed); err != nil {
		return nil, err
	}
	return e, nil
}

//Step advances the grid one generation
//on failure it returns an error wrapping ErrWorkerFailure and keeps the
//previous generation intact
func (e *Engine) Step() error {
	start := time.Now()
	snap := freeze(e.grid)
	out := newGrid(e.grid.width, e.grid.height, e.grid.edge)
	out.gen = e.grid.gen + 1
	stats, err := e.strat.compute(snap, e.parts, out, e.rule)
	if err != nil {
		return err
	}
	e.grid = out
	e.stats = stats
	e.stepTime = time.Since(start)
	return nil
}

//StepN advances count generations one after another, stopping at the first
//failed tick
func (e *Engine) StepN(count int) error {
	for i := 0; i < count; i++ {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

//Current returns a read-only snapshot of the grid for rendering
//the result keeps its generation's state no matter how far the engine
//advances afterwards
func (e *Engine) Current() *Snapshot {
	return freeze(e.grid)
}

//Generation returns the number of completed generations
func (e *Engine) Generation() int {
	return e.grid.gen
}

//LiveCells returns the number of live cells
func (e *Engine) LiveCells() int {
	return e.stats.liveCells
}

//Changed reports whether the last tick changed any cell
func (e *Engine) Changed() bool {
	return e.stats.changed
}

//StepTime returns how long the last tick took
func (e *Engine) StepTime() time.Duration {
	return e.stepTime
}

//Workers returns the number of partitions the run was planned with
func (e *Engine) Workers() int {
	return len(e.parts)
}

//Strategy returns the name of the sharing strategy in use
func (e *Engine) Strategy() string {
	return e.strat.name()
}

//Options returns the validated configuration of the run
func (e *Engine) Options() Options {
	return e.opts
}

//Settle turns the given cells live
//a coordinate outside the grid fails with ErrInvalidConfig and leaves the
//grid untouched
func (e *Engine) Settle(seed []Coord) error {
	for _, c := range seed {
		if c.Row < 0 || c.Col < 0 || c.Row >= e.grid.height || c.Col >= e.grid.width {
			return fmt.Errorf("%w: seed cell (%d, %d) outside %dx%d", ErrInvalidConfig, c.Row, c.Col, e.grid.height, e.grid.width)
		}
	}
	for _, c := range seed {
		e.grid.set(c.Row, c.Col, true)
	}
	e.stats.liveCells = e.grid.liveCells()
	return nil
}

//Toggle inverts one cell, coordinates outside the grid are ignored
func (e *Engine) Toggle(row int, col int) {
	if row < 0 || col < 0 || row >= e.grid.height || col >= e.grid.width {
		return
	}
	e.grid.set(row, col, !e.grid.at(row, col))
	e.stats.liveCells = e.grid.liveCells()
}

//Reset kills every cell and rewinds the generation counter
func (e *Engine) Reset() {
	e.grid = newGrid(e.grid.width, e.grid.height, e.grid.edge)
	e.stats = tickStats{}
	e.stepTime = 0
}
