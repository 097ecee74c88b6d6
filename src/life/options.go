package life

import "time"

//default options
const (
	DefWidth           = 40
	DefHeight          = 15
	DefWorkers         = 4
	DefInterval        = time.Millisecond * 100
	DefMaxSteps        = 1000
	DefMaxSkippedTicks = 5
	DefStrategy        = SharedStrategy
	DefDensity         = 0.3
)

//Options represents the configuration of a run, fixed at initialization
type Options struct {
	Width           int
	Height          int
	Workers         int           //parallel workers per tick, clamped to Height
	Edge            EdgePolicy    //what lies beyond the grid edge
	Strategy        string        //sharing strategy name, see Strategies
	Rule            Rule          //transition rule, Conway when nil
	Interval        time.Duration //pause between the ticks of a running simulation
	MaxSteps        int           //the run finishes after this many generations, 0 is unlimited
	MaxSkippedTicks int           //the run gives up after this many consecutively skipped ticks

	Advanced map[string]interface{} //advanced details (strategy specific)
}

//DefaultOptions is the configuration runs start from
var DefaultOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Workers:         DefWorkers,
	Edge:            EdgeBounded,
	Strategy:        DefStrategy,
	Interval:        DefInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
}
