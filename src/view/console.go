package view

import (
	"fmt"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"golife/src/life"
)

//Console reports the simulation progress to stdout: the configuration on
//registration, a line every 10 generations and a summary at the end
type Console struct {
	sim       *life.Simulator
	startTime time.Time
}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Refresh() {
	st := c.sim.Status()
	if st.RunningMode == life.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last generation": st.Generation,
			"Total time":      totalTime,
			"Live cells":      st.LiveCells,
		}
		fmt.Println("\nFinished:")
		c.printHashData(resultData)
		if failure, ok := st.Details["failure"]; ok {
			fmt.Println(aurora.Red(fmt.Sprintf("  Failure: %v", failure)).String())
		}
	} else if st.RunningMode == life.RunningStateRun {
		if st.Generation%10 == 0 {
			fmt.Printf("  Generations done: %v\n", st.Generation)
		}
	}
}

func (c *Console) Register(s *life.Simulator) {
	c.sim = s
	o := c.sim.Options()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max steps: %v\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *Console) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

func (c *Console) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Printf("  %s: %v\n", propName, d[propName])
	}
}
