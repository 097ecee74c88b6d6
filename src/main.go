package main

import (
	"strings"

	"github.com/integrii/flaggy"

	"golife/src/life"
	"golife/src/view"
)

var (
	viewers = map[string]func() life.Viewer{
		"console":  func() life.Viewer { return view.NewConsole() },
		"terminal": func() life.Viewer { return view.NewTerminal() },
		"window":   func() life.Viewer { return view.NewWindow() },
	}
)

type EnvOptions struct {
	view       string
	randomData bool
	density    float64
	pattern    string
	edge       string
}

func main() {
	eo, o := initOptions()

	var stateCh chan life.Status

	if eo.view == "console" {
		stateCh = make(chan life.Status, 10) //the buffered channel to getting the simulation status
	}

	s, err := life.NewSimulator(o, stateCh)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if eo.randomData {
		s.SettleWithRandomData(eo.density)
	} else {
		s.SettleTemplate(eo.pattern)
	}

	v := viewers[eo.view]()
	s.RegisterViewer(v)
	v.Start()

	if eo.view == "console" {
		s.Run()
		for {
			st := <-stateCh
			if st.RunningMode == life.RunningStateFinished {
				break
			}
		}
		s.Close()
		close(stateCh)
	} else {
		s.Close()
	}
}

func initOptions() (eo *EnvOptions, o *life.Options) {

	o = &life.DefaultOptions
	viewerNames := make([]string, 0, len(viewers))
	for k := range viewers {
		viewerNames = append(viewerNames, k)
	}
	eo = &EnvOptions{
		view:    "console",
		density: life.DefDensity,
		pattern: "glider",
		edge:    life.EdgeBounded.String(),
	}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.Width, "x", "width", "Width of the simulation grid")
	flaggy.Int(&o.Height, "y", "height", "Height of the simulation grid")
	flaggy.Int(&o.Workers, "t", "workers", "Number of parallel workers per generation, clamped to the grid height")
	flaggy.String(&o.Strategy, "g", "strategy", "Sharing strategy ["+strings.Join(life.Strategies(), "|")+"]")
	flaggy.String(&eo.edge, "p", "edge", "Edge policy ["+strings.Join(life.EdgePolicies(), "|")+"]")
	flaggy.Duration(&o.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&o.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Float64(&eo.density, "d", "density", "Density of the random settling, 0..1")
	flaggy.String(&eo.pattern, "", "pattern", "Settle with a built-in pattern ["+strings.Join(life.TemplateNames(), "|")+"]")
	flaggy.String(&eo.view, "v", "view", "View to use ["+strings.Join(viewerNames, "|")+"]")

	flaggy.Parse()

	if _, ok := viewers[eo.view]; !ok {
		flaggy.ShowHelpAndExit("unknown view")
	}

	edge, err := life.ParseEdgePolicy(eo.edge)
	if err != nil {
		flaggy.ShowHelpAndExit("unknown edge policy")
	}
	o.Edge = edge

	return
}
