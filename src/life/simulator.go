package life

import (
	"math/rand"
	"sync"
	"time"
)

//Status represents the state of the simulation at a concrete moment
type Status struct {
	Generation  int
	RunningMode RunningState
	LiveCells   int
	StepTime    time.Duration
	Details     map[string]interface{} //failure reports and strategy details
}

//RunningState is the simulation running mode at the concrete moment
type RunningState int

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

//Simulator drives an Engine asynchronously
//
//commands return immediately and are executed one at a time by the control
//loop goroutine that owns the engine, completion is reported on the status
//channel
//the status channel must be consumed or the simulation stalls
type Simulator struct {
	options Options

	state struct {
		Status
		sync.Mutex
	}
	engine struct {
		*Engine
		sync.Mutex
	}

	stateCh   chan Status
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	closeCh   chan bool
}

//NewSimulator validates the options, creates the simulator with an empty
//grid and starts its control loop
//stateCh may be nil when nobody needs status updates
func NewSimulator(o *Options, stateCh chan Status) (*Simulator, error) {
	eng, err := NewEngine(o, nil)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		options:   eng.Options(),
		stateCh:   stateCh,
		templates: map[string]Template{},
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
	}
	s.engine.Engine = eng
	s.state.Details = make(map[string]interface{})
	for _, tmpl := range BuiltinTemplates() {
		s.templates[tmpl.Name] = tmpl
	}
	go s.mainLoop()
	return s, nil
}

//AddTemplate adds the template to the internal registry so the grid can be
//settled with it by name via SettleTemplate
func (s *Simulator) AddTemplate(tmpl Template) {
	s.templates[tmpl.Name] = tmpl
}

//Templates lists the names of the registered templates
func (s *Simulator) Templates() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	return names
}

//Settle turns the given cells live, coordinates outside the grid are skipped
func (s *Simulator) Settle(cells []Coord) {
	inside := make([]Coord, 0, len(cells))
	for _, c := range cells {
		if c.Row < 0 || c.Col < 0 || c.Row >= s.options.Height || c.Col >= s.options.Width {
			continue
		}
		inside = append(inside, c)
	}
	s.engine.Lock()
	_ = s.engine.Settle(inside) //cannot fail, filtered above
	live := s.engine.LiveCells()
	s.engine.Unlock()
	s.setLiveCells(live)
	s.refreshView()
}

//SettleTemplate settles the grid with a registered template, unknown names
//are ignored
func (s *Simulator) SettleTemplate(name string) {
	tmpl, ok := s.templates[name]
	if !ok {
		return
	}
	s.Settle(tmpl.Coords)
}

//SettleWithRandomData fills the grid with random live cells at the given
//density if the simulation is not running
func (s *Simulator) SettleWithRandomData(density float64) {
	if s.runningMode() == RunningStateManual || s.runningMode() == RunningStateFinished {
		s.controlCh <- s.clear
		s.controlCh <- func() {
			cells := make([]Coord, 0, int(float64(s.options.Width*s.options.Height)*density))
			for row := 0; row < s.options.Height; row++ {
				for col := 0; col < s.options.Width; col++ {
					if rand.Float64() < density {
						cells = append(cells, Coord{Row: row, Col: col})
					}
				}
			}
			s.Settle(cells)
		}
	}
}

//Toggle inverts the cell state at (row, col), out-of-grid coordinates are
//ignored
func (s *Simulator) Toggle(row int, col int) {
	s.engine.Lock()
	s.engine.Toggle(row, col)
	live := s.engine.LiveCells()
	s.engine.Unlock()
	s.setLiveCells(live)
	s.refreshView()
}

//Current returns a read-only snapshot of the grid for rendering
func (s *Simulator) Current() *Snapshot {
	s.engine.Lock()
	defer s.engine.Unlock()
	return s.engine.Current()
}

//RegisterViewer registers the viewer, it is refreshed every time the
//simulation state changes
func (s *Simulator) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel carrying status updates, nil when unset
func (s *Simulator) StateCh() chan Status {
	return s.stateCh
}

//Status returns the state of the simulation at the moment of the call
func (s *Simulator) Status() Status {
	s.state.Lock()
	defer s.state.Unlock()
	return copyStatus(s.state.Status)
}

//Options returns the validated configuration of the run
func (s *Simulator) Options() Options {
	return s.options
}

//Run starts the simulation cycle, returns immediately
func (s *Simulator) Run() {
	s.controlCh <- s.run
}

//Stop stops the simulation cycle after the in-flight tick, returns
//immediately
func (s *Simulator) Stop() {
	s.controlCh <- s.stop
}

//Step computes one generation, returns immediately
//Status is written to the state channel on start and finish of the tick
func (s *Simulator) Step() {
	s.controlCh <- s.step
}

//Clear kills every cell and resets all counters, returns immediately
func (s *Simulator) Clear() {
	s.controlCh <- s.clear
}

//Close stops the control loop, returns immediately
func (s *Simulator) Close() {
	s.closeCh <- true
}

//mainLoop owns the engine: it executes the queued commands one at a time,
//which is the whole mutual exclusion story for the live grid
func (s *Simulator) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:
		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

//run starts the simulation cycle
//the cycle finishes on Stop or on a boundary condition: MaxSteps
//generations done, the grid extinct or stable, or a failed tick
func (s *Simulator) run() {
	go func() {
		s.switchRunningState(RunningStateRun)
		skippedTicks := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := s.runningMode()
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skippedTicks > s.options.MaxSkippedTicks {
				s.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the previous one is still being computed
			if mode != RunningStateStep {
				skippedTicks = 0
				s.controlCh <- func() {
					s.step()
					done <- true
				}
				<-done
			} else {
				skippedTicks++
			}
			if s.options.Interval > 0 {
				time.Sleep(s.options.Interval)
			}
		}
	}()
}

//stop stops the simulation cycle
func (s *Simulator) stop() {
	if s.runningMode() == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step computes one generation for the whole grid
func (s *Simulator) step() {
	finished := false
	rm := s.runningMode()
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	s.engine.Lock()
	gen := s.engine.Generation()
	s.engine.Unlock()
	if s.options.MaxSteps != 0 && gen >= s.options.MaxSteps {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)

	s.engine.Lock()
	err := s.engine.Step()
	gen = s.engine.Generation()
	live := s.engine.LiveCells()
	changed := s.engine.Changed()
	took := s.engine.StepTime()
	s.engine.Unlock()

	s.state.Lock()
	s.state.Generation = gen
	s.state.LiveCells = live
	s.state.StepTime = took
	if err != nil {
		s.state.Details["failure"] = err.Error()
	}
	s.state.Unlock()

	if err != nil || live == 0 || !changed {
		finished = true
	}
}

//clear kills every cell and resets all counters
func (s *Simulator) clear() {
	s.engine.Lock()
	s.engine.Reset()
	s.engine.Unlock()
	s.state.Lock()
	s.state.Generation = 0
	s.state.LiveCells = 0
	s.state.StepTime = 0
	delete(s.state.Details, "failure")
	s.state.Unlock()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//switchRunningState switches the simulation to the given mode and reports
//the new status on the state channel
func (s *Simulator) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := copyStatus(s.state.Status)
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

func (s *Simulator) runningMode() RunningState {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.RunningMode
}

func (s *Simulator) setLiveCells(n int) {
	s.state.Lock()
	s.state.LiveCells = n
	s.state.Unlock()
}

//refreshView calls Refresh for every registered viewer
func (s *Simulator) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}

//copyStatus detaches the details map so status receivers never share it
func copyStatus(st Status) Status {
	if st.Details != nil {
		details := make(map[string]interface{}, len(st.Details))
		for k, v := range st.Details {
			details[k] = v
		}
		st.Details = details
	}
	return st
}
