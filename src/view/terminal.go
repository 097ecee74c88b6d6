package view

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"golife/src/life"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//Terminal is the interactive full-terminal view: the grid on the right,
//configuration and status panels on the left, keybindings at the bottom
type Terminal struct {
	sim *life.Simulator
	g   *gocui.Gui
	k   []keyBindings

	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[life.RunningState]string{
		life.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		life.RunningStateStep:     "do the step",
		life.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		life.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewTerminal() *Terminal {

	var err error
	t := Terminal{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextStep,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Settle with random",
			t.cmdSettleWithRandom,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"grid"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *Terminal) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *Terminal) Register(s *life.Simulator) {
	t.sim = s
}

func (t *Terminal) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *Terminal) Refresh() {
	t.renderGrid(t.sim.Current())
	t.renderConfiguration()
	t.renderStatus()
}

func (t *Terminal) renderGrid(snap *life.Snapshot) {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("grid")
		if e != nil {
			return e
		}
		//the entire grid is redrawing at once now
		//this terminal driver allows to redraw only changed chars
		//there is an opportunity to speed up with a selective redraw
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if snap.Width() > maxW || snap.Height() > maxH {
			crop = true
		}

		var b bytes.Buffer

		for row := 0; row < snap.Height(); row++ {
			//discard the data outside the view area
			if row >= maxH {
				break
			}
			//line feed char
			if row != 0 {
				b.WriteByte(10)
			}
			if crop && row == (maxH-1) {
				b.WriteString(aurora.Red("The grid is larger than the viewing area").BgBlack().String())
				break
			}
			for col := 0; col < snap.Width(); col++ {
				if col >= maxW {
					break
				}
				if alive, _ := snap.Query(row, col); bool(alive) {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *Terminal) renderStatus() {
	s := t.sim.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
			if failure, ok := s.Details["failure"]; ok {
				_, _ = fmt.Fprintln(v, t.renderProp("Failure", "%v", failure))
			}
		}
		return nil
	})
}

func (t *Terminal) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.sim.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Max steps", "%v", c.MaxSteps))
			propNames := make([]string, 0, len(c.Advanced))
			for k := range c.Advanced {
				propNames = append(propNames, k)
			}
			sort.Strings(propNames)
			for _, propName := range propNames {
				_, _ = fmt.Fprintln(v, t.renderProp(propName, "%v", c.Advanced[propName]))
			}
		}
		return nil
	})
}

func (t *Terminal) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *Terminal) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("grid")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Parallel \"Game of Life\" simulation"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("grid", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Grid"
		v.Frame = true
		t.renderGrid(t.sim.Current())
	} else {
		t.renderGrid(t.sim.Current())
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *Terminal) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *Terminal) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *Terminal) cmdNextStep(_ *gocui.View) error {
	t.sim.Step()
	return nil
}

func (t *Terminal) cmdRun(_ *gocui.View) error {
	t.sim.Run()
	return nil
}

func (t *Terminal) cmdStop(_ *gocui.View) error {
	t.sim.Stop()
	return nil
}

func (t *Terminal) cmdClear(_ *gocui.View) error {
	t.sim.Clear()
	return nil
}

func (t *Terminal) cmdSettleWithRandom(_ *gocui.View) error {
	t.sim.SettleWithRandomData(life.DefDensity)
	return nil
}

func (t *Terminal) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.sim.Toggle(cy, cx)
	return nil
}
