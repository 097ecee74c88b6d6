package view

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"golife/src/life"
)

const (
	cellScale = 12 //pixels per cell
	hudHeight = 16 //pixels reserved for the status line
)

var (
	errWindowClosed = errors.New("window closed by user")

	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	liveCellColor   = color.RGBA{R: 0x4a, G: 0xd1, B: 0x52, A: 0xff}
)

//Window displays the simulation in a desktop window
//Refresh only caches the latest snapshot, the game loop draws the cache at
//its own frame rate
type Window struct {
	sim       *life.Simulator
	keys      map[ebiten.Key]bool
	mouseDown bool

	mu   sync.Mutex
	snap *life.Snapshot
	st   life.Status
}

func NewWindow() *Window {
	return &Window{keys: map[ebiten.Key]bool{}}
}

func (w *Window) Register(s *life.Simulator) {
	w.sim = s
	w.Refresh()
}

func (w *Window) Refresh() {
	snap := w.sim.Current()
	st := w.sim.Status()
	w.mu.Lock()
	w.snap = snap
	w.st = st
	w.mu.Unlock()
}

func (w *Window) Start() {
	o := w.sim.Options()
	ebiten.SetWindowSize(o.Width*cellScale, o.Height*cellScale+hudHeight)
	ebiten.SetWindowTitle("golife")
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, errWindowClosed) {
		log.Panicln(err)
	}
}

//Update handles the keyboard and mouse, the simulation itself advances on
//the simulator's goroutines
func (w *Window) Update() error {
	if w.pressed(ebiten.KeyQ) || w.pressed(ebiten.KeyEscape) {
		return errWindowClosed
	}
	if w.pressed(ebiten.KeyN) {
		w.sim.Step()
	}
	if w.pressed(ebiten.KeyR) {
		w.sim.Run()
	}
	if w.pressed(ebiten.KeyS) {
		w.sim.Stop()
	}
	if w.pressed(ebiten.KeyC) {
		w.sim.Clear()
	}
	if w.pressed(ebiten.KeyW) {
		w.sim.SettleWithRandomData(life.DefDensity)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !w.mouseDown {
			w.mouseDown = true
			x, y := ebiten.CursorPosition()
			if y >= hudHeight {
				w.sim.Toggle((y-hudHeight)/cellScale, x/cellScale)
			}
		}
	} else {
		w.mouseDown = false
	}
	return nil
}

//pressed reports a key transition from up to down since the last frame
func (w *Window) pressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := w.keys[k]
	w.keys[k] = down
	return down && !was
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w.mu.Lock()
	snap := w.snap
	st := w.st
	w.mu.Unlock()
	if snap == nil {
		return
	}
	for _, c := range snap.Alive() {
		ebitenutil.DrawRect(screen,
			float64(c.Col*cellScale),
			float64(c.Row*cellScale+hudHeight),
			cellScale-1, cellScale-1,
			liveCellColor)
	}
	hud := fmt.Sprintf("gen %v  live %v  %v | N: step, R: run, S: stop, C: clear, W: random, Q: quit",
		st.Generation, st.LiveCells, modeLabel(st.RunningMode))
	text.Draw(screen, hud, basicfont.Face7x13, 4, 12, color.White)
}

//Layout reports the fixed logical screen size regardless of the window size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	o := w.sim.Options()
	return o.Width * cellScale, o.Height*cellScale + hudHeight
}

func modeLabel(m life.RunningState) string {
	switch m {
	case life.RunningStateRun:
		return "running"
	case life.RunningStateStep:
		return "stepping"
	case life.RunningStateFinished:
		return "finished"
	}
	return "waiting"
}
