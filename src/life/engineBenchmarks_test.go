package life

import (
	"fmt"
	"testing"
)

var benchTemplate = Template{"bench", "", []Coord{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}}

const (
	benchWidth  = 200
	benchHeight = 200
)

func simulatorStep(s *Simulator, b *testing.B) {
	s.AddTemplate(benchTemplate)
	stateCh := s.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		<-stateCh //wait for finish
		s.SettleTemplate("bench")
		b.StartTimer()
		s.Step()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateManual {
				break
			}
		}
	}
	s.Close()
	close(stateCh)
}

func simulatorRun(s *Simulator, b *testing.B) {
	s.AddTemplate(benchTemplate)
	stateCh := s.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		<-stateCh //wait for finish
		s.SettleTemplate("bench")
		b.StartTimer()
		s.Run()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateFinished {
				break
			}
		}
	}
	s.Close()
	close(stateCh)
}

func newStateCh() chan Status {
	return make(chan Status, 10)
}

func newBenchOptions() *Options {
	o := DefaultOptions
	o.Interval = 0
	o.Width = benchWidth
	o.Height = benchHeight
	return &o
}

func newBenchSimulator(b *testing.B, o *Options) *Simulator {
	s, err := NewSimulator(o, newStateCh())
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func Benchmark_Step(b *testing.B) {
	for _, name := range Strategies() {
		b.Run(name, func(b *testing.B) {
			o := newBenchOptions()
			o.Strategy = name
			simulatorStep(newBenchSimulator(b, o), b)
		})
	}
}

func Benchmark_Run(b *testing.B) {
	for _, name := range Strategies() {
		b.Run(name, func(b *testing.B) {
			o := newBenchOptions()
			o.Strategy = name
			simulatorRun(newBenchSimulator(b, o), b)
		})
	}
}

func Benchmark_Workers(b *testing.B) {
	for _, name := range Strategies() {
		for _, workers := range []int{1, 2, 4, 8, 16} {
			b.Run(fmt.Sprintf("%s-%d", name, workers), func(b *testing.B) {
				o := newBenchOptions()
				o.Strategy = name
				o.Workers = workers
				simulatorStep(newBenchSimulator(b, o), b)
			})
		}
	}
}
