package life

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlanCoversEveryRowExactlyOnce(t *testing.T) {
	for height := 1; height <= 64; height++ {
		for workers := 1; workers <= 24; workers++ {
			parts, err := Plan(height, workers)
			if err != nil {
				t.Fatalf("Plan(%d, %d) failed: %v", height, workers, err)
			}
			want := workers
			if want > height {
				want = height
			}
			if len(parts) != want {
				t.Fatalf("Plan(%d, %d) produced %d partitions, want %d", height, workers, len(parts), want)
			}
			base := height / want
			extra := height % want
			next := 0
			for i, p := range parts {
				if p.Start != next {
					t.Fatalf("Plan(%d, %d): partition %d starts at %d, want %d", height, workers, i, p.Start, next)
				}
				rows := base
				if i < extra {
					rows++
				}
				if p.Rows() != rows {
					t.Fatalf("Plan(%d, %d): partition %d has %d rows, want %d", height, workers, i, p.Rows(), rows)
				}
				next = p.End
			}
			if next != height {
				t.Fatalf("Plan(%d, %d): partitions cover rows up to %d, want %d", height, workers, next, height)
			}
		}
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	first, err := Plan(37, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Plan(37, 5)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Plan(37, 5) changed between calls: %v vs %v", first, again)
		}
	}
}

func TestPlanRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		height  int
		workers int
	}{
		{"zero workers", 10, 0},
		{"negative workers", 10, -3},
		{"zero height", 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Plan(tc.height, tc.workers); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Plan(%d, %d) = %v, want ErrInvalidConfig", tc.height, tc.workers, err)
			}
		})
	}
}
