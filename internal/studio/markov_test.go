package studio

import (
	"testing"

	"github.com/statsoc/backdrop/internal/gen"
)

func TestMarkovWalkerNeverStops(t *testing.T) {
	s := NewMarkov(gen.DefaultMarkovConfig())
	s.Init(5)

	dt := 1.0 / 60
	tm := 0.0
	hops := 0
	prev := s.State()
	for step := 0; step < 60*120; step++ {
		s.Advance(tm, dt)
		tm += dt
		if s.State() != prev {
			hops++
			prev = s.State()
		}
		if cur := s.State(); cur < 0 || cur >= 5 {
			t.Fatalf("walker at invalid state %d", cur)
		}
	}
	if hops == 0 {
		t.Error("walker made no transitions in two minutes of frames")
	}
}

func TestMarkovVisitsTrackOccupancy(t *testing.T) {
	s := NewMarkov(gen.DefaultMarkovConfig())
	s.Init(9)

	dt := 1.0 / 30
	tm := 0.0
	for step := 0; step < 30*600; step++ {
		s.Advance(tm, dt)
		tm += dt
	}

	total := 0.0
	nonzero := 0
	for _, v := range s.Visits() {
		total += v
		if v > 0 {
			nonzero++
		}
	}
	if total < 100 {
		t.Errorf("expected hundreds of visits over ten minutes, got %v", total)
	}
	// the default matrix is irreducible, so every state gets visited
	if nonzero != 5 {
		t.Errorf("only %d of 5 states visited", nonzero)
	}
}

func TestMarkovDeterministicWalk(t *testing.T) {
	a := NewMarkov(gen.DefaultMarkovConfig())
	b := NewMarkov(gen.DefaultMarkovConfig())
	a.Init(123)
	b.Init(123)

	dt := 1.0 / 60
	tm := 0.0
	for step := 0; step < 60*60; step++ {
		a.Advance(tm, dt)
		b.Advance(tm, dt)
		tm += dt
		if a.State() != b.State() {
			t.Fatalf("walks diverged at step %d", step)
		}
	}
}
