package studio

import (
	"testing"

	"github.com/statsoc/backdrop/internal/viz"
)

func TestSelectorWraparound(t *testing.T) {
	set := Build(DefaultOptions())
	if len(set) != 9 {
		t.Fatalf("expected 9 studios, got %d", len(set))
	}

	i := 0
	for c := 0; c < len(set); c++ {
		i = Next(i, len(set))
	}
	if i != 0 {
		t.Errorf("cycling forward %d times landed on %d, want 0", len(set), i)
	}

	i = 0
	for c := 0; c < len(set); c++ {
		i = Prev(i, len(set))
	}
	if i != 0 {
		t.Errorf("cycling backward %d times landed on %d, want 0", len(set), i)
	}

	if Prev(0, len(set)) != len(set)-1 {
		t.Errorf("Prev from 0 should wrap to %d", len(set)-1)
	}
}

func TestFindByName(t *testing.T) {
	set := Build(DefaultOptions())
	for i, s := range set {
		if got := Find(set, s.Name()); got != i {
			t.Errorf("Find(%q) = %d, want %d", s.Name(), got, i)
		}
	}
	if Find(set, "no-such-studio") != -1 {
		t.Error("unknown name should return -1")
	}
}

// Every studio must survive a few seconds of frames and produce geometry.
func TestAllStudiosAdvanceAndCompose(t *testing.T) {
	set := Build(DefaultOptions())
	wf := viz.NewWireframe()

	for _, s := range set {
		dt := 1.0 / 30
		tm := 0.0
		for step := 0; step < 90; step++ {
			s.Advance(tm, dt)
			tm += dt
		}
		wf.Reset()
		s.Compose(wf)
		if len(wf.Edges)+len(wf.Points) == 0 {
			t.Errorf("studio %q composed an empty frame", s.Name())
		}

		label, _ := s.Metric()
		if label == "" {
			t.Errorf("studio %q has no metric label", s.Name())
		}
	}
}

// The ground-based studios compose a reference floor under the scene.
func TestGroundStudiosHaveFloor(t *testing.T) {
	set := Build(DefaultOptions())
	for _, name := range []string{"surface", "regression"} {
		s := set[Find(set, name)]
		wf := viz.NewWireframe()
		s.Compose(wf)

		floor := 0
		for _, e := range wf.Edges {
			if e.A.Y == e.B.Y && e.A.Y <= -1.1 {
				floor++
			}
		}
		if floor < 14 {
			t.Errorf("studio %q composed %d floor edges, want at least 14", name, floor)
		}
	}
}

// Reinitializing must fully restore the rest state.
func TestInitIsRepeatable(t *testing.T) {
	set := Build(DefaultOptions())
	for _, s := range set {
		wfA := viz.NewWireframe()
		wfB := viz.NewWireframe()

		s.Init(77)
		s.Advance(0, 1.0/30)
		s.Compose(wfA)

		s.Init(77)
		s.Advance(0, 1.0/30)
		s.Compose(wfB)

		if len(wfA.Edges) != len(wfB.Edges) || len(wfA.Points) != len(wfB.Points) {
			t.Errorf("studio %q: frame shape differs after re-Init with same seed", s.Name())
			continue
		}
		for i := range wfA.Edges {
			if wfA.Edges[i] != wfB.Edges[i] {
				t.Errorf("studio %q: edge %d differs after re-Init", s.Name(), i)
				break
			}
		}
	}
}
