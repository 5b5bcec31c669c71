package studio

import (
	"testing"

	"github.com/statsoc/backdrop/internal/gen"
)

// runGalton advances the board with a fixed frame delta until every ball has
// settled or the step budget runs out.
func runGalton(s *Galton, maxSteps int) int {
	dt := 1.0 / 60
	t := 0.0
	for step := 0; step < maxSteps; step++ {
		s.Advance(t, dt)
		t += dt
		settled := 0
		for i := 0; i < s.board.BallCount(); i++ {
			if s.Bin(i) != -1 {
				settled++
			}
		}
		if settled == s.board.BallCount() {
			return step
		}
	}
	return maxSteps
}

func TestGaltonAllBallsSettle(t *testing.T) {
	cfg := gen.DefaultGaltonConfig()
	cfg.Balls = 40
	s := NewGalton(cfg)
	s.Init(11)

	steps := runGalton(s, 60*240)
	for i := 0; i < s.board.BallCount(); i++ {
		if s.Bin(i) == -1 {
			t.Fatalf("ball %d never settled after %d steps", i, steps)
		}
	}

	total := 0.0
	for _, c := range s.Counts() {
		total += c
	}
	if int(total) != cfg.Balls {
		t.Errorf("bin counts sum to %v, want %d", total, cfg.Balls)
	}
}

func TestGaltonSettledIsTerminal(t *testing.T) {
	cfg := gen.DefaultGaltonConfig()
	cfg.Balls = 30
	s := NewGalton(cfg)
	s.Init(3)

	dt := 1.0 / 60
	tm := 0.0
	type frozen struct{ x, y float64 }
	snap := make(map[int]frozen)

	for step := 0; step < 60*240; step++ {
		s.Advance(tm, dt)
		tm += dt

		for i := 0; i < s.board.BallCount(); i++ {
			bin := s.Bin(i)
			if prev, ok := snap[i]; ok {
				// once settled: bin stays assigned, position stays frozen
				if bin == -1 {
					t.Fatalf("ball %d left the settled state at step %d", i, step)
				}
				x, y := s.Position(i)
				if x != prev.x || y != prev.y {
					t.Fatalf("ball %d moved after settling: (%v,%v) -> (%v,%v)", i, prev.x, prev.y, x, y)
				}
			} else if bin != -1 {
				x, y := s.Position(i)
				snap[i] = frozen{x, y}
			}
		}
		if len(snap) == s.board.BallCount() {
			break
		}
	}
	if len(snap) != s.board.BallCount() {
		t.Fatalf("only %d of %d balls settled", len(snap), s.board.BallCount())
	}
}

func TestGaltonBallsStayInBounds(t *testing.T) {
	cfg := gen.DefaultGaltonConfig()
	cfg.Balls = 30
	s := NewGalton(cfg)
	s.Init(7)

	half := cfg.HalfWidth()
	dt := 1.0 / 60
	tm := 0.0
	for step := 0; step < 60*120; step++ {
		s.Advance(tm, dt)
		tm += dt
		for i := 0; i < s.board.BallCount(); i++ {
			x, _ := s.Position(i)
			if x < -half-1e-9 || x > half+1e-9 {
				t.Fatalf("ball %d escaped the playfield: x=%v", i, x)
			}
		}
	}
}

func TestGaltonReinitRestoresRun(t *testing.T) {
	cfg := gen.DefaultGaltonConfig()
	cfg.Balls = 25
	a := NewGalton(cfg)
	b := NewGalton(cfg)
	a.Init(42)
	b.Init(42)

	runGalton(a, 60*240)
	runGalton(b, 60*240)

	for i := 0; i < cfg.Balls; i++ {
		if a.Bin(i) != b.Bin(i) {
			t.Fatalf("ball %d landed in bin %d vs %d for the same seed", i, a.Bin(i), b.Bin(i))
		}
	}
}
