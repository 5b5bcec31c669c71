package studio

import (
	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
	"github.com/statsoc/backdrop/internal/viz"
)

// ballPhase tracks each ball through its life cycle. A ball that reaches
// ballSettled never leaves it: its position is frozen the moment it lands.
type ballPhase int

const (
	ballWaiting ballPhase = iota
	ballFalling
	ballSettled
)

// Galton runs the bean machine. All randomness was fixed at generation time
// (release order and every left/right choice); Advance only plays it out
// under constant gravity.
type Galton struct {
	cfg   gen.GaltonConfig
	board *gen.GaltonBoard

	phase   []ballPhase
	pos     []float64 // working positions, 3 per ball
	vy      []float64
	nextRow []int
	bins    []int // assigned bin per ball, -1 until settled
	counts  []float64
}

func NewGalton(cfg gen.GaltonConfig) *Galton { return &Galton{cfg: cfg} }

func (s *Galton) Name() string    { return "galton" }
func (s *Galton) Caption() string { return "Galton Board — binomial bell curve" }

func (s *Galton) Init(seed int64) {
	s.board = gen.GenerateGalton(s.cfg, prng.New(seed))
	n := s.board.BallCount()

	s.phase = make([]ballPhase, n)
	s.pos = make([]float64, n*3)
	copy(s.pos, s.board.Spawns)
	s.vy = make([]float64, n)
	s.nextRow = make([]int, n)
	s.bins = make([]int, n)
	for i := range s.bins {
		s.bins[i] = -1
	}
	s.counts = make([]float64, s.cfg.Bins())
}

// Bin reports the assigned bin of ball i, or -1 while it is still in play.
func (s *Galton) Bin(i int) int { return s.bins[i] }

// Position reports the working position of ball i.
func (s *Galton) Position(i int) (x, y float64) {
	return s.pos[i*3], s.pos[i*3+1]
}

// Counts reports how many balls have settled in each bin.
func (s *Galton) Counts() []float64 { return s.counts }

// AllSettled reports whether every ball has landed.
func (s *Galton) AllSettled() bool {
	for _, p := range s.phase {
		if p != ballSettled {
			return false
		}
	}
	return true
}

func (s *Galton) Advance(t, dt float64) {
	half := s.cfg.HalfWidth()
	for i := 0; i < s.board.BallCount(); i++ {
		switch s.phase[i] {
		case ballSettled:
			// terminal: the position stays frozen

		case ballWaiting:
			if t >= s.board.ReleaseAt[i] {
				s.phase[i] = ballFalling
			}

		case ballFalling:
			s.vy[i] -= s.cfg.Gravity * dt
			y := s.pos[i*3+1] + s.vy[i]*dt

			// each peg row crossed consumes one precomputed choice
			for s.nextRow[i] < s.cfg.Rows && y <= s.cfg.RowY(s.nextRow[i]) {
				dx := s.cfg.PegGapX / 2
				if !s.board.Choices[i][s.nextRow[i]] {
					dx = -dx
				}
				x := s.pos[i*3] + dx
				if x > half {
					x = half
				}
				if x < -half {
					x = -half
				}
				s.pos[i*3] = x
				s.nextRow[i]++
				// bouncing absorbs some fall speed
				s.vy[i] *= 0.55
			}

			if s.nextRow[i] == s.cfg.Rows {
				bin := s.binFor(s.pos[i*3])
				rest := s.cfg.Floor + s.cfg.BallRadius + s.counts[bin]*2*s.cfg.BallRadius
				if y <= rest {
					// terminal transition: snap to the stack and freeze
					s.pos[i*3] = s.binCenter(bin)
					s.pos[i*3+1] = rest
					s.bins[i] = bin
					s.counts[bin]++
					s.phase[i] = ballSettled
					continue
				}
			}
			s.pos[i*3+1] = y
		}
	}
}

func (s *Galton) binFor(x float64) int {
	b := int((x + s.cfg.HalfWidth()) / s.cfg.PegGapX)
	if b < 0 {
		b = 0
	}
	if b >= s.cfg.Bins() {
		b = s.cfg.Bins() - 1
	}
	return b
}

func (s *Galton) binCenter(b int) float64 {
	return -s.cfg.HalfWidth() + (float64(b)+0.5)*s.cfg.PegGapX
}

func (s *Galton) Compose(w *viz.Wireframe) {
	pegInk := viz.NewInk(0.5, 0.5, 0.6)
	for i := 0; i < len(s.board.Pegs)/3; i++ {
		w.AddPoint(vec(s.board.Pegs, i), pegInk, 0)
	}

	// bin dividers and floor
	railInk := viz.NewInk(0.35, 0.35, 0.45)
	half := s.cfg.HalfWidth()
	w.AddEdge(viz.Vec3{X: -half, Y: s.cfg.Floor, Z: 0}, viz.Vec3{X: half, Y: s.cfg.Floor, Z: 0}, railInk)
	for b := 0; b <= s.cfg.Bins(); b++ {
		x := -half + float64(b)*s.cfg.PegGapX
		w.AddEdge(viz.Vec3{X: x, Y: s.cfg.Floor, Z: 0},
			viz.Vec3{X: x, Y: s.cfg.Floor + 1.0, Z: 0}, railInk)
	}

	for i := 0; i < s.board.BallCount(); i++ {
		if s.phase[i] == ballWaiting {
			continue
		}
		w.AddPoint(vec(s.pos, i), ink(s.board.Colors, i), 1)
	}
}

func (s *Galton) Metric() (string, []float64) { return "bin counts", s.counts }
