package studio

import (
	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/viz"
)

const lorenzHistory = 240

// LorenzStudio progressively reveals the precomputed attractor trajectory:
// the draw range grows with time and wraps when it reaches the end.
type LorenzStudio struct {
	cfg  gen.LorenzConfig
	traj *gen.Trajectory
	// reveal is the current draw-range prefix length.
	reveal int
	zhist  []float64
}

func NewLorenz(cfg gen.LorenzConfig) *LorenzStudio { return &LorenzStudio{cfg: cfg} }

func (s *LorenzStudio) Name() string    { return "lorenz" }
func (s *LorenzStudio) Caption() string { return "Lorenz Attractor — RK4 trajectory" }

func (s *LorenzStudio) Init(seed int64) {
	// the trajectory is fully deterministic; the seed is not consulted
	s.traj = gen.GenerateLorenz(s.cfg)
	s.reveal = 0
	s.zhist = s.zhist[:0]
}

func (s *LorenzStudio) Advance(t, dt float64) {
	n := s.traj.Count()
	s.reveal = int(t*900) % (n + 1)

	if s.reveal > 0 {
		head := s.reveal - 1
		s.zhist = append(s.zhist, s.traj.Positions[head*3+1])
		if len(s.zhist) > lorenzHistory {
			s.zhist = s.zhist[1:]
		}
	}
}

func (s *LorenzStudio) Compose(w *viz.Wireframe) {
	if s.reveal < 2 {
		return
	}
	// decimate the prefix so long draw ranges stay cheap; the tail near the
	// head is always drawn at full resolution
	const maxSegs = 2400
	stride := 1
	if s.reveal > maxSegs {
		stride = s.reveal / maxSegs
	}
	for i := stride; i < s.reveal; i += stride {
		w.AddEdge(vec(s.traj.Positions, i-stride), vec(s.traj.Positions, i),
			ink(s.traj.Colors, i))
	}
	head := s.reveal - 1
	w.AddPoint(vec(s.traj.Positions, head), viz.NewInk(1, 1, 1), 2)
}

func (s *LorenzStudio) Metric() (string, []float64) { return "height of head", s.zhist }
