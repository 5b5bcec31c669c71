package studio

import (
	"math"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
	"github.com/statsoc/backdrop/internal/viz"
)

// Network renders the clustered graph with jittering nodes and dimmed links.
type Network struct {
	cfg     gen.NetworkConfig
	graph   *gen.Graph
	phases  []float64
	working []float64
	degrees []float64
}

func NewNetwork(cfg gen.NetworkConfig) *Network { return &Network{cfg: cfg} }

func (s *Network) Name() string    { return "network" }
func (s *Network) Caption() string { return "Community Graph — clustered network" }

func (s *Network) Init(seed int64) {
	src := prng.New(seed)
	s.graph = gen.GenerateNetwork(s.cfg, src)

	n := s.graph.NodeCount()
	s.phases = make([]float64, n)
	for i := range s.phases {
		s.phases[i] = src.Float64() * 2 * math.Pi
	}
	s.working = make([]float64, len(s.graph.Positions))
	copy(s.working, s.graph.Positions)

	s.degrees = make([]float64, n)
	for _, e := range s.graph.Edges {
		s.degrees[e.A]++
		s.degrees[e.B]++
	}
}

func (s *Network) Advance(t, dt float64) {
	for i := 0; i < s.graph.NodeCount(); i++ {
		p := s.phases[i]
		s.working[i*3] = s.graph.Positions[i*3] + 0.05*math.Sin(t*1.1+p)
		s.working[i*3+1] = s.graph.Positions[i*3+1] + 0.05*math.Sin(t*0.9+p*1.7)
		s.working[i*3+2] = s.graph.Positions[i*3+2] + 0.05*math.Cos(t*1.3+p)
	}
}

func (s *Network) Compose(w *viz.Wireframe) {
	for _, e := range s.graph.Edges {
		k := ink(s.graph.Colors, e.A).Dim(0.4)
		w.AddEdge(vec(s.working, e.A), vec(s.working, e.B), k)
	}
	for i := 0; i < s.graph.NodeCount(); i++ {
		w.AddPoint(vec(s.working, i), ink(s.graph.Colors, i), 1)
	}
}

func (s *Network) Metric() (string, []float64) { return "node degree", s.degrees }
