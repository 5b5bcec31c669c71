package studio

import (
	"math"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
	"github.com/statsoc/backdrop/internal/viz"
)

// Neural renders the layered diagram with an activation pulse sweeping from
// the input layer to the output layer and wrapping around.
type Neural struct {
	cfg   gen.NeuralConfig
	graph *gen.Graph
	// layerOf maps node index to layer for the pulse math.
	layerOf []int
	phase   float64
	act     []float64
}

func NewNeural(cfg gen.NeuralConfig) *Neural { return &Neural{cfg: cfg} }

func (s *Neural) Name() string    { return "neural" }
func (s *Neural) Caption() string { return "Feed-Forward Net — layered diagram" }

func (s *Neural) Init(seed int64) {
	s.graph = gen.GenerateNeural(s.cfg, prng.New(seed))

	s.layerOf = make([]int, s.graph.NodeCount())
	idx := 0
	for li, count := range s.cfg.Layers {
		for j := 0; j < count; j++ {
			s.layerOf[idx] = li
			idx++
		}
	}
	s.act = make([]float64, len(s.cfg.Layers))
	s.phase = 0
}

// layerPulse is the activation of layer l when the sweep sits at phase p.
func layerPulse(l int, p float64) float64 {
	d := math.Abs(p - float64(l))
	return math.Max(0, 1-d*1.4)
}

func (s *Neural) Advance(t, dt float64) {
	span := float64(len(s.cfg.Layers))
	s.phase = math.Mod(t*1.2, span+0.8) - 0.4
	for l := range s.act {
		s.act[l] = layerPulse(l, s.phase)
	}
}

func (s *Neural) Compose(w *viz.Wireframe) {
	for _, e := range s.graph.Edges {
		// an edge lights up while the pulse crosses its layer gap
		mid := float64(s.layerOf[e.A]) + 0.5
		glow := math.Max(0, 1-math.Abs(s.phase-mid)*1.6)
		f := 0.25 + 0.75*glow*(e.Weight/s.cfg.WeightH)
		w.AddEdge(vec(s.graph.Positions, e.A), vec(s.graph.Positions, e.B),
			ink(s.graph.Colors, e.A).Dim(f))
	}
	for i := 0; i < s.graph.NodeCount(); i++ {
		size := 1
		if s.act[s.layerOf[i]] > 0.6 {
			size = 2
		}
		w.AddPoint(vec(s.graph.Positions, i), ink(s.graph.Colors, i), size)
	}
}

func (s *Neural) Metric() (string, []float64) { return "layer activation", s.act }
