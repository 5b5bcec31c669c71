package studio

import (
	"math"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
	"github.com/statsoc/backdrop/internal/viz"
)

// Markov runs the perpetual weighted walk over the five-state chain. The
// walker eases between node positions with a raised-cosine profile; arriving
// resamples the next state from the chain's cumulative rows.
type Markov struct {
	cfg   gen.MarkovConfig
	chain *gen.MarkovChain
	src   *prng.Source

	cur, next int
	progress  float64
	rate      float64
	visits    []float64
}

func NewMarkov(cfg gen.MarkovConfig) *Markov { return &Markov{cfg: cfg, rate: 0.9} }

func (s *Markov) Name() string    { return "markov" }
func (s *Markov) Caption() string { return "Markov Chain — weighted random walk" }

func (s *Markov) Init(seed int64) {
	s.chain = gen.GenerateMarkov(s.cfg)
	s.src = prng.New(seed)
	s.cur = 0
	s.next = s.chain.Sample(s.cur, s.src.Float64())
	s.progress = 0
	s.visits = make([]float64, s.chain.States())
	s.visits[s.cur]++
}

// State reports the walker's current (departure) state.
func (s *Markov) State() int { return s.cur }

// Visits reports how often each state has been occupied.
func (s *Markov) Visits() []float64 { return s.visits }

func (s *Markov) Advance(t, dt float64) {
	s.progress += s.rate * dt
	for s.progress >= 1 {
		s.progress -= 1
		s.cur = s.next
		s.visits[s.cur]++
		s.next = s.chain.Sample(s.cur, s.src.Float64())
	}
}

// walkerPos interpolates between the current and next node with raised-cosine
// easing and a slight lift out of the graph plane mid-hop.
func (s *Markov) walkerPos() viz.Vec3 {
	eased := 0.5 - 0.5*math.Cos(math.Pi*s.progress)
	a := vec(s.chain.Positions, s.cur)
	b := vec(s.chain.Positions, s.next)
	p := a.Add(b.Sub(a).Scale(eased))
	p.Z += 0.5 * math.Sin(math.Pi*eased)
	return p
}

func (s *Markov) Compose(w *viz.Wireframe) {
	for _, e := range s.chain.Edges {
		f := 0.25 + 0.75*e.Weight
		w.AddEdge(vec(s.chain.Positions, e.A), vec(s.chain.Positions, e.B),
			ink(s.chain.Colors, e.A).Dim(f))
	}
	for i := 0; i < s.chain.NodeCount(); i++ {
		size := 1
		if i == s.cur {
			size = 2
		}
		w.AddPoint(vec(s.chain.Positions, i), ink(s.chain.Colors, i), size)
	}
	w.AddPoint(s.walkerPos(), viz.NewInk(1, 1, 1), 2)
}

func (s *Markov) Metric() (string, []float64) { return "state visits", s.visits }
