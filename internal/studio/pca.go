package studio

import (
	"math"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
	"github.com/statsoc/backdrop/internal/viz"
)

// PCA renders the Gaussian ellipsoid with its three component axes. The
// animation is a gentle radial breathing keyed to each point's phase.
type PCA struct {
	cfg     gen.PCAConfig
	cloud   *gen.PCACloud
	working []float64
	hist    []float64
}

func NewPCA(cfg gen.PCAConfig) *PCA { return &PCA{cfg: cfg} }

func (s *PCA) Name() string    { return "pca" }
func (s *PCA) Caption() string { return "Principal Components — correlated Gaussian cloud" }

func (s *PCA) Init(seed int64) {
	s.cloud = gen.GeneratePCA(s.cfg, prng.New(seed))
	s.working = make([]float64, len(s.cloud.Positions))
	copy(s.working, s.cloud.Positions)

	// static histogram of first-component coefficients for the side panel
	bins := 24
	s.hist = make([]float64, bins)
	span := 3 * s.cfg.Sigmas[0]
	for i := 0; i < s.cloud.Count(); i++ {
		c := s.cloud.Coeffs[i*3]
		b := int((c/span + 1) / 2 * float64(bins))
		if b >= 0 && b < bins {
			s.hist[b]++
		}
	}
}

func (s *PCA) Advance(t, dt float64) {
	for i := 0; i < s.cloud.Count(); i++ {
		f := 1 + 0.05*math.Sin(t*1.3+s.cloud.Phases[i])
		s.working[i*3] = s.cloud.Positions[i*3] * f
		s.working[i*3+1] = s.cloud.Positions[i*3+1] * f
		s.working[i*3+2] = s.cloud.Positions[i*3+2] * f
	}
}

func (s *PCA) Compose(w *viz.Wireframe) {
	for i := 0; i < s.cloud.Count(); i++ {
		w.AddPoint(vec(s.working, i), ink(s.cloud.Colors, i), 0)
	}

	// component axes, scaled by two sigmas each way
	axisInks := []viz.Ink{
		viz.NewInk(1, 0.35, 0.35),
		viz.NewInk(0.35, 1, 0.45),
		viz.NewInk(0.4, 0.55, 1),
	}
	for k := 0; k < 3; k++ {
		d := s.cloud.Basis[k]
		l := 2 * s.cloud.Scales[k]
		a := viz.Vec3{X: -d[0] * l, Y: -d[1] * l, Z: -d[2] * l}
		b := viz.Vec3{X: d[0] * l, Y: d[1] * l, Z: d[2] * l}
		w.AddEdge(a, b, axisInks[k])
	}
}

func (s *PCA) Metric() (string, []float64) { return "pc1 coefficient", s.hist }
