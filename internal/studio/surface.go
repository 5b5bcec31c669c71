package studio

import (
	"math"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/viz"
)

// SurfaceStudio renders the Gaussian density as a wire mesh with a radial
// ripple running over the base heights.
type SurfaceStudio struct {
	cfg     gen.SurfaceConfig
	base    *gen.Surface
	working []float64
}

func NewSurface(cfg gen.SurfaceConfig) *SurfaceStudio { return &SurfaceStudio{cfg: cfg} }

func (s *SurfaceStudio) Name() string    { return "surface" }
func (s *SurfaceStudio) Caption() string { return "Bivariate Normal — density surface" }

func (s *SurfaceStudio) Init(seed int64) {
	s.base = gen.GenerateSurface(s.cfg)
	s.working = make([]float64, len(s.base.Positions))
	copy(s.working, s.base.Positions)
}

func (s *SurfaceStudio) Advance(t, dt float64) {
	for i := 0; i+2 < len(s.base.Positions); i += 3 {
		x, z := s.base.Positions[i], s.base.Positions[i+2]
		r := math.Hypot(x, z)
		s.working[i] = x
		s.working[i+1] = s.base.Positions[i+1]*(1+0.12*math.Sin(t*1.4-r*1.9)) - 1.0
		s.working[i+2] = z
	}
}

func (s *SurfaceStudio) Compose(w *viz.Wireframe) {
	viz.FloorGrid(w, s.cfg.Extent+0.4, 7, -1.15, viz.NewInk(0.3, 0.32, 0.4))

	nx, nz := s.base.NX, s.base.NZ
	at := func(ix, iz int) int { return iz*nx + ix }
	for iz := 0; iz < nz; iz++ {
		for ix := 0; ix < nx; ix++ {
			i := at(ix, iz)
			if ix+1 < nx {
				w.AddEdge(vec(s.working, i), vec(s.working, at(ix+1, iz)), ink(s.base.Colors, i))
			}
			if iz+1 < nz {
				w.AddEdge(vec(s.working, i), vec(s.working, at(ix, iz+1)), ink(s.base.Colors, i))
			}
		}
	}
}

// Metric is the live center cross-section, so the ripple shows in the chart.
func (s *SurfaceStudio) Metric() (string, []float64) {
	nx := s.base.NX
	row := s.base.NZ / 2
	out := make([]float64, nx)
	for ix := 0; ix < nx; ix++ {
		out[ix] = s.working[(row*nx+ix)*3+1]
	}
	return "center section", out
}
