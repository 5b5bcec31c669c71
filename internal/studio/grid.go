package studio

import (
	"math"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/viz"
)

const detHistory = 200

// GridStudio renders the time-varying linear map: the base grid is pushed
// through the current 2x2 matrix, blended back toward rest, then radially
// warped. A center marker scales with the determinant's magnitude and flips
// color with its sign.
type GridStudio struct {
	cfg     gen.GridConfig
	base    *gen.Segments
	working []float64
	det     float64
	detHist []float64
}

func NewGrid(cfg gen.GridConfig) *GridStudio { return &GridStudio{cfg: cfg} }

func (s *GridStudio) Name() string    { return "grid" }
func (s *GridStudio) Caption() string { return "Linear Map — grid warp and determinant" }

func (s *GridStudio) Init(seed int64) {
	s.base = gen.GenerateGrid(s.cfg)
	s.working = make([]float64, len(s.base.Positions))
	copy(s.working, s.base.Positions)
	s.detHist = s.detHist[:0]
}

func (s *GridStudio) Advance(t, dt float64) {
	m := gen.GridMatrix(t)
	gen.TransformGrid(s.working, s.base.Positions, m, s.cfg)

	s.det = m.Det()
	s.detHist = append(s.detHist, s.det)
	if len(s.detHist) > detHistory {
		s.detHist = s.detHist[1:]
	}
}

func (s *GridStudio) Compose(w *viz.Wireframe) {
	gridInk := viz.NewInk(0.35, 0.75, 0.9)
	for i := 0; i < len(s.working); i += 6 {
		a := viz.Vec3{X: s.working[i], Y: s.working[i+1], Z: s.working[i+2]}
		b := viz.Vec3{X: s.working[i+3], Y: s.working[i+4], Z: s.working[i+5]}
		w.AddEdge(a, b, gridInk)
	}

	// determinant indicator: size tracks |det|, hue tracks sign
	k := viz.NewInk(0.3, 1, 0.5)
	if s.det < 0 {
		k = viz.NewInk(1, 0.35, 0.35)
	}
	size := 1 + int(math.Min(3, math.Abs(s.det)*1.5))
	w.AddPoint(viz.Vec3{X: 0, Y: 0.05, Z: 0}, k, size)
}

func (s *GridStudio) Metric() (string, []float64) { return "determinant", s.detHist }
