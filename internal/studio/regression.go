package studio

import (
	"math"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
	"github.com/statsoc/backdrop/internal/viz"
)

// Regression renders the plane fit: bobbing observations, the tessellated
// plane, and a pulsing residual stem under each point.
type Regression struct {
	cfg       gen.RegressionConfig
	scene     *gen.RegressionScene
	working   []float64
	residuals []float64
}

func NewRegression(cfg gen.RegressionConfig) *Regression { return &Regression{cfg: cfg} }

func (s *Regression) Name() string    { return "regression" }
func (s *Regression) Caption() string { return "Least Squares — plane fit with residuals" }

func (s *Regression) Init(seed int64) {
	s.scene = gen.GenerateRegression(s.cfg, prng.New(seed))
	s.working = make([]float64, len(s.scene.Points.Positions))
	copy(s.working, s.scene.Points.Positions)

	s.residuals = make([]float64, s.cfg.Samples)
	for i := 0; i < s.cfg.Samples; i++ {
		seg := s.scene.Residuals.Positions[i*6:]
		s.residuals[i] = seg[1] - seg[4]
	}
}

func (s *Regression) Advance(t, dt float64) {
	for i := 0; i < s.scene.Points.Count(); i++ {
		base := s.scene.Points.Positions[i*3 : i*3+3]
		s.working[i*3] = base[0]
		s.working[i*3+1] = base[1] + 0.04*math.Sin(t*2+s.scene.Points.Phases[i]*2*math.Pi)
		s.working[i*3+2] = base[2]
	}
}

func (s *Regression) Compose(w *viz.Wireframe) {
	viz.FloorGrid(w, s.cfg.XRange+0.4, 7, -2.3, viz.NewInk(0.3, 0.32, 0.4))

	// plane mesh
	m := s.scene.Plane.NX
	at := func(ix, iz int) int { return iz*m + ix }
	planeInk := ink(s.scene.Plane.Colors, 0)
	for iz := 0; iz < m; iz++ {
		for ix := 0; ix < m; ix++ {
			i := at(ix, iz)
			if ix+1 < m {
				w.AddEdge(vec(s.scene.Plane.Positions, i), vec(s.scene.Plane.Positions, at(ix+1, iz)), planeInk)
			}
			if iz+1 < m {
				w.AddEdge(vec(s.scene.Plane.Positions, i), vec(s.scene.Plane.Positions, at(ix, iz+1)), planeInk)
			}
		}
	}

	// residual stems follow the bobbing observation
	for i := 0; i < s.scene.Points.Count(); i++ {
		seg := s.scene.Residuals.Positions[i*6:]
		top := viz.Vec3{X: s.working[i*3], Y: s.working[i*3+1], Z: s.working[i*3+2]}
		bot := viz.Vec3{X: seg[3], Y: seg[4], Z: seg[5]}
		w.AddEdge(top, bot, ink(s.scene.Points.Colors, i).Dim(0.45))
		w.AddPoint(top, ink(s.scene.Points.Colors, i), 1)
	}
}

func (s *Regression) Metric() (string, []float64) { return "residuals", s.residuals }
