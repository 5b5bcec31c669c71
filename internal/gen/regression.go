package gen

import (
	"github.com/statsoc/backdrop/internal/prng"
)

// RegressionConfig parameterizes the fitted-plane scatter.
type RegressionConfig struct {
	Samples int     `yaml:"samples"`
	XRange  float64 `yaml:"x_range"` // half-width of the sampled x domain
	ZRange  float64 `yaml:"z_range"`
	SlopeX  float64 `yaml:"slope_x"` // ground-truth plane y = ax + bz + c
	SlopeZ  float64 `yaml:"slope_z"`
	Offset  float64 `yaml:"offset"`
	Noise   float64 `yaml:"noise"` // observation noise sigma
	MeshN   int     `yaml:"mesh_n"`
}

func DefaultRegressionConfig() RegressionConfig {
	return RegressionConfig{
		Samples: 140,
		XRange:  2.8,
		ZRange:  2.2,
		SlopeX:  0.45,
		SlopeZ:  -0.3,
		Offset:  0.2,
		Noise:   0.55,
		MeshN:   12,
	}
}

// RegressionScene bundles the noisy observations, the plane mesh fitted to
// the ground truth, and one residual segment per observation.
type RegressionScene struct {
	Points PointCloud
	// Residuals holds one segment per observation, from the observed point
	// down (or up) to its plane prediction. Segment i belongs to point i.
	Residuals Segments
	// Plane is a MeshN x MeshN tessellation of the plane over the domain.
	Plane Surface
}

// GenerateRegression samples uniform x/z positions, computes the plane value,
// and adds Gaussian noise to produce the y observation. Point and residual
// color carry the residual's sign: warm above the plane, cool below.
func GenerateRegression(cfg RegressionConfig, src *prng.Source) *RegressionScene {
	n := cfg.Samples
	out := &RegressionScene{
		Points: PointCloud{
			Positions: make([]float64, n*3),
			Colors:    make([]float64, n*3),
			Phases:    make([]float64, n),
		},
	}

	plane := func(x, z float64) float64 {
		return cfg.SlopeX*x + cfg.SlopeZ*z + cfg.Offset
	}

	for i := 0; i < n; i++ {
		x := src.Range(-cfg.XRange, cfg.XRange)
		z := src.Range(-cfg.ZRange, cfg.ZRange)
		pred := plane(x, z)
		y := pred + src.Norm()*cfg.Noise

		out.Points.Positions[i*3] = x
		out.Points.Positions[i*3+1] = y
		out.Points.Positions[i*3+2] = z
		out.Points.Phases[i] = src.Float64()

		var r, g, b float64
		if y >= pred {
			r, g, b = hueColor(18, 0.75, 0.95)
		} else {
			r, g, b = hueColor(205, 0.75, 0.95)
		}
		out.Points.Colors[i*3] = r
		out.Points.Colors[i*3+1] = g
		out.Points.Colors[i*3+2] = b

		out.Residuals.Add(x, y, z, x, pred, z)
	}

	// tessellate the fitted plane over the same domain
	m := cfg.MeshN
	out.Plane = Surface{
		Positions: make([]float64, m*m*3),
		Colors:    make([]float64, m*m*3),
		NX:        m,
		NZ:        m,
	}
	for iz := 0; iz < m; iz++ {
		z := -cfg.ZRange + 2*cfg.ZRange*float64(iz)/float64(m-1)
		for ix := 0; ix < m; ix++ {
			x := -cfg.XRange + 2*cfg.XRange*float64(ix)/float64(m-1)
			i := (iz*m + ix) * 3
			out.Plane.Positions[i] = x
			out.Plane.Positions[i+1] = plane(x, z)
			out.Plane.Positions[i+2] = z

			r, g, b := hueColor(140, 0.4, 0.7)
			out.Plane.Colors[i] = r
			out.Plane.Colors[i+1] = g
			out.Plane.Colors[i+2] = b
		}
	}
	return out
}
