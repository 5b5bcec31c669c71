package gen

import (
	"math"

	"github.com/statsoc/backdrop/internal/prng"
)

// PCAConfig parameterizes the principal-component point cloud.
type PCAConfig struct {
	Count  int        `yaml:"count"`
	Sigmas [3]float64 `yaml:"sigmas"`
}

// DefaultPCAConfig returns an elongated ellipsoid: one dominant direction,
// two progressively weaker ones.
func DefaultPCAConfig() PCAConfig {
	return PCAConfig{Count: 700, Sigmas: [3]float64{2.2, 1.1, 0.45}}
}

// PCACloud is a Gaussian ellipsoid sampled along three fixed orthonormal
// directions, plus the basis itself for companion axis rendering.
type PCACloud struct {
	PointCloud
	// Basis holds the three component directions, unit length.
	Basis [3][3]float64
	// Scales are the per-direction sigmas the coefficients were drawn with.
	Scales [3]float64
	// Coeffs holds the raw sampled coefficients, 3 per point, for the
	// statistical tests and the axis-projection animation.
	Coeffs []float64
}

// pcaBasis is a fixed right-handed orthonormal frame, tilted off the world
// axes so the cloud reads as 3D from the default camera.
func pcaBasis() [3][3]float64 {
	// first direction: diagonal-ish
	u := normalize3(1, 0.55, 0.35)
	// second: orthogonalized against u
	v := normalize3(-0.5, 1, 0.2)
	d := u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
	v = normalize3(v[0]-d*u[0], v[1]-d*u[1], v[2]-d*u[2])
	// third: cross product
	w := [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
	return [3][3]float64{u, v, w}
}

func normalize3(x, y, z float64) [3]float64 {
	l := math.Sqrt(x*x + y*y + z*z)
	return [3]float64{x / l, y / l, z / l}
}

// GeneratePCA samples the cloud. Coefficients along each basis direction are
// independent zero-mean Gaussians scaled by the direction's sigma; point hue
// follows the first coefficient's normalized position along the dominant
// axis.
func GeneratePCA(cfg PCAConfig, src *prng.Source) *PCACloud {
	n := cfg.Count
	out := &PCACloud{
		PointCloud: PointCloud{
			Positions: make([]float64, n*3),
			Colors:    make([]float64, n*3),
			Phases:    make([]float64, n),
		},
		Basis:  pcaBasis(),
		Scales: cfg.Sigmas,
		Coeffs: make([]float64, n*3),
	}

	for i := 0; i < n; i++ {
		var c [3]float64
		for k := 0; k < 3; k++ {
			c[k] = src.Norm() * cfg.Sigmas[k]
			out.Coeffs[i*3+k] = c[k]
		}

		var p [3]float64
		for k := 0; k < 3; k++ {
			for a := 0; a < 3; a++ {
				p[a] += c[k] * out.Basis[k][a]
			}
		}
		out.Positions[i*3] = p[0]
		out.Positions[i*3+1] = p[1]
		out.Positions[i*3+2] = p[2]

		// hue ramp over [-3sigma, 3sigma] along the first component
		t := clamp(c[0]/(3*cfg.Sigmas[0])+0.5, 0, 1)
		r, g, b := hueColor(lerp(210, 330, t), 0.75, 0.95)
		out.Colors[i*3] = r
		out.Colors[i*3+1] = g
		out.Colors[i*3+2] = b

		out.Phases[i] = src.Float64() * 2 * math.Pi
	}
	return out
}
