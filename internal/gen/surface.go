package gen

import "math"

// SurfaceConfig parameterizes the Gaussian density surface.
type SurfaceConfig struct {
	NX        int     `yaml:"nx"`
	NZ        int     `yaml:"nz"`
	Extent    float64 `yaml:"extent"`    // half-width of the sampled square
	Sigma     float64 `yaml:"sigma"`     // isotropic spread
	Amplitude float64 `yaml:"amplitude"` // peak height
}

func DefaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{NX: 36, NZ: 36, Extent: 3.2, Sigma: 1.1, Amplitude: 2.4}
}

// GenerateSurface evaluates a 2D isotropic Gaussian density over a regular
// grid. Height is amplitude times density; hue runs inversely with height so
// the peak is warm and the tails are cool.
func GenerateSurface(cfg SurfaceConfig) *Surface {
	n := cfg.NX * cfg.NZ
	out := &Surface{
		Positions: make([]float64, n*3),
		Colors:    make([]float64, n*3),
		NX:        cfg.NX,
		NZ:        cfg.NZ,
	}

	inv2s2 := 1 / (2 * cfg.Sigma * cfg.Sigma)
	for iz := 0; iz < cfg.NZ; iz++ {
		z := -cfg.Extent + 2*cfg.Extent*float64(iz)/float64(cfg.NZ-1)
		for ix := 0; ix < cfg.NX; ix++ {
			x := -cfg.Extent + 2*cfg.Extent*float64(ix)/float64(cfg.NX-1)
			h := cfg.Amplitude * math.Exp(-(x*x+z*z)*inv2s2)

			i := (iz*cfg.NX + ix) * 3
			out.Positions[i] = x
			out.Positions[i+1] = h
			out.Positions[i+2] = z

			t := h / cfg.Amplitude
			r, g, b := hueColor(lerp(230, 20, t), 0.8, 0.95)
			out.Colors[i] = r
			out.Colors[i+1] = g
			out.Colors[i+2] = b
		}
	}
	return out
}
