package gen

import (
	"github.com/statsoc/backdrop/internal/ode"
)

// LorenzConfig parameterizes the attractor trajectory.
type LorenzConfig struct {
	Steps   int     `yaml:"steps"`
	Discard int     `yaml:"discard"` // warm-up prefix dropped from the output
	Dt      float64 `yaml:"dt"`
	Scale   float64 `yaml:"scale"` // world-space scale applied to raw coordinates
}

func DefaultLorenzConfig() LorenzConfig {
	return LorenzConfig{Steps: 30000, Discard: 1000, Dt: 0.004, Scale: 0.09}
}

// GenerateLorenz integrates the Lorenz system with fixed-step RK4 and keeps
// steps-discard points. Output order is the integration order and must stay
// that way: the studio reveals a growing prefix of it. The same config always
// produces bit-identical output.
func GenerateLorenz(cfg LorenzConfig) *Trajectory {
	sys := ode.NewLorenz()
	integ := ode.NewRK4()
	x := sys.DefaultState()

	kept := cfg.Steps - cfg.Discard
	out := &Trajectory{
		Positions: make([]float64, 0, kept*3),
		Colors:    make([]float64, 0, kept*3),
	}

	for i := 0; i < cfg.Steps; i++ {
		x = integ.Step(sys, x, cfg.Dt)
		if i < cfg.Discard {
			continue
		}

		// recenter z so the butterfly sits on the origin
		out.Positions = append(out.Positions,
			x[0]*cfg.Scale,
			(x[2]-25)*cfg.Scale,
			x[1]*cfg.Scale,
		)

		// hue blends depth with progression through the trajectory
		depth := clamp(x[2]/50, 0, 1)
		prog := float64(i-cfg.Discard) / float64(kept)
		r, g, b := hueColor(lerp(190, 320, 0.65*depth+0.35*prog), 0.8, 0.95)
		out.Colors = append(out.Colors, r, g, b)
	}
	return out
}
