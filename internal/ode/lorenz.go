package ode

// Lorenz is the Lorenz system with the classic chaotic parameter set.
type Lorenz struct {
	Sigma, Rho, Beta float64
}

func NewLorenz() *Lorenz { return &Lorenz{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0} }

func (l *Lorenz) Dim() int { return 3 }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s State) State {
	return State{
		l.Sigma * (s[1] - s[0]),
		s[0]*(l.Rho-s[2]) - s[1],
		s[0]*s[1] - l.Beta*s[2],
	}
}

// DefaultState is the conventional starting point near the attractor.
func (l *Lorenz) DefaultState() State { return State{1.0, 1.0, 1.0} }
