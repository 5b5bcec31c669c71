// Package studio assembles generators and per-frame animators into the
// selectable backdrop scenes. Each studio owns two sets of buffers: the base
// (rest) data produced once by its generator in Init, and the working copies
// its Advance method rewrites every frame. Advance reads base and writes
// working, never the other way around.
package studio

import (
	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/viz"
)

// Studio is one selectable animated scene.
type Studio interface {
	// Name is the short selector key ("pca", "lorenz", ...).
	Name() string
	// Caption is the overlay line shown when the studio becomes active.
	Caption() string
	// Init (re)generates the base dataset from the seed. Calling it again
	// with the same seed restores the identical scene.
	Init(seed int64)
	// Advance steps the animation to absolute time t with frame delta dt.
	Advance(t, dt float64)
	// Compose writes the current frame's geometry into the wireframe.
	Compose(w *viz.Wireframe)
	// Metric returns a labelled series for the side-panel chart.
	Metric() (string, []float64)
}

// Options carries every generator configuration plus the shared seed.
type Options struct {
	Seed       int64
	PCA        gen.PCAConfig
	Surface    gen.SurfaceConfig
	Network    gen.NetworkConfig
	Neural     gen.NeuralConfig
	Lorenz     gen.LorenzConfig
	Regression gen.RegressionConfig
	Galton     gen.GaltonConfig
	Markov     gen.MarkovConfig
	Grid       gen.GridConfig
}

func DefaultOptions() Options {
	return Options{
		Seed:       1,
		PCA:        gen.DefaultPCAConfig(),
		Surface:    gen.DefaultSurfaceConfig(),
		Network:    gen.DefaultNetworkConfig(),
		Neural:     gen.DefaultNeuralConfig(),
		Lorenz:     gen.DefaultLorenzConfig(),
		Regression: gen.DefaultRegressionConfig(),
		Galton:     gen.DefaultGaltonConfig(),
		Markov:     gen.DefaultMarkovConfig(),
		Grid:       gen.DefaultGridConfig(),
	}
}

// Build constructs the full studio set in selector order. Every studio is
// initialized and ready to advance.
func Build(o Options) []Studio {
	set := []Studio{
		NewPCA(o.PCA),
		NewSurface(o.Surface),
		NewNetwork(o.Network),
		NewNeural(o.Neural),
		NewLorenz(o.Lorenz),
		NewRegression(o.Regression),
		NewGalton(o.Galton),
		NewMarkov(o.Markov),
		NewGrid(o.Grid),
	}
	for _, s := range set {
		s.Init(o.Seed)
	}
	return set
}

// Next and Prev cycle the selector with modular wraparound.
func Next(i, n int) int { return (i + 1) % n }

func Prev(i, n int) int { return (i - 1 + n) % n }

// Find returns the index of the named studio, or -1.
func Find(set []Studio, name string) int {
	for i, s := range set {
		if s.Name() == name {
			return i
		}
	}
	return -1
}

// ink converts a generated color triple into canvas ink.
func ink(colors []float64, i int) viz.Ink {
	return viz.NewInk(colors[i*3], colors[i*3+1], colors[i*3+2])
}

// vec reads entry i of a 3-stride position buffer.
func vec(positions []float64, i int) viz.Vec3 {
	return viz.Vec3{X: positions[i*3], Y: positions[i*3+1], Z: positions[i*3+2]}
}
