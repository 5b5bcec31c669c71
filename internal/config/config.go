package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/studio"
)

const (
	DefaultFPS   = 30
	DefaultSeed  = 1
	DefaultTheme = "nebula"
)

type Config struct {
	Studio string `yaml:"studio"`
	FPS    int    `yaml:"fps"`
	Seed   int64  `yaml:"seed"`
	Theme  string `yaml:"theme"`

	PCA        gen.PCAConfig        `yaml:"pca"`
	Surface    gen.SurfaceConfig    `yaml:"surface"`
	Network    gen.NetworkConfig    `yaml:"network"`
	Neural     gen.NeuralConfig     `yaml:"neural"`
	Lorenz     gen.LorenzConfig     `yaml:"lorenz"`
	Regression gen.RegressionConfig `yaml:"regression"`
	Galton     gen.GaltonConfig     `yaml:"galton"`
	Markov     gen.MarkovConfig     `yaml:"markov"`
	Grid       gen.GridConfig       `yaml:"grid"`
}

func DefaultConfig() *Config {
	return &Config{
		Studio:     "pca",
		FPS:        DefaultFPS,
		Seed:       DefaultSeed,
		Theme:      DefaultTheme,
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

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the file form into the studio builder's options.
func (c *Config) Options() studio.Options {
	return studio.Options{
		Seed:       c.Seed,
		PCA:        c.PCA,
		Surface:    c.Surface,
		Network:    c.Network,
		Neural:     c.Neural,
		Lorenz:     c.Lorenz,
		Regression: c.Regression,
		Galton:     c.Galton,
		Markov:     c.Markov,
		Grid:       c.Grid,
	}
}
