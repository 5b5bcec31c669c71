package config

import "github.com/statsoc/backdrop/internal/gen"

// Presets are named variants per studio, applied on top of the defaults.
// Each entry mutates only its own studio's generator settings.
var Presets = map[string]map[string]func(*Config){
	"pca": {
		"sphere": func(c *Config) {
			c.PCA = gen.PCAConfig{Count: 700, Sigmas: [3]float64{1.3, 1.3, 1.3}}
		},
		"needle": func(c *Config) {
			c.PCA = gen.PCAConfig{Count: 900, Sigmas: [3]float64{2.8, 0.4, 0.2}}
		},
		"sparse": func(c *Config) {
			c.PCA.Count = 220
		},
	},
	"surface": {
		"sharp": func(c *Config) {
			c.Surface.Sigma = 0.6
			c.Surface.Amplitude = 3.0
		},
		"broad": func(c *Config) {
			c.Surface.Sigma = 1.8
			c.Surface.Amplitude = 1.6
		},
		"fine": func(c *Config) {
			c.Surface.NX = 52
			c.Surface.NZ = 52
		},
	},
	"network": {
		"dense": func(c *Config) {
			c.Network.NodeCount = 520
			c.Network.LinkPerNode = 4
		},
		"islands": func(c *Config) {
			c.Network.Clusters = 9
			c.Network.CrossChance = 0.04
		},
		"tangled": func(c *Config) {
			c.Network.CrossChance = 0.5
		},
	},
	"neural": {
		"deep": func(c *Config) {
			c.Neural.Layers = []int{4, 8, 8, 8, 3}
		},
		"wide": func(c *Config) {
			c.Neural.Layers = []int{6, 12, 6}
			c.Neural.GapY = 0.6
		},
	},
	"lorenz": {
		"long": func(c *Config) {
			c.Lorenz.Steps = 60000
		},
		"coarse": func(c *Config) {
			c.Lorenz.Steps = 12000
			c.Lorenz.Dt = 0.008
		},
	},
	"regression": {
		"noisy": func(c *Config) {
			c.Regression.Noise = 1.2
		},
		"tight": func(c *Config) {
			c.Regression.Noise = 0.15
		},
		"steep": func(c *Config) {
			c.Regression.SlopeX = 0.9
			c.Regression.SlopeZ = -0.7
		},
	},
	"galton": {
		"tall": func(c *Config) {
			c.Galton.Rows = 11
			c.Galton.TopY = 3.2
			c.Galton.PegGapY = 0.42
		},
		"flood": func(c *Config) {
			c.Galton.Balls = 220
			c.Galton.Stagger = 0.1
		},
	},
	"markov": {
		"wide": func(c *Config) {
			c.Markov.Radius = 3.0
		},
		"busy": func(c *Config) {
			c.Markov.MinDraw = 0.0
		},
	},
	"grid": {
		"fine": func(c *Config) {
			c.Grid.Lines = 21
			c.Grid.Subdiv = 32
		},
		"wild": func(c *Config) {
			c.Grid.Blend = 0.1
			c.Grid.WarpAmount = 0.9
		},
	},
}

// GetPreset returns defaults with the named preset applied, or nil when the
// studio or preset is unknown.
func GetPreset(studio, preset string) *Config {
	studioPresets, ok := Presets[studio]
	if !ok {
		return nil
	}
	apply, ok := studioPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Studio = studio
	apply(cfg)
	return cfg
}

func ListPresets(studio string) []string {
	studioPresets, ok := Presets[studio]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(studioPresets))
	for name := range studioPresets {
		names = append(names, name)
	}
	return names
}
