package gen

import (
	"github.com/statsoc/backdrop/internal/prng"
)

// NeuralConfig parameterizes the layered network diagram.
type NeuralConfig struct {
	Layers  []int   `yaml:"layers"`
	GapX    float64 `yaml:"gap_x"` // horizontal distance between layers
	GapY    float64 `yaml:"gap_y"` // vertical distance between nodes
	WeightL float64 `yaml:"weight_lo"`
	WeightH float64 `yaml:"weight_hi"`
}

func DefaultNeuralConfig() NeuralConfig {
	return NeuralConfig{
		Layers:  []int{4, 6, 6, 3},
		GapX:    2.1,
		GapY:    0.85,
		WeightL: 0.6,
		WeightH: 1.4,
	}
}

// GenerateNeural lays out a fixed feed-forward topology with full bipartite
// connectivity between adjacent layers. Edge weights are uniform draws used
// only for visual intensity; nothing is computed with them.
func GenerateNeural(cfg NeuralConfig, src *prng.Source) *Graph {
	total := 0
	for _, c := range cfg.Layers {
		total += c
	}
	out := &Graph{
		Positions: make([]float64, total*3),
		Colors:    make([]float64, total*3),
	}

	// first node index of each layer
	offsets := make([]int, len(cfg.Layers))
	idx := 0
	width := float64(len(cfg.Layers)-1) * cfg.GapX
	for li, count := range cfg.Layers {
		offsets[li] = idx
		x := -width/2 + float64(li)*cfg.GapX
		hue := lerp(170, 300, float64(li)/float64(len(cfg.Layers)-1))
		for j := 0; j < count; j++ {
			y := (float64(j) - float64(count-1)/2) * cfg.GapY
			out.Positions[idx*3] = x
			out.Positions[idx*3+1] = y
			out.Positions[idx*3+2] = 0

			r, g, b := hueColor(hue, 0.65, 0.95)
			out.Colors[idx*3] = r
			out.Colors[idx*3+1] = g
			out.Colors[idx*3+2] = b
			idx++
		}
	}

	for li := 0; li < len(cfg.Layers)-1; li++ {
		for a := 0; a < cfg.Layers[li]; a++ {
			for b := 0; b < cfg.Layers[li+1]; b++ {
				out.Edges = append(out.Edges, Edge{
					A:      offsets[li] + a,
					B:      offsets[li+1] + b,
					Weight: src.Range(cfg.WeightL, cfg.WeightH),
				})
			}
		}
	}
	return out
}
