package gen

import (
	"math"
)

// MarkovConfig parameterizes the transition-graph scene.
type MarkovConfig struct {
	Radius float64 `yaml:"radius"`
	// MinDraw hides edges whose transition weight falls at or below it.
	MinDraw float64 `yaml:"min_draw"`
}

func DefaultMarkovConfig() MarkovConfig {
	return MarkovConfig{Radius: 2.4, MinDraw: 0.04}
}

// markovMatrix is the fixed 5-state transition matrix. Rows are normalized
// at generation time, so approximate values are fine here.
var markovMatrix = [5][5]float64{
	{0.10, 0.45, 0.15, 0.20, 0.10},
	{0.25, 0.10, 0.40, 0.15, 0.10},
	{0.10, 0.20, 0.10, 0.45, 0.15},
	{0.30, 0.10, 0.15, 0.10, 0.35},
	{0.40, 0.20, 0.20, 0.15, 0.05},
}

var markovLabels = [5]string{"A", "B", "C", "D", "E"}

// MarkovChain is the five-state circular layout plus the normalized
// transition structure the walker samples from.
type MarkovChain struct {
	Graph
	// Rows holds the normalized transition matrix, rows summing to 1.
	Rows [][]float64
	// Cum holds per-row cumulative sums; the final entry of each row is
	// exactly 1 so inverse-CDF sampling can never fall off the end.
	Cum [][]float64
}

// States reports the chain order.
func (m *MarkovChain) States() int { return len(m.Rows) }

// Sample draws the successor of state i given a uniform variate u in [0,1).
func (m *MarkovChain) Sample(i int, u float64) int {
	row := m.Cum[i]
	for j, c := range row {
		if u < c {
			return j
		}
	}
	return len(row) - 1
}

// GenerateMarkov lays the five states out on a circle and derives edge
// geometry from the transition matrix: an edge is drawn for every weight
// above the draw threshold, weighted for visual thickness. Row sums are
// renormalized and the cumulative arrays pinned to end at exactly 1,
// regardless of rounding in the literal matrix.
func GenerateMarkov(cfg MarkovConfig) *MarkovChain {
	n := len(markovMatrix)
	out := &MarkovChain{
		Graph: Graph{
			Positions: make([]float64, n*3),
			Colors:    make([]float64, n*3),
			Labels:    make([]string, n),
		},
		Rows: make([][]float64, n),
		Cum:  make([][]float64, n),
	}

	for i := 0; i < n; i++ {
		a := float64(i)/float64(n)*2*math.Pi - math.Pi/2
		out.Positions[i*3] = cfg.Radius * math.Cos(a)
		out.Positions[i*3+1] = cfg.Radius * math.Sin(a) * 0.8
		out.Positions[i*3+2] = 0
		out.Labels[i] = markovLabels[i]

		r, g, b := hueColor(float64(i)/float64(n)*360, 0.7, 0.95)
		out.Colors[i*3] = r
		out.Colors[i*3+1] = g
		out.Colors[i*3+2] = b
	}

	for i := 0; i < n; i++ {
		sum := 0.0
		for _, w := range markovMatrix[i] {
			sum += w
		}
		row := make([]float64, n)
		cum := make([]float64, n)
		acc := 0.0
		for j, w := range markovMatrix[i] {
			row[j] = w / sum
			acc += row[j]
			cum[j] = acc
		}
		cum[n-1] = 1.0
		out.Rows[i] = row
		out.Cum[i] = cum

		for j, w := range row {
			if i != j && w > cfg.MinDraw {
				out.Edges = append(out.Edges, Edge{A: i, B: j, Weight: w})
			}
		}
	}
	return out
}
