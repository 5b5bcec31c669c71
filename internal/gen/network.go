package gen

import (
	"math"

	"github.com/statsoc/backdrop/internal/prng"
)

// NetworkConfig parameterizes the clustered network graph.
type NetworkConfig struct {
	NodeCount   int     `yaml:"node_count"`
	Clusters    int     `yaml:"clusters"`
	LinkPerNode int     `yaml:"link_per_node"`
	Radius      float64 `yaml:"radius"`       // spiral radius the clusters sit on
	Spread      float64 `yaml:"spread"`       // per-cluster scatter
	CrossChance float64 `yaml:"cross_chance"` // probability a link leaves the cluster
}

func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		NodeCount:   360,
		Clusters:    6,
		LinkPerNode: 3,
		Radius:      2.6,
		Spread:      0.85,
		CrossChance: 0.18,
	}
}

// GenerateNetwork places nodes in clustered rings around a spiral and links
// each node to pseudo-random neighbors, mostly within its own cluster.
// Unordered pairs are deduplicated with a canonical min-max key, so each
// edge appears exactly once.
func GenerateNetwork(cfg NetworkConfig, src *prng.Source) *Graph {
	n := cfg.NodeCount
	out := &Graph{
		Positions: make([]float64, n*3),
		Colors:    make([]float64, n*3),
	}

	cluster := make([]int, n)
	for i := 0; i < n; i++ {
		c := i * cfg.Clusters / n
		cluster[i] = c

		// cluster centers follow a gentle vertical spiral
		a := float64(c) / float64(cfg.Clusters) * 2 * math.Pi
		cx := cfg.Radius * math.Cos(a)
		cy := (float64(c)/float64(cfg.Clusters) - 0.5) * 2.0
		cz := cfg.Radius * math.Sin(a)

		// scatter within the cluster, denser toward the center
		ra := src.Float64() * 2 * math.Pi
		rr := cfg.Spread * math.Sqrt(src.Float64())
		ry := (src.Float64() - 0.5) * cfg.Spread

		out.Positions[i*3] = cx + rr*math.Cos(ra)
		out.Positions[i*3+1] = cy + ry
		out.Positions[i*3+2] = cz + rr*math.Sin(ra)

		hue := float64(c) / float64(cfg.Clusters) * 360
		r, g, b := hueColor(hue, 0.7, 0.95)
		out.Colors[i*3] = r
		out.Colors[i*3+1] = g
		out.Colors[i*3+2] = b
	}

	// bucket nodes per cluster for same-cluster link selection
	members := make([][]int, cfg.Clusters)
	for i, c := range cluster {
		members[c] = append(members[c], i)
	}

	seen := make(map[[2]int]bool)
	addEdge := func(a, b int) {
		if a == b {
			return
		}
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if seen[key] {
			return
		}
		seen[key] = true
		out.Edges = append(out.Edges, Edge{A: key[0], B: key[1], Weight: 1})
	}

	for i := 0; i < n; i++ {
		for l := 0; l < cfg.LinkPerNode; l++ {
			if src.Bool(cfg.CrossChance) {
				addEdge(i, src.IntN(n))
			} else {
				peers := members[cluster[i]]
				addEdge(i, peers[src.IntN(len(peers))])
			}
		}
	}
	return out
}
