// Package gen builds the datasets behind each backdrop studio. Every
// generator is a pure function from a config struct to flat float64 buffers:
// positions and colors are laid out 3 components per entry, per-entry scalars
// 1 component per entry. Buffers produced here are the rest state of a scene;
// animators work on their own copies and never write back.
package gen

import "github.com/lucasb-eyer/go-colorful"

// PointCloud is an ordered particle set. Positions and Colors hold 3 values
// per point; Phases, when present, holds one scalar per point used by the
// animator for per-point time offsets.
type PointCloud struct {
	Positions []float64
	Colors    []float64
	Phases    []float64
}

// Count reports the number of points.
func (p *PointCloud) Count() int { return len(p.Positions) / 3 }

// Edge is an undirected connection between two node indices. Weight carries
// whatever per-edge scalar the owning scene defines (visual intensity for
// neural nets, transition probability for Markov chains).
type Edge struct {
	A, B   int
	Weight float64
}

// Graph is a node set plus a deduplicated undirected edge list. Edge indices
// always reference valid nodes.
type Graph struct {
	Positions []float64
	Colors    []float64
	Labels    []string
	Edges     []Edge
}

// NodeCount reports the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Positions) / 3 }

// Trajectory is a temporally ordered polyline. Order is significant: the
// renderer reveals a growing prefix (the draw range) over time.
type Trajectory struct {
	Positions []float64
	Colors    []float64
}

// Count reports the number of trajectory points.
func (t *Trajectory) Count() int { return len(t.Positions) / 3 }

// Segments is a flat list of line segments, 6 values (two endpoints) each.
type Segments struct {
	Positions []float64
}

// Count reports the number of segments.
func (s *Segments) Count() int { return len(s.Positions) / 6 }

// Add appends one segment.
func (s *Segments) Add(x1, y1, z1, x2, y2, z2 float64) {
	s.Positions = append(s.Positions, x1, y1, z1, x2, y2, z2)
}

// Surface is a regular grid of 3D vertices, NX*NZ entries in row-major order.
type Surface struct {
	Positions []float64
	Colors    []float64
	NX, NZ    int
}

// hueColor converts an HSV color (hue in degrees) to an r,g,b triple in
// [0,1]. All scene palettes are hue ramps, so this is the only color math
// the generators need.
func hueColor(h, s, v float64) (float64, float64, float64) {
	c := colorful.Hsv(h, s, v)
	return c.R, c.G, c.B
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
