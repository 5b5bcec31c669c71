package gen

import "math"

// GridConfig parameterizes the linear-transform grid.
type GridConfig struct {
	Lines  int     `yaml:"lines"`  // lines per axis
	Extent float64 `yaml:"extent"` // half-width of the grid
	Subdiv int     `yaml:"subdiv"` // segments per line, so warps stay smooth
	// Blend keeps a fraction of the untransformed grid mixed in.
	Blend float64 `yaml:"blend"`
	// WarpAmount scales the radial distortion.
	WarpAmount float64 `yaml:"warp_amount"`
	// WarpRadius sets where the tanh profile rolls off.
	WarpRadius float64 `yaml:"warp_radius"`
}

func DefaultGridConfig() GridConfig {
	return GridConfig{
		Lines:      13,
		Extent:     3.0,
		Subdiv:     24,
		Blend:      0.35,
		WarpAmount: 0.45,
		WarpRadius: 1.6,
	}
}

// Mat2 is a row-major 2x2 matrix.
type Mat2 [4]float64

// Det reports the determinant, the scene's area-scaling indicator.
func (m Mat2) Det() float64 { return m[0]*m[3] - m[1]*m[2] }

// Apply transforms the point (x, y).
func (m Mat2) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y, m[2]*x + m[3]*y
}

// GridMatrix combines time-varying scale, shear, and rotation into one 2x2
// transform. The components drift at incommensurate rates so the motion
// never visibly loops.
func GridMatrix(t float64) Mat2 {
	sx := 1 + 0.35*math.Sin(t*0.50)
	sy := 1 + 0.35*math.Sin(t*0.73+1.3)
	sh := 0.45 * math.Sin(t*0.31+0.7)
	rot := 0.6 * math.Sin(t*0.21)

	c, s := math.Cos(rot), math.Sin(rot)
	// rotation * shear * scale
	return Mat2{
		c*sx - s*sh*sx, c*sh*sy - s*sy,
		s*sx + c*sh*sx, s*sh*sy + c*sy,
	}
}

// Warp applies a radial polar-coordinate distortion with a hyperbolic-tangent
// profile. Points at the origin are returned unchanged; the zero-radius guard
// is the only defensive check the generators need.
func Warp(x, y, amount, radius float64) (float64, float64) {
	r := math.Hypot(x, y)
	if r == 0 {
		return x, y
	}
	f := 1 + amount*math.Tanh(r/radius)*math.Sin(r*2.2)/r
	return x * f, y * f
}

// GenerateGrid builds the base (rest) grid as subdivided line segments in the
// XZ plane. Subdivision matters: the warp is non-affine, so long straight
// segments would cut corners.
func GenerateGrid(cfg GridConfig) *Segments {
	out := &Segments{}
	step := 2 * cfg.Extent / float64(cfg.Lines-1)
	sub := 2 * cfg.Extent / float64(cfg.Subdiv)

	for i := 0; i < cfg.Lines; i++ {
		p := -cfg.Extent + float64(i)*step
		for j := 0; j < cfg.Subdiv; j++ {
			a := -cfg.Extent + float64(j)*sub
			b := a + sub
			// line parallel to z, then parallel to x
			out.Add(p, 0, a, p, 0, b)
			out.Add(a, 0, p, b, 0, p)
		}
	}
	return out
}

// TransformGrid maps the base grid through the matrix, blends with the rest
// position, then warps. It writes into dst, which must be the same length as
// base; base itself is never modified.
func TransformGrid(dst, base []float64, m Mat2, cfg GridConfig) {
	for i := 0; i+2 < len(base); i += 3 {
		x, z := base[i], base[i+2]
		tx, tz := m.Apply(x, z)
		bx := lerp(tx, x, cfg.Blend)
		bz := lerp(tz, z, cfg.Blend)
		wx, wz := Warp(bx, bz, cfg.WarpAmount, cfg.WarpRadius)
		dst[i] = wx
		dst[i+1] = base[i+1]
		dst[i+2] = wz
	}
}
