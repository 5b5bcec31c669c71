package viz

import (
	"math"
	"sort"
)

// Vec3 is a world-space point.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera orbits the origin: yaw and pitch rotate the world, Dist sets the
// perspective strength, Zoom scales the projection. AutoSpin, when non-zero,
// advances yaw every frame until the user grabs the camera.
type Camera struct {
	Yaw, Pitch, Roll float64
	Zoom             float64
	Dist             float64
	AutoSpin         float64
	grabbed          bool
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1.0, Dist: 6.0, AutoSpin: 0.25}
}

// Grab marks the camera as user-controlled, stopping the auto spin.
func (c *Camera) Grab() { c.grabbed = true }

// Release hands the camera back to the auto spin.
func (c *Camera) Release() { c.grabbed = false }

// Advance applies the idle spin. No-op while the user holds the camera.
func (c *Camera) Advance(dt float64) {
	if !c.grabbed {
		c.Yaw += c.AutoSpin * dt
	}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(8, c.Zoom*1.15) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.2, c.Zoom/1.15) }

// rotate applies yaw (around Y), then pitch (around X), then roll (around Z).
func (c *Camera) rotate(p Vec3) Vec3 {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.Pitch), math.Sin(c.Pitch)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cz, sz := math.Cos(c.Roll), math.Sin(c.Roll)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts a world point to sub-pixel canvas coordinates. It returns
// the screen position, a depth value (larger is nearer the camera), and
// whether the point lies in front of the eye.
func (c *Camera) Project(p Vec3, dw, dh int) (int, int, float64, bool) {
	r := c.rotate(p).Scale(c.Zoom)
	if r.Z >= c.Dist-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Dist / (c.Dist - r.Z)
	minDim := float64(dh)
	if float64(dw) < minDim {
		minDim = float64(dw)
	}
	s := minDim / 7.0
	x := int(r.X*persp*s) + dw/2
	y := dh/2 - int(r.Y*persp*s)
	return x, y, r.Z, true
}

// WireEdge is one colored segment of a scene.
type WireEdge struct {
	A, B Vec3
	Ink  Ink
}

// WirePoint is a colored marker; Size is the blot radius in dots.
type WirePoint struct {
	P    Vec3
	Ink  Ink
	Size int
}

// Wireframe is the per-frame scene description the studios hand to the
// renderer. It is rebuilt every frame and reused via Reset.
type Wireframe struct {
	Edges  []WireEdge
	Points []WirePoint
}

func NewWireframe() *Wireframe { return &Wireframe{} }

func (w *Wireframe) Reset() {
	w.Edges = w.Edges[:0]
	w.Points = w.Points[:0]
}

func (w *Wireframe) AddEdge(a, b Vec3, k Ink) {
	w.Edges = append(w.Edges, WireEdge{A: a, B: b, Ink: k})
}

func (w *Wireframe) AddPoint(p Vec3, k Ink, size int) {
	w.Points = append(w.Points, WirePoint{P: p, Ink: k, Size: size})
}

type drawOp struct {
	x1, y1, x2, y2 int
	depth          float64
	ink            Ink
	size           int
	point          bool
}

// Render projects the wireframe and paints it back-to-front, dimming ink
// with distance so overlapping geometry keeps some depth reading.
func Render(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	dw, dh := c.DotWidth(), c.DotHeight()
	ops := make([]drawOp, 0, len(w.Edges)+len(w.Points))

	for _, e := range w.Edges {
		x1, y1, d1, ok1 := cam.Project(e.A, dw, dh)
		x2, y2, d2, ok2 := cam.Project(e.B, dw, dh)
		if ok1 || ok2 {
			ops = append(ops, drawOp{x1, y1, x2, y2, (d1 + d2) / 2, e.Ink, 0, false})
		}
	}
	for _, p := range w.Points {
		x, y, d, ok := cam.Project(p.P, dw, dh)
		if ok {
			ops = append(ops, drawOp{x, y, 0, 0, d, p.Ink, p.Size, true})
		}
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].depth < ops[j].depth })

	for _, op := range ops {
		ink := op.ink
		if !ink.zero() {
			// depth in roughly [-3, 3] after zoom; map far to dim
			f := 0.55 + 0.45*clamp01((op.depth+3)/6)
			ink = ink.Dim(f)
		}
		if op.point {
			c.Blot(op.x1, op.y1, op.size, ink)
		} else {
			c.Line(op.x1, op.y1, op.x2, op.y2, ink)
		}
	}
}

// FloorGrid adds a reference grid in the XZ plane, the static scenery under
// the ground-based studios.
func FloorGrid(w *Wireframe, half float64, lines int, y float64, k Ink) {
	step := 2 * half / float64(lines-1)
	for i := 0; i < lines; i++ {
		p := -half + float64(i)*step
		w.AddEdge(Vec3{p, y, -half}, Vec3{p, y, half}, k)
		w.AddEdge(Vec3{-half, y, p}, Vec3{half, y, p}, k)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
