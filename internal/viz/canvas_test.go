package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0, Ink{1, 0, 0})
	r, k := c.Cell(0, 0)
	if r == 0x2800 {
		t.Error("dot not set")
	}
	if k != (Ink{1, 0, 0}) {
		t.Errorf("ink not recorded: %+v", k)
	}

	c.Clear()
	r, k = c.Cell(0, 0)
	if r != 0x2800 || !k.zero() {
		t.Error("clear did not reset cell")
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	// must not panic
	c.Set(-1, -1, Ink{})
	c.Set(c.DotWidth(), 0, Ink{})
	c.Set(0, c.DotHeight(), Ink{})
	c.Line(-10, -10, 100, 100, Ink{1, 1, 1})
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(12, 3)
	s := c.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for i, l := range lines {
		if got := len([]rune(l)); got != 12 {
			t.Errorf("row %d has %d cells, want 12", i, got)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Line(0, 0, 30, 17, Ink{0, 1, 0})

	if c.DotPattern(0, 0) == 0 {
		t.Error("line start not drawn")
	}
	if c.DotPattern(30/2, 17/4) == 0 {
		t.Error("line end not drawn")
	}
}

func TestInkHex(t *testing.T) {
	cases := []struct {
		ink  Ink
		want string
	}{
		{Ink{0, 0, 0}, "#000000"},
		{Ink{1, 1, 1}, "#ffffff"},
		{Ink{1, 0, 0}, "#ff0000"},
	}
	for _, tc := range cases {
		if got := tc.ink.Hex(); got != tc.want {
			t.Errorf("Hex(%+v) = %q, want %q", tc.ink, got, tc.want)
		}
	}
}

func TestCameraProjectsOriginToCenter(t *testing.T) {
	cam := NewCamera()
	c := NewCanvas(40, 20)
	x, y, _, ok := cam.Project(Vec3{}, c.DotWidth(), c.DotHeight())
	if !ok {
		t.Fatal("origin not visible")
	}
	if x != c.DotWidth()/2 || y != c.DotHeight()/2 {
		t.Errorf("origin projected to (%d,%d), want center (%d,%d)", x, y, c.DotWidth()/2, c.DotHeight()/2)
	}
}

func TestCameraRejectsPointsBehindEye(t *testing.T) {
	cam := NewCamera()
	if _, _, _, ok := cam.Project(Vec3{Z: cam.Dist + 1}, 80, 96); ok {
		t.Error("point behind the eye should not be visible")
	}
}

func TestCameraGrabStopsAutoSpin(t *testing.T) {
	cam := NewCamera()
	yaw := cam.Yaw
	cam.Advance(1)
	if cam.Yaw == yaw {
		t.Fatal("auto spin did not advance yaw")
	}

	cam.Grab()
	yaw = cam.Yaw
	cam.Advance(1)
	if cam.Yaw != yaw {
		t.Error("grabbed camera should not auto spin")
	}
}

func TestFloorGridSpansPlane(t *testing.T) {
	w := NewWireframe()
	FloorGrid(w, 3, 5, -1, Ink{0.3, 0.3, 0.3})

	// 5 lines along each axis
	if len(w.Edges) != 10 {
		t.Fatalf("expected 10 edges, got %d", len(w.Edges))
	}
	for i, e := range w.Edges {
		if e.A.Y != -1 || e.B.Y != -1 {
			t.Errorf("edge %d left the floor plane: %+v", i, e)
		}
	}
	first := w.Edges[0]
	if first.A.X != -3 || first.A.Z != -3 || first.B.Z != 3 {
		t.Errorf("first line does not span the grid: %+v", first)
	}
}

func TestRenderPaintsWireframe(t *testing.T) {
	c := NewCanvas(40, 20)
	w := NewWireframe()
	w.AddEdge(Vec3{X: -1}, Vec3{X: 1}, Ink{0, 1, 1})
	w.AddPoint(Vec3{}, Ink{1, 1, 0}, 1)

	Render(c, w, NewCamera())

	lit := 0
	for row := 0; row < c.H; row++ {
		for col := 0; col < c.W; col++ {
			if c.DotPattern(col, row) != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("nothing was drawn")
	}
}
