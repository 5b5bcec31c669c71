package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
	"github.com/statsoc/backdrop/internal/viz"
)

func TestCanvasSVGContainsDots(t *testing.T) {
	c := viz.NewCanvas(10, 5)
	c.Line(0, 0, 19, 19, viz.NewInk(0, 1, 0.5))

	svg := CanvasSVG(c, 4)
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML prolog")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("no dots emitted for a drawn line")
	}
	if !strings.Contains(svg, "#00ff80") {
		t.Errorf("ink color not preserved in output")
	}
}

func TestCanvasSVGEmptyCanvas(t *testing.T) {
	svg := CanvasSVG(viz.NewCanvas(4, 4), 4)
	if strings.Contains(svg, "<circle") {
		t.Error("empty canvas should emit no dots")
	}
	if CanvasSVG(nil, 4) != "" {
		t.Error("nil canvas should produce empty output")
	}
}

func TestTableCSVRoundShape(t *testing.T) {
	cloud := gen.GeneratePCA(gen.DefaultPCAConfig(), prng.New(2))
	table := PointTable("pca", &cloud.PointCloud)

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != cloud.Count()+1 {
		t.Errorf("got %d lines, want %d rows plus header", len(lines), cloud.Count())
	}
	if lines[0] != "x,y,z" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestTableJSON(t *testing.T) {
	traj := gen.GenerateLorenz(gen.LorenzConfig{Steps: 500, Discard: 100, Dt: 0.004, Scale: 0.09})
	table := TrajectoryTable("lorenz", traj)

	var buf bytes.Buffer
	if err := table.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var back Table
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if back.Name != "lorenz" || len(back.Rows) != 400 {
		t.Errorf("round trip lost data: name=%q rows=%d", back.Name, len(back.Rows))
	}
	// temporal order must survive
	for i, row := range back.Rows {
		if int(row[0]) != i {
			t.Fatalf("step column out of order at %d", i)
		}
	}
}

func TestGIFRecorderCapturesFrames(t *testing.T) {
	c := viz.NewCanvas(10, 5)
	c.Blot(8, 8, 2, viz.NewInk(1, 0.5, 0))

	rec := NewGIFRecorder()
	rec.Capture(c)
	rec.Capture(c)
	if rec.FrameCount() != 2 {
		t.Errorf("frame count = %d, want 2", rec.FrameCount())
	}
}
