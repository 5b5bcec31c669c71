package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/statsoc/backdrop/internal/gen"
)

// Table is a columnar view over a generated dataset, the common shape both
// the CSV and JSON writers consume.
type Table struct {
	Name    string      `json:"name"`
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

// WriteCSV emits the table with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			rec[i] = fmt.Sprintf("%.6f", v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON emits the table as one indented object.
func (t *Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// PointTable flattens a point cloud into x,y,z rows.
func PointTable(name string, p *gen.PointCloud) *Table {
	t := &Table{Name: name, Columns: []string{"x", "y", "z"}}
	for i := 0; i < p.Count(); i++ {
		t.Rows = append(t.Rows, []float64{p.Positions[i*3], p.Positions[i*3+1], p.Positions[i*3+2]})
	}
	return t
}

// TrajectoryTable flattens an ordered trajectory, keeping the step index so
// the temporal order survives round trips.
func TrajectoryTable(name string, tr *gen.Trajectory) *Table {
	t := &Table{Name: name, Columns: []string{"step", "x", "y", "z"}}
	for i := 0; i < tr.Count(); i++ {
		t.Rows = append(t.Rows, []float64{float64(i), tr.Positions[i*3], tr.Positions[i*3+1], tr.Positions[i*3+2]})
	}
	return t
}

// GraphTable emits the edge list; node positions are recoverable from the
// indices and the companion point table.
func GraphTable(name string, g *gen.Graph) *Table {
	t := &Table{Name: name, Columns: []string{"a", "b", "weight"}}
	for _, e := range g.Edges {
		t.Rows = append(t.Rows, []float64{float64(e.A), float64(e.B), e.Weight})
	}
	return t
}

// GraphNodeTable emits node positions for a graph dataset.
func GraphNodeTable(name string, g *gen.Graph) *Table {
	t := &Table{Name: name, Columns: []string{"x", "y", "z"}}
	for i := 0; i < g.NodeCount(); i++ {
		t.Rows = append(t.Rows, []float64{g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]})
	}
	return t
}

// SurfaceTable emits grid vertices with their grid coordinates.
func SurfaceTable(name string, s *gen.Surface) *Table {
	t := &Table{Name: name, Columns: []string{"ix", "iz", "x", "y", "z"}}
	for iz := 0; iz < s.NZ; iz++ {
		for ix := 0; ix < s.NX; ix++ {
			i := (iz*s.NX + ix) * 3
			t.Rows = append(t.Rows, []float64{
				float64(ix), float64(iz), s.Positions[i], s.Positions[i+1], s.Positions[i+2],
			})
		}
	}
	return t
}
