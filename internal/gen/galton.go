package gen

import (
	"github.com/statsoc/backdrop/internal/prng"
)

// GaltonConfig parameterizes the bean-machine scene.
type GaltonConfig struct {
	Balls      int     `yaml:"balls"`
	Rows       int     `yaml:"rows"` // peg rows
	SpawnCols  int     `yaml:"spawn_cols"`
	PegGapX    float64 `yaml:"peg_gap_x"` // horizontal displacement per bounce
	PegGapY    float64 `yaml:"peg_gap_y"` // vertical distance between rows
	TopY       float64 `yaml:"top_y"`     // height of the first peg row
	Floor      float64 `yaml:"floor"`
	BallRadius float64 `yaml:"ball_radius"`
	Stagger    float64 `yaml:"stagger"` // release delay between spawn slots
	Gravity    float64 `yaml:"gravity"`
}

func DefaultGaltonConfig() GaltonConfig {
	return GaltonConfig{
		Balls:      110,
		Rows:       8,
		SpawnCols:  10,
		PegGapX:    0.42,
		PegGapY:    0.5,
		TopY:       2.6,
		Floor:      -2.8,
		BallRadius: 0.09,
		Stagger:    0.22,
		Gravity:    6.5,
	}
}

// Bins reports the number of collection bins: one more than the peg rows,
// matching the binomial outcome count.
func (c GaltonConfig) Bins() int { return c.Rows + 1 }

// HalfWidth is the playfield half-extent balls are clamped to.
func (c GaltonConfig) HalfWidth() float64 {
	return float64(c.Bins()) * c.PegGapX / 2
}

// RowY reports the height of peg row r (row 0 at the top).
func (c GaltonConfig) RowY(r int) float64 {
	return c.TopY - float64(r)*c.PegGapY
}

// GaltonBoard is the precomputed rest state of the bean machine: spawn
// positions, staggered release times, and one binary left/right choice per
// peg row per ball. The studio's state machine consumes these at run time;
// nothing here changes once generated.
type GaltonBoard struct {
	Config GaltonConfig
	// Spawns holds 3 values per ball (grid-seeded above the first row).
	Spawns []float64
	// Colors holds 3 values per ball.
	Colors []float64
	// ReleaseAt holds the scheduled drop time per ball.
	ReleaseAt []float64
	// Choices holds Rows booleans per ball; true means deflect right.
	Choices [][]bool
	// Pegs holds 3 values per peg for static scenery.
	Pegs []float64
}

// BallCount reports the number of balls.
func (b *GaltonBoard) BallCount() int { return len(b.Spawns) / 3 }

// GenerateGalton grid-seeds ball start positions above the board, staggers
// release times by spawn slot, and precomputes every left/right choice so a
// given seed always produces the same bell curve.
func GenerateGalton(cfg GaltonConfig, src *prng.Source) *GaltonBoard {
	n := cfg.Balls
	out := &GaltonBoard{
		Config:    cfg,
		Spawns:    make([]float64, n*3),
		Colors:    make([]float64, n*3),
		ReleaseAt: make([]float64, n),
		Choices:   make([][]bool, n),
	}

	spawnSpan := float64(cfg.SpawnCols-1) * cfg.BallRadius * 2.4
	for i := 0; i < n; i++ {
		row := i / cfg.SpawnCols
		col := i % cfg.SpawnCols

		x := -spawnSpan/2 + float64(col)*cfg.BallRadius*2.4
		y := cfg.TopY + 0.8 + float64(row)*cfg.BallRadius*2.6
		out.Spawns[i*3] = x
		out.Spawns[i*3+1] = y
		out.Spawns[i*3+2] = 0

		out.ReleaseAt[i] = float64(row*cfg.SpawnCols+col) * cfg.Stagger

		choices := make([]bool, cfg.Rows)
		for r := range choices {
			choices[r] = src.Bool(0.5)
		}
		out.Choices[i] = choices

		cr, cg, cb := hueColor(lerp(40, 55, src.Float64()), 0.85, 0.95)
		out.Colors[i*3] = cr
		out.Colors[i*3+1] = cg
		out.Colors[i*3+2] = cb
	}

	// triangular peg lattice
	for r := 0; r < cfg.Rows; r++ {
		count := r + 1
		y := cfg.RowY(r)
		for p := 0; p < count; p++ {
			x := (float64(p) - float64(count-1)/2) * cfg.PegGapX
			out.Pegs = append(out.Pegs, x, y, 0)
		}
	}
	return out
}
