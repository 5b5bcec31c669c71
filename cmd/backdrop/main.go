package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/statsoc/backdrop/internal/config"
	"github.com/statsoc/backdrop/internal/export"
	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
	"github.com/statsoc/backdrop/internal/studio"
	"github.com/statsoc/backdrop/internal/tui"
	"github.com/statsoc/backdrop/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	frameRate  int
	themeName  string
	// Snapshot and record options
	atTime    float64
	outFile   string
	svgScale  float64
	canvasW   int
	canvasH   int
	gifFrames int
	// Export options
	format    string
	nodesOnly bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backdrop",
		Short: "animated statistical backdrops for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return launch(cmd, "")
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")

	runCmd := &cobra.Command{
		Use:   "run [studio]",
		Short: "open the live view on one studio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return launch(cmd, args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list studios",
		RunE:  listStudios,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [studio]",
		Short: "render one frame to SVG without the live view",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotStudio,
	}
	snapshotCmd.Flags().Float64Var(&atTime, "time", 5.0, "scene time of the captured frame")
	snapshotCmd.Flags().StringVar(&outFile, "out", "", "output path (default <studio>.svg)")
	snapshotCmd.Flags().Float64Var(&svgScale, "scale", 4.0, "pixels per dot")
	snapshotCmd.Flags().IntVar(&canvasW, "width", 84, "canvas width in cells")
	snapshotCmd.Flags().IntVar(&canvasH, "height", 26, "canvas height in cells")

	recordCmd := &cobra.Command{
		Use:   "record [studio]",
		Short: "render an animation to GIF without the live view",
		Args:  cobra.ExactArgs(1),
		RunE:  recordStudio,
	}
	recordCmd.Flags().IntVar(&gifFrames, "frames", 150, "number of frames")
	recordCmd.Flags().StringVar(&outFile, "out", "", "output path (default <studio>.gif)")
	recordCmd.Flags().IntVar(&canvasW, "width", 84, "canvas width in cells")
	recordCmd.Flags().IntVar(&canvasH, "height", 26, "canvas height in cells")

	exportCmd := &cobra.Command{
		Use:   "export [studio]",
		Short: "dump a studio's generated dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  exportStudio,
	}
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv or json)")
	exportCmd.Flags().BoolVar(&nodesOnly, "nodes", false, "emit node positions instead of edges (graph studios)")

	presetsCmd := &cobra.Command{
		Use:   "presets [studio]",
		Short: "list available presets for a studio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for studio: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, snapshotCmd, recordCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and flags. Flags win over the
// file, the file wins over the preset.
func resolveConfig(cmd *cobra.Command, studioName string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if studioName == "" {
			return nil, fmt.Errorf("--preset needs a studio argument")
		}
		pc := config.GetPreset(studioName, preset)
		if pc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(studioName))
		}
		cfg = pc
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
	}

	if studioName != "" {
		cfg.Studio = studioName
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}
	return cfg, nil
}

func launch(cmd *cobra.Command, studioName string) error {
	cfg, err := resolveConfig(cmd, studioName)
	if err != nil {
		return err
	}
	found := false
	for _, n := range viz.ThemeNames() {
		if n == cfg.Theme {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	viz.SetTheme(cfg.Theme)

	set := studio.Build(cfg.Options())
	if cfg.Studio != "" && studio.Find(set, cfg.Studio) < 0 {
		return fmt.Errorf("unknown studio: %s", cfg.Studio)
	}
	return tui.Run(set, cfg.Studio, cfg.Seed, cfg.FPS)
}

func listStudios(cmd *cobra.Command, args []string) error {
	set := studio.Build(studio.DefaultOptions())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCAPTION\tPRESETS")
	for _, s := range set {
		presets := config.ListPresets(s.Name())
		fmt.Fprintf(w, "%s\t%s\t%d\n", s.Name(), s.Caption(), len(presets))
	}
	return w.Flush()
}

// renderFrame advances one studio to the requested scene time and draws it.
func renderFrame(s studio.Studio, seed int64, t float64, fps, w, h int) *viz.Canvas {
	s.Init(seed)
	camera := viz.NewCamera()
	dt := 1.0 / float64(fps)
	for clock := 0.0; clock < t; clock += dt {
		s.Advance(clock+dt, dt)
		camera.Advance(dt)
	}

	wf := viz.NewWireframe()
	s.Compose(wf)
	canvas := viz.NewCanvas(w, h)
	viz.Render(canvas, wf, camera)
	return canvas
}

func snapshotStudio(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	set := studio.Build(cfg.Options())
	idx := studio.Find(set, cfg.Studio)
	if idx < 0 {
		return fmt.Errorf("unknown studio: %s", cfg.Studio)
	}

	canvas := renderFrame(set[idx], cfg.Seed, atTime, cfg.FPS, canvasW, canvasH)

	path := outFile
	if path == "" {
		path = cfg.Studio + ".svg"
	}
	if err := os.WriteFile(path, []byte(export.CanvasSVG(canvas, svgScale)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func recordStudio(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	set := studio.Build(cfg.Options())
	idx := studio.Find(set, cfg.Studio)
	if idx < 0 {
		return fmt.Errorf("unknown studio: %s", cfg.Studio)
	}
	s := set[idx]
	s.Init(cfg.Seed)

	camera := viz.NewCamera()
	canvas := viz.NewCanvas(canvasW, canvasH)
	wf := viz.NewWireframe()
	rec := export.NewGIFRecorder()

	dt := 1.0 / float64(cfg.FPS)
	clock := 0.0
	for i := 0; i < gifFrames; i++ {
		clock += dt
		s.Advance(clock, dt)
		camera.Advance(dt)

		canvas.Clear()
		wf.Reset()
		s.Compose(wf)
		viz.Render(canvas, wf, camera)
		rec.Capture(canvas)
	}

	path := outFile
	if path == "" {
		path = cfg.Studio + ".gif"
	}
	if err := rec.Save(path); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", path, rec.FrameCount())
	return nil
}

func exportStudio(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	table, err := buildTable(cfg)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return table.WriteCSV(os.Stdout)
	case "json":
		return table.WriteJSON(os.Stdout)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// buildTable regenerates the studio's base dataset and flattens it. The
// graph studios emit their edge list unless --nodes asks for positions.
func buildTable(cfg *config.Config) (*export.Table, error) {
	name := cfg.Studio
	src := prng.New(cfg.Seed)

	graphTable := func(g *gen.Graph) *export.Table {
		if nodesOnly {
			return export.GraphNodeTable(name, g)
		}
		return export.GraphTable(name, g)
	}

	switch name {
	case "pca":
		cloud := gen.GeneratePCA(cfg.PCA, src)
		return export.PointTable(name, &cloud.PointCloud), nil
	case "surface":
		return export.SurfaceTable(name, gen.GenerateSurface(cfg.Surface)), nil
	case "network":
		return graphTable(gen.GenerateNetwork(cfg.Network, src)), nil
	case "neural":
		return graphTable(gen.GenerateNeural(cfg.Neural, src)), nil
	case "lorenz":
		return export.TrajectoryTable(name, gen.GenerateLorenz(cfg.Lorenz)), nil
	case "regression":
		scene := gen.GenerateRegression(cfg.Regression, src)
		return export.PointTable(name, &scene.Points), nil
	case "markov":
		chain := gen.GenerateMarkov(cfg.Markov)
		return graphTable(&chain.Graph), nil
	case "galton":
		return galtonTable(name, cfg), nil
	case "grid":
		return gridTable(name, cfg), nil
	default:
		return nil, fmt.Errorf("unknown studio: %s", name)
	}
}

// galtonTable settles the full board and emits the final bin counts.
func galtonTable(name string, cfg *config.Config) *export.Table {
	s := studio.NewGalton(cfg.Galton)
	s.Init(cfg.Seed)
	dt := 1.0 / 60.0
	deadline := float64(cfg.Galton.Balls)*cfg.Galton.Stagger + 60.0
	for t := 0.0; t < deadline && !s.AllSettled(); t += dt {
		s.Advance(t, dt)
	}

	table := &export.Table{Name: name, Columns: []string{"bin", "count"}}
	for bin, count := range s.Counts() {
		table.Rows = append(table.Rows, []float64{float64(bin), count})
	}
	return table
}

// gridTable emits the untransformed grid segments.
func gridTable(name string, cfg *config.Config) *export.Table {
	base := gen.GenerateGrid(cfg.Grid)
	table := &export.Table{Name: name, Columns: []string{"x1", "y1", "z1", "x2", "y2", "z2"}}
	for i := 0; i < base.Count(); i++ {
		seg := base.Positions[i*6 : i*6+6]
		table.Rows = append(table.Rows, []float64{seg[0], seg[1], seg[2], seg[3], seg[4], seg[5]})
	}
	return table
}
