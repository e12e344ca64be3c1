package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/equipot/internal/config"
	"github.com/san-kum/equipot/internal/levels"
	"github.com/san-kum/equipot/internal/profile"
	"github.com/san-kum/equipot/internal/render"
	"github.com/san-kum/equipot/internal/renderer"
	"github.com/san-kum/equipot/internal/storage"
	"github.com/san-kum/equipot/internal/sweep"
	"github.com/san-kum/equipot/internal/viz"
	"github.com/san-kum/equipot/internal/window"
)

var (
	dataDir    string
	configFile string
	preset     string
	m1         float64
	m2         float64
	distance   float64
	gConst     float64
	resolution int
	extent     float64
	strategy   string
	levelCount int
	filled     bool
	negate     bool
	hideAxes   bool
	output     string
	title      string
	save       bool
	theme      string
	// profile
	samples int
	pngOut  string
	// sweep
	sweepParams []string
	sweepDir    string
	sweepFormat string
)

// main registers the equipot commands and executes the root command,
// exiting with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "equipot",
		Short:        "two-body effective potential contours",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".equipot", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render equipotential contours to an image file",
		Args:  cobra.NoArgs,
		RunE:  renderField,
	}
	addFieldFlags(renderCmd)
	renderCmd.Flags().BoolVar(&filled, "filled", false, "filled contours")
	renderCmd.Flags().BoolVar(&hideAxes, "hide-axes", true, "hide plot axes")
	renderCmd.Flags().StringVarP(&output, "out", "o", config.DefaultOutput, "output file (png, svg, pdf, ...)")
	renderCmd.Flags().StringVar(&title, "title", "", "plot title")
	renderCmd.Flags().BoolVar(&save, "save", false, "store the sampled field in the data directory")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "show equipotential contours in a window",
		Args:  cobra.NoArgs,
		RunE:  showWindow,
	}
	addFieldFlags(windowCmd)
	windowCmd.Flags().BoolVar(&filled, "filled", false, "filled contours")
	windowCmd.Flags().BoolVar(&hideAxes, "hide-axes", true, "hide plot axes")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "explore equipotential lines in the terminal",
		Args:  cobra.NoArgs,
		RunE:  showTerminal,
	}
	addFieldFlags(showCmd)
	showCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, fmt.Sprintf("colour theme %v", viz.ThemeNames()))

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the potential along the body axis",
		Args:  cobra.NoArgs,
		RunE:  plotProfile,
	}
	addFieldFlags(profileCmd)
	profileCmd.Flags().IntVar(&samples, "samples", 400, "samples along the axis")
	profileCmd.Flags().StringVar(&pngOut, "png", "", "also write the profile chart to this PNG file")

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "print contour levels",
		Args:  cobra.NoArgs,
		RunE:  printLevels,
	}
	addFieldFlags(levelsCmd)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "print body positions and the inner Lagrange point",
		Args:  cobra.NoArgs,
		RunE:  printInfo,
	}
	addFieldFlags(infoCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored fields",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored field as x,y,phi CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored field and its metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "render one frame per combination of parameter values",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addFieldFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&filled, "filled", false, "filled contours")
	sweepCmd.Flags().StringArrayVar(&sweepParams, "param", nil, "parameter values, e.g. m2=1,10,40 (repeatable)")
	sweepCmd.Flags().StringVar(&sweepDir, "dir", "frames", "output directory")
	sweepCmd.Flags().StringVar(&sweepFormat, "format", "png", "image format")
	sweepCmd.MarkFlagRequired("param")

	rootCmd.AddCommand(renderCmd, windowCmd, showCmd, profileCmd, levelsCmd, infoCmd, presetsCmd, listCmd, exportCSVCmd, exportJSONCmd, sweepCmd)
	return rootCmd
}

func addFieldFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&m1, "m1", def.M1, "mass of body 1")
	cmd.Flags().Float64Var(&m2, "m2", def.M2, "mass of body 2")
	cmd.Flags().Float64Var(&distance, "d", def.Distance, "separation of the bodies")
	cmd.Flags().Float64Var(&gConst, "g", def.G, "gravitational constant")
	cmd.Flags().IntVar(&resolution, "n", def.Grid.Resolution, "grid samples per axis")
	cmd.Flags().Float64Var(&extent, "extent", def.Grid.Extent, "grid half-width in units of d")
	cmd.Flags().StringVar(&strategy, "levels", def.Levels.Strategy, fmt.Sprintf("level strategy %v", levels.Names()))
	cmd.Flags().IntVar(&levelCount, "count", def.Levels.Count, "level count for extrema-based strategies")
	cmd.Flags().BoolVar(&negate, "negate", def.Negate, "negate the potential before contouring")
}

// resolveConfig layers a preset, then a config file, then explicitly set
// flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("m1") {
		cfg.M1 = m1
	}
	if flags.Changed("m2") {
		cfg.M2 = m2
	}
	if flags.Changed("d") {
		cfg.Distance = distance
	}
	if flags.Changed("g") {
		cfg.G = gConst
	}
	if flags.Changed("n") {
		cfg.Grid.Resolution = resolution
	}
	if flags.Changed("extent") {
		cfg.Grid.Extent = extent
	}
	if flags.Changed("levels") {
		cfg.Levels.Strategy = strategy
	}
	if flags.Changed("count") {
		cfg.Levels.Count = levelCount
	}
	if flags.Changed("negate") {
		cfg.Negate = negate
	}
	if flags.Lookup("filled") != nil && flags.Changed("filled") {
		cfg.Filled = filled
	}
	if flags.Lookup("hide-axes") != nil && flags.Changed("hide-axes") {
		cfg.HideAxes = hideAxes
	}
	if flags.Lookup("out") != nil && flags.Changed("out") {
		cfg.Output = output
	}
	if flags.Lookup("title") != nil && flags.Changed("title") {
		cfg.Title = title
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func summaryRows(res *renderer.Result) []viz.Row {
	sys := res.System
	x1, x2 := sys.Positions()
	c, r := res.Field.Dims()
	lo, hi := res.Field.Extrema()
	return []viz.Row{
		{Label: "system", Value: sys.String()},
		{Label: "q", Value: fmt.Sprintf("%.4f", sys.MassFraction())},
		{Label: "x1", Value: fmt.Sprintf("%.4f", x1)},
		{Label: "x2", Value: fmt.Sprintf("%.4f", x2)},
		{Label: "grid", Value: fmt.Sprintf("%dx%d over ±%.4g", c, r, res.Field.Xs[c-1])},
		{Label: "range", Value: fmt.Sprintf("%.4g .. %.4g", lo, hi)},
		{Label: "levels", Value: fmt.Sprintf("%d", len(res.Levels))},
	}
}

func renderField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := renderer.Render(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, viz.Summary("equipotential", summaryRows(res)))
	fmt.Fprintf(out, "wrote %s\n", cfg.Output)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res.System, res.Field, cfg.Negate, cfg.Levels.Strategy, res.Levels)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}

	return nil
}

func showWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := renderer.Run(cfg)
	if err != nil {
		return err
	}

	caption := cfg.Title
	if caption == "" {
		caption = res.System.String()
	}
	return window.Show(render.Image(res.Plot, res.Options), caption)
}

func showTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg, theme)
}

func plotProfile(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", samples)
	}

	sys, err := cfg.System()
	if err != nil {
		return err
	}

	p := profile.Along(sys, samples, cfg.Grid.Extent, cfg.Negate)
	limit := profile.Limit(sys)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, p.ASCII(limit, 80, 15, "Φ(x, 0)  "+sys.String()))
	fmt.Fprintf(out, "\nbodies at x1=%.4g x2=%.4g, L1 at %.4g\n", p.X1, p.X2, p.L1)

	if pngOut != "" {
		f, err := os.Create(pngOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := p.WritePNG(f, limit, sys.String()); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", pngOut)
	}

	return nil
}

func printLevels(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := renderer.Compute(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, v := range res.Levels {
		fmt.Fprintf(out, "%3d  %.6g\n", i, v)
	}
	return nil
}

func printInfo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sys, err := cfg.System()
	if err != nil {
		return err
	}

	x1, x2 := sys.Positions()
	l1, phiL1 := sys.L1()
	fmt.Fprint(cmd.OutOrStdout(), viz.Summary("two-body system", []viz.Row{
		{Label: "system", Value: sys.String()},
		{Label: "q", Value: fmt.Sprintf("%.6f", sys.MassFraction())},
		{Label: "x1", Value: fmt.Sprintf("%.6g", x1)},
		{Label: "x2", Value: fmt.Sprintf("%.6g", x2)},
		{Label: "L1", Value: fmt.Sprintf("%.6g", l1)},
		{Label: "Φ(L1)", Value: fmt.Sprintf("%.6g", phiL1)},
	}))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tM1\tM2\tD\tLEVELS\tFILLED\tNEGATE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%s\t%v\t%v\n", name, p.M1, p.M2, p.Distance, p.Levels.Strategy, p.Filled, p.Negate)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tM1\tM2\tD\tGRID\tLEVELS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%d\t%s(%d)\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.M1,
			run.M2,
			run.Distance,
			run.Resolution,
			run.Strategy,
			len(run.Levels),
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	f, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	return storage.WriteFieldCSV(cmd.OutOrStdout(), f)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(cmd.OutOrStdout(), args[0])
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(sweepParams))
	values := make([][]float64, 0, len(sweepParams))
	for _, p := range sweepParams {
		name, vals, err := sweep.ParseParam(p)
		if err != nil {
			return err
		}
		names = append(names, name)
		values = append(values, vals)
	}

	grid, err := sweep.New(names, values)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(sweepDir, 0755); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frames, err := grid.Run(ctx, cfg, sweepDir, "."+sweepFormat)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tLEVELS\tSTATUS")
	failed := 0
	for _, f := range frames {
		status := "ok"
		if f.Err != nil {
			status = f.Err.Error()
			failed++
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", filepath.Base(f.Path), f.Levels, status)
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d frames failed", failed, len(frames))
	}
	return nil
}
