package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/springsim/internal/config"
	"github.com/san-kum/springsim/internal/export"
	"github.com/san-kum/springsim/internal/sim"
	"github.com/san-kum/springsim/internal/storage"
	"github.com/san-kum/springsim/internal/tui"
	"github.com/san-kum/springsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	parameterization string
	duration         float64
	bounce           float64
	mass             float64
	stiffness        float64
	damping          float64
	allowOverdamping bool
	response         float64
	dampingRatio     float64
	settling         float64
	epsilon          float64

	value    float64
	velocity float64
	target   float64
	dt       float64
	horizon  float64
	frames   int

	exportFormat string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springsim",
		Short: "damped spring parameter lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "sample a spring track and store the run",
		RunE:  runTrack,
	}
	addSpringFlags(runCmd)

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "print every parameterization of the configured spring",
		RunE:  printParams,
	}
	addSpringFlags(paramsCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the spring live in the terminal",
		RunE:  runLive,
	}
	addSpringFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "svg", "export format (svg|csv|json)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available spring presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.Presets[name]
				fmt.Printf("  %-10s %s\n", name, describePreset(cfg))
			}
		},
	}

	rootCmd.AddCommand(runCmd, paramsCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSpringFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&parameterization, "param", "", "parameterization (duration_bounce|physical|response|settling)")

	cmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "perceptual duration")
	cmd.Flags().Float64Var(&bounce, "bounce", 0, "bounce in (-1, 1]")
	cmd.Flags().Float64Var(&mass, "mass", 1, "mass (physical)")
	cmd.Flags().Float64Var(&stiffness, "stiffness", 100, "stiffness (physical)")
	cmd.Flags().Float64Var(&damping, "damping", 10, "damping (physical)")
	cmd.Flags().BoolVar(&allowOverdamping, "allow-overdamping", false, "allow true overdamped motion")
	cmd.Flags().Float64Var(&response, "response", config.DefaultDuration, "response (response)")
	cmd.Flags().Float64Var(&dampingRatio, "damping-ratio", 1, "damping ratio (response|settling)")
	cmd.Flags().Float64Var(&settling, "settling", config.DefaultDuration, "settling duration (settling)")
	cmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "settling threshold")

	cmd.Flags().Float64Var(&value, "value", 0, "initial value")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "initial velocity")
	cmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "target value")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&horizon, "time", config.DefaultTime, "sample window in seconds")
	cmd.Flags().IntVar(&frames, "fps", config.DefaultFPS, "frame rate (live)")
}

// resolveConfig applies preset, then config file, then explicit flags:
// anything set on the command line wins.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("param") {
		cfg.Parameterization = parameterization
	}
	if flags.Changed("duration") {
		cfg.Spring.Duration = duration
	}
	if flags.Changed("bounce") {
		cfg.Spring.Bounce = bounce
		if !flags.Changed("param") && cfg.Parameterization == "" {
			cfg.Parameterization = config.ParamDurationBounce
		}
	}
	if flags.Changed("mass") {
		cfg.Spring.Mass = mass
	}
	if flags.Changed("stiffness") {
		cfg.Spring.Stiffness = stiffness
	}
	if flags.Changed("damping") {
		cfg.Spring.Damping = damping
	}
	if flags.Changed("allow-overdamping") {
		cfg.Spring.AllowOverdamping = allowOverdamping
	}
	if flags.Changed("response") {
		cfg.Spring.Response = response
	}
	if flags.Changed("damping-ratio") {
		cfg.Spring.DampingRatio = dampingRatio
	}
	if flags.Changed("settling") {
		cfg.Spring.SettlingDuration = settling
	}
	if flags.Changed("epsilon") {
		cfg.Spring.Epsilon = epsilon
	}
	if flags.Changed("value") {
		cfg.Track.Value = value
	}
	if flags.Changed("velocity") {
		cfg.Track.Velocity = velocity
	}
	if flags.Changed("target") {
		cfg.Track.Target = target
	}
	if flags.Changed("dt") {
		cfg.Sampling.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Sampling.Time = horizon
	}
	if flags.Changed("fps") {
		cfg.Sampling.FPS = frames
	}

	return cfg, nil
}

func runLabel(cfg *config.Config) string {
	if preset != "" {
		return preset
	}
	if cfg.Parameterization == "" {
		return config.ParamDurationBounce
	}
	return cfg.Parameterization
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := cfg.Build()
	if err != nil {
		return err
	}

	result, err := sim.Run(s, sim.Config{
		Value:    cfg.Track.Value,
		Velocity: cfg.Track.Velocity,
		Target:   cfg.Track.Target,
		Dt:       cfg.Sampling.Dt,
		Time:     cfg.Sampling.Time,
	})
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Label:            runLabel(cfg),
		AngularFrequency: s.AngularFrequency(),
		DecayConstant:    s.DecayConstant(),
		Mass:             s.Mass(),
		Target:           cfg.Track.Target,
		Dt:               cfg.Sampling.Dt,
		Time:             cfg.Sampling.Time,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Times))
	fmt.Println("\nmetrics:")
	fmt.Print(viz.Summary(result))

	return nil
}

func printParams(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := cfg.Build()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "parameterization\tvalues")
	fmt.Fprintf(w, "internal\tangularFrequency=%.6f decayConstant=%.6f mass=%.6f\n",
		s.AngularFrequency(), s.DecayConstant(), s.Mass())
	fmt.Fprintf(w, "duration/bounce\tduration=%.6f bounce=%.6f\n", s.Duration(), s.Bounce())
	fmt.Fprintf(w, "physical\tmass=%.6f stiffness=%.6f damping=%.6f\n", s.Mass(), s.Stiffness(), s.Damping())
	fmt.Fprintf(w, "response/ratio\tresponse=%.6f dampingRatio=%.6f\n", s.Response(), s.DampingRatio())
	fmt.Fprintf(w, "settling\tsettlingDuration=%.6f\n", s.SettlingDuration())
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := cfg.Build()
	if err != nil {
		return err
	}

	m := tui.NewModel(s, runLabel(cfg), cfg.Track.Value, cfg.Track.Velocity, cfg.Track.Target, cfg.Sampling.FPS)
	return tui.Run(m)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\ttimestamp\ttarget\tdt\ttime")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.4f\t%.2f\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Target, r.Dt, r.Time)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	result, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	result.Metrics = meta.Metrics

	fmt.Println(viz.PlotValues(result, fmt.Sprintf("%s value", runID)))
	fmt.Println()
	fmt.Println(viz.PlotVelocities(result, fmt.Sprintf("%s velocity", runID)))
	fmt.Println()
	fmt.Println("metrics:")
	fmt.Print(viz.Summary(result))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	switch exportFormat {
	case "svg":
		result, err := st.LoadSamples(runID)
		if err != nil {
			return err
		}
		path := runID + ".svg"
		svg := export.TrackToSVG(result, meta.Target, 800, 400)
		if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)

	case "csv":
		src := filepath.Join(dataDir, runID, "samples.csv")
		data, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		path := runID + ".csv"
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)

	case "json":
		src := filepath.Join(dataDir, runID, "metadata.json")
		data, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		fmt.Print(string(data))

	default:
		return fmt.Errorf("unknown format: %s", exportFormat)
	}

	return nil
}

func describePreset(cfg *config.Config) string {
	s, err := cfg.Build()
	if err != nil {
		return cfg.Parameterization
	}
	return fmt.Sprintf("duration=%.2f bounce=%.2f ratio=%.2f", s.Duration(), s.Bounce(), s.DampingRatio())
}
