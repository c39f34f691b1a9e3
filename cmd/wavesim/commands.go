package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/export"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/viz"
	"github.com/san-kum/wavesim/internal/wave"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// loadConfig layers defaults, preset and config file, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		var err error
		cfg, err = config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
			if err := setupLogging(cfg.LogLevel); err != nil {
				return nil, err
			}
		}
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// resolveConfig applies explicitly set flags over loadConfig and validates
// the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("amplitude") {
		cfg.Wave.Amplitude = amplitude
	}
	if f.Changed("wavelength") {
		cfg.Wave.Wavelength = wavelength
	}
	if f.Changed("depth") {
		cfg.Wave.Depth = depth
	}
	if f.Changed("nonlinear") {
		cfg.Effects.Nonlinear = nonlinear
	}
	if f.Changed("dispersion") {
		cfg.Effects.Dispersion = dispersion
	}
	if f.Changed("friction") {
		cfg.Effects.BottomFriction = friction
	}
	if f.Changed("coriolis") {
		cfg.Effects.Coriolis = coriolis
	}
	if f.Changed("wind") {
		cfg.Effects.Wind = wind
	}
	if f.Changed("wind-speed") {
		cfg.Effects.WindSpeed = windSpeed
	}
	if f.Changed("wind-direction") {
		cfg.Effects.WindDirection = windDirection
	}
	if f.Changed("length") {
		cfg.Domain.Length = length
	}
	if f.Changed("points") {
		cfg.Domain.Points = points
	}
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("time") {
		cfg.Duration = duration
	}
	if f.Changed("fps") {
		cfg.FPS = frameRate
	}
	if f.Changed("wrap") {
		cfg.Wrap = wrap
	}
	if f.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLoop(cfg *config.Config, wrapAfter float64) (*sim.Loop, error) {
	p, err := cfg.Parameters()
	if err != nil {
		return nil, err
	}
	lc := cfg.LoopConfig()
	lc.WrapAfter = wrapAfter
	if preset != "" {
		lc.Logger = logrus.WithField("preset", preset)
	}
	return sim.New(lc, p)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// A recording keeps absolute time, so it never wraps.
	loop, err := newLoop(cfg, 0)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	log := logrus.WithFields(logrus.Fields{"steps": steps, "dt": cfg.Dt, "points": cfg.Domain.Points})
	log.Debug("starting run")

	loop.Start()
	frames := make([]wave.Sample, 0, steps+1)
	frames = append(frames, loop.Tick(0))
	for i := 0; i < steps; i++ {
		frames = append(frames, loop.Tick(cfg.Dt))
	}

	p := loop.Parameters()
	values := metrics.Collect(metrics.Standard(), frames)
	sum, err := analysis.Summarize(frames[len(frames)-1], p)
	if err != nil {
		return err
	}
	for k, v := range sum.Metrics() {
		values[k] = v
	}

	runID, err := st.Save(storage.Run{
		Name:       runName,
		Parameters: p,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Warnings:   loop.Warnings(),
		Metrics:    values,
		Frames:     frames,
	})
	if err != nil {
		return err
	}
	log.WithField("run", runID).Info("run saved")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run saved: %s\n", runID)
	fmt.Fprintf(out, "regime: %s  c = %.3f m/s  T = %.2f s\n", sum.Regime, sum.PhaseVelocity, sum.Period)
	fmt.Fprintf(out, "frames: %d  max |η| = %.3f m  energy = %.2f J/m²\n", len(frames), values["max_elevation"], values["energy_density"])
	for _, w := range loop.Warnings() {
		fmt.Fprintf(out, "warning: %s\n", w.Message)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	loop, err := newLoop(cfg, cfg.Wrap)
	if err != nil {
		return err
	}
	loop.Start()

	title := "wavesim"
	if preset != "" {
		title = "wavesim · " + preset
	}
	m := viz.NewModel(loop, viz.Options{
		Title: title,
		FPS:   cfg.FPS,
		Speed: speed,
		Theme: cfg.Theme,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Parameters()
	if err != nil {
		return err
	}
	warnings, err := p.Validate()
	if err != nil {
		return err
	}
	d, err := wave.Diagnose(p)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "amplitude\t%.4g m\n", p.Amplitude)
	fmt.Fprintf(w, "wavelength\t%.4g m\n", p.Wavelength)
	fmt.Fprintf(w, "depth\t%.4g m\n", p.Depth)
	fmt.Fprintf(w, "regime\t%s (kh = %.4g)\n", d.Regime, d.Wavenumber*p.Depth)
	fmt.Fprintf(w, "wavenumber\t%.6g rad/m\n", d.Wavenumber)
	fmt.Fprintf(w, "angular frequency\t%.6g rad/s\n", d.AngularFrequency)
	fmt.Fprintf(w, "phase velocity\t%.6g m/s\n", d.PhaseVelocity)
	fmt.Fprintf(w, "group velocity\t%.6g m/s\n", d.GroupVelocity)
	fmt.Fprintf(w, "period\t%.6g s\n", d.Period)
	if err := w.Flush(); err != nil {
		return err
	}

	for _, warn := range warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", warn.Message)
	}
	return nil
}

// openStore reads runs from the same data directory run writes to.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
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
	fmt.Fprintln(w, "ID\tTIME\tA\tλ\th\tREGIME\tDURATION\tDT\tFRAMES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3g\t%.4g\t%.4g\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Amplitude,
			run.Wavelength,
			run.Depth,
			run.Regime,
			run.Duration,
			run.Dt,
			run.Frames,
		)
	}

	return w.Flush()
}

func loadRun(cmd *cobra.Command, runID string) (*storage.RunMetadata, []wave.Sample, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(frames) == 0 {
		return nil, nil, fmt.Errorf("no data")
	}
	return meta, frames, nil
}

func pickFrame(frames []wave.Sample, idx int) (wave.Sample, error) {
	i := idx
	if i < 0 {
		i += len(frames)
	}
	if i < 0 || i >= len(frames) {
		return wave.Sample{}, fmt.Errorf("frame %d out of range (run has %d frames)", idx, len(frames))
	}
	return frames[i], nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	s, err := pickFrame(frames, frame)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "frames: %d\n\n", len(frames))

	profile := asciigraph.Plot(s.Elevations(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("η(x) at t = %.2f s", s.Time)),
	)
	fmt.Fprintln(out, profile)
	fmt.Fprintln(out)

	if len(frames) > 1 {
		history := make([]float64, len(frames))
		for i, f := range frames {
			history[i] = f.Points[0].Eta
		}
		graph := asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("η(t) at x = %.1f m", frames[0].Points[0].X)),
		)
		fmt.Fprintln(out, graph)
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	s, err := pickFrame(frames, frame)
	if err != nil {
		return err
	}

	p := wave.Parameters{
		Amplitude:  meta.Amplitude,
		Wavelength: meta.Wavelength,
		Depth:      meta.Depth,
		Effects:    meta.Effects,
	}
	sum, err := analysis.Summarize(s, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "analysis: %s at t = %.2f s\n\n", meta.ID, s.Time)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "energy density\t%.4g J/m²\n", sum.Energy)
	fmt.Fprintf(w, "momentum flux\t%.4g N/m\n", sum.MomentumFlux)
	fmt.Fprintf(w, "max amplitude\t%.4g m\n", sum.MaxAmplitude)
	fmt.Fprintf(w, "rms amplitude\t%.4g m\n", sum.RMSAmplitude)
	fmt.Fprintf(w, "phase velocity\t%.4g m/s\n", sum.PhaseVelocity)
	fmt.Fprintf(w, "group velocity\t%.4g m/s\n", sum.GroupVelocity)
	fmt.Fprintf(w, "wavelength\t%.4g m\n", sum.Wavelength)
	fmt.Fprintf(w, "period\t%.4g s\n", sum.Period)
	fmt.Fprintf(w, "regime\t%s\n", sum.Regime)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	ps := analysis.PowerSpectrum(s).Positive()
	if len(ps.Power) > 1 {
		plotData := ps.Power
		if len(plotData) > 8 {
			plotData = plotData[:len(plotData)/4]
		}
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("spatial power spectrum"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	if f, _ := ps.Dominant(); f > 0 {
		fmt.Fprintf(out, "dominant wavenumber: %.4g cycles/m (λ ≈ %.4g m)\n", f, 1/f)
	}

	risk := analysis.AssessRisk(sum.MaxAmplitude, sum.Energy)
	fmt.Fprintf(out, "risk: %s (%s)\n", risk.Level, risk.Damage)
	return nil
}

// output returns the --out file or stdout.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	if err := export.CSV(w, frames); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	if err := export.JSON(w, *meta, frames); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	s, err := pickFrame(frames, frame)
	if err != nil {
		return err
	}
	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, export.ProfileToSVG(s, svgWidth, svgHeight, stroke)); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tA\tλ\th\tREGIME")
	for _, name := range config.ListPresets() {
		wc := config.Presets[name]
		regime := "invalid"
		if p, err := config.GetPreset(name).Parameters(); err == nil {
			if d, err := wave.Diagnose(p); err == nil {
				regime = d.Regime.String()
			}
		}
		fmt.Fprintf(w, "%s\t%.3g\t%.4g\t%.4g\t%s\n", name, wc.Amplitude, wc.Wavelength, wc.Depth, regime)
	}
	return w.Flush()
}
