package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string

	// wave
	amplitude     float64
	wavelength    float64
	depth         float64
	nonlinear     bool
	dispersion    bool
	friction      bool
	coriolis      bool
	wind          bool
	windSpeed     float64
	windDirection float64
	length        float64
	points        int

	// run
	dt       float64
	duration float64
	runName  string

	// live
	frameRate int
	speed     float64
	wrap      float64
	theme     string

	// sweep
	sweepFile  string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	sweepLog   bool

	// plot / export
	frame     int
	outFile   string
	svgWidth  int
	svgHeight int
	stroke    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wavesim",
		Short:        "linear water wave simulator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command is given.
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file (live view discards them otherwise)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation headless and record it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addWaveFlags(runCmd)
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	runCmd.Flags().StringVar(&runName, "name", "wave", "run name prefix")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addWaveFlags(liveCmd)
	addLiveFlags(liveCmd)
	addWaveFlags(rootCmd)
	addLiveFlags(rootCmd)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "show dispersion diagnostics and validity warnings",
		Args:  cobra.NoArgs,
		RunE:  showInfo,
	}
	addWaveFlags(infoCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot surface profile and elevation history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&frame, "frame", -1, "frame index (negative counts from the end)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "energy, spectrum and risk analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&frame, "frame", -1, "frame index (negative counts from the end)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export one frame's profile to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&frame, "frame", -1, "frame index (negative counts from the end)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 300, "image height")
	exportSVGCmd.Flags().StringVar(&stroke, "stroke", "#00a8cc", "profile stroke colour")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [amplitude|wavelength|depth]",
		Short: "tabulate diagnostics across a parameter range",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addWaveFlags(sweepCmd)
	sweepCmd.Flags().StringVarP(&sweepFile, "file", "f", "", "sweep definition (yaml)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 1, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1000, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of values")
	sweepCmd.Flags().BoolVar(&sweepLog, "log", false, "geometric spacing")

	rootCmd.AddCommand(runCmd, liveCmd, infoCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, sweepCmd)
	return rootCmd
}

func addWaveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64VarP(&amplitude, "amplitude", "a", config.DefaultAmplitude, "wave amplitude (m)")
	f.Float64VarP(&wavelength, "wavelength", "l", config.DefaultWavelength, "wavelength (m)")
	f.Float64Var(&depth, "depth", config.DefaultDepth, "water depth (m)")
	f.BoolVar(&nonlinear, "nonlinear", false, "add second and third order Stokes terms")
	f.BoolVar(&dispersion, "dispersion", false, "apply dispersion amplitude factor")
	f.BoolVar(&friction, "friction", false, "apply bottom friction decay")
	f.BoolVar(&coriolis, "coriolis", false, "apply Coriolis modulation")
	f.BoolVar(&wind, "wind", false, "add wind forcing")
	f.Float64Var(&windSpeed, "wind-speed", 0, "wind speed (m/s)")
	f.Float64Var(&windDirection, "wind-direction", 0, "wind direction (rad)")
	f.Float64Var(&length, "length", config.DefaultLength, "domain length (m)")
	f.IntVar(&points, "points", config.DefaultPoints, "number of sample points")
}

func addLiveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	f.Float64Var(&speed, "speed", 1.0, "simulated seconds per second")
	f.Float64Var(&wrap, "wrap", config.DefaultWrap, "wrap time back to 0 after this many seconds (0 never)")
	f.StringVar(&theme, "theme", config.DefaultTheme, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	return nil
}

// redirectLogs keeps log lines off the terminal while the live view owns it.
func redirectLogs() (func(), error) {
	if logFile == "" {
		logrus.SetOutput(io.Discard)
		return func() { logrus.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(f)
	return func() {
		logrus.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
