package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/wavesim/internal/sweep"
	"github.com/spf13/cobra"
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base := sweep.Base{
		Amplitude:  cfg.Wave.Amplitude,
		Wavelength: cfg.Wave.Wavelength,
		Depth:      cfg.Wave.Depth,
	}

	var s *sweep.Sweep
	if sweepFile != "" {
		if s, err = sweep.LoadOver(sweepFile, base); err != nil {
			return fmt.Errorf("failed to load sweep: %w", err)
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("sweep needs a parameter name or --file")
		}
		s = &sweep.Sweep{
			Param: args[0],
			Min:   sweepMin,
			Max:   sweepMax,
			Steps: sweepSteps,
			Log:   sweepLog,
			Base:  base,
		}
	}

	results, err := sweep.Run(cmd.Context(), s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.Name != "" {
		fmt.Fprintf(out, "sweep: %s\n\n", s.Name)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tREGIME\tk\tω\tc\tc_g\tT\tNOTES\n", strings.ToUpper(s.Param))
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%.4g\t-\t-\t-\t-\t-\t-\t%v\n", r.Value, r.Err)
			continue
		}
		d := r.Diagnostics
		notes := make([]string, len(r.Warnings))
		for i, warn := range r.Warnings {
			notes[i] = warn.Kind.String()
		}
		fmt.Fprintf(w, "%.4g\t%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%s\n",
			r.Value, d.Regime, d.Wavenumber, d.AngularFrequency, d.PhaseVelocity, d.GroupVelocity, d.Period,
			strings.Join(notes, ","))
	}
	return w.Flush()
}
