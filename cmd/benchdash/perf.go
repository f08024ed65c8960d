package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchdash/internal/perf"
)

var (
	perfKind string
	perfHide []string
)

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "Fetch and tabulate a perf report",
	Long: `Fetches the latest perf report for the configured project and
prints each plotted series: label, sample count, and the most recent
value on the axis the report kind selects.`,
	RunE: runPerf,
}

func init() {
	rootCmd.AddCommand(perfCmd)
	perfCmd.Flags().StringVar(&perfKind, "kind", "latency", "Measurement kind (latency, throughput, compute, memory, storage)")
	perfCmd.Flags().StringSliceVar(&perfHide, "hide", nil, "Series indexes to leave out")
}

func runPerf(cmd *cobra.Command, args []string) error {
	project := viper.GetString("project")
	if project == "" {
		return fmt.Errorf("no project configured; pass --project or set BENCHDASH_PROJECT")
	}

	client := newAPIClient(cmd.Context())
	payload, err := client.Perf(cmd.Context(), project, perfKind)
	if err != nil {
		return fmt.Errorf("failed to fetch perf report: %w", err)
	}

	active, err := activeMask(len(payload.PerfData), perfHide)
	if err != nil {
		return err
	}

	marks, axisLabel := perf.Project(payload, active)
	if len(marks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No series to show.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s · %s (%s)\n\n", project, perfKind, axisLabel)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tSAMPLES\tLATEST")
	for _, mark := range marks {
		latest := "-"
		if n := len(mark.Points); n > 0 {
			latest = strconv.FormatFloat(mark.Points[n-1].Y, 'g', 6, 64)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", mark.Label, len(mark.Points), latest)
	}
	return w.Flush()
}

// activeMask builds an all-on mask, minus the hidden indexes.
func activeMask(n int, hide []string) ([]bool, error) {
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	for _, h := range hide {
		idx, err := strconv.Atoi(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("invalid series index %q", h)
		}
		if idx >= 0 && idx < n {
			active[idx] = false
		}
	}
	return active, nil
}
