package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchdash/internal/perf"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Submit a perf report from a JSON file",
	Long: `Reads a perf payload ({"kind": ..., "perf_data": [...]}) from a
file, or stdin when the file is "-", and submits it for the
configured project.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	project := viper.GetString("project")
	if project == "" {
		return fmt.Errorf("no project configured; pass --project or set BENCHDASH_PROJECT")
	}

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	var payload perf.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to parse report: %w", err)
	}
	if !perf.ParseKind(payload.Kind).Known() {
		return fmt.Errorf("unknown measurement kind: %q", payload.Kind)
	}

	client := newAPIClient(cmd.Context())
	if err := client.SubmitReport(cmd.Context(), project, payload); err != nil {
		return fmt.Errorf("failed to submit report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s report with %d series.\n",
		perf.ParseKind(payload.Kind), len(payload.PerfData))
	return nil
}
