package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const usageDoc = `# Benchdash

Benchdash keeps your benchmark history and shows how it moves.

## Getting started

1. Run the console services:

    benchdash console

2. Submit a perf report for your project:

    benchdash report results.json --project decode-json

3. Open the dashboard:

    benchdash dashboard --project decode-json --kind latency

## Sessions

Log in with an API token:

    benchdash login --token <jwt>

The token is kept in a single session file. Any other benchdash
process sharing that file picks the login up within a second, so you
only log in once per machine.

## Measurement kinds

| Kind       | Plotted value            |
|------------|--------------------------|
| latency    | raw duration             |
| throughput | events per unit time     |
| compute    | average utilization      |
| memory     | average usage            |
| storage    | average usage            |

## Report format

A report is a JSON payload:

    {
      "kind": "latency",
      "perf_data": [
        {"benchmark": "decode_json", "data": [
          {"start_time": "...", "iteration": 0, "perf": {"duration": 100}}
        ]}
      ]
    }
`

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the rendered user guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			// Glamour failing should not hide the docs.
			fmt.Fprint(cmd.OutOrStdout(), usageDoc)
			return nil
		}

		out, err := renderer.Render(usageDoc)
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), usageDoc)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
