package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchdash/internal/console"
	"benchdash/internal/perf"
	"benchdash/internal/session"
	"benchdash/internal/state"
	"benchdash/internal/ui"
)

var (
	dashboardKind string
	dashboardPath string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the perf TUI dashboard",
	Long: `Renders the latest perf report as a live terminal chart with
per-series toggles. The project comes from --project, or from a
console path passed with --path.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardKind, "kind", "latency", "Measurement kind to open with")
	dashboardCmd.Flags().StringVar(&dashboardPath, "path", "", "Console path to derive org/project slugs from")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	credStore, err := session.NewFileStore(viper.GetString("session.file"))
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	cell := session.NewCell(credStore)
	if sess, err := credStore.Read(); err == nil && session.WellFormedToken(sess.Token) {
		if err := cell.Replace(sess); err != nil {
			return err
		}
	}

	notifications := state.NewNotificationHolder(viper.GetDuration("notification.ttl"), nil)
	con := console.New(cell, notifications, state.NewRedirect(nil), state.NewTitle(nil), dashboardPath)

	project := con.Project.Get()
	if p := viper.GetString("project"); p != "" {
		project = p
		con.Project.Set(p)
	}
	if project == "" {
		return fmt.Errorf("no project configured; pass --project or a --path carrying a project slug")
	}

	kind := perf.ParseKind(dashboardKind)
	if !kind.Known() {
		return fmt.Errorf("unknown measurement kind: %q", dashboardKind)
	}

	client := newAPIClient(cmd.Context())
	return ui.StartPerfDashboard(client, project, kind, notifications, con.Title)
}
