package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchdash/internal/config"
	"benchdash/internal/db"
	"benchdash/internal/notify"
	"benchdash/internal/session"
	"benchdash/internal/state"
	"benchdash/internal/telemetry"
	"benchdash/internal/web"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the console services",
	Long: `Runs the console's background services: the perf API server, the
Prometheus metrics endpoint, and the credential revalidation poller
that picks up logins performed by other processes sharing the
session store.`,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := telemetry.NewMetrics()

	credStore, err := session.NewFileStore(viper.GetString("session.file"))
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	cell := session.NewCell(credStore)

	poller := session.NewPoller(cell, viper.GetDuration("session.poll_interval"), metrics)
	go poller.Start(ctx)

	notifications := state.NewNotificationHolder(viper.GetDuration("notification.ttl"), metrics)
	notify.NewBridge().Attach(notifications)

	reportStore, err := db.NewStore(db.StoreConfig{
		Type:             viper.GetString("store.type"),
		ConnectionString: viper.GetString("store.dsn"),
	})
	if err != nil {
		return fmt.Errorf("failed to open report store: %w", err)
	}
	defer reportStore.Close()

	srv := web.NewServer(reportStore, metrics, viper.GetInt("api.port"))
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Console running on port %d. Ctrl+C to stop.\n", viper.GetInt("api.port"))

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}
