package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchdash/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Wipe the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.NewFileStore(viper.GetString("session.file"))
		if err != nil {
			return fmt.Errorf("failed to open session store: %w", err)
		}

		if err := session.NewCell(store).Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
