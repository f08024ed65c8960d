package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchdash/internal/session"
)

var whoamiJSON bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.NewFileStore(viper.GetString("session.file"))
		if err != nil {
			return fmt.Errorf("failed to open session store: %w", err)
		}

		sess, err := store.Read()
		if err != nil || !sess.Authenticated() {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}

		if whoamiJSON {
			data, err := json.MarshalIndent(sess.User, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		name := sess.User.Name
		if name == "" {
			name = sess.User.Slug
		}
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s", name)
		if sess.User.Email != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " <%s>", sess.User.Email)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "Print the user as JSON")
}
