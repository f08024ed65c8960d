package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchdash/internal/session"
)

var (
	loginToken string
	loginEmail string
	loginName  string
	loginSlug  string
)

// surveyAskOne allows mocking the prompt in tests.
var surveyAskOne = survey.AskOne

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an API token as the active session",
	Long: `Stores a token in the session file. The token must have the
structure of a JWT; other processes watching the session store pick
the login up within a second.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginToken, "token", "", "API token (prompted for when omitted)")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email of the authenticated user")
	loginCmd.Flags().StringVar(&loginName, "name", "", "Display name of the authenticated user")
	loginCmd.Flags().StringVar(&loginSlug, "slug", "", "User slug")
}

func runLogin(cmd *cobra.Command, args []string) error {
	token := loginToken
	if token == "" {
		prompt := &survey.Password{Message: "API token:"}
		if err := surveyAskOne(prompt, &token); err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}

	if !session.WellFormedToken(token) {
		return fmt.Errorf("token is not a well-formed JWT")
	}

	store, err := session.NewFileStore(viper.GetString("session.file"))
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}

	cell := session.NewCell(store)
	err = cell.Replace(session.Session{
		User: session.User{
			Name:  loginName,
			Slug:  loginSlug,
			Email: loginEmail,
		},
		Token: token,
	})
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
	return nil
}
