package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var signinCmd = &cobra.Command{
	Use:   "signin [email]",
	Short: "Sign in to YouTube",
	Long: `Sign in with a Google account on the allow-list.

Opens the consent page in your browser and waits for the redirect. The
access token is held in memory for the rest of this run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSignin,
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Forget the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if sessionService == nil {
			return errors.New("session service not configured")
		}
		user := sessionService.CurrentUser()
		sessionService.SignOut()
		if user == "" {
			cmd.Println("Not signed in.")
			return nil
		}
		cmd.Printf("Signed out %s.\n", user)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signinCmd)
	rootCmd.AddCommand(signoutCmd)
}

func runSignin(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		account = args[0]
	}
	if err := ensureSignedIn(cmd.Context()); err != nil {
		return err
	}
	cmd.Printf("Signed in as %s.\n", sessionService.CurrentUser())
	return nil
}
