package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/stepio/pkg/commands/options"
	"tableflip.dev/stepio/pkg/runner/auth"
)

func addAuth(topLevel *cobra.Command) {
	var password string

	login := &cobra.Command{
		Use:   "login EMAIL",
		Short: "Sign in.",
		Example: `
stepio login ana@example.com --password secret
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			if err := options.PromptMissing(cmd, "password", true); err != nil {
				return err
			}
			l := auth.Login{App: a, Email: args[0], Password: password}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}
	login.Flags().StringVarP(&password, "password", "p", "", "Account password.")
	topLevel.AddCommand(login)

	register := &cobra.Command{
		Use:   "register NAME EMAIL",
		Short: "Create an account and sign in.",
		Example: `
stepio register "Ana Lee" ana@example.com --password secret
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires a name and an email")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			if err := options.PromptMissing(cmd, "password", true); err != nil {
				return err
			}
			r := auth.Register{App: a, Name: args[0], Email: args[1], Password: password}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}
	register.Flags().StringVarP(&password, "password", "p", "", "Account password.")
	topLevel.AddCommand(register)

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			l := auth.Logout{App: a}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(logout)

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			w := auth.WhoAmI{App: a}
			return output.HandleError(w.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(whoami)

	forgot := &cobra.Command{
		Use:   "forgot-password EMAIL",
		Short: "Request a password reset link.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := mustApp(cmd)
			if err != nil {
				return err
			}
			f := auth.ForgotPassword{App: a, Email: args[0]}
			return output.HandleError(f.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(forgot)
}
