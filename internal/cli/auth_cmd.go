package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/openfit/fitctl/internal/cli/formatter"
	"github.com/openfit/fitctl/internal/session"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in (mock credentials, accepted locally)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && app.interactive() {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().Title("Email").Placeholder("you@example.com").Value(&email),
						huh.NewInput().Title("Name").Placeholder("Demo User").Value(&name),
					),
				).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}
			if email == "" {
				return fmt.Errorf("email is required: pass --email or run interactively")
			}

			sess, err := session.Login(email, name, app.SessionCfg)
			if err != nil {
				return err
			}
			if err := app.Sessions.Save(sess); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Logged in as %s.", formatter.Bold(sess.Email))))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK("Logged out."))
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}

			claims, err := session.ParseToken(sess.Token, app.SessionCfg)
			if err != nil {
				return fmt.Errorf("stored session is invalid; run 'fitctl login' again: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", formatter.Dim("User:"), claims.Name)
			fmt.Fprintf(out, "%s  %s\n", formatter.Dim("Email:"), claims.Email)
			fmt.Fprintf(out, "%s  %s\n", formatter.Dim("ID:"), claims.UserID)
			fmt.Fprintf(out, "%s  %s\n", formatter.Dim("Expires:"), claims.ExpiresAt.Local().Format("Jan 02, 2006 15:04"))
			return nil
		},
	}
}
