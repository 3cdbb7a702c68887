// Package cli wires the fitctl command tree. Commands are thin: they collect
// input (flags, or huh forms on an interactive terminal), call into the
// store and service layers with an explicit session, and render results
// through the formatter package.
package cli

import (
	"errors"
	"fmt"

	"github.com/openfit/fitctl/internal/api"
	"github.com/openfit/fitctl/internal/coach"
	"github.com/openfit/fitctl/internal/session"
	"github.com/openfit/fitctl/internal/store"
	"github.com/spf13/cobra"
)

// App holds the collaborators used by CLI commands.
type App struct {
	Activities *store.Store
	API        api.Client
	Coach      *coach.Service
	Sessions   *session.Store
	SessionCfg session.Config

	// IsInteractive reports whether stdin is a terminal; forms and
	// confirmation prompts are only shown when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// requireSession loads the persisted session, failing with a login hint when
// no user is present.
func (a *App) requireSession() (*session.Session, error) {
	sess, err := a.Sessions.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, fmt.Errorf("not logged in; run 'fitctl login' first")
		}
		return nil, err
	}
	return sess, nil
}

// NewRootCmd creates the top-level "fitctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitctl",
		Short:         "Track workouts and get AI coaching from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newActivityCmd(app),
		newStatsCmd(app),
		newCoachCmd(app),
		newHealthCmd(app),
	)

	return root
}
