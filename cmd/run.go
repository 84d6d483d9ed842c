package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/app"
	"github.com/Adarsh-oo7/pscprep/internal/logging"
	"github.com/Adarsh-oo7/pscprep/internal/session"
	"github.com/Adarsh-oo7/pscprep/internal/store"
	"github.com/Adarsh-oo7/pscprep/internal/tutor"
)

// runApp opens the store, wires the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	debug, _ := cmd.Flags().GetBool("debug")
	logger := logging.Setup(debug)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	sess := session.New(st.Credentials(), st.Preferences(), logger.WithField("component", "session"))
	client := api.New(
		api.DefaultConfig(resolveServerURL(cmd)),
		sess.AccessToken,
		logger.WithField("component", "api"),
	)
	sess.Bind(client)

	authenticated := true
	if err := sess.Bootstrap(ctx); err != nil {
		if !errors.Is(err, session.ErrNotAuthenticated) {
			return fmt.Errorf("restore session: %w", err)
		}
		authenticated = false
	}

	deps := app.Deps{
		API:           client,
		Sess:          sess,
		Snapshots:     st.QuizSnapshots(),
		Prefs:         st.Preferences(),
		Log:           logger.WithField("component", "ui"),
		Authenticated: authenticated,
	}

	if cfg, ok := tutor.ConfigFromEnv(); ok {
		provider, err := tutor.NewProvider(ctx, cfg, logger.WithField("component", "tutor"))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Tutor provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Answer explanations will be unavailable.")
		} else {
			deps.Explainer = tutor.NewExplainer(provider)
		}
	}

	return app.Run(deps)
}
