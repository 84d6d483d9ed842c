package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/logging"
	"github.com/Adarsh-oo7/pscprep/internal/session"
	"github.com/Adarsh-oo7/pscprep/internal/store"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := logging.Setup(false)

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
		client := api.New(api.DefaultConfig(resolveServerURL(cmd)), sess.AccessToken, logger.WithField("component", "api"))
		sess.Bind(client)

		if err := sess.Bootstrap(ctx); err != nil {
			if errors.Is(err, session.ErrNotAuthenticated) {
				fmt.Println("Not signed in. Run: pscprep login")
				return nil
			}
			return err
		}

		p := sess.Profile()
		fmt.Printf("%s", p.Username)
		if p.Email != "" {
			fmt.Printf(" <%s>", p.Email)
		}
		fmt.Println()
		if p.FocusExam != "" {
			fmt.Println("Focus exam:", p.FocusExam)
		}
		fmt.Printf("Attempts: %d", p.TotalAttempts)
		if p.TotalAttempts > 0 {
			fmt.Printf(" (avg %.1f%%)", p.AverageScore)
		}
		fmt.Println()

		if claims, err := session.ParseClaims(sess.AccessToken()); err == nil && !claims.ExpiresAt.IsZero() {
			fmt.Println("Session expires:", claims.ExpiresAt.Local().Format(time.RFC1123))
		}
		return nil
	},
}
