package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/logging"
	"github.com/Adarsh-oo7/pscprep/internal/session"
	"github.com/Adarsh-oo7/pscprep/internal/store"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store credentials",
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

		reader := bufio.NewReader(os.Stdin)

		username, _ := cmd.Flags().GetString("username")
		if username == "" {
			fmt.Print("Username: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")

		sess := session.New(st.Credentials(), st.Preferences(), logger.WithField("component", "session"))
		client := api.New(api.DefaultConfig(resolveServerURL(cmd)), sess.AccessToken, logger.WithField("component", "api"))
		sess.Bind(client)

		resp, err := client.Login(ctx, username, password)
		if err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
		if err := sess.Login(ctx, resp.Access, resp.Refresh); err != nil {
			return fmt.Errorf("establish session: %w", err)
		}

		fmt.Printf("Signed in as %s\n", sess.Profile().Username)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("username", "", "Username (prompted when omitted)")
}
