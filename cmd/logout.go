package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Adarsh-oo7/pscprep/internal/store"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials from this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Credentials().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear credentials: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}
