package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Adarsh-oo7/pscprep/internal/store"
)

// defaultServerURL is the production backend; override with --server
// or PSCPREP_SERVER.
const defaultServerURL = "https://api.pscprep.in"

var rootCmd = &cobra.Command{
	Use:   "pscprep",
	Short: "Kerala PSC exam preparation in the terminal",
	Long:  "PSCPrep — practice questions, timed mock exams, leaderboards and study chat for Kerala PSC aspirants.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env in the working directory is a convenience for development;
	// its absence is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PSCPREP_DB env var)")
	rootCmd.PersistentFlags().String("server", "", "Backend base URL (overrides PSCPREP_SERVER env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PSCPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveServerURL returns the backend base URL from --server, then
// PSCPREP_SERVER, then the production default.
func resolveServerURL(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("server"); s != "" {
		return s
	}
	if s := os.Getenv("PSCPREP_SERVER"); s != "" {
		return s
	}
	return defaultServerURL
}
