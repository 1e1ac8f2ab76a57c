package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathpilot/pathpilot/internal/api"
	"github.com/pathpilot/pathpilot/internal/progress"
	"github.com/pathpilot/pathpilot/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathpilot",
	Short: "Gamified learning companion",
	Long:  "PathPilot — terminal companion that tracks your learning progress, streaks, and achievements, and quizzes you on the skills you pick up.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHPILOT_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Base URL of the PathPilot backend (overrides PATHPILOT_API_URL env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHPILOT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// services opens the store and builds the progress engine against the
// remote backend. The caller must Close the returned store.
func services(cmd *cobra.Command) (*store.Store, *progress.Service, *progress.LevelSync, *api.Client, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	cfg := api.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("api"); u != "" {
		cfg.BaseURL = u
	}
	if err := cfg.Validate(); err != nil {
		st.Close()
		return nil, nil, nil, nil, fmt.Errorf("backend config: %w", err)
	}
	client := api.NewClient(cfg)

	repo := st.ProgressRepo()
	svc := progress.NewService(repo, client, client)
	levels := progress.NewLevelSync(repo, client)
	return st, svc, levels, client, nil
}
