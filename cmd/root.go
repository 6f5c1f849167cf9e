package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tuanvm/physitutor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "physitutor",
	Short: "AI physics tutor for Vietnamese high schoolers",
	Long:  "PhysiTutor — gia sư Vật Lý THPT ngay trong terminal: hỏi đáp với AI và luyện trắc nghiệm theo chủ đề lớp 12.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PHYSITUTOR_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PHYSITUTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
