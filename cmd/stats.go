package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuanvm/physitutor/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz history and per-topic results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		stats, err := s.QuizRepo().StatsByTopic(ctx)
		if err != nil {
			return fmt.Errorf("query topic stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No finished quizzes yet.")
			return nil
		}

		fmt.Println("Results by Topic")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-28s  %8s  %10s  %8s\n", "Topic", "Quizzes", "Questions", "Correct")
		fmt.Println(strings.Repeat("─", 64))

		for _, st := range stats {
			fmt.Printf("%-28s  %8d  %10d  %8d\n",
				st.TopicName, st.Quizzes, st.Questions, st.Correct)
		}

		recent, err := s.QuizRepo().RecentResults(ctx, limit)
		if err != nil {
			return fmt.Errorf("query recent results: %w", err)
		}

		if len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent Quizzes")
			fmt.Println(strings.Repeat("─", 64))
			fmt.Printf("%-19s  %-24s  %-8s  %s\n", "Timestamp", "Topic", "Outcome", "Score")
			fmt.Println(strings.Repeat("─", 64))
			for _, r := range recent {
				score := "-"
				if r.Outcome == store.QuizOutcomeFinished {
					score = fmt.Sprintf("%d/%d", r.Score, r.QuestionCount)
				}
				fmt.Printf("%-19s  %-24s  %-8s  %s\n",
					r.Timestamp.Local().Format("2006-01-02 15:04:05"),
					r.TopicName,
					r.Outcome,
					score,
				)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent quizzes to show")
}
