package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuanvm/physitutor/internal/app"
	"github.com/tuanvm/physitutor/internal/llm"
	"github.com/tuanvm/physitutor/internal/quizgen"
	"github.com/tuanvm/physitutor/internal/store"
	"github.com/tuanvm/physitutor/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n\nSet GEMINI_API_KEY, ANTHROPIC_API_KEY or OPENAI_API_KEY and try again", err)
	}

	opts := app.Options{
		Tutor:     tutor.New(provider, tutor.DefaultConfig()),
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		QuizRepo:  st.QuizRepo(),
	}

	return app.Run(opts)
}
