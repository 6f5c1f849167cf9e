package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tuanvm/physitutor/internal/llm"
)

// Generator produces validated quiz questions through the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Generate requests a quiz for the named topic and returns the structurally
// valid questions. An error means the call itself failed; a Result with no
// questions is a valid empty outcome and is the caller's to surface.
func (g *Generator) Generate(ctx context.Context, topicName string) (Result, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topicName, g.config.QuestionCount)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Result{}, fmt.Errorf("parse quiz response: %w", err)
	}

	qs := make([]Question, len(raw.Questions))
	for i, rq := range raw.Questions {
		qs[i] = Question{
			Question:      rq.Question,
			Options:       rq.Options,
			CorrectAnswer: rq.CorrectAnswer,
			Explanation:   rq.Explanation,
		}
	}

	valid, dropped := filterValid(qs)
	return Result{Questions: valid, Dropped: dropped}, nil
}
