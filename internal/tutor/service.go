// Package tutor turns conversation history into chat replies from the
// generation provider.
package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuanvm/physitutor/internal/chat"
	"github.com/tuanvm/physitutor/internal/llm"
)

// Service answers student chat messages using an LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a chat service backed by the given provider.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// SendChatMessage sends the student's message along with the prior
// conversation and returns the tutor's reply text. History is oldest first
// and must not include the message being sent.
func (s *Service) SendChatMessage(ctx context.Context, text string, history []chat.Turn) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llm.RoleUser
		if turn.Role == chat.RoleModel {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: text})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemInstruction,
		Messages:    messages,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat generation: %w", err)
	}

	reply := strings.TrimSpace(string(resp.Content))
	if reply == "" {
		return "", fmt.Errorf("chat generation: empty reply from model")
	}

	return reply, nil
}
