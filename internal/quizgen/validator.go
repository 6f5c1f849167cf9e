package quizgen

import (
	"fmt"
	"strings"
)

// Validate checks one generated question structurally. A question is
// malformed when any field is blank, the option count is wrong, options
// repeat, or the correct answer does not match exactly one option.
// Malformed questions must never reach the student.
func Validate(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("blank question text")
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fmt.Errorf("blank explanation")
	}
	if len(q.Options) != NumOptions {
		return fmt.Errorf("option count = %d, want %d", len(q.Options), NumOptions)
	}

	seen := make(map[string]bool, NumOptions)
	matches := 0
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("blank option")
		}
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
		if opt == q.CorrectAnswer {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("correct answer matches %d options, want exactly 1", matches)
	}
	return nil
}

// filterValid drops malformed questions and reports how many were dropped.
func filterValid(qs []Question) ([]Question, int) {
	var valid []Question
	dropped := 0
	for _, q := range qs {
		if err := Validate(q); err != nil {
			dropped++
			continue
		}
		valid = append(valid, q)
	}
	return valid, dropped
}
