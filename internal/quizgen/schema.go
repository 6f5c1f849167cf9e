package quizgen

import "github.com/tuanvm/physitutor/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "physics-quiz",
	Description: "A set of multiple-choice physics questions for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt, in Vietnamese",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 distinct candidate answers",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The full text of the correct option, repeated verbatim from options",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A short rationale shown after answering, in Vietnamese",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
