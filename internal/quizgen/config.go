package quizgen

// Config controls quiz generation.
type Config struct {
	// QuestionCount is the number of questions requested per quiz.
	QuestionCount int

	// MaxTokens caps the response size for one generation call.
	MaxTokens int

	// Temperature adds variety so retakes don't repeat the same quiz.
	Temperature float64
}

// DefaultConfig returns the standard quiz generation settings.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 5,
		MaxTokens:     4096,
		Temperature:   0.7,
	}
}
