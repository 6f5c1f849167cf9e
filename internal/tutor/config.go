package tutor

// Config holds chat generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard chat configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
