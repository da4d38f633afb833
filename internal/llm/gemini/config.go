package gemini

import (
	"errors"
	"os"
)

// holds Gemini-specific configuration
type Config struct {
	APIKey string
	Model  string
	// Sampling temperature on a 0-1 scale. High by default: question variety
	// across repeated calls for the same topic matters more than determinism,
	// and the reply parser tolerates the resulting format drift by failing hard.
	Temperature float32
}

const defaultTemperature = 0.9

func NewConfig() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash" // default model
	}

	return &Config{
		APIKey:      apiKey,
		Model:       model,
		Temperature: defaultTemperature,
	}, nil
}
