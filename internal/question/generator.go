package question

import (
	"context"
	"time"

	"go.uber.org/zap"

	"blankquiz/internal/llm"
	"blankquiz/internal/models"
	"blankquiz/internal/prompts"
)

const (
	promptMode    = "question"
	promptVariant = "default"

	// DefaultTimeout bounds a single provider round-trip. Without it a slow
	// provider would block the request indefinitely.
	DefaultTimeout = 30 * time.Second
)

// Generator turns a topic name into a parsed question record via one
// provider call. No retries, no caching: each call is independent.
type Generator struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	logger        *zap.Logger
	timeout       time.Duration
}

func NewGenerator(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{
		provider:      provider,
		promptManager: promptManager,
		logger:        logger,
		timeout:       timeout,
	}
}

// Generate produces one question for the given topic. Provider failures,
// timeouts and unparseable replies all surface as *GenerationError; a partial
// record is never returned.
func (g *Generator) Generate(ctx context.Context, topicName string, requestID string) (*models.QuestionRecord, *models.GenerationMetadata, error) {
	prompt, err := g.promptManager.BuildPrompt(promptMode, promptVariant, map[string]string{
		"Topic": topicName,
	})
	if err != nil {
		return nil, nil, &GenerationError{Reason: "failed to build prompt", Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := g.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		return nil, nil, &GenerationError{Reason: "provider call failed", Err: err}
	}

	record, err := ParseReply(response.Content)
	if err != nil {
		g.logger.Warn("Unparseable provider reply",
			zap.String("request_id", requestID),
			zap.String("topic", topicName),
			zap.String("provider", g.provider.GetProviderName()),
			zap.String("raw_reply", response.Content))
		return nil, nil, err
	}

	return record, &response.Metadata, nil
}
