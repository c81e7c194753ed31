package summarizer

import (
	"fmt"

	"github.com/haglundm/taltext/internal/config"
	"github.com/haglundm/taltext/internal/logger"
)

type implSummarizer struct {
	remote Remote
	logger logger.Logger
}

// New creates a Summarizer around the given remote backend.
func New(remote Remote, log logger.Logger) Summarizer {
	return &implSummarizer{
		remote: remote,
		logger: log,
	}
}

// NewFromConfig builds the configured remote backend and wraps it.
func NewFromConfig(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	var remote Remote
	switch cfg.Summary.Provider {
	case "openai":
		remote = NewRemoteOpenAI(cfg.Summary.OpenAIModel, cfg.Summary.Temperature, cfg.Summary.MaxTokens)
	case "gemini":
		remote = NewRemoteGemini(cfg.Summary.GeminiModel, cfg.Summary.Temperature, cfg.Summary.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.Summary.Provider)
	}
	return New(remote, log), nil
}
