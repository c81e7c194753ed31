package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type remoteOpenAI struct {
	model       string
	temperature float32
	maxTokens   int
}

// NewRemoteOpenAI returns a Remote backed by the OpenAI chat-completion API.
func NewRemoteOpenAI(model string, temperature float32, maxTokens int) Remote {
	return &remoteOpenAI{
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (r *remoteOpenAI) Complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error) {
	client := openai.NewClient(apiKey)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: r.temperature,
		MaxTokens:   r.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
