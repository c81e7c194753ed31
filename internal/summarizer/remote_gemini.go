package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type remoteGemini struct {
	model       string
	temperature float32
	maxTokens   int
}

// NewRemoteGemini returns a Remote backed by the Gemini API.
func NewRemoteGemini(model string, temperature float32, maxTokens int) Remote {
	return &remoteGemini{
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (r *remoteGemini) Complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(r.temperature),
		MaxOutputTokens: int32(r.maxTokens),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	result, err := client.Models.GenerateContent(ctx, r.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return strings.TrimSpace(text), nil
}
