package summarizer

import "context"

// Summarizer turns a transcript into a summary. Every failure path resolves
// to a user-facing string: Summarize never returns an error.
type Summarizer interface {
	Summarize(ctx context.Context, text string, length Length, apiKey string) string
}

// Remote is the chat-completion backend tried before the extractive
// fallback. The key is supplied per call since it comes from the request,
// not the process environment alone.
type Remote interface {
	Complete(ctx context.Context, apiKey, systemPrompt, userPrompt string) (string, error)
}
