package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// User-facing messages, in the transcript's language.
const (
	// MsgNoAPIKey is returned when no API key is configured at all.
	MsgNoAPIKey = "**Ingen API-nyckel tillhandahållen.** Ange din OpenAI- eller Gemini-nyckel i miljön för att aktivera sammanfattningsfunktionen."
	// MsgBadAPIKey is returned when the remote call fails with an
	// authentication-shaped error. No fallback: a bad key is a
	// configuration problem the extractive summarizer cannot fix.
	MsgBadAPIKey = "**Det uppstod ett fel med din API-nyckel.** Kontrollera att nyckeln är korrekt och har tillräcklig kredit för att använda API:et."
	// MsgSummaryFailed is the terminal message when even the extractive
	// fallback produced nothing.
	MsgSummaryFailed = "**Kunde inte skapa en sammanfattning.** Vänligen kontrollera texten eller försök igen senare."
)

// minSummaryWords is the threshold below which a transcript is returned
// unchanged: too short to meaningfully compress.
const minSummaryWords = 20

const systemPrompt = "Du är en assistent som skapar högkvalitativa sammanfattningar på svenska."

func userPrompt(text string, length Length) string {
	return fmt.Sprintf(`Nedan finns en text på svenska som ska sammanfattas.
Skapa en %s sammanfattning av texten på svenska.
Sammanfattningen ska fånga den viktigaste informationen och behålla textens ursprungliga ton.

Text att sammanfatta:
%s`, length.Describe(), text)
}

// Summarize resolves every input to a string, in strict order: empty
// passthrough, missing key, too-short passthrough, remote attempt,
// classified failure handling, extractive fallback.
func (s *implSummarizer) Summarize(ctx context.Context, text string, length Length, apiKey string) string {
	if text == "" {
		return ""
	}

	if apiKey == "" {
		return MsgNoAPIKey
	}

	if len(strings.Fields(text)) < minSummaryWords {
		return text
	}

	summary, err := s.remote.Complete(ctx, apiKey, systemPrompt, userPrompt(text, length))
	if err == nil {
		if trimmed := strings.TrimSpace(summary); trimmed != "" {
			return trimmed
		}
		// A blank completion would break the promise that a non-empty
		// transcript always yields a non-empty result.
		err = errors.New("remote returned an empty completion")
	}

	if isAuthError(err) {
		s.logger.Error(ctx, "Remote summarization rejected the API key: %v", err)
		return MsgBadAPIKey
	}

	s.logger.Warn(ctx, "Remote summarization failed: %v. Falling back to extractive summary.", err)

	if fallback := Extractive(text, length); fallback != "" {
		return fallback
	}

	s.logger.Error(ctx, "Extractive fallback produced no summary")
	return MsgSummaryFailed
}

// isAuthError classifies a remote failure by inspecting the error text.
// Known limitation carried over from the original: neither backend exposes
// a stable structured auth-error type across transports, so an upstream
// wording change silently downgrades an auth error to a generic one.
func isAuthError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "auth") || strings.Contains(msg, "api key")
}
