package summarizer

import (
	"strings"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Swedish abbreviations whose trailing period does not end a sentence.
var swedishAbbrevs = map[string]bool{
	"t.ex":   true,
	"bl.a":   true,
	"dvs":    true,
	"osv":    true,
	"etc":    true,
	"ca":     true,
	"nr":     true,
	"kl":     true,
	"m.m":    true,
	"m.fl":   true,
	"s.k":    true,
	"fr.o.m": true,
	"t.o.m":  true,
	"jfr":    true,
	"dr":     true,
	"st":     true,
}

var englishTokenizer = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
})

// SplitSentences splits text into sentences. Three tiers, mirroring how the
// summarizer degrades: a Swedish abbreviation-aware splitter, then the punkt
// English tokenizer, then a plain punctuation split.
func SplitSentences(text string) []string {
	if sents := splitSwedish(text); len(sents) > 0 {
		return sents
	}

	if tokenizer, err := englishTokenizer(); err == nil {
		var sents []string
		for _, s := range tokenizer.Tokenize(text) {
			if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
				sents = append(sents, trimmed)
			}
		}
		if len(sents) > 0 {
			return sents
		}
	}

	return splitNaive(text)
}

// splitSwedish splits on sentence-final punctuation followed by whitespace
// and an upper-case letter (or end of text), skipping known abbreviations
// and decimal numbers.
func splitSwedish(text string) []string {
	runes := []rune(text)
	var sents []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		if r == '.' {
			if isAbbreviation(runes, start, i) {
				continue
			}
			// Decimal numbers like "3.14".
			if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				continue
			}
		}

		// Consume runs of closing punctuation ("?!", "...").
		end := i
		for end+1 < len(runes) && (runes[end+1] == '.' || runes[end+1] == '!' || runes[end+1] == '?') {
			end++
		}

		next := end + 1
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next < len(runes) && !unicode.IsUpper(runes[next]) && !unicode.IsDigit(runes[next]) {
			i = end
			continue
		}

		if sent := strings.TrimSpace(string(runes[start : end+1])); sent != "" {
			sents = append(sents, sent)
		}
		start = next
		i = end
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sents = append(sents, rest)
	}

	return sents
}

// isAbbreviation reports whether the period at pos terminates a known
// Swedish abbreviation instead of a sentence.
func isAbbreviation(runes []rune, start, pos int) bool {
	wordStart := pos
	for wordStart > start {
		prev := runes[wordStart-1]
		if unicode.IsSpace(prev) {
			break
		}
		wordStart--
	}

	word := strings.ToLower(strings.TrimRight(string(runes[wordStart:pos]), "."))
	word = strings.TrimLeft(word, "(\"'")
	return swedishAbbrevs[word]
}

// splitNaive is the last-resort splitter: treat every '.', '!' and '?' as a
// sentence boundary and drop empty fragments.
func splitNaive(text string) []string {
	normalized := strings.NewReplacer("!", ".", "?", ".").Replace(text)

	var sents []string
	for _, part := range strings.Split(normalized, ".") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sents = append(sents, trimmed)
		}
	}
	return sents
}
