package summarizer

import (
	"sort"
	"strings"
)

// Extractive produces a summary by selecting existing sentences. Purely
// local and deterministic: the fallback when the remote API is unavailable.
//
// Selection biases toward the lead and the conclusion: the first three
// sentences and the last one, topped up from the middle at an even stride
// when the tier wants more. The sorted selection is then cut to the tier's
// target count.
func Extractive(text string, length Length) string {
	if text == "" {
		return ""
	}

	target := length.Sentences()

	sents := SplitSentences(text)
	if len(sents) == 0 {
		return text
	}

	// Already short enough: passthrough, byte-for-byte.
	if len(sents) <= target {
		return text
	}

	lead := 3
	if len(sents) < lead {
		lead = len(sents)
	}

	selected := make([]int, 0, target+4)
	for i := 0; i < lead; i++ {
		selected = append(selected, i)
	}

	if len(sents) > 3 {
		selected = append(selected, len(sents)-1)
	}

	if remaining := target - len(selected); remaining > 0 {
		middle := make([]int, 0, len(sents))
		for i := 3; i < len(sents)-1; i++ {
			middle = append(middle, i)
		}
		if len(middle) > 0 {
			step := len(middle) / remaining
			if step < 1 {
				step = 1
			}
			added := 0
			for i := 0; i < len(middle) && added < remaining; i += step {
				selected = append(selected, middle[i])
				added++
			}
		}
	}

	sort.Ints(selected)
	if len(selected) > target {
		selected = selected[:target]
	}

	picked := make([]string, len(selected))
	for i, idx := range selected {
		picked[i] = sents[idx]
	}

	return strings.Join(picked, " ")
}
