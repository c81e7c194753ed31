package summarizer

import (
	"fmt"
	"strings"
)

// Length is the summary length tier, ordered from shortest to longest.
type Length int

const (
	VeryShort Length = iota
	Short
	Medium
	Long
	VeryLong
)

var lengthNames = map[Length]string{
	VeryShort: "Mycket kort",
	Short:     "Kort",
	Medium:    "Medium",
	Long:      "Lång",
	VeryLong:  "Mycket lång",
}

// Sentences returns the target sentence count for the extractive fallback.
func (l Length) Sentences() int {
	switch l {
	case VeryShort:
		return 1
	case Short:
		return 2
	case Long:
		return 5
	case VeryLong:
		return 7
	default:
		return 3
	}
}

// Describe returns the Swedish length phrase used in the remote prompt.
func (l Length) Describe() string {
	switch l {
	case VeryShort:
		return "mycket kort (1-2 meningar)"
	case Short:
		return "kort (2-3 meningar)"
	case Long:
		return "lång (5-7 meningar)"
	case VeryLong:
		return "mycket lång (7-10 meningar)"
	default:
		return "medellång (3-5 meningar)"
	}
}

func (l Length) String() string {
	if name, ok := lengthNames[l]; ok {
		return name
	}
	return "Medium"
}

// ParseLength resolves a tier from its Swedish or English name.
func ParseLength(s string) (Length, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mycket kort", "very short":
		return VeryShort, nil
	case "kort", "short":
		return Short, nil
	case "medium":
		return Medium, nil
	case "lång", "lang", "long":
		return Long, nil
	case "mycket lång", "mycket lang", "very long":
		return VeryLong, nil
	}
	return Medium, fmt.Errorf("unknown summary length %q", s)
}
