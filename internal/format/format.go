// Package format shapes raw model output into the markdown answer the
// frontend renders.
package format

import "strings"

// DefaultMaxWords bounds how long an answer may grow before truncation.
const DefaultMaxWords = 2000

const heading = "### Answer:\n"

// Format normalizes bullet markers, trims overly long answers without
// cutting mid-sentence, and prefixes the answer heading.
func Format(text string) string {
	return WithLimit(text, DefaultMaxWords)
}

// WithLimit is Format with an explicit word budget. The substitution is
// a literal replace of "* " with "• "; escaped or nested asterisks are
// not special-cased. Truncation cuts back to the last period inside the
// budget, or appends an ellipsis when the trimmed text has none.
func WithLimit(text string, maxWords int) string {
	formatted := strings.ReplaceAll(text, "* ", "• ")

	words := strings.Fields(formatted)
	if maxWords > 0 && len(words) > maxWords {
		trimmed := strings.Join(words[:maxWords], " ")
		if idx := strings.LastIndex(trimmed, "."); idx >= 0 {
			trimmed = trimmed[:idx] + "."
		} else {
			trimmed += "..."
		}
		formatted = trimmed
	}

	return heading + formatted
}
