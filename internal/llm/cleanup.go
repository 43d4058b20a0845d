package llm

import (
	"regexp"
	"strings"
)

// cleanupPatterns strip preamble/postamble chatter that models emit around
// the resume despite instructions not to. They are applied once each, in
// this order, case-insensitively, over the whole reply.
var cleanupPatterns = []*regexp.Regexp{
	// Leading "Here is / Here's ... resume:" preamble
	regexp.MustCompile(`(?i)^(Here is|Here's).*?resume:?\s*`),
	// Leading text mentioning "formatted resume" up through the next colon
	regexp.MustCompile(`(?i)^.*formatted resume.*?:\s*`),
	// Trailing "I hope this helps..." sign-off
	regexp.MustCompile(`(?i)I hope this helps.*$`),
	// Leading text mentioning "based on" up through the next colon
	regexp.MustCompile(`(?i)^.*?based on.*?:\s*`),
}

// Clean strips known model preamble/postamble from a completion reply.
// Clean is idempotent: applying it twice yields the same result as once.
func Clean(text string) string {
	text = strings.TrimSpace(text)
	for _, pattern := range cleanupPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
