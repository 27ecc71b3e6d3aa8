package sap

import (
	"regexp"
	"strings"
)

// reasoningMarkers are the case-insensitive substrings whose presence marks
// a response as carrying chain-of-thought preamble.
var reasoningMarkers = []string{
	"let me think",
	"step by step",
	"reasoning:",
	"thinking:",
	"analysis:",
	"therefore",
	"in conclusion",
}

var leadingFirstClause = regexp.MustCompile(`(?i)^\s*first,`)

// trimMarkers is a priority ladder: the first tier that matches anywhere in
// the text wins, and the returned suffix starts at its earliest occurrence.
var trimMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)here is the json[^:]*:`),
	regexp.MustCompile(`(?i)(?:output json[^:]*:|therefore the output json is[^:]*:)`),
	regexp.MustCompile(`(?i)(?:final answer:|answer:)`),
}

var fenceOpenRegexp = regexp.MustCompile("```")

// filterChainOfThought strips reasoning prose so the extractor sees the
// smallest reasonable payload window. It is a pure function of its input:
// it never allocates persistent state and never mutates text it does not
// return.
func filterChainOfThought(text string) (trimmed string, filtered bool) {
	if !hasReasoningPreamble(text) {
		return text, false
	}

	for _, marker := range trimMarkers {
		if loc := marker.FindStringIndex(text); loc != nil {
			return text[loc[0]:], true
		}
	}

	if loc := fenceOpenRegexp.FindStringIndex(text); loc != nil {
		return text[loc[0]:], true
	}

	if idx := strings.IndexByte(text, '{'); idx >= 0 {
		return text[idx:], true
	}

	return text, false
}

func hasReasoningPreamble(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range reasoningMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return leadingFirstClause.MatchString(text)
}
