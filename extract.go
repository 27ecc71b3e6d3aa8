package sap

import (
	"strings"
)

// fix tags recorded in Result.Meta.Fixes.
const (
	fixNormalizedUnicodeQuotes = "normalized_unicode_quotes"
	fixAppliedAutoFixes        = "applied_auto_fixes"
	fixExtractedPartial        = "extracted_partial"
)

// extraction is the extractor's internal result: either a single value or,
// when strategy 2 or 3 recovered more than one candidate, several.
type extraction struct {
	Values       []*Value
	FromMarkdown bool
	Fixes        []string
	IsPartial    bool
}

func (e *extraction) single() *Value {
	if len(e.Values) == 0 {
		return Null()
	}
	if len(e.Values) == 1 {
		return e.Values[0]
	}
	items := make([]*Value, len(e.Values))
	copy(items, e.Values)
	return Array(items)
}

func (e *extraction) addFix(tag string) {
	for _, f := range e.Fixes {
		if f == tag {
			return
		}
	}
	e.Fixes = append(e.Fixes, tag)
}

// extractor carries the mutable, per-call state the recursive fenced-block
// descent needs: a recursion depth counter private to this parse, and the
// options governing which strategies are enabled. It is never shared
// across parses.
type extractor struct {
	opts  *Options
	depth int
}

// extract is the entry point for the JSON Extractor component: it runs the
// strategy ladder in order and returns the first strategy that succeeds.
func (x *extractor) extract(text string, inputComplete bool) (*extraction, error) {
	if x.depth > x.opts.maxExtractDepth() {
		return nil, ErrExtractionDepthExceeded
	}

	original := text
	normalized := text
	var fixes []string
	if x.opts.normalizeUnicodeQuotes() {
		n, changed := normalizeQuotes(text)
		if changed {
			// Text that already parses as-is keeps its typographic quotes:
			// they sit inside string values, not around JSON tokens.
			if v, ok := x.tryDirectParse(original); ok {
				return &extraction{Values: []*Value{v}}, nil
			}
			normalized = n
			fixes = append(fixes, fixNormalizedUnicodeQuotes)
		}
	}

	if v, ok := x.tryDirectParse(normalized); ok {
		return &extraction{Values: []*Value{v}, Fixes: fixes}, nil
	}

	if x.opts.allowMarkdownJSON() {
		if ex, ok := x.tryFencedBlocks(normalized); ok {
			ex.Fixes = mergeFixes(fixes, ex.Fixes)
			return ex, nil
		}
	}

	if x.opts.findAllJSONObjects() {
		if ex, ok := x.tryMultiObjectScan(normalized); ok {
			ex.Fixes = mergeFixes(fixes, ex.Fixes)
			return ex, nil
		}
	}

	if x.opts.allowFixes() {
		if v, ok := tryRepairParse(normalized); ok {
			return &extraction{Values: []*Value{v}, Fixes: append(fixes, fixAppliedAutoFixes)}, nil
		}
	}

	if x.opts.allowFixes() {
		if v, ok := tryPartialCompletion(normalized); ok {
			return &extraction{
				Values:    []*Value{v},
				Fixes:     append(fixes, fixExtractedPartial),
				IsPartial: true,
			}, nil
		}
	}

	if x.opts.allowAsString() {
		// If every recognition attempt fails, fall back to the *original*,
		// unnormalized text, so typographic quotes inside an
		// otherwise-unparseable string survive untouched.
		return &extraction{
			Values:    []*Value{String(original)},
			IsPartial: !inputComplete,
		}, nil
	}

	return nil, ErrExtractionFailed
}

// normalizeQuotes replaces the four Unicode typographic quote code points
// with their ASCII counterparts, as a pre-processing pass before any
// strategy runs.
func normalizeQuotes(text string) (string, bool) {
	replacer := strings.NewReplacer(
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)
	out := replacer.Replace(text)
	return out, out != text
}

func mergeFixes(base, extra []string) []string {
	out := append([]string{}, base...)
	for _, f := range extra {
		found := false
		for _, b := range out {
			if b == f {
				found = true
				break
			}
		}
		if !found {
			out = append(out, f)
		}
	}
	return out
}

// looksLikeJSON is the "looks like JSON" heuristic used both to qualify a
// fenced block with no/unknown language tag (§4.2 strategy 2) and to decide
// whether the trimmed whole input is a direct-parse candidate (strategy 1):
// the first and last non-space characters form a matched {}'/[]/"" pair, or
// the trimmed text is a bare numeric/true/false/null literal.
func looksLikeJSON(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	first := trimmed[0]
	last := trimmed[len(trimmed)-1]
	switch {
	case first == '{' && last == '}':
		return true
	case first == '[' && last == ']':
		return true
	case first == '"' && last == '"' && len(trimmed) >= 2:
		return true
	}
	return isBareLiteral(trimmed)
}

func isBareLiteral(trimmed string) bool {
	switch trimmed {
	case "true", "false", "null":
		return true
	}
	return isNumericLiteral(trimmed)
}

func isNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	sawDigit := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		sawDigit = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			sawDigit = true
		}
	}
	if !sawDigit {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}
