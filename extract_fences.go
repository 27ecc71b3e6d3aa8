package sap

import (
	"regexp"
	"strings"
)

// fenceRegexp matches a fenced code block: opening ``` optionally followed
// by a language tag and a newline, a body, and a closing ```.
var fenceRegexp = regexp.MustCompile("(?s)```([A-Za-z0-9_+-]*)[ \t]*\r?\n?(.*?)```")

type fenceBlock struct {
	lang string
	body string
}

func scanFences(text string) []fenceBlock {
	matches := fenceRegexp.FindAllStringSubmatch(text, -1)
	blocks := make([]fenceBlock, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, fenceBlock{lang: strings.ToLower(strings.TrimSpace(m[1])), body: m[2]})
	}
	return blocks
}

func (b fenceBlock) qualifies() bool {
	switch b.lang {
	case "json", "javascript", "js", "":
		return true
	}
	return looksLikeJSON(b.body)
}

// tryFencedBlocks scans for fenced code blocks and recursively re-extracts
// from the qualifying ones.
func (x *extractor) tryFencedBlocks(text string) (*extraction, bool) {
	blocks := scanFences(text)
	var qualifying []fenceBlock
	for _, b := range blocks {
		if b.qualifies() {
			qualifying = append(qualifying, b)
		}
	}
	if len(qualifying) == 0 {
		return nil, false
	}

	if len(qualifying) == 1 {
		sub := &extractor{opts: x.opts, depth: x.depth + 1}
		ex, err := sub.extract(qualifying[0].body, true)
		if err != nil {
			return nil, false
		}
		ex.FromMarkdown = true
		return ex, true
	}

	var parsed []*Value
	var unparsed []string
	for _, b := range qualifying {
		if v, ok := decodeOrderedJSONLoose(b.body); ok {
			parsed = append(parsed, v)
		} else {
			unparsed = append(unparsed, b.body)
		}
	}
	if len(parsed) == 1 && len(unparsed) == 0 {
		return &extraction{Values: parsed, FromMarkdown: true}, true
	}
	if len(parsed) > 1 && len(unparsed) == 0 {
		return &extraction{Values: parsed, FromMarkdown: true}, true
	}
	if len(parsed) == 0 {
		// None parsed strictly: apply repair to each and retry.
		var fixes []string
		for _, body := range unparsed {
			if v, ok := tryRepairParse(body); ok {
				parsed = append(parsed, v)
				fixes = append(fixes, fixAppliedAutoFixes)
			}
		}
		if len(parsed) == 0 {
			return nil, false
		}
		return &extraction{Values: parsed, FromMarkdown: true, Fixes: fixes}, true
	}
	// A mix of parsed and unparsed blocks: keep the ones that parsed.
	return &extraction{Values: parsed, FromMarkdown: true}, true
}

// decodeOrderedJSONLoose trims surrounding whitespace and runs
// decodeOrderedJSON, reporting success as a bool; content after the value
// still fails the parse. Used to strict-parse fence bodies and multi-object
// scan candidates.
func decodeOrderedJSONLoose(text string) (*Value, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	v, err := decodeOrderedJSON(trimmed)
	if err != nil {
		return nil, false
	}
	return v, true
}
