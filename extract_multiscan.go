package sap

import "regexp"

// multiObjectRegexp is a deliberately non-nesting scanner: it does not track
// brace balance, so it fails on nested braces/brackets. A balanced-brace
// scanner would catch more cases but also more false positives inside
// prose; this accepts the limitation rather than chase full correctness.
var multiObjectRegexp = regexp.MustCompile(`\{[\s\S]*?\}|\[[\s\S]*?\]`)

// tryMultiObjectScan scans for multiple top-level JSON values in text that
// doesn't parse as a single document, returning every candidate that
// parses (strictly or after repair) in the order found.
func (x *extractor) tryMultiObjectScan(text string) (*extraction, bool) {
	candidates := multiObjectRegexp.FindAllString(text, -1)
	if len(candidates) == 0 {
		return nil, false
	}

	var values []*Value
	var fixes []string
	for _, c := range candidates {
		if v, ok := decodeOrderedJSONLoose(c); ok {
			values = append(values, v)
			continue
		}
		if v, ok := tryRepairParse(c); ok {
			values = append(values, v)
			fixes = append(fixes, fixAppliedAutoFixes)
		}
	}
	if len(values) == 0 {
		return nil, false
	}
	return &extraction{Values: values, Fixes: fixes}, true
}
