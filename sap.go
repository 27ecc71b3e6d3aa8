package sap

import "sort"

// Parse is the primary entry point (§6): it composes the chain-of-thought
// filter, the JSON extractor, and the type coercer, and packages the
// result with the metadata every layer contributed.
func Parse(response string, schema *Schema, opts *Options) *Result {
	if opts == nil {
		opts = DefaultOptions()
	}
	r := newResult(response)

	text := response
	if opts.FilterChainOfThought {
		trimmed, filtered := filterChainOfThought(response)
		text = trimmed
		r.Meta.ChainOfThoughtFiltered = filtered
	}

	x := &extractor{opts: opts}
	ex, err := x.extract(text, true)
	if err != nil {
		r.addError(NewCoercionError("", CodeExtractionFailed, err.Error(), nil))
		r.Value = Null()
		return r.finalize()
	}

	r.Meta.FromMarkdown = ex.FromMarkdown
	r.Meta.Fixes = ex.Fixes
	if ex.IsPartial {
		r.IsPartial = true
	}

	dyn := ex.single()
	c := &coercer{opts: opts}
	out := c.coerce(dyn, schema, "", 0)
	for _, e := range out.errs {
		r.addError(e)
	}
	if out.partial {
		r.IsPartial = true
	}
	if opts.TrackCoercions {
		for _, n := range out.notes {
			r.addCoercion(n.Path, n.Note)
		}
	}
	r.Value = out.value
	return r.finalize()
}

// ParsePartial is identical to Parse with allow_partials and
// allow_as_string forced on (§6), for callers reading a response that may
// still be streaming in.
func ParsePartial(response string, schema *Schema, opts *Options) *Result {
	o := opts.clone()
	o.AllowPartials = true
	o.AllowAsString = true
	return Parse(response, schema, o)
}

// ParseAllCandidates exposes every dynamic value the extractor recovered
// (§6's return_all_candidates) as its own coerced Result, in extraction
// order.
func ParseAllCandidates(response string, schema *Schema, opts *Options) []*Result {
	if opts == nil {
		opts = DefaultOptions()
	}

	text := response
	cotFiltered := false
	if opts.FilterChainOfThought {
		trimmed, filtered := filterChainOfThought(response)
		text = trimmed
		cotFiltered = filtered
	}

	x := &extractor{opts: opts}
	ex, err := x.extract(text, true)
	if err != nil {
		r := newResult(response)
		r.addError(NewCoercionError("", CodeExtractionFailed, err.Error(), nil))
		r.Value = Null()
		return []*Result{r.finalize()}
	}

	results := make([]*Result, 0, len(ex.Values))
	for _, dyn := range ex.Values {
		r := newResult(response)
		r.Meta.FromMarkdown = ex.FromMarkdown
		r.Meta.Fixes = ex.Fixes
		r.Meta.ChainOfThoughtFiltered = cotFiltered
		if ex.IsPartial {
			r.IsPartial = true
		}

		c := &coercer{opts: opts}
		out := c.coerce(dyn, schema, "", 0)
		for _, e := range out.errs {
			r.addError(e)
		}
		if out.partial {
			r.IsPartial = true
		}
		if opts.TrackCoercions {
			for _, n := range out.notes {
				r.addCoercion(n.Path, n.Note)
			}
		}
		r.Value = out.value
		results = append(results, r.finalize())
	}
	return results
}

// ParseBestCandidate returns the candidate from ParseAllCandidates with
// the fewest errors, breaking ties in favor of the earliest candidate.
func ParseBestCandidate(response string, schema *Schema, opts *Options) *Result {
	candidates := ParseAllCandidates(response, schema, opts)
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].Errors) < len(candidates[j].Errors)
	})
	if len(candidates) == 0 {
		r := newResult(response)
		r.Value = Null()
		return r.finalize()
	}
	return candidates[0]
}
