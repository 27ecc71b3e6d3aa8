package sap

// Meta carries the provenance and diagnostics the orchestrator attaches to
// every Result, per §6.
type Meta struct {
	Raw                   string
	FromMarkdown          bool
	ChainOfThoughtFiltered bool
	Fixes                 []string
	Coercions             []CoercionNote
}

// Result is the outcome of a parse (§6).
type Result struct {
	Success   bool
	Value     *Value
	Errors    []*CoercionError
	IsPartial bool
	Meta      Meta
}

// newResult seeds a Result with the raw response text; callers should not
// construct Result directly.
func newResult(raw string) *Result {
	return &Result{Meta: Meta{Raw: raw}}
}

func (r *Result) finalize() *Result {
	r.Success = len(r.Errors) == 0
	return r
}

func (r *Result) addError(err *CoercionError) {
	r.Errors = append(r.Errors, err)
}

func (r *Result) addCoercion(path, note string) {
	r.Meta.Coercions = append(r.Meta.Coercions, CoercionNote{Path: path, Note: note})
}
