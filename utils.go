package sap

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-json-experiment/json"
)

// toDisplayString renders a parameter value for message-template
// substitution, mirroring the teacher's replace() helper but scoped to the
// small parameter set CoercionError carries.
func toDisplayString(v any) string {
	return fmt.Sprint(v)
}

// typeName returns the schema-level type name a dynamic Value presents as,
// used to build "expected X but got Y" type-mismatch diagnostics.
func typeName(v *Value) string {
	if v.IsNull() {
		return "null"
	}
	return v.Kind.String()
}

// encodeJSON serializes a plain Go value with the project's canonical
// codec (go-json-experiment/json, matching the teacher's compiler.go
// default wiring) rather than encoding/json.
func encodeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// decodeJSON parses JSON text with the canonical codec into a plain Go
// value (nil/bool/float64/string/[]any/map[string]any).
func decodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

var regexCache sync.Map // string -> *regexp.Regexp

// compileCached compiles and memoizes a regular expression. Schema.Pattern
// and Format("regex") checks run once per field per parse, but the same
// pattern string is typically reused across many Parse calls against the
// same schema, so caching avoids recompiling on every coercion.
func compileCached(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache.Store(pattern, re)
	return re, nil
}
