package sap

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
)

// Kind tags the variant a Value actually holds. The extractor only ever
// produces these six shapes; nothing downstream should switch on anything
// else.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the dynamic value the extractor produces: an untyped tree that
// the coercer later walks against a Schema. It is a closed tagged union —
// exactly one of the Bool/Number/Str/Items/Fields fields is meaningful,
// selected by Kind.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    string
	Items  []*Value
	Fields *Object
}

// Object is an insertion-ordered string-keyed map of dynamic values. LLM
// output order is often meaningful (e.g. for human review of a diff), so
// plain Go maps — which do not preserve iteration order — are not used.
type Object struct {
	keys   []string
	values map[string]*Value
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]*Value)}
}

// Set inserts or overwrites the value at key, preserving first-insertion
// order for pre-existing keys.
func (o *Object) Set(key string, v *Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value at key and whether it was present.
func (o *Object) Get(key string) (*Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len reports the number of fields.
func (o *Object) Len() int {
	return len(o.keys)
}

func Null() *Value                { return &Value{Kind: KindNull} }
func Bool(b bool) *Value          { return &Value{Kind: KindBool, Bool: b} }
func Number(n float64) *Value     { return &Value{Kind: KindNumber, Number: n} }
func String(s string) *Value      { return &Value{Kind: KindString, Str: s} }
func Array(items []*Value) *Value { return &Value{Kind: KindArray, Items: items} }
func Obj(o *Object) *Value        { return &Value{Kind: KindObject, Fields: o} }

// IsNull reports whether v is nil or tagged KindNull — the two are treated
// identically throughout the coercer.
func (v *Value) IsNull() bool {
	return v == nil || v.Kind == KindNull
}

// Native converts v into a plain Go value (nil, bool, float64, string,
// []any, map[string]any ordered by the *Object's insertion order via a
// nested sortable wrapper is not possible with map[string]any, so callers
// that need order should walk *Object directly; Native is for
// interoperating with json.Marshal and other code that only understands
// built-in containers).
func (v *Value) Native() any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Number
	case KindString:
		return v.Str
	case KindArray:
		out := make([]any, len(v.Items))
		for i, it := range v.Items {
			out[i] = it.Native()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.Fields.Len())
		for _, k := range v.Fields.Keys() {
			fv, _ := v.Fields.Get(k)
			out[k] = fv.Native()
		}
		return out
	default:
		return nil
	}
}

// FromNative builds a Value tree from a plain Go value produced by a JSON
// decoder (nil, bool, float64, string, []any, map[string]any). Object key
// order is not recoverable from map[string]any, so keys are sorted for
// determinism; decoders that need to preserve source order should build the
// Value tree directly instead (see extract_direct.go's decodeOrderedJSON).
func FromNative(v any) *Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case string:
		return String(t)
	case []any:
		items := make([]*Value, len(t))
		for i, it := range t {
			items[i] = FromNative(it)
		}
		return Array(items)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			o.Set(k, FromNative(t[k]))
		}
		return Obj(o)
	default:
		return Null()
	}
}

// MarshalJSON lets a Value serialize through any encoder that knows how to
// marshal a plain `any`, by round-tripping through Native.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

// stringify renders any dynamic value as it would read as text — used by
// the String-target scalar coercion rules (stringify numbers, booleans,
// null; JSON-encode arrays and objects).
func stringify(v *Value) string {
	if v.IsNull() {
		return "null"
	}
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.Number)
	case KindString:
		return v.Str
	case KindArray, KindObject:
		b, err := json.Marshal(v.Native())
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}

// formatNumber renders a float64 the way a JSON number would print:
// integral values with no trailing ".0".
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// joinPath appends a field or index segment to a coercion path using the
// dotted/bracketed syntax the spec's error paths use, e.g. "items[2].price".
func joinPath(base string, segment any) string {
	var sb strings.Builder
	sb.WriteString(base)
	switch s := segment.(type) {
	case int:
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(s))
		sb.WriteByte(']')
	case string:
		if base != "" {
			sb.WriteByte('.')
		}
		sb.WriteString(s)
	}
	return sb.String()
}
