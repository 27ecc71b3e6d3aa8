package sap

// SchemaOption mutates a Schema node during construction. The constructor
// functions below accept a variadic list of options so callers can compose
// constraints without a builder method per keyword, the way the teacher's
// Object(items ...interface{}) composes Property and Keyword values.
type SchemaOption func(*Schema)

// Describe attaches a human-readable description, consumed only by the
// prompt-side renderer.
func Describe(text string) SchemaOption {
	return func(s *Schema) { s.Description = text }
}

// WithDefault attaches a default value, used by Object coercion when a
// field is absent and defaults are enabled (Options.UseDefaults).
func WithDefault(v *Value) SchemaOption {
	return func(s *Schema) {
		s.Default = v
		s.HasDefault = true
	}
}

// --- String ---

func StringSchema(opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagString}
	applyOpts(s, opts)
	return s
}

func MinLength(n int) SchemaOption { return func(s *Schema) { s.MinLength = &n } }
func MaxLength(n int) SchemaOption { return func(s *Schema) { s.MaxLength = &n } }
func Pattern(re string) SchemaOption {
	return func(s *Schema) { s.Pattern = &re }
}
func Format(name string) SchemaOption { return func(s *Schema) { s.Format = &name } }

// --- Integer / Number ---

func IntegerSchema(opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagInteger}
	applyOpts(s, opts)
	return s
}

func NumberSchema(opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagNumber}
	applyOpts(s, opts)
	return s
}

func Minimum(v float64) SchemaOption          { return func(s *Schema) { s.Minimum = &v } }
func Maximum(v float64) SchemaOption          { return func(s *Schema) { s.Maximum = &v } }
func ExclusiveMinimum(v float64) SchemaOption { return func(s *Schema) { s.ExclusiveMinimum = &v } }
func ExclusiveMaximum(v float64) SchemaOption { return func(s *Schema) { s.ExclusiveMaximum = &v } }
func MultipleOf(v float64) SchemaOption       { return func(s *Schema) { s.MultipleOf = &v } }

// --- Boolean / Null / Any ---

func BooleanSchema(opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagBoolean}
	applyOpts(s, opts)
	return s
}

func NullSchema(opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagNull}
	applyOpts(s, opts)
	return s
}

func AnySchema(opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagAny}
	applyOpts(s, opts)
	return s
}

// --- Literal / Enum ---

func LiteralSchema(value *Value, opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagLiteral, LiteralValue: value}
	applyOpts(s, opts)
	return s
}

func EnumSchema(values []*Value, opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagEnum, EnumValues: values}
	applyOpts(s, opts)
	return s
}

// --- Array / Tuple ---

func ArraySchema(element *Schema, opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagArray, Element: element}
	applyOpts(s, opts)
	return s
}

// TupleSchema builds a Tuple node. additionalItems may be nil (additional
// elements kept unchanged) or a Schema (additional elements coerced against
// it). With additionalItems nil and noAdditional set, additional elements
// are dropped from the result without an error.
func TupleSchema(elements []*Schema, additionalItems *Schema, noAdditional bool, opts ...SchemaOption) *Schema {
	s := &Schema{
		Tag:              TagTuple,
		TupleElements:    elements,
		AdditionalItems:  additionalItems,
		NoAdditionalItem: noAdditional,
	}
	applyOpts(s, opts)
	return s
}

// --- Object / Record ---

// ObjectSchema builds an Object node. additionalProperties follows the same
// nil / schema / forbidden convention as TupleSchema's additionalItems.
func ObjectSchema(properties *FieldMap, required []string, additionalProperties *Schema, noAdditional bool, opts ...SchemaOption) *Schema {
	if properties == nil {
		properties = NewFieldMap()
	}
	s := &Schema{
		Tag:                  TagObject,
		Properties:           properties,
		Required:             required,
		AdditionalProperties: additionalProperties,
		NoAdditional:         noAdditional,
	}
	applyOpts(s, opts)
	return s
}

func RecordSchema(keySchema, valueSchema *Schema, opts ...SchemaOption) *Schema {
	if keySchema == nil {
		keySchema = StringSchema()
	}
	s := &Schema{Tag: TagRecord, KeySchema: keySchema, ValueSchema: valueSchema}
	applyOpts(s, opts)
	return s
}

// --- Union / Intersect / Optional / Ref ---

func UnionSchema(alternatives []*Schema, opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagUnion, Alternatives: alternatives}
	applyOpts(s, opts)
	return s
}

func IntersectSchema(subschemas []*Schema, opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagIntersect, Alternatives: subschemas}
	applyOpts(s, opts)
	return s
}

func OptionalSchema(inner *Schema, opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagOptional, Inner: inner}
	applyOpts(s, opts)
	return s
}

// RefSchema builds a Ref node. A Ref is never resolved by this package: the
// coercer treats it as Any and records an unresolved-reference coercion
// note.
func RefSchema(pointer string, opts ...SchemaOption) *Schema {
	s := &Schema{Tag: TagRef, RefPointer: pointer}
	applyOpts(s, opts)
	return s
}

func applyOpts(s *Schema, opts []SchemaOption) {
	for _, opt := range opts {
		opt(s)
	}
}
