package sap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceObjectWrapsArrayInput(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := ObjectSchema(NewFieldMap().Set("0", StringSchema()), nil, nil, false)
	out := c.coerce(Array([]*Value{String("x")}), schema, "", 0)
	require.Empty(t, out.errs)
	field, ok := out.value.Fields.Get("0")
	require.True(t, ok)
	assert.Equal(t, "x", field.Str)
}

func TestCoerceObjectMissingRequiredErrors(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := ObjectSchema(NewFieldMap().Set("name", StringSchema()), []string{"name"}, nil, false)
	out := c.coerce(Obj(NewObject()), schema, "", 0)
	require.Len(t, out.errs, 1)
	assert.Equal(t, CodeMissingRequired, out.errs[0].Code)
}

func TestCoerceObjectUsesDefaultWhenMissing(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	fields := NewFieldMap().Set("name", StringSchema(WithDefault(String("anon"))))
	schema := ObjectSchema(fields, nil, nil, false)
	out := c.coerce(Obj(NewObject()), schema, "", 0)
	require.Empty(t, out.errs)
	field, ok := out.value.Fields.Get("name")
	require.True(t, ok)
	assert.Equal(t, "anon", field.Str)
}

func TestCoerceObjectDropsAdditionalWhenForbidden(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := ObjectSchema(NewFieldMap(), nil, nil, true)
	input := NewObject()
	input.Set("extra", String("x"))
	out := c.coerce(Obj(input), schema, "", 0)
	require.Len(t, out.errs, 1)
	assert.Equal(t, CodeAdditionalProperty, out.errs[0].Code)
}

func TestCoerceArrayWrapsSingleElement(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := ArraySchema(StringSchema())
	out := c.coerce(String("solo"), schema, "", 0)
	require.Empty(t, out.errs)
	assert.Len(t, out.value.Items, 1)
	assert.Equal(t, "solo", out.value.Items[0].Str)
}

func TestCoerceRecordRequiresObject(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := RecordSchema(StringSchema(), IntegerSchema())
	out := c.coerce(String("not an object"), schema, "", 0)
	require.Len(t, out.errs, 1)
	assert.Equal(t, CodeTypeMismatch, out.errs[0].Code)
}

func TestCoerceUnionShortCircuitsOnZeroErrors(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := UnionSchema([]*Schema{IntegerSchema(), StringSchema()})
	out := c.coerce(Number(5), schema, "", 0)
	require.Empty(t, out.errs)
	assert.Equal(t, float64(5), out.value.Number)
}

func TestCoerceUnionSkipsInadmissibleAlternative(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	// the Object alternative is inadmissible for a bare number, so Integer
	// is the only admissible alternative and wins with zero errors.
	schema := UnionSchema([]*Schema{
		ObjectSchema(NewFieldMap().Set("x", StringSchema()), []string{"x"}, nil, false),
		IntegerSchema(),
	})
	out := c.coerce(Number(7), schema, "", 0)
	assert.Empty(t, out.errs)
	assert.Equal(t, float64(7), out.value.Number)
}

func TestCoerceIntersectMergesFields(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	a := ObjectSchema(NewFieldMap().Set("name", StringSchema()), []string{"name"}, nil, false)
	b := ObjectSchema(NewFieldMap().Set("age", IntegerSchema()), []string{"age"}, nil, false)
	schema := IntersectSchema([]*Schema{a, b})

	input := NewObject()
	input.Set("name", String("Ada"))
	input.Set("age", Number(30))
	out := c.coerce(Obj(input), schema, "", 0)
	require.Empty(t, out.errs)
	name, _ := out.value.Fields.Get("name")
	age, _ := out.value.Fields.Get("age")
	assert.Equal(t, "Ada", name.Str)
	assert.Equal(t, float64(30), age.Number)
}

func TestCoerceScalarStringLengthConstraints(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := StringSchema(MinLength(3))
	out := c.coerce(String("ab"), schema, "field", 0)
	require.Len(t, out.errs, 1)
	assert.Equal(t, CodeStringTooShort, out.errs[0].Code)
}

func TestCoerceScalarIntegerTruncates(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := IntegerSchema()
	out := c.coerce(Number(3.7), schema, "field", 0)
	require.Empty(t, out.errs)
	assert.Equal(t, float64(3), out.value.Number)
}

func TestCoerceScalarBooleanFromString(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := BooleanSchema()
	out := c.coerce(String("yes"), schema, "field", 0)
	require.Empty(t, out.errs)
	assert.True(t, out.value.Bool)
}

func TestCoerceScalarStrictRejectsLossyConversion(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = true
	c := &coercer{opts: opts}
	schema := IntegerSchema()
	out := c.coerce(String("42"), schema, "field", 0)
	require.Len(t, out.errs, 1)
	assert.Equal(t, CodeTypeMismatch, out.errs[0].Code)
}

func TestCoerceScalarStrictRejectsFloatTruncation(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = true
	c := &coercer{opts: opts}
	schema := IntegerSchema()
	out := c.coerce(Number(3.5), schema, "field", 0)
	require.Len(t, out.errs, 1)
	assert.Equal(t, CodeTypeMismatch, out.errs[0].Code)
}

func TestCoerceEnumCaseInsensitiveMatch(t *testing.T) {
	c := &coercer{opts: DefaultOptions()}
	schema := EnumSchema([]*Value{String("Red"), String("Blue")})
	out := c.coerce(String("red"), schema, "field", 0)
	require.Empty(t, out.errs)
	assert.Equal(t, "Red", out.value.Str)
}
