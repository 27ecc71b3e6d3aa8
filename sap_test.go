package sap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseScenarios exercises the nine concrete scenarios of §8.
func TestParseScenarios(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		schema := ObjectSchema(
			NewFieldMap().Set("name", StringSchema()).Set("count", IntegerSchema()),
			[]string{"name", "count"}, nil, false,
		)
		r := Parse(`{"name":"test","count":5}`, schema, DefaultOptions())
		require.True(t, r.Success)
		assert.Empty(t, r.Meta.Fixes)
		name, _ := r.Value.Fields.Get("name")
		count, _ := r.Value.Fields.Get("count")
		assert.Equal(t, "test", name.Str)
		assert.Equal(t, float64(5), count.Number)
	})

	t.Run("fenced", func(t *testing.T) {
		schema := ObjectSchema(NewFieldMap().Set("value", BooleanSchema()), []string{"value"}, nil, false)
		r := Parse("```json\n{\"value\": true}\n```", schema, DefaultOptions())
		require.True(t, r.Success)
		assert.True(t, r.Meta.FromMarkdown)
		value, _ := r.Value.Fields.Get("value")
		assert.True(t, value.Bool)
	})

	t.Run("trailing comma", func(t *testing.T) {
		schema := ObjectSchema(
			NewFieldMap().Set("a", IntegerSchema()).Set("b", IntegerSchema()),
			[]string{"a", "b"}, nil, false,
		)
		r := Parse(`{"a":1,"b":2,}`, schema, DefaultOptions())
		require.True(t, r.Success)
		assert.Contains(t, r.Meta.Fixes, fixAppliedAutoFixes)
	})

	t.Run("smart quotes in malformed JSON", func(t *testing.T) {
		schema := ObjectSchema(
			NewFieldMap().Set("action", StringSchema()).Set("file", StringSchema()),
			[]string{"action", "file"}, nil, false,
		)
		r := Parse(`{“action”:“diagnostics”,“file”:“x.ts”}`, schema, DefaultOptions())
		require.True(t, r.Success)
		assert.Contains(t, r.Meta.Fixes, fixNormalizedUnicodeQuotes)
		action, _ := r.Value.Fields.Get("action")
		assert.Equal(t, "diagnostics", action.Str)
	})

	t.Run("smart quotes inside a valid string value", func(t *testing.T) {
		schema := ObjectSchema(NewFieldMap().Set("command", StringSchema()), []string{"command"}, nil, false)
		r := Parse(`{"command":"echo {“action”: “diagnostics”}"}`, schema, DefaultOptions())
		require.True(t, r.Success)
		command, _ := r.Value.Fields.Get("command")
		assert.Equal(t, `echo {“action”: “diagnostics”}`, command.Str)
	})

	t.Run("chain-of-thought wrap", func(t *testing.T) {
		schema := ObjectSchema(NewFieldMap().Set("answer", StringSchema()), []string{"answer"}, nil, false)
		input := "Let me think... Therefore the output json is:\n```json\n{\"answer\":\"hi\"}\n```"
		r := Parse(input, schema, DefaultOptions())
		require.True(t, r.Success)
		assert.True(t, r.Meta.ChainOfThoughtFiltered)
		answer, _ := r.Value.Fields.Get("answer")
		assert.Equal(t, "hi", answer.Str)
	})

	t.Run("partial stream", func(t *testing.T) {
		schema := ObjectSchema(NewFieldMap().Set("items", ArraySchema(StringSchema())), []string{"items"}, nil, false)
		r := ParsePartial(`{"items":["a","b"`, schema, DefaultOptions())
		assert.True(t, r.IsPartial)
		items, _ := r.Value.Fields.Get("items")
		require.NotNil(t, items)
		assert.LessOrEqual(t, len(items.Items), 2)
	})

	t.Run("scalar coercion", func(t *testing.T) {
		schema := ObjectSchema(NewFieldMap().Set("count", IntegerSchema()), []string{"count"}, nil, false)
		opts := DefaultOptions()
		opts.TrackCoercions = true
		r := Parse(`{"count":"42"}`, schema, opts)
		require.True(t, r.Success)
		count, _ := r.Value.Fields.Get("count")
		assert.Equal(t, float64(42), count.Number)
		found := false
		for _, c := range r.Meta.Coercions {
			if c.Note == "parsed string to number" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("out of range", func(t *testing.T) {
		schema := ObjectSchema(NewFieldMap().Set("age", NumberSchema(Minimum(0))), []string{"age"}, nil, false)
		r := Parse(`{"age":-5}`, schema, DefaultOptions())
		assert.False(t, r.Success)
		require.Len(t, r.Errors, 1)
		assert.Equal(t, "age", r.Errors[0].Path)
		assert.Equal(t, CodeMinimumViolation, r.Errors[0].Code)
	})
}

// TestIdempotence covers §8's idempotence property for a small schema.
func TestIdempotence(t *testing.T) {
	schema := ObjectSchema(
		NewFieldMap().Set("name", StringSchema()).Set("active", BooleanSchema()),
		[]string{"name", "active"}, nil, false,
	)
	r1 := Parse(`{"name":"Ada","active":true}`, schema, DefaultOptions())
	require.True(t, r1.Success)

	data, err := encodeJSON(r1.Value.Native())
	require.NoError(t, err)

	r2 := Parse(string(data), schema, DefaultOptions())
	require.True(t, r2.Success)
	assert.True(t, valuesEqual(r1.Value, r2.Value))
}

func TestUnionOrderStability(t *testing.T) {
	schema := UnionSchema([]*Schema{StringSchema(), StringSchema(MinLength(1))})
	r := Parse(`"hello"`, schema, DefaultOptions())
	require.True(t, r.Success)
	assert.Equal(t, "hello", r.Value.Str)
}

func TestParseAllCandidatesAndBest(t *testing.T) {
	schema := ObjectSchema(NewFieldMap().Set("a", IntegerSchema()), []string{"a"}, nil, false)
	text := `noise {"a": 1} more noise {"a": 2}`
	opts := DefaultOptions()
	candidates := ParseAllCandidates(text, schema, opts)
	require.NotEmpty(t, candidates)

	best := ParseBestCandidate(text, schema, opts)
	require.NotNil(t, best)
}
