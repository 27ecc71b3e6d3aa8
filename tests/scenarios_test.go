// Package tests holds cross-cutting, scenario-driven tests that exercise
// the public sap package end to end, mirroring the teacher's own tests/
// directory convention of keeping whole-pipeline coverage separate from
// the package-internal unit tests colocated with each source file.
package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaptinlin/sap"
)

// TestNestedSchemaEndToEnd exercises Object, Array, Union, and Enum nodes
// together against a single noisy LLM-style response.
func TestNestedSchemaEndToEnd(t *testing.T) {
	schema := sap.ObjectSchema(
		sap.NewFieldMap().
			Set("title", sap.StringSchema(sap.MinLength(1))).
			Set("priority", sap.EnumSchema([]*sap.Value{sap.String("low"), sap.String("medium"), sap.String("high")})).
			Set("assignee", sap.OptionalSchema(sap.StringSchema())).
			Set("tags", sap.ArraySchema(sap.StringSchema())).
			Set("estimate", sap.UnionSchema([]*sap.Schema{sap.IntegerSchema(), sap.StringSchema()})),
		[]string{"title", "priority", "tags"}, nil, false,
	)

	response := "Sure, here is the JSON:\n```json\n" +
		`{"title": "Fix bug", "priority": "HIGH", "tags": ["backend"], "estimate": 3}` +
		"\n```"

	result := sap.Parse(response, schema, sap.DefaultOptions())
	require.True(t, result.Success)
	assert.True(t, result.Meta.FromMarkdown)
	assert.False(t, result.Meta.ChainOfThoughtFiltered)

	title, _ := result.Value.Fields.Get("title")
	priority, _ := result.Value.Fields.Get("priority")
	tags, _ := result.Value.Fields.Get("tags")
	estimate, _ := result.Value.Fields.Get("estimate")

	assert.Equal(t, "Fix bug", title.Str)
	assert.Equal(t, "high", priority.Str)
	require.Len(t, tags.Items, 1)
	assert.Equal(t, "backend", tags.Items[0].Str)
	assert.Equal(t, float64(3), estimate.Number)

	_, hasAssignee := result.Value.Fields.Get("assignee")
	assert.False(t, hasAssignee)
}

// TestDecodeIntoStruct covers Result.Decode against a Go destination type
// built with sap.FromStruct, closing the loop between the reflection-based
// schema builder and the coercer's output.
func TestDecodeIntoStruct(t *testing.T) {
	type Task struct {
		Title string `json:"title"`
		Count int    `json:"count"`
	}

	schema := sap.FromStruct(Task{})
	result := sap.Parse(`{"title":"ship it","count":"7"}`, schema, sap.DefaultOptions())
	require.True(t, result.Success)

	var task Task
	require.NoError(t, result.Decode(&task))
	assert.Equal(t, "ship it", task.Title)
	assert.Equal(t, 7, task.Count)
}

// TestLoadSchemaDocumentThenParse loads a YAML schema document with
// sap.LoadSchemaYAML and parses a response against the resulting schema,
// including a string-to-integer coercion on a non-required field.
func TestLoadSchemaDocumentThenParse(t *testing.T) {
	doc := []byte(`
type: object
required: [name]
properties:
  name:
    type: string
    minLength: 1
  age:
    type: integer
`)
	schema, err := sap.LoadSchemaYAML(doc)
	require.NoError(t, err)

	result := sap.Parse(`{"name": "Ada", "age": "30"}`, schema, sap.DefaultOptions())
	require.True(t, result.Success)
	age, _ := result.Value.Fields.Get("age")
	assert.Equal(t, float64(30), age.Number)
}
