package sap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSchemaYAMLTuple(t *testing.T) {
	doc := []byte(`
type: tuple
elements:
  - type: string
  - type: integer
noAdditionalItems: true
`)
	schema, err := LoadSchemaYAML(doc)
	require.NoError(t, err)
	require.Equal(t, TagTuple, schema.Tag)
	require.Len(t, schema.TupleElements, 2)
	assert.Equal(t, TagString, schema.TupleElements[0].Tag)
	assert.Equal(t, TagInteger, schema.TupleElements[1].Tag)
	assert.True(t, schema.NoAdditionalItem)
}

func TestLoadSchemaYAMLNumberConstraints(t *testing.T) {
	doc := []byte(`
type: number
exclusiveMinimum: 0
exclusiveMaximum: 10
multipleOf: 0.5
`)
	schema, err := LoadSchemaYAML(doc)
	require.NoError(t, err)
	require.Equal(t, TagNumber, schema.Tag)
	require.NotNil(t, schema.ExclusiveMinimum)
	require.NotNil(t, schema.ExclusiveMaximum)
	require.NotNil(t, schema.MultipleOf)
	assert.Equal(t, float64(0), *schema.ExclusiveMinimum)
	assert.Equal(t, float64(10), *schema.ExclusiveMaximum)
	assert.Equal(t, 0.5, *schema.MultipleOf)
}
