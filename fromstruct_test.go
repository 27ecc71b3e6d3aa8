package sap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string `json:"name" sap:"required,minLength=1"`
	Age  int    `json:"age" sap:"minimum=0"`
	Bio  *string `json:"bio,omitempty" sap:"optional"`
}

func TestFromStructBuildsObjectSchema(t *testing.T) {
	schema := FromStruct(person{})
	require.Equal(t, TagObject, schema.Tag)
	assert.Contains(t, schema.Required, "name")

	nameSchema, ok := schema.Properties.Get("name")
	require.True(t, ok)
	assert.Equal(t, TagString, nameSchema.Tag)
	require.NotNil(t, nameSchema.MinLength)
	assert.Equal(t, 1, *nameSchema.MinLength)

	ageSchema, ok := schema.Properties.Get("age")
	require.True(t, ok)
	require.NotNil(t, ageSchema.Minimum)
	assert.Equal(t, float64(0), *ageSchema.Minimum)

	bioSchema, ok := schema.Properties.Get("bio")
	require.True(t, ok)
	assert.Equal(t, TagOptional, bioSchema.Tag)
}
