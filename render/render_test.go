package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaptinlin/sap"
)

func TestHintRendersObjectFields(t *testing.T) {
	schema := sap.ObjectSchema(
		sap.NewFieldMap().
			Set("name", sap.StringSchema(sap.MinLength(1))).
			Set("age", sap.IntegerSchema(sap.Minimum(0))),
		[]string{"name"}, nil, false,
	)

	hint := Hint(schema)
	assert.Contains(t, hint, "```json")
	assert.Contains(t, hint, `"name"`)
	assert.Contains(t, hint, "string")
	assert.Contains(t, hint, `"age"`)
	assert.Contains(t, hint, "integer")
}

func TestHintRendersUnionAndOptional(t *testing.T) {
	schema := sap.OptionalSchema(sap.UnionSchema([]*sap.Schema{sap.StringSchema(), sap.IntegerSchema()}))
	hint := Hint(schema)
	assert.Contains(t, hint, "string")
	assert.Contains(t, hint, "integer")
	assert.Contains(t, hint, "or null")
}
