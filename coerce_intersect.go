package sap

// coerceIntersect shallow-merges the properties of every object alternative
// into one synthetic Object schema,
// then coerce the input against it. Later alternatives win on field-name
// collision, matching declaration-order precedence elsewhere in the model.
func (c *coercer) coerceIntersect(v *Value, s *Schema, path string, depth int) *outcome {
	merged := &Schema{Tag: TagObject, Properties: NewFieldMap()}
	for _, alt := range s.Alternatives {
		if alt.Tag != TagObject {
			continue
		}
		if alt.Properties != nil {
			for _, name := range alt.Properties.Names() {
				fieldSchema, _ := alt.Properties.Get(name)
				merged.Properties.Set(name, fieldSchema)
			}
		}
		for _, name := range alt.Required {
			if !merged.isRequired(name) {
				merged.Required = append(merged.Required, name)
			}
		}
		if alt.AdditionalProperties != nil {
			merged.AdditionalProperties = alt.AdditionalProperties
		}
		if alt.NoAdditional {
			merged.NoAdditional = true
		}
	}
	return c.coerceObject(v, merged, path, depth+1)
}
