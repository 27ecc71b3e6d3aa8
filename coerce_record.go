package sap

// coerceRecord implements §4.3's Record coercion rule: require an object
// input, coerce every value against the record's value schema, and let
// keys pass through unchanged (the key schema only constrains string keys,
// which Go's ordered Object already guarantees).
func (c *coercer) coerceRecord(v *Value, s *Schema, path string, depth int) *outcome {
	if v.Kind != KindObject {
		return &outcome{
			value: Obj(NewObject()),
			errs:  []*CoercionError{typeMismatch(path, s, v)},
		}
	}

	o := &outcome{}
	out := NewObject()
	for _, key := range v.Fields.Keys() {
		fv, _ := v.Fields.Get(key)
		res := c.coerce(fv, s.ValueSchema, joinPath(path, key), depth+1)
		merge(o, res)
		out.Set(key, res.value)
	}
	o.value = Obj(out)
	return o
}
