package sap

import "strconv"

// coerceObject implements §4.3's Object coercion rule. A non-object input
// is first reshaped: an array is wrapped into an object keyed by decimal
// indices, a string is re-run through the extractor in case it itself
// carries an embedded JSON object; anything else is a type mismatch.
func (c *coercer) coerceObject(v *Value, s *Schema, path string, depth int) *outcome {
	obj, o := c.asObject(v, s, path)
	if obj == nil {
		return o
	}

	out := NewObject()
	if s.Properties != nil {
		for _, name := range s.Properties.Names() {
			fieldSchema, _ := s.Properties.Get(name)
			fieldPath := joinPath(path, name)
			fv, present := obj.Get(name)
			switch {
			case present:
				res := c.coerce(fv, fieldSchema, fieldPath, depth+1)
				merge(o, res)
				out.Set(name, res.value)
			case fieldSchema.HasDefault && c.opts.UseDefaults:
				out.Set(name, fieldSchema.Default)
			case s.isRequired(name) && fieldSchema.Tag != TagOptional:
				if c.opts.AllowPartials {
					o.partial = true
					continue
				}
				o.errs = append(o.errs, NewCoercionError(fieldPath, CodeMissingRequired,
					"required field {field} is missing", map[string]any{"field": name}))
			default:
				// absent and optional: leave unset.
			}
		}
	}

	for _, name := range obj.Keys() {
		if s.Properties != nil {
			if _, declared := s.Properties.Get(name); declared {
				continue
			}
		}
		fv, _ := obj.Get(name)
		fieldPath := joinPath(path, name)
		switch {
		case s.NoAdditional:
			o.errs = append(o.errs, NewCoercionError(fieldPath, CodeAdditionalProperty,
				"field {field} is not permitted by the schema", map[string]any{"field": name}))
		case s.AdditionalProperties != nil:
			res := c.coerce(fv, s.AdditionalProperties, fieldPath, depth+1)
			merge(o, res)
			out.Set(name, res.value)
		default:
			out.Set(name, fv)
		}
	}

	o.value = Obj(out)
	return o
}

// asObject reshapes v into an *Object per §4.3's Object-coercion fallback
// paths, or returns a type-mismatch outcome when no reshaping applies.
func (c *coercer) asObject(v *Value, s *Schema, path string) (*Object, *outcome) {
	switch v.Kind {
	case KindObject:
		return v.Fields, &outcome{}
	case KindArray:
		obj := NewObject()
		for i, item := range v.Items {
			obj.Set(strconv.Itoa(i), item)
		}
		return obj, &outcome{notes: []CoercionNote{{Path: path, Note: "wrapped array into an object keyed by index"}}}
	case KindString:
		// Strict disables the string-to-object reshaping.
		if c.opts.Strict {
			break
		}
		x := &extractor{opts: c.opts}
		ex, err := x.extract(v.Str, true)
		if err == nil {
			nested := ex.single()
			if nested.Kind == KindObject {
				return nested.Fields, &outcome{notes: []CoercionNote{{Path: path, Note: "extracted a nested JSON object from a string"}}}
			}
		}
	}
	return nil, &outcome{
		value: Obj(NewObject()),
		errs:  []*CoercionError{typeMismatch(path, s, v)},
	}
}
