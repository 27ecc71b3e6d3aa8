package sap

// coerceArray wraps a non-array input in a single-element array (recorded),
// then coerces every element against the element schema.
func (c *coercer) coerceArray(v *Value, s *Schema, path string, depth int) *outcome {
	items := v.Items
	o := &outcome{}
	if v.Kind != KindArray {
		items = []*Value{v}
		o.notes = append(o.notes, CoercionNote{Path: path, Note: "wrapped non-array value in a single-element array"})
	}

	out := make([]*Value, len(items))
	for i, item := range items {
		elemPath := joinPath(path, i)
		elem := c.coerce(item, s.Element, elemPath, depth+1)
		merge(o, elem)
		out[i] = elem.value
	}

	if c.opts.AllowPartials && len(out) == 0 {
		o.partial = true
	}
	o.value = Array(out)
	return o
}

// coerceTuple coerces each declared position against its own schema; a
// missing position falls back to its default or errors; extra elements are
// kept unless additional items are explicitly disallowed.
func (c *coercer) coerceTuple(v *Value, s *Schema, path string, depth int) *outcome {
	items := v.Items
	o := &outcome{}
	if v.Kind != KindArray {
		items = []*Value{v}
		o.notes = append(o.notes, CoercionNote{Path: path, Note: "wrapped non-array value in a single-element array"})
	}

	out := make([]*Value, 0, len(s.TupleElements))
	for i, elemSchema := range s.TupleElements {
		elemPath := joinPath(path, i)
		if i < len(items) {
			elem := c.coerce(items[i], elemSchema, elemPath, depth+1)
			merge(o, elem)
			out = append(out, elem.value)
			continue
		}
		if elemSchema.HasDefault && c.opts.UseDefaults {
			out = append(out, elemSchema.Default)
			continue
		}
		if c.opts.AllowPartials {
			o.partial = true
			out = append(out, Null())
			continue
		}
		o.errs = append(o.errs, NewCoercionError(elemPath, CodeMissingRequired,
			"tuple element {index} is missing", map[string]any{"index": i}))
		out = append(out, Null())
	}

	if len(items) > len(s.TupleElements) {
		extra := items[len(s.TupleElements):]
		if s.AdditionalItems != nil {
			for i, item := range extra {
				idx := len(s.TupleElements) + i
				elem := c.coerce(item, s.AdditionalItems, joinPath(path, idx), depth+1)
				merge(o, elem)
				out = append(out, elem.value)
			}
		} else if !s.NoAdditionalItem {
			out = append(out, extra...)
		}
	}

	o.value = Array(out)
	return o
}
