package sap

// coerceUnion implements §4.3's Union selection algorithm: a cheap
// admissibility pre-filter, a zero-error short-circuit, a best-by-error-
// count fallback among admissible alternatives, and a last-resort pass over
// every alternative (using the caller's own buffers) if none was
// admissible. Ties are broken by declaration order throughout.
func (c *coercer) coerceUnion(v *Value, s *Schema, path string, depth int) *outcome {
	var bestIdx = -1
	var best *outcome

	for i, alt := range s.Alternatives {
		if !canHandle(alt, v) {
			continue
		}
		res := c.coerce(v, alt, path, depth+1)
		if res.errCount() == 0 {
			o := &outcome{value: res.value, partial: res.partial}
			o.notes = append(o.notes, res.notes...)
			o.notes = append(o.notes, CoercionNote{Path: path, Note: "selected union alternative " + itoaIndex(i) + " with 0 errors"})
			return o
		}
		if best == nil || res.errCount() < best.errCount() {
			best, bestIdx = res, i
		}
	}

	if best != nil {
		o := &outcome{value: best.value, partial: best.partial}
		o.errs = append(o.errs, best.errs...)
		o.notes = append(o.notes, best.notes...)
		o.notes = append(o.notes, CoercionNote{
			Path: path,
			Note: "selected union alternative " + itoaIndex(bestIdx) + " as best fit with " + itoaIndex(best.errCount()) + " errors",
		})
		return o
	}

	// No alternative was admissible: fall back to trying each in order with
	// the caller's own buffers and keep the first that does not error.
	for _, alt := range s.Alternatives {
		res := c.coerce(v, alt, path, depth+1)
		if res.errCount() == 0 {
			return res
		}
	}
	if len(s.Alternatives) > 0 {
		return c.coerce(v, s.Alternatives[0], path, depth+1)
	}
	return &outcome{
		value: v,
		errs:  []*CoercionError{typeMismatch(path, s, v)},
	}
}

// canHandle is the §4.3 admissibility pre-filter: does alt's tag admit the
// dynamic shape of v at all, before spending a full coercion attempt on it.
func canHandle(alt *Schema, v *Value) bool {
	if v.IsNull() {
		switch alt.Tag {
		case TagAny, TagOptional, TagNull:
			return true
		case TagUnion:
			for _, inner := range alt.Alternatives {
				if canHandle(inner, v) {
					return true
				}
			}
		}
		return false
	}

	switch alt.Tag {
	case TagAny, TagRef:
		return true
	case TagString:
		return v.Kind == KindString
	case TagInteger, TagNumber:
		return v.Kind == KindNumber || v.Kind == KindString || v.Kind == KindBool
	case TagBoolean:
		return v.Kind == KindBool || v.Kind == KindString || v.Kind == KindNumber
	case TagObject, TagRecord, TagIntersect:
		return v.Kind == KindObject || v.Kind == KindArray || v.Kind == KindString
	case TagArray, TagTuple:
		return true // any value admits via single-element wrapping (§4.3).
	case TagLiteral:
		return valuesEqual(v, alt.LiteralValue) || stringify(v) == stringify(alt.LiteralValue)
	case TagEnum:
		for _, e := range alt.EnumValues {
			if valuesEqual(v, e) {
				return true
			}
		}
		return v.Kind == KindString
	case TagOptional:
		return canHandle(alt.Inner, v)
	case TagUnion:
		for _, inner := range alt.Alternatives {
			if canHandle(inner, v) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func itoaIndex(i int) string {
	if i < 0 {
		return "0"
	}
	return formatNumber(float64(i))
}
