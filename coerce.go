package sap

// coercer walks a dynamic Value against a Schema, producing a typed value,
// an error list, and (when enabled) a coercion trace. It never stops on
// first error — it accumulates everything the walk finds and returns the
// best-effort value alongside the full diagnostic list.
type coercer struct {
	opts *Options
}

// outcome is the per-call result of walking one (value, schema) pair. It is
// returned fresh on every call — never mutated by a caller — which is what
// lets Union selection run an alternative against private buffers and
// discard them if the alternative loses.
type outcome struct {
	value   *Value
	errs    []*CoercionError
	notes   []CoercionNote
	partial bool
}

func (o *outcome) errCount() int { return len(o.errs) }

func merge(into *outcome, from *outcome) {
	into.errs = append(into.errs, from.errs...)
	into.notes = append(into.notes, from.notes...)
	if from.partial {
		into.partial = true
	}
}

// coerce is the recursive entry point.
func (c *coercer) coerce(v *Value, s *Schema, path string, depth int) *outcome {
	if depth > c.opts.maxCoerceDepth() {
		return &outcome{
			value: Null(),
			errs: []*CoercionError{NewCoercionError(path, CodeDepthExceeded,
				"schema recursion exceeded the maximum depth of {max_depth}",
				map[string]any{"max_depth": c.opts.maxCoerceDepth()})},
		}
	}

	if v.IsNull() {
		if acceptsNull(s) && s.Tag != TagUnion {
			return &outcome{value: Null()}
		}
		if s.Tag != TagUnion {
			if c.opts.AllowPartials {
				return &outcome{value: Null(), partial: true}
			}
			return &outcome{
				value: Null(),
				errs: []*CoercionError{NewCoercionError(path, CodeTypeMismatch,
					"expected {expected} but got {actual}",
					map[string]any{"expected": s.Tag.String(), "actual": "null"})},
			}
		}
	}

	switch s.Tag {
	case TagString:
		return c.coerceString(v, s, path)
	case TagInteger:
		return c.coerceNumber(v, s, path, true)
	case TagNumber:
		return c.coerceNumber(v, s, path, false)
	case TagBoolean:
		return c.coerceBoolean(v, s, path)
	case TagNull:
		return c.coerceNull(v, s, path)
	case TagAny:
		return &outcome{value: v}
	case TagLiteral:
		return c.coerceLiteral(v, s, path)
	case TagEnum:
		return c.coerceEnum(v, s, path)
	case TagArray:
		return c.coerceArray(v, s, path, depth)
	case TagTuple:
		return c.coerceTuple(v, s, path, depth)
	case TagObject:
		return c.coerceObject(v, s, path, depth)
	case TagRecord:
		return c.coerceRecord(v, s, path, depth)
	case TagUnion:
		return c.coerceUnion(v, s, path, depth)
	case TagIntersect:
		return c.coerceIntersect(v, s, path, depth)
	case TagOptional:
		if v.IsNull() {
			return &outcome{value: Null()}
		}
		return c.coerce(v, s.Inner, path, depth+1)
	case TagRef:
		return &outcome{
			value: v,
			notes: []CoercionNote{{Path: path, Note: "unresolved reference: " + s.RefPointer}},
		}
	default:
		return &outcome{value: v}
	}
}

// acceptsNull reports whether s admits an explicit/absent null without
// error: Optional, Null, Any, or a Union containing such an alternative.
func acceptsNull(s *Schema) bool {
	switch s.Tag {
	case TagOptional, TagNull, TagAny:
		return true
	case TagUnion:
		for _, alt := range s.Alternatives {
			if acceptsNull(alt) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func typeMismatch(path string, s *Schema, v *Value) *CoercionError {
	return NewCoercionError(path, CodeTypeMismatch,
		"expected {expected} but got {actual}",
		map[string]any{"expected": s.Tag.String(), "actual": typeName(v)})
}
