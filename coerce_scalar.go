package sap

import (
	"math"
	"strconv"
	"strings"
)

// coerceString implements §4.3's String target rule: accept strings
// unchanged, stringify every other scalar/container, then validate length,
// pattern, and format constraints without rejecting the value.
func (c *coercer) coerceString(v *Value, s *Schema, path string) *outcome {
	o := &outcome{}
	var str string
	switch v.Kind {
	case KindString:
		str = v.Str
	case KindNumber, KindBool, KindArray, KindObject:
		if c.opts.Strict && v.Kind != KindString {
			o.errs = append(o.errs, typeMismatch(path, s, v))
			o.value = String(stringify(v))
			return o
		}
		str = stringify(v)
		o.notes = append(o.notes, CoercionNote{Path: path, Note: "stringified " + typeName(v) + " to string"})
	default:
		o.errs = append(o.errs, typeMismatch(path, s, v))
		o.value = String("")
		return o
	}

	if s.MinLength != nil && len(str) < *s.MinLength {
		o.errs = append(o.errs, NewCoercionError(path, CodeStringTooShort,
			"string is shorter than the minimum length of {min_length}",
			map[string]any{"min_length": *s.MinLength}))
	}
	if s.MaxLength != nil && len(str) > *s.MaxLength {
		o.errs = append(o.errs, NewCoercionError(path, CodeStringTooLong,
			"string is longer than the maximum length of {max_length}",
			map[string]any{"max_length": *s.MaxLength}))
	}
	if s.Pattern != nil {
		re, err := compileCached(*s.Pattern)
		if err == nil && !re.MatchString(str) {
			o.errs = append(o.errs, NewCoercionError(path, CodePatternMismatch,
				"string does not match pattern {pattern}",
				map[string]any{"pattern": *s.Pattern}))
		}
	}
	if s.Format != nil {
		if validate, ok := formatValidators[*s.Format]; ok && !validate(str) {
			o.errs = append(o.errs, NewCoercionError(path, CodeFormatMismatch,
				"string does not match format {format}",
				map[string]any{"format": *s.Format}))
		}
	}

	o.value = String(str)
	return o
}

// coerceNumber implements §4.3's Number/Integer target rule.
func (c *coercer) coerceNumber(v *Value, s *Schema, path string, integer bool) *outcome {
	o := &outcome{}
	var n float64
	switch v.Kind {
	case KindNumber:
		n = v.Number
	case KindString:
		if c.opts.Strict {
			o.errs = append(o.errs, typeMismatch(path, s, v))
			o.value = Number(0)
			return o
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			o.errs = append(o.errs, NewCoercionError(path, CodeNumberParseFailed,
				"could not parse {value} as a number",
				map[string]any{"value": v.Str}))
			o.value = Number(0)
			return o
		}
		n = parsed
		o.notes = append(o.notes, CoercionNote{Path: path, Note: "parsed string to number"})
	case KindBool:
		if c.opts.Strict {
			o.errs = append(o.errs, typeMismatch(path, s, v))
			o.value = Number(0)
			return o
		}
		if v.Bool {
			n = 1
		}
		o.notes = append(o.notes, CoercionNote{Path: path, Note: "coerced boolean to number"})
	default:
		o.errs = append(o.errs, typeMismatch(path, s, v))
		o.value = Number(0)
		return o
	}

	if integer && n != math.Trunc(n) {
		if c.opts.Strict {
			o.errs = append(o.errs, typeMismatch(path, s, v))
			o.value = Number(0)
			return o
		}
		o.notes = append(o.notes, CoercionNote{Path: path, Note: "truncated fractional part toward zero"})
		n = math.Trunc(n)
	}

	if s.Minimum != nil && n < *s.Minimum {
		o.errs = append(o.errs, NewCoercionError(path, CodeMinimumViolation,
			"value {value} is below the minimum of {minimum}",
			map[string]any{"value": n, "minimum": *s.Minimum}))
	}
	if s.Maximum != nil && n > *s.Maximum {
		o.errs = append(o.errs, NewCoercionError(path, CodeMaximumViolation,
			"value {value} exceeds the maximum of {maximum}",
			map[string]any{"value": n, "maximum": *s.Maximum}))
	}
	if s.ExclusiveMinimum != nil && n <= *s.ExclusiveMinimum {
		o.errs = append(o.errs, NewCoercionError(path, CodeExclusiveMinimum,
			"value {value} does not exceed the exclusive minimum of {minimum}",
			map[string]any{"value": n, "minimum": *s.ExclusiveMinimum}))
	}
	if s.ExclusiveMaximum != nil && n >= *s.ExclusiveMaximum {
		o.errs = append(o.errs, NewCoercionError(path, CodeExclusiveMaximum,
			"value {value} does not fall below the exclusive maximum of {maximum}",
			map[string]any{"value": n, "maximum": *s.ExclusiveMaximum}))
	}
	if s.MultipleOf != nil && !isMultipleOf(n, *s.MultipleOf) {
		o.errs = append(o.errs, NewCoercionError(path, CodeMultipleOfViolation,
			"value {value} is not a multiple of {multiple_of}",
			map[string]any{"value": n, "multiple_of": *s.MultipleOf}))
	}

	o.value = Number(n)
	return o
}

// coerceBoolean implements §4.3's Boolean target rule.
func (c *coercer) coerceBoolean(v *Value, s *Schema, path string) *outcome {
	switch v.Kind {
	case KindBool:
		return &outcome{value: Bool(v.Bool)}
	case KindString:
		if c.opts.Strict {
			return &outcome{value: Bool(false), errs: []*CoercionError{typeMismatch(path, s, v)}}
		}
		switch strings.ToLower(strings.TrimSpace(v.Str)) {
		case "true", "1", "yes":
			return &outcome{value: Bool(true), notes: []CoercionNote{{Path: path, Note: "coerced string to boolean"}}}
		case "false", "0", "no", "":
			return &outcome{value: Bool(false), notes: []CoercionNote{{Path: path, Note: "coerced string to boolean"}}}
		}
		return &outcome{value: Bool(false), errs: []*CoercionError{NewCoercionError(path, CodeBooleanMismatch,
			"string {value} is not a recognized boolean", map[string]any{"value": v.Str})}}
	case KindNumber:
		if c.opts.Strict {
			return &outcome{value: Bool(false), errs: []*CoercionError{typeMismatch(path, s, v)}}
		}
		return &outcome{value: Bool(v.Number != 0), notes: []CoercionNote{{Path: path, Note: "coerced number to boolean"}}}
	default:
		return &outcome{value: Bool(false), errs: []*CoercionError{typeMismatch(path, s, v)}}
	}
}

// coerceNull accepts only an explicit/absent null; any other shape is a
// type mismatch, since a Null schema admits nothing else.
func (c *coercer) coerceNull(v *Value, s *Schema, path string) *outcome {
	if v.IsNull() {
		return &outcome{value: Null()}
	}
	return &outcome{
		value: Null(),
		errs:  []*CoercionError{typeMismatch(path, s, v)},
	}
}

// coerceLiteral implements §4.3's Literal target rule: accept equality,
// or accept when both sides stringify to the same text, substituting the
// schema's typed constant either way.
func (c *coercer) coerceLiteral(v *Value, s *Schema, path string) *outcome {
	if valuesEqual(v, s.LiteralValue) {
		return &outcome{value: s.LiteralValue}
	}
	if stringify(v) == stringify(s.LiteralValue) {
		return &outcome{value: s.LiteralValue, notes: []CoercionNote{{Path: path, Note: "matched literal by stringified form"}}}
	}
	return &outcome{
		value: s.LiteralValue,
		errs: []*CoercionError{NewCoercionError(path, CodeLiteralMismatch,
			"value {value} does not equal the required literal {literal}",
			map[string]any{"value": stringify(v), "literal": stringify(s.LiteralValue)})},
	}
}

// coerceEnum implements §4.3's Enum target rule: exact membership first,
// then case-insensitive string membership with substitution.
func (c *coercer) coerceEnum(v *Value, s *Schema, path string) *outcome {
	for _, candidate := range s.EnumValues {
		if valuesEqual(v, candidate) {
			return &outcome{value: candidate}
		}
	}
	if v.Kind == KindString {
		for _, candidate := range s.EnumValues {
			if candidate.Kind == KindString && strings.EqualFold(candidate.Str, v.Str) {
				return &outcome{value: candidate, notes: []CoercionNote{{Path: path, Note: "matched enum value case-insensitively"}}}
			}
		}
	}
	return &outcome{
		value: v,
		errs: []*CoercionError{NewCoercionError(path, CodeEnumMismatch,
			"value {value} is not one of the allowed enum members",
			map[string]any{"value": stringify(v)})},
	}
}

// valuesEqual reports deep equality between two dynamic values.
func valuesEqual(a, b *Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str == b.Str
	case KindArray:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !valuesEqual(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.Fields.Len() != b.Fields.Len() {
			return false
		}
		for _, k := range a.Fields.Keys() {
			av, _ := a.Fields.Get(k)
			bv, ok := b.Fields.Get(k)
			if !ok || !valuesEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
