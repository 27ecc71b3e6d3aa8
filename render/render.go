// Package render implements the prompt-side collaborator of a
// Schema-Aligned Parsing loop: it walks a sap.Schema tree and serializes it
// into a human-readable type hint fenced in a ```json block. The core parser
// consumes none of this package's output — it is a one-way producer for
// callers that want both halves of the SAP loop from a single library.
package render

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/sap"
)

// Hint renders s as a fenced ```json type-hint block, the shape a BAML-style
// prompt prefix puts in front of "Answer in JSON using this schema:".
func Hint(s *sap.Schema) string {
	var sb strings.Builder
	sb.WriteString("```json\n")
	writeNode(&sb, s, 0)
	sb.WriteString("\n```")
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func writeNode(sb *strings.Builder, s *sap.Schema, depth int) {
	if s == nil {
		sb.WriteString("any")
		return
	}
	switch s.Tag {
	case sap.TagString:
		writeScalar(sb, "string", s)
	case sap.TagInteger:
		writeScalar(sb, "integer", s)
	case sap.TagNumber:
		writeScalar(sb, "float", s)
	case sap.TagBoolean:
		sb.WriteString("boolean")
	case sap.TagNull:
		sb.WriteString("null")
	case sap.TagAny:
		sb.WriteString("any")
	case sap.TagLiteral:
		fmt.Fprintf(sb, "%v", s.LiteralValue.Native())
	case sap.TagEnum:
		sb.WriteString("one of [")
		for i, v := range s.EnumValues {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%v", v.Native())
		}
		sb.WriteString("]")
	case sap.TagArray:
		sb.WriteString("[\n")
		indent(sb, depth+1)
		writeNode(sb, s.Element, depth+1)
		sb.WriteString(",\n")
		indent(sb, depth+1)
		sb.WriteString("...\n")
		indent(sb, depth)
		sb.WriteString("]")
	case sap.TagTuple:
		sb.WriteString("[")
		for i, elem := range s.TupleElements {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, elem, depth)
		}
		sb.WriteString("]")
	case sap.TagObject:
		writeObject(sb, s, depth)
	case sap.TagRecord:
		sb.WriteString("{\n")
		indent(sb, depth+1)
		sb.WriteString("<key>: ")
		writeNode(sb, s.ValueSchema, depth+1)
		sb.WriteString("\n")
		indent(sb, depth)
		sb.WriteString("}")
	case sap.TagUnion:
		for i, alt := range s.Alternatives {
			if i > 0 {
				sb.WriteString(" or ")
			}
			writeNode(sb, alt, depth)
		}
	case sap.TagIntersect:
		for i, alt := range s.Alternatives {
			if i > 0 {
				sb.WriteString(" and ")
			}
			writeNode(sb, alt, depth)
		}
	case sap.TagOptional:
		writeNode(sb, s.Inner, depth)
		sb.WriteString(" or null")
	case sap.TagRef:
		fmt.Fprintf(sb, "<ref: %s>", s.RefPointer)
	default:
		sb.WriteString("any")
	}

	if s.Description != "" {
		fmt.Fprintf(sb, " // %s", s.Description)
	}
}

func writeScalar(sb *strings.Builder, name string, s *sap.Schema) {
	sb.WriteString(name)
	var constraints []string
	if s.MinLength != nil {
		constraints = append(constraints, fmt.Sprintf("minLength=%d", *s.MinLength))
	}
	if s.MaxLength != nil {
		constraints = append(constraints, fmt.Sprintf("maxLength=%d", *s.MaxLength))
	}
	if s.Pattern != nil {
		constraints = append(constraints, fmt.Sprintf("pattern=%s", *s.Pattern))
	}
	if s.Format != nil {
		constraints = append(constraints, fmt.Sprintf("format=%s", *s.Format))
	}
	if s.Minimum != nil {
		constraints = append(constraints, fmt.Sprintf("min=%v", *s.Minimum))
	}
	if s.Maximum != nil {
		constraints = append(constraints, fmt.Sprintf("max=%v", *s.Maximum))
	}
	if len(constraints) > 0 {
		fmt.Fprintf(sb, "(%s)", strings.Join(constraints, ", "))
	}
}

func writeObject(sb *strings.Builder, s *sap.Schema, depth int) {
	sb.WriteString("{\n")
	if s.Properties != nil {
		names := s.Properties.Names()
		for i, name := range names {
			field, _ := s.Properties.Get(name)
			indent(sb, depth+1)
			fmt.Fprintf(sb, "%q: ", name)
			writeNode(sb, field, depth+1)
			if i < len(names)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
	}
	indent(sb, depth)
	sb.WriteString("}")
}
