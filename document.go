package sap

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// schemaDoc is the on-disk shape sapctl reads: a small YAML dialect
// covering this package's Schema node set, mirroring the teacher's
// application/yaml media-type handler (compiler.go's setupMediaTypes)
// which decodes YAML schema documents with the same goccy/go-yaml codec
// used here, just applied to this package's own node shapes instead of
// raw JSON Schema.
//
// Properties decodes into a plain Go map, so field order in an authored
// YAML document is not preserved in the resulting Schema — acceptable here
// because §3's ordering invariant is about dynamic Object values produced
// at parse time (see dynamic.go's Object), not about how a schema was
// authored on disk.
type schemaDoc struct {
	Type             string               `yaml:"type"`
	Description      string               `yaml:"description,omitempty"`
	MinLength        *int                 `yaml:"minLength,omitempty"`
	MaxLength        *int                 `yaml:"maxLength,omitempty"`
	Pattern          *string              `yaml:"pattern,omitempty"`
	Format           *string              `yaml:"format,omitempty"`
	Minimum          *float64             `yaml:"minimum,omitempty"`
	Maximum          *float64             `yaml:"maximum,omitempty"`
	ExclusiveMinimum *float64             `yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64             `yaml:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64             `yaml:"multipleOf,omitempty"`
	Literal          any                  `yaml:"literal,omitempty"`
	Enum             []any                `yaml:"enum,omitempty"`
	Element          *schemaDoc           `yaml:"element,omitempty"`
	Elements         []schemaDoc          `yaml:"elements,omitempty"`
	AdditionalItems  *schemaDoc           `yaml:"additionalItems,omitempty"`
	NoAdditionalItem bool                 `yaml:"noAdditionalItems,omitempty"`
	Properties       map[string]schemaDoc `yaml:"properties,omitempty"`
	Required         []string             `yaml:"required,omitempty"`
	ValueSchema      *schemaDoc           `yaml:"valueSchema,omitempty"`
	Alternatives     []schemaDoc          `yaml:"alternatives,omitempty"`
	Inner            *schemaDoc           `yaml:"inner,omitempty"`
	Ref              string               `yaml:"ref,omitempty"`
}

// LoadSchemaYAML parses a YAML schema document (the format sapctl reads
// from disk) into a Schema tree.
func LoadSchemaYAML(data []byte) (*Schema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}
	return docToSchema(doc), nil
}

func docToSchema(doc schemaDoc) *Schema {
	var opts []SchemaOption
	if doc.Description != "" {
		opts = append(opts, Describe(doc.Description))
	}

	switch doc.Type {
	case "string":
		var sopts []SchemaOption
		if doc.MinLength != nil {
			sopts = append(sopts, MinLength(*doc.MinLength))
		}
		if doc.MaxLength != nil {
			sopts = append(sopts, MaxLength(*doc.MaxLength))
		}
		if doc.Pattern != nil {
			sopts = append(sopts, Pattern(*doc.Pattern))
		}
		if doc.Format != nil {
			sopts = append(sopts, Format(*doc.Format))
		}
		return StringSchema(append(sopts, opts...)...)
	case "integer":
		return NumberSchemaFor(TagInteger, doc, opts)
	case "number":
		return NumberSchemaFor(TagNumber, doc, opts)
	case "boolean":
		return BooleanSchema(opts...)
	case "null":
		return NullSchema(opts...)
	case "literal":
		return LiteralSchema(FromNative(doc.Literal), opts...)
	case "enum":
		values := make([]*Value, len(doc.Enum))
		for i, e := range doc.Enum {
			values[i] = FromNative(e)
		}
		return EnumSchema(values, opts...)
	case "array":
		return ArraySchema(docToSchema(derefDoc(doc.Element)), opts...)
	case "tuple":
		elements := make([]*Schema, len(doc.Elements))
		for i, e := range doc.Elements {
			elements[i] = docToSchema(e)
		}
		var additional *Schema
		if doc.AdditionalItems != nil {
			additional = docToSchema(*doc.AdditionalItems)
		}
		return TupleSchema(elements, additional, doc.NoAdditionalItem, opts...)
	case "object":
		properties := NewFieldMap()
		for name, field := range doc.Properties {
			properties.Set(name, docToSchema(field))
		}
		return ObjectSchema(properties, doc.Required, nil, false, opts...)
	case "record":
		return RecordSchema(StringSchema(), docToSchema(derefDoc(doc.ValueSchema)), opts...)
	case "union":
		alts := make([]*Schema, len(doc.Alternatives))
		for i, a := range doc.Alternatives {
			alts[i] = docToSchema(a)
		}
		return UnionSchema(alts, opts...)
	case "intersect":
		alts := make([]*Schema, len(doc.Alternatives))
		for i, a := range doc.Alternatives {
			alts[i] = docToSchema(a)
		}
		return IntersectSchema(alts, opts...)
	case "optional":
		return OptionalSchema(docToSchema(derefDoc(doc.Inner)), opts...)
	case "ref":
		return RefSchema(doc.Ref, opts...)
	default:
		return AnySchema(opts...)
	}
}

// NumberSchemaFor builds an Integer or Number node with the numeric
// constraints common to both, keeping docToSchema's switch arms from
// duplicating the minimum/maximum wiring.
func NumberSchemaFor(tag Tag, doc schemaDoc, opts []SchemaOption) *Schema {
	var nopts []SchemaOption
	if doc.Minimum != nil {
		nopts = append(nopts, Minimum(*doc.Minimum))
	}
	if doc.Maximum != nil {
		nopts = append(nopts, Maximum(*doc.Maximum))
	}
	if doc.ExclusiveMinimum != nil {
		nopts = append(nopts, ExclusiveMinimum(*doc.ExclusiveMinimum))
	}
	if doc.ExclusiveMaximum != nil {
		nopts = append(nopts, ExclusiveMaximum(*doc.ExclusiveMaximum))
	}
	if doc.MultipleOf != nil {
		nopts = append(nopts, MultipleOf(*doc.MultipleOf))
	}
	nopts = append(nopts, opts...)
	if tag == TagInteger {
		return IntegerSchema(nopts...)
	}
	return NumberSchema(nopts...)
}

func derefDoc(d *schemaDoc) schemaDoc {
	if d == nil {
		return schemaDoc{Type: "any"}
	}
	return *d
}
