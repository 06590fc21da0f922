// Package docs turns a resolved hover context plus a schema snapshot into a
// documentation payload and renders it for display.
package docs

import (
	"fmt"
	"strconv"
	"strings"

	"enerdocs.dev/idfls/internal/idf"
	"enerdocs.dev/idfls/internal/schema"
)

// Payload is the structured documentation for a class name or a single
// positional field. Only the fields relevant to the context kind are set.
type Payload struct {
	Title string
	Group string
	Memo  string

	// Class summaries: non-default object properties, one line each.
	Properties []string

	// Field details.
	IsField   bool
	FieldType string
	Units     string
	Range     string
	Default   string
	Choices   []string
	Flags     []string
}

// ForContext looks the context up in the schema and builds its payload. A
// missing class, a field index past the known list, or a nil schema all
// yield nil: "nothing to show" is a result here, never an error.
func ForContext(ctx *idf.HoverContext, s *schema.Schema) *Payload {
	if ctx == nil {
		return nil
	}
	obj := s.Lookup(ctx.ClassName)
	if obj == nil {
		return nil
	}
	if ctx.ClassNameHit {
		return forObjectType(obj)
	}
	field := obj.Field(ctx.FieldIndex)
	if field == nil {
		return nil
	}
	return forField(obj, field)
}

func forObjectType(obj *schema.ObjectType) *Payload {
	p := &Payload{
		Title: obj.Name,
		Group: obj.Group,
		Memo:  obj.Memo,
	}
	if obj.IsUnique {
		p.Properties = append(p.Properties, "unique: at most one per document")
	}
	if obj.IsRequired {
		p.Properties = append(p.Properties, "required object")
	}
	if obj.MinFields > 0 {
		p.Properties = append(p.Properties, fmt.Sprintf("minimum fields: %d", obj.MinFields))
	}
	if obj.Extensible > 0 {
		p.Properties = append(p.Properties, fmt.Sprintf("extensible in groups of %d", obj.Extensible))
	}
	return p
}

func forField(obj *schema.ObjectType, field *schema.Field) *Payload {
	p := &Payload{
		Title:     field.DisplayName(),
		Group:     obj.Name,
		Memo:      field.Memo,
		IsField:   true,
		FieldType: string(field.Type),
		Units:     field.Units,
		Range:     rangeText(field),
		Default:   field.Default,
		Choices:   field.Choices,
	}
	if field.Required {
		p.Flags = append(p.Flags, "required")
	}
	if field.Autosizable {
		p.Flags = append(p.Flags, "autosizable")
	}
	if field.Autocalculatable {
		p.Flags = append(p.Flags, "autocalculatable")
	}
	return p
}

// rangeText renders the numeric constraint with inclusive/exclusive wording:
// minimum=0, maximum=100 with an exclusive maximum reads "≥ 0 and < 100".
func rangeText(field *schema.Field) string {
	var parts []string
	if field.Minimum != nil {
		op := "≥"
		if field.ExclusiveMinimum {
			op = ">"
		}
		parts = append(parts, op+" "+formatBound(*field.Minimum))
	}
	if field.Maximum != nil {
		op := "≤"
		if field.ExclusiveMaximum {
			op = "<"
		}
		parts = append(parts, op+" "+formatBound(*field.Maximum))
	}
	return strings.Join(parts, " and ")
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
