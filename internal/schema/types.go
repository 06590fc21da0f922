// Package schema models the compact IDD schema document that powers hover
// documentation: object type definitions, positional field metadata, and the
// cache that loads the document on demand.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
)

// FieldType is the value domain of a positional field.
type FieldType string

const (
	FieldReal         FieldType = "real"
	FieldInteger      FieldType = "integer"
	FieldAlpha        FieldType = "alpha"
	FieldChoice       FieldType = "choice"
	FieldObjectList   FieldType = "object-list"
	FieldExternalList FieldType = "external-list"
	FieldNode         FieldType = "node"
)

// Field describes one positional field of an object type.
type Field struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             FieldType `json:"type"`
	Required         bool      `json:"required"`
	Default          string    `json:"default,omitempty"`
	Units            string    `json:"units,omitempty"`
	Minimum          *float64  `json:"minimum,omitempty"`
	ExclusiveMinimum bool      `json:"exclusiveMinimum,omitempty"`
	Maximum          *float64  `json:"maximum,omitempty"`
	ExclusiveMaximum bool      `json:"exclusiveMaximum,omitempty"`
	Choices          []string  `json:"choices,omitempty"`
	Memo             string    `json:"memo,omitempty"`
	Autosizable      bool      `json:"autosizable,omitempty"`
	Autocalculatable bool      `json:"autocalculatable,omitempty"`
}

// DisplayName returns the field's human-readable name, falling back to its
// positional id (A1, N3, ...) when the dictionary never named it.
func (f *Field) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

// ObjectType describes one class of record.
type ObjectType struct {
	Name       string   `json:"name"`
	Group      string   `json:"group,omitempty"`
	Memo       string   `json:"memo,omitempty"`
	Fields     []*Field `json:"fields"`
	MinFields  int      `json:"minFields,omitempty"`
	IsUnique   bool     `json:"isUnique,omitempty"`
	IsRequired bool     `json:"isRequired,omitempty"`
	Extensible int      `json:"extensible,omitempty"`
}

// Field returns the field at the given zero-based position, or nil when the
// index is past the fixed field list. Extensible trailing groups are not
// unrolled; positions beyond the list simply have no documentation.
func (o *ObjectType) Field(index int) *Field {
	if index < 0 || index >= len(o.Fields) {
		return nil
	}
	return o.Fields[index]
}

// Schema is the root document: a version string and the object types keyed
// by lowercase class name. Immutable once loaded.
type Schema struct {
	Version     string                 `json:"version"`
	ObjectTypes map[string]*ObjectType `json:"objectTypes"`
}

// Lookup finds an object type by class name, case-insensitively. The
// document's keys are always lowercase, so the candidate is lowercased
// before indexing.
func (s *Schema) Lookup(className string) *ObjectType {
	if s == nil {
		return nil
	}
	return s.ObjectTypes[strings.ToLower(strings.TrimSpace(className))]
}

// ClassNames returns the lowercase class names in no particular order, for
// seeding the lexer's known-class set.
func (s *Schema) ClassNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.ObjectTypes))
	for name := range s.ObjectTypes {
		names = append(names, name)
	}
	return names
}

// Parse decodes a compact schema document. Comments are tolerated so that
// hand-maintained schema files can be annotated.
func Parse(content []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(jsonc.ToJSON(content), &s); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}
	if s.ObjectTypes == nil {
		return nil, fmt.Errorf("invalid schema document: missing objectTypes")
	}
	return &s, nil
}
