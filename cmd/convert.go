// convert.go contains a converter from JSON introspection results to SDL.

package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

type inputValue struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	DefaultValue      *string  `json:"defaultValue"`
	Type              *typeRef `json:"type"`
	IsDeprecated      bool     `json:"isDeprecated"`
	DeprecationReason string   `json:"deprecationReason"`
}

type field struct {
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Args              []*inputValue `json:"args"`
	Type              *typeRef      `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason string        `json:"deprecationReason"`
}

type enumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason"`
}

type typeRef struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	OfType *typeRef `json:"ofType"`
}

type fullType struct {
	Kind          string        `json:"kind"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Fields        []*field      `json:"fields"`
	Interfaces    []*typeRef    `json:"interfaces"`
	PossibleTypes []*typeRef    `json:"possibleTypes"`
	EnumValues    []*enumValue  `json:"enumValues"`
	InputFields   []*inputValue `json:"inputFields"`
}

type directive struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Locations    []string      `json:"locations"`
	IsRepeatable bool          `json:"isRepeatable"`
	Args         []*inputValue `json:"args"`
}

type namedRef struct {
	Name string `json:"name"`
}

type schema struct {
	QueryType        *namedRef    `json:"queryType"`
	MutationType     *namedRef    `json:"mutationType"`
	SubscriptionType *namedRef    `json:"subscriptionType"`
	Types            []*fullType  `json:"types"`
	Directives       []*directive `json:"directives"`
}

type introspection struct {
	Schema *schema `json:"__schema"`
}

type gqlError struct {
	Message string `json:"message"`
}

// gqlResponse is a GraphQL response carrying an introspection result.
type gqlResponse struct {
	Data   *introspection `json:"data"`
	Errors []gqlError     `json:"errors"`
}

func (r *gqlResponse) err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return fmt.Errorf("tsmock: introspection failed: %s", strings.Join(msgs, "; "))
}

// convertIntrospection converts a JSON introspection result to SDL.
// Both the bare {"__schema": ...} form and a full {"data": ...} response
// are accepted.
//
func convertIntrospection(r io.Reader) (string, error) {
	var raw struct {
		gqlResponse
		introspection
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return "", err
	}
	if err := raw.err(); err != nil {
		return "", err
	}

	s := raw.Schema
	if raw.Data != nil && raw.Data.Schema != nil {
		s = raw.Data.Schema
	}
	if s == nil {
		return "", errors.New(`tsmock: expected field: "__schema"`)
	}

	var b bytes.Buffer
	formatter.NewFormatter(&b).FormatSchemaDocument(s.document())
	return b.String(), nil
}

func (s *schema) document() *ast.SchemaDocument {
	doc := new(ast.SchemaDocument)

	if def := s.definition(); def != nil {
		doc.Schema = append(doc.Schema, def)
	}

	for _, d := range s.Directives {
		if isBuiltinDirective(d.Name) {
			continue
		}

		dd := &ast.DirectiveDefinition{
			Description:  d.Description,
			Name:         d.Name,
			Arguments:    argDefs(d.Args),
			IsRepeatable: d.IsRepeatable,
		}
		for _, loc := range d.Locations {
			dd.Locations = append(dd.Locations, ast.DirectiveLocation(loc))
		}
		doc.Directives = append(doc.Directives, dd)
	}

	for _, t := range s.Types {
		// Skip introspection types and builtin types
		if strings.HasPrefix(t.Name, "__") || isBuiltinType(t.Name) {
			continue
		}
		if def := t.definition(); def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	return doc
}

// definition returns the schema definition, only needed when
// the root operation types have non default names.
//
func (s *schema) definition() *ast.SchemaDefinition {
	roots := []struct {
		op  ast.Operation
		ref *namedRef
	}{
		{ast.Query, s.QueryType},
		{ast.Mutation, s.MutationType},
		{ast.Subscription, s.SubscriptionType},
	}

	def := new(ast.SchemaDefinition)
	custom := false
	for _, root := range roots {
		if root.ref == nil || root.ref.Name == "" {
			continue
		}

		if !strings.EqualFold(root.ref.Name, string(root.op)) {
			custom = true
		}
		def.OperationTypes = append(def.OperationTypes, &ast.OperationTypeDefinition{
			Operation: root.op,
			Type:      root.ref.Name,
		})
	}
	if !custom {
		return nil
	}
	return def
}

func (t *fullType) definition() *ast.Definition {
	def := &ast.Definition{
		Name:        t.Name,
		Description: t.Description,
	}

	switch t.Kind {
	case "SCALAR":
		def.Kind = ast.Scalar
	case "OBJECT", "INTERFACE":
		def.Kind = ast.Object
		if t.Kind == "INTERFACE" {
			def.Kind = ast.Interface
		}
		for _, it := range t.Interfaces {
			def.Interfaces = append(def.Interfaces, it.Name)
		}
		for _, f := range t.Fields {
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Description: f.Description,
				Name:        f.Name,
				Arguments:   argDefs(f.Args),
				Type:        f.Type.astType(),
				Directives:  deprecated(f.IsDeprecated, f.DeprecationReason),
			})
		}
	case "UNION":
		def.Kind = ast.Union
		for _, m := range t.PossibleTypes {
			def.Types = append(def.Types, m.Name)
		}
	case "ENUM":
		def.Kind = ast.Enum
		for _, v := range t.EnumValues {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
				Description: v.Description,
				Name:        v.Name,
				Directives:  deprecated(v.IsDeprecated, v.DeprecationReason),
			})
		}
	case "INPUT_OBJECT":
		def.Kind = ast.InputObject
		for _, a := range t.InputFields {
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Description:  a.Description,
				Name:         a.Name,
				DefaultValue: literal(a.DefaultValue),
				Type:         a.Type.astType(),
			})
		}
	default:
		return nil
	}
	return def
}

func argDefs(args []*inputValue) ast.ArgumentDefinitionList {
	var out ast.ArgumentDefinitionList
	for _, a := range args {
		out = append(out, &ast.ArgumentDefinition{
			Description:  a.Description,
			Name:         a.Name,
			DefaultValue: literal(a.DefaultValue),
			Type:         a.Type.astType(),
		})
	}
	return out
}

// literal wraps an introspected default value, which is already
// printed as a GraphQL literal.
//
func literal(v *string) *ast.Value {
	if v == nil {
		return nil
	}
	return &ast.Value{Kind: ast.EnumValue, Raw: *v}
}

func deprecated(isDeprecated bool, reason string) ast.DirectiveList {
	if !isDeprecated {
		return nil
	}

	d := &ast.Directive{Name: "deprecated"}
	if reason != "" {
		d.Arguments = ast.ArgumentList{{
			Name:  "reason",
			Value: &ast.Value{Kind: ast.StringValue, Raw: reason},
		}}
	}
	return ast.DirectiveList{d}
}

func (t *typeRef) astType() *ast.Type {
	switch t.Kind {
	case "NON_NULL":
		nt := t.OfType.astType()
		nt.NonNull = true
		return nt
	case "LIST":
		return ast.ListType(t.OfType.astType(), nil)
	default:
		return ast.NamedType(t.Name, nil)
	}
}

func isBuiltinType(name string) bool {
	return name == "ID" || name == "Int" || name == "Float" || name == "String" || name == "Boolean"
}

func isBuiltinDirective(name string) bool {
	switch name {
	case "skip", "include", "deprecated", "specifiedBy", "oneOf", "defer":
		return true
	}
	return false
}
