package tsmock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gqlc/tsmock/value"
	"github.com/vektah/gqlparser/v2/ast"
)

// generation is the state shared by every field of one render.
// Only the backend's seed changes while fields are resolved.
type generation struct {
	opts    *Options
	reg     *Registry
	backend value.Backend

	typeName  converter
	enumValue converter
}

func newGeneration(opts *Options, reg *Registry, backend value.Backend) *generation {
	return &generation{
		opts:      opts,
		reg:       reg,
		backend:   backend,
		typeName:  newConverter(opts.TypeNames, opts.TransformUnderscore),
		enumValue: newConverter(opts.EnumValues, !opts.EnumsAsTypes),
	}
}

// fieldCtx locates the field being resolved.
type fieldCtx struct {
	typeName  string
	fieldName string
	nonNull   bool
	input     bool
}

// cased returns the type name under the type naming convention.
func (g *generation) cased(name string) string { return g.typeName(name, "") }

// mock returns the factory name of a type.
func (g *generation) mock(name string) string {
	return mockName(name, g.cased(name), g.opts.Prefix)
}

// ref returns how generated code refers to the TypeScript type of name.
func (g *generation) ref(name string) string {
	if mapped, ok := g.opts.TypeNamesMapping[name]; ok {
		name += " as " + mapped
	}
	return g.typeName(name, g.opts.TypesPrefix)
}

// resolve maps a field type onto a TypeScript expression.
func (g *generation) resolve(f fieldCtx, t *ast.Type) (string, error) {
	if t.NonNull {
		f.nonNull = true
	}
	if t.Elem != nil {
		return g.list(f, t.Elem)
	}
	return g.named(f, t.NamedType)
}

func (g *generation) list(f fieldCtx, elem *ast.Type) (string, error) {
	if _, ok := g.exact(f); !ok && g.opts.DefaultNullableToNull && !f.nonNull {
		return "null", nil
	}

	n := g.opts.listCount()
	vals := make([]string, n)
	for i := range vals {
		ef := f
		if n != 1 {
			ef.fieldName = f.fieldName + strconv.Itoa(i)
		}

		v, err := g.resolve(ef, elem)
		if err != nil {
			return "", err
		}
		vals[i] = v
	}
	return "[" + strings.Join(vals, ", ") + "]", nil
}

func (g *generation) named(f fieldCtx, name string) (string, error) {
	if !g.backend.Dynamic() {
		g.backend.Seed(int64(value.Hash(f.typeName + f.fieldName)))
	}

	switch name {
	case "String":
		return g.generate(f, g.scalar(f, name), g.backend.Word)
	case "Float":
		return g.generate(f, g.scalar(f, name), g.backend.Float)
	case "ID":
		return g.generate(f, g.scalar(f, name), g.backend.UUID)
	case "Boolean":
		return g.generate(f, g.scalar(f, name), g.backend.Boolean)
	case "Int":
		return g.generate(f, g.scalar(f, name), g.backend.Integer)
	}

	found := g.reg.Lookup(name)
	if len(found) == 0 {
		return g.object(f, name)
	}

	switch e := found[0]; e.Kind {
	case KindEnum:
		return g.generate(f, nil, func() string { return g.enum(e) })
	case KindUnion:
		if len(e.Members) == 0 {
			return "", &SchemaError{Type: f.typeName, Field: f.fieldName, Message: "union " + e.Name + " has no members"}
		}
		return g.named(f, e.Members[0])
	case KindScalar:
		base := g.backend.Word
		if e.Name == "Date" {
			base = g.backend.Date
		}
		return g.generate(f, g.scalar(f, e.Name), base)
	case KindImplement:
		if _, ok := g.exact(f); ok {
			return g.object(f, name)
		}

		calls := make([]string, len(found))
		for i, impl := range found {
			calls[i] = g.mock(impl.Name) + "()"
		}
		return strings.Join(calls, " || "), nil
	default:
		return "", &SchemaError{
			Type:    f.typeName,
			Field:   f.fieldName,
			Message: fmt.Sprintf("unknown kind %s for %s", e.Kind, e.Name),
		}
	}
}

// object references the factory of an object, input or interface type.
func (g *generation) object(f fieldCtx, name string) (string, error) {
	return g.generate(f, nil, func() string {
		if g.opts.TerminateCircularRelationships == CircularOff {
			return g.mock(name) + "()"
		}
		cased := g.cased(name)
		return fmt.Sprintf("relationshipsToOmit.has('%s') ? {} as %s : %s({}, relationshipsToOmit)", cased, g.ref(name), g.mock(name))
	})
}

func (g *generation) enum(e *Entry) string {
	var v string
	if len(e.Values) > 0 {
		v = e.Values[0]
	}

	if !g.opts.EnumsAsTypes {
		return g.typeName(e.Name, g.opts.EnumsPrefix) + "." + g.enumValue(v, "")
	}
	if g.opts.UseTypeImports {
		return fmt.Sprintf("(%s as %s)", value.Quote(v), g.typeName(e.Name, g.opts.EnumsPrefix))
	}
	return value.Quote(v)
}

// generate applies the override chain ahead of the base generator.
func (g *generation) generate(f fieldCtx, scalar value.Definitions, base func() string) (string, error) {
	if defs, ok := g.exact(f); ok {
		return g.choose(f, defs)
	}
	if defs, ok := g.opts.FieldGeneration["_all"][f.fieldName]; ok {
		return g.choose(f, defs)
	}
	if scalar != nil {
		return g.choose(f, scalar)
	}
	if g.opts.DefaultNullableToNull && !f.nonNull {
		return "null", nil
	}
	return base(), nil
}

// exact returns the generators configured for this very type and field.
func (g *generation) exact(f fieldCtx) (value.Definitions, bool) {
	defs, ok := g.opts.FieldGeneration[f.typeName][f.fieldName]
	return defs, ok
}

func (g *generation) scalar(f fieldCtx, name string) value.Definitions {
	m, ok := g.opts.Scalars[name]
	if !ok {
		return nil
	}
	return m.defs(f.input)
}

func (g *generation) choose(f fieldCtx, defs value.Definitions) (string, error) {
	v, err := value.Choose(g.backend, defs)
	if err != nil {
		return "", &ConfigError{Message: "generator for " + f.typeName + "." + f.fieldName, Cause: err}
	}
	return v, nil
}
