// Package tsmock contains a TypeScript mock factory generator for GraphQL schemas.
//
// For every object, input and interface type it emits a factory returning a
// fully populated value of the type, which callers can partially override:
//
//	export const aUser = (overrides?: Partial<User>): User => {
//	    return {
//	        id: overrides && overrides.hasOwnProperty('id') ? overrides.id! : '0550ff93-dd31-49b4-8c38-ff1cb68bdc38',
//	    };
//	};
//
package tsmock

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/gqlc/tsmock/gen"
	"github.com/gqlc/tsmock/value"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

// Generator generates TypeScript mock factories for a GraphQL schema.
type Generator struct {
	sync.Mutex
	bytes.Buffer

	indent []byte
}

// Reset overrides the bytes.Buffer Reset method to assist in cleaning up some Generator state.
func (g *Generator) Reset() {
	g.Buffer.Reset()
	if g.indent == nil {
		g.indent = make([]byte, 0, 12)
	}
	g.indent = g.indent[0:0]
}

// Generate renders the mocks of doc and writes them to the generator context.
// The file is named after the document unless the "filename" option is set.
func (g *Generator) Generate(ctx context.Context, doc *gen.Document, opts map[string]interface{}) (err error) {
	g.Lock()
	defer func() {
		if err != nil {
			err = gen.GeneratorError{
				DocName: doc.Name,
				GenName: "tsmock",
				Msg:     err.Error(),
				Err:     err,
			}
		}
	}()
	defer g.Unlock()

	gOpts, err := DecodeOptions(opts)
	if err != nil {
		return err
	}

	src, err := g.render(doc, gOpts)
	if err != nil {
		return err
	}

	name := gOpts.Filename
	if name == "" {
		name = doc.Name + ".mocks.ts"
	}

	f, err := gen.Context(ctx).Open(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(f, src)
	return
}

// Render returns the mock source for doc.
func (g *Generator) Render(doc *gen.Document, opts *Options) (string, error) {
	g.Lock()
	defer g.Unlock()
	return g.render(doc, opts)
}

func (g *Generator) render(doc *gen.Document, opts *Options) (string, error) {
	g.Reset()

	backend, err := value.New(value.Config{
		Library: opts.GenerateLibrary,
		Dynamic: opts.DynamicValues,
		Locale:  opts.Locale,
	})
	if errors.Is(err, value.ErrUnknownLocale) {
		return "", &ConfigError{Option: "locale", Value: opts.Locale, Cause: err}
	}
	if err != nil {
		return "", &ConfigError{Option: "generateLibrary", Value: opts.GenerateLibrary, Cause: err}
	}

	defs := mockable(doc, opts)
	reg := NewRegistry(doc.Doc.Definitions, opts.UseImplementingTypes)
	gn := newGeneration(opts, reg, backend)

	zap.L().Debug("rendering mocks",
		zap.String("doc", doc.Name),
		zap.String("library", string(backend.Library())),
		zap.Bool("dynamic", backend.Dynamic()),
		zap.Int("registry", reg.Len()),
	)

	tokens := backend.Tokens()
	if backend.Dynamic() {
		g.P(tokens.Import)
	}
	g.WriteString(gn.imports(defs))
	if backend.Dynamic() {
		g.P()
		g.P(tokens.Seed)
		if opts.DefineWeightedChoice {
			g.P()
			g.P("const weightedChoice = ", value.WeightedChoiceSource)
		}
	}

	if len(defs) == 0 {
		g.WriteByte('\n')
	}
	for _, def := range defs {
		if err = g.factory(gn, doc, def); err != nil {
			return "", err
		}
	}

	if backend.Dynamic() {
		g.P()
		g.P(tokens.SeedFunction)
	}

	zap.L().Debug("rendered mocks", zap.String("doc", doc.Name), zap.Int("factories", len(defs)))
	return g.String(), nil
}

// mockable returns the definitions which get a factory, in source order.
func mockable(doc *gen.Document, opts *Options) []*ast.Definition {
	var defs []*ast.Definition
	for _, def := range doc.Doc.Definitions {
		switch def.Kind {
		case ast.Object, ast.InputObject, ast.Interface:
		default:
			continue
		}
		if !opts.included(def.Name) {
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

// fields returns the fields of def merged across sources.
func fields(doc *gen.Document, def *ast.Definition) ast.FieldList {
	list := def.Fields
	if doc.Schema != nil {
		if merged, ok := doc.Schema.Types[def.Name]; ok {
			list = merged.Fields
		}
	}

	out := make(ast.FieldList, 0, len(list))
	for _, f := range list {
		if strings.HasPrefix(f.Name, "__") {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (g *Generator) factory(gn *generation, doc *gen.Document, def *ast.Definition) error {
	opts := gn.opts
	input := def.Kind == ast.InputObject
	cased := gn.cased(def.Name)
	ref := gn.ref(def.Name)

	params := "overrides?: Partial<" + ref + ">"
	if opts.TerminateCircularRelationships != CircularOff {
		params += ", _relationshipsToOmit: Set<string> = new Set()"
	}
	ret := ref
	typename := opts.AddTypename && !input
	if typename {
		ret = "{ __typename: '" + def.Name + "' } & " + ref
	}

	g.P()
	g.P("export const ", gn.mock(def.Name), " = (", params, "): ", ret, " => {")
	g.In()
	switch opts.TerminateCircularRelationships {
	case CircularCopy:
		g.P("const relationshipsToOmit: Set<string> = new Set(_relationshipsToOmit);")
		g.P("relationshipsToOmit.add('", cased, "');")
	case CircularImmediate:
		g.P("const relationshipsToOmit: Set<string> = _relationshipsToOmit;")
		g.P("relationshipsToOmit.add('", cased, "');")
	}
	g.P("return {")
	g.In()
	if typename {
		g.P("__typename: '", def.Name, "',")
	}

	list := fields(doc, def)
	if len(list) == 0 {
		g.WriteByte('\n')
	}
	for _, field := range list {
		v, err := gn.resolve(fieldCtx{typeName: def.Name, fieldName: field.Name, input: input}, field.Type)
		if err != nil {
			return err
		}
		g.P(field.Name, ": overrides && overrides.hasOwnProperty('", field.Name, "') ? overrides.", field.Name, "! : ", v, ",")
	}
	g.Out()
	g.P("};")
	g.Out()
	g.P("};")
	return nil
}

// P prints a line to the generators internal buffer.
func (g *Generator) P(str ...interface{}) {
	if len(str) > 0 {
		g.Write(g.indent)
	}
	for _, s := range str {
		switch v := s.(type) {
		case []byte:
			g.Write(v)
		case string:
			g.WriteString(v)
		}
	}
	g.WriteByte('\n')
}

// In increases the indent.
func (g *Generator) In() {
	g.indent = append(g.indent, ' ', ' ', ' ', ' ')
}

// Out decreases the indent.
func (g *Generator) Out() {
	if len(g.indent) > 0 {
		g.indent = g.indent[:len(g.indent)-4]
	}
}
