// Package gen contains the generator API and utils for working with generators.
package gen

//go:generate mockgen -write_package_comment=false -package=gen -destination=./mock.go github.com/gqlc/tsmock/gen Generator

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Document is a loaded GraphQL schema.
type Document struct {
	// Name is the base name of the first source, without extension.
	Name string

	// Schema is the validated schema, merged across all sources.
	Schema *ast.Schema

	// Doc holds the definitions as written, in source order.
	Doc *ast.SchemaDocument

	// Sources are the inputs the document was loaded from.
	Sources []*ast.Source
}

// Load parses and validates the given sources into a single Document.
func Load(name string, sources ...*ast.Source) (*Document, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("gen: no sources for %s", name)
	}

	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, err
	}

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, err
	}

	return &Document{Name: DocName(name), Schema: schema, Doc: doc, Sources: sources}, nil
}

// DocName strips the directory and extension from a source name.
func DocName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Generator provides a simple API for creating a code generator for
// any language desired.
//
type Generator interface {
	// Generate handles converting a GraphQL Document to scaffolded source code.
	Generate(ctx context.Context, doc *Document, opts map[string]interface{}) error
}

// GeneratorContext represents the directory to which
// the Generator is to write to.
//
type GeneratorContext interface {
	// Open opens a file in the GeneratorContext (i.e. directory).
	Open(filename string) (io.WriteCloser, error)
}

type genCtx string

var genCtxKey = genCtx("genCtx")

// WithContext returns a prepared context.Context
// with the given GeneratorContext.
//
func WithContext(ctx context.Context, gCtx GeneratorContext) context.Context {
	return context.WithValue(ctx, genCtxKey, gCtx)
}

// Context returns the generator context.
func Context(ctx context.Context) GeneratorContext {
	return ctx.Value(genCtxKey).(GeneratorContext)
}

// GeneratorError represents an error from a generator.
type GeneratorError struct {
	// DocName is the document being worked on when error was encountered.
	DocName string

	// GenName is the generator name which encountered a problem.
	GenName string

	// Msg is any message the generator wants to provide back to the caller.
	Msg string

	// Err is the underlying error, if any.
	Err error
}

func (e GeneratorError) Error() string {
	return fmt.Sprintf("tsmock: generator error occurred in %s:%s %s", e.GenName, e.DocName, e.Msg)
}

// Unwrap returns the underlying error.
func (e GeneratorError) Unwrap() error { return e.Err }
