// Package plugin contains a Generator for running external plugins as Generators,
// along with Serve for implementing the plugin side of the protocol.
//
// A plugin is an executable which reads a JSON encoded Request from stdin
// and writes a JSON encoded Response to stdout.
//
package plugin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os/exec"
	"sort"
	"sync"

	"github.com/gqlc/tsmock/gen"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

// Request is sent to a plugin.
type Request struct {
	// FileToGenerate is the document name.
	FileToGenerate string `json:"fileToGenerate"`

	// Parameter holds the generator options.
	Parameter map[string]interface{} `json:"parameter,omitempty"`

	// Sources are the GraphQL SDL sources of the document.
	Sources []*Source `json:"sources"`
}

// Source is a single GraphQL SDL input.
type Source struct {
	Name  string `json:"name"`
	Input string `json:"input"`
}

// Response is returned by a plugin.
type Response struct {
	Error string  `json:"error,omitempty"`
	File  []*File `json:"file,omitempty"`
}

// File is an output file of a plugin.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Generator executes an external plugin as a generator.
// The name of the plugin is given by the generators Prefix and Name fields.
//
type Generator struct {
	*exec.Cmd

	Name   string
	Prefix string

	lookOnce    sync.Once
	path        string
	lookPathErr error
}

// Generate executes a plugin given the GraphQL Document.
func (g *Generator) Generate(ctx context.Context, doc *gen.Document, opts map[string]interface{}) (err error) {
	defer func() {
		if err != nil {
			err = gen.GeneratorError{
				GenName: g.Prefix + g.Name,
				DocName: doc.Name,
				Msg:     err.Error(),
				Err:     err,
			}
		}
	}()

	log := zap.L().Named(g.Name).With(zap.String("doc", doc.Name))

	if g.Cmd == nil {
		g.lookOnce.Do(func() {
			g.path, g.lookPathErr = exec.LookPath(g.Prefix + g.Name)
		})
		if g.lookPathErr != nil {
			return g.lookPathErr
		}
		g.Cmd = exec.CommandContext(ctx, g.path)
	}
	defer func() { g.Cmd = nil }()

	log.Debug("marshalling request")
	req := &Request{FileToGenerate: doc.Name, Parameter: opts}
	for _, src := range doc.Sources {
		req.Sources = append(req.Sources, &Source{Name: src.Name, Input: src.Input})
	}
	in, err := json.Marshal(req)
	if err != nil {
		return
	}

	out := new(bytes.Buffer)
	g.Stdin = bytes.NewReader(in)
	g.Stdout = out

	log.Info("executing plugin")
	if err = g.Run(); err != nil {
		return
	}

	var resp Response
	if err = json.NewDecoder(out).Decode(&resp); err != nil {
		return
	}
	if resp.Error != "" {
		return errors.New(resp.Error)
	}

	gCtx := gen.Context(ctx)
	for _, f := range resp.File {
		log.Info("writing content from plugin", zap.String("file", f.Name))

		w, ferr := gCtx.Open(f.Name)
		if ferr != nil {
			return ferr
		}

		_, err = io.WriteString(w, f.Content)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return
		}
	}
	return
}

// Serve reads a single Request from r, runs g over it and writes the Response to w.
// Generator failures are reported in the Response, while I/O failures are returned.
//
func Serve(ctx context.Context, g gen.Generator, r io.Reader, w io.Writer) error {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return err
	}

	resp := run(ctx, g, &req)
	return json.NewEncoder(w).Encode(resp)
}

func run(ctx context.Context, g gen.Generator, req *Request) *Response {
	srcs := make([]*ast.Source, 0, len(req.Sources))
	for _, s := range req.Sources {
		srcs = append(srcs, &ast.Source{Name: s.Name, Input: s.Input})
	}

	doc, err := gen.Load(req.FileToGenerate, srcs...)
	if err != nil {
		return &Response{Error: err.Error()}
	}

	files := make(gen.FilesCtx)
	err = g.Generate(gen.WithContext(ctx, files), doc, req.Parameter)
	if err != nil {
		return &Response{Error: err.Error()}
	}

	resp := new(Response)
	for name, b := range files {
		resp.File = append(resp.File, &File{Name: name, Content: b.String()})
	}
	sort.Slice(resp.File, func(i, j int) bool { return resp.File[i].Name < resp.File[j].Name })
	return resp
}
