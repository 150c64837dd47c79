package plugin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/gqlc/tsmock/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func helperCommand(t *testing.T, s ...string) (cmd *exec.Cmd) {
	cs := []string{"-test.run=TestHelperProcess", "--"}
	cs = append(cs, s...)
	cmd = exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

const (
	testGql = `scalar Test`
	outDoc  = `Doc received: test, Opts: hello=world!, Types: 1`
)

var testDoc *gen.Document

func TestMain(m *testing.M) {
	var err error
	testDoc, err = gen.Load("test.graphql", &ast.Source{Name: "test.graphql", Input: testGql})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// echoGenerator writes a summary of what it received.
type echoGenerator struct{}

func (echoGenerator) Generate(ctx context.Context, doc *gen.Document, opts map[string]interface{}) error {
	if opts["fail"] == true {
		return errors.New("asked to fail")
	}

	w, err := gen.Context(ctx).Open("test.txt")
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = fmt.Fprintf(w, "Doc received: %s, Opts: hello=%v, Types: %d", doc.Name, opts["hello"], len(doc.Doc.Definitions))
	return err
}

func TestGenerator_Generate(t *testing.T) {
	var b bytes.Buffer
	g := &Generator{
		Name: "test",
		Cmd:  helperCommand(t, "generate"),
	}
	ctx := gen.WithContext(context.Background(), gen.TestCtx{Writer: &b})

	err := g.Generate(ctx, testDoc, map[string]interface{}{"hello": "world!"})
	require.NoError(t, err)
	assert.Equal(t, outDoc, b.String())
	assert.Nil(t, g.Cmd)
}

func TestUnknownPlugin(t *testing.T) {
	g := &Generator{Name: "nonexistent", Prefix: "tsmock-gen-"}
	ctx := context.Background()

	err1 := g.Generate(ctx, &gen.Document{Name: "Test"}, nil)
	require.Error(t, err1)

	err2 := g.Generate(ctx, &gen.Document{Name: "Test"}, nil)
	require.Error(t, err2)

	var ce1, ce2 gen.GeneratorError
	require.True(t, errors.As(err1, &ce1))
	require.True(t, errors.As(err2, &ce2))
	assert.Equal(t, ce1.Msg, ce2.Msg)
	assert.Equal(t, "tsmock-gen-nonexistent", ce1.GenName)
	assert.ErrorIs(t, err1, exec.ErrNotFound)
}

func TestMalformedResponse(t *testing.T) {
	var b bytes.Buffer
	g := &Generator{
		Name: "test",
		Cmd:  helperCommand(t, "malformed"),
	}
	ctx := gen.WithContext(context.Background(), gen.TestCtx{Writer: &b})

	err := g.Generate(ctx, testDoc, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}

func TestResponseError(t *testing.T) {
	var b bytes.Buffer
	g := &Generator{
		Name: "test",
		Cmd:  helperCommand(t, "generate"),
	}
	ctx := gen.WithContext(context.Background(), gen.TestCtx{Writer: &b})

	err := g.Generate(ctx, testDoc, map[string]interface{}{"fail": true})
	require.Error(t, err)

	var cerr gen.GeneratorError
	require.True(t, errors.As(err, &cerr))
	assert.Contains(t, cerr.Msg, "asked to fail")
	assert.Zero(t, b.Len())
}

type testCtx struct {
	opener func(filename string) (io.WriteCloser, error)
	w      io.WriteCloser
}

func (ctx *testCtx) Open(filename string) (io.WriteCloser, error) {
	if ctx.opener != nil {
		return ctx.opener(filename)
	}
	return ctx.w, nil
}

type testErrWriter struct {
	err error
}

func (wc *testErrWriter) Write(b []byte) (int, error) { return 0, wc.err }
func (wc *testErrWriter) Close() error                { return wc.err }

func TestContextErrors(t *testing.T) {
	t.Run("ErrOnCtxOpen", func(subT *testing.T) {
		g := &Generator{
			Name: "test",
			Cmd:  helperCommand(subT, "generate"),
		}
		ctx := gen.WithContext(context.Background(), &testCtx{opener: func(string) (io.WriteCloser, error) { return nil, fmt.Errorf("test error") }})

		err := g.Generate(ctx, testDoc, map[string]interface{}{"hello": "world!"})
		require.Error(subT, err)
		assert.Equal(subT, "tsmock: generator error occurred in test:test test error", err.Error())
	})

	t.Run("ErrOnCtxWrite", func(subT *testing.T) {
		g := &Generator{
			Name: "test",
			Cmd:  helperCommand(subT, "generate"),
		}
		ctx := gen.WithContext(context.Background(), &testCtx{w: &testErrWriter{err: io.EOF}})

		err := g.Generate(ctx, testDoc, map[string]interface{}{"hello": "world!"})
		require.Error(subT, err)
		assert.Equal(subT, "tsmock: generator error occurred in test:test EOF", err.Error())
	})
}

func TestServe(t *testing.T) {
	t.Run("Files", func(subT *testing.T) {
		in, err := json.Marshal(&Request{
			FileToGenerate: "api.graphql",
			Parameter:      map[string]interface{}{"hello": "there"},
			Sources:        []*Source{{Name: "api.graphql", Input: "scalar A\nscalar B"}},
		})
		require.NoError(subT, err)

		var out bytes.Buffer
		require.NoError(subT, Serve(context.Background(), echoGenerator{}, bytes.NewReader(in), &out))

		var resp Response
		require.NoError(subT, json.Unmarshal(out.Bytes(), &resp))
		assert.Empty(subT, resp.Error)
		require.Len(subT, resp.File, 1)
		assert.Equal(subT, "test.txt", resp.File[0].Name)
		assert.Equal(subT, "Doc received: api, Opts: hello=there, Types: 2", resp.File[0].Content)
	})

	t.Run("InvalidSchema", func(subT *testing.T) {
		in := `{"fileToGenerate":"bad","sources":[{"name":"bad.graphql","input":"type A { b: Missing }"}]}`

		var out bytes.Buffer
		require.NoError(subT, Serve(context.Background(), echoGenerator{}, strings.NewReader(in), &out))

		var resp Response
		require.NoError(subT, json.Unmarshal(out.Bytes(), &resp))
		assert.Contains(subT, resp.Error, "Missing")
		assert.Empty(subT, resp.File)
	})

	t.Run("MalformedRequest", func(subT *testing.T) {
		err := Serve(context.Background(), echoGenerator{}, strings.NewReader("{"), io.Discard)
		assert.Error(subT, err)
	})
}

// TestHelperProcess isn't a real test. It's used as a helper process
// for the Generator tests.
//
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	defer os.Exit(0)

	args := os.Args
	for len(args) > 0 {
		if args[0] == "--" {
			args = args[1:]
			break
		}
		args = args[1:]
	}
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "No command\n")
		os.Exit(2)
	}

	switch args[0] {
	case "generate":
		if err := Serve(context.Background(), echoGenerator{}, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "malformed":
		io.Copy(io.Discard, os.Stdin)
		fmt.Println()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", args[0])
		os.Exit(2)
	}
}
