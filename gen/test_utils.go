package gen

import (
	"bytes"
	"io"
)

// TestCtx is a noop closer, which wraps an io.Writer
// and only meant to be used for tests.
//
type TestCtx struct {
	io.Writer
}

// Open returns the underlying io.Writer.
func (ctx TestCtx) Open(filename string) (io.WriteCloser, error) { return ctx, nil }

// Close always returns nil.
func (ctx TestCtx) Close() error { return nil }

// FilesCtx collects every opened file in memory, keyed by filename.
type FilesCtx map[string]*bytes.Buffer

// Open returns a fresh buffer for filename.
func (ctx FilesCtx) Open(filename string) (io.WriteCloser, error) {
	b := new(bytes.Buffer)
	ctx[filename] = b
	return TestCtx{Writer: b}, nil
}
