package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"text/scanner"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gqlc/tsmock/gen"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const rootLong = `tsmock generates TypeScript mock factories from GraphQL schemas.

Schemas are given as .graphql/.gql files, glob patterns, .json introspection
results or http(s) URLs. URLs ending in /graphql are introspected.

Generators are specified by using a *_out flag. The argument given to this
type of flag can be either:
	1) *_out=some/directory/to/output/file(s)/to
	2) *_out=comma=separated,key=val,generator=option,pairs=then:some/directory/to/output/file(s)/to

An additional flag, *_opt, can be used to pass options to a generator. The
argument given to this type of flag is the same format as the *_opt
key=value pairs above. Nested options are set in a config file.`

type rootCmd struct {
	baseCmd

	fs     afero.Fs
	client *fetchClient
	gens   []*generator

	importPaths []string
	headers     http.Header
	configFile  string
	watch       bool
	verbose     bool

	cfg *Config
}

func newRootCmd(fs afero.Fs, client *http.Client, gens []*generator) *rootCmd {
	rc := &rootCmd{
		fs:      fs,
		client:  &fetchClient{Client: client},
		gens:    gens,
		headers: make(http.Header),
		cfg:     new(Config),
	}

	rc.Command = &cobra.Command{
		Use:               "tsmock",
		Short:             "A GraphQL to TypeScript mock generator",
		Long:              rootLong,
		Example:           `tsmock --tsmock_out=typesFile="../types",addTypename:./src/mocks schema.graphql`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: rc.setupLogging,
		PreRunE: chainPreRunEs(
			rc.loadConfig,
			validateFilenames,
			initGenDirs(fs, gens),
		),
		RunE: rc.run,
	}

	flags := rc.Flags()
	flags.StringSliceVarP(&rc.importPaths, "import_path", "I", []string{"."}, `Specify the directory in which to search for
schema files.  May be specified multiple times;
directories will be searched in order.  If not
given, the current working directory is used.`)
	flags.VarP(&headerFlag{value: &rc.headers}, "header", "H", "HTTP headers for fetching remote schemas, key=value")
	flags.StringVarP(&rc.configFile, "config", "c", "", "Load generators and options from a YAML or JSON file")
	flags.BoolVarP(&rc.watch, "watch", "w", false, "Regenerate whenever a local schema file changes")
	rc.PersistentFlags().BoolVarP(&rc.verbose, "verbose", "v", false, "Output logging")

	fp := &fparser{Scanner: new(scanner.Scanner)}
	for _, g := range gens {
		flags.Var(&genFlag{gen: g, fp: fp}, g.outFlag, g.help)
		flags.Var(&genFlag{gen: g, fp: fp, isOpt: true}, g.optFlag, "Pass additional options to the "+g.name+" generator")
	}

	rc.SetUsageTemplate(usageTmpl)
	return rc
}

func (rc *rootCmd) setupLogging(cmd *cobra.Command, args []string) error {
	if !rc.verbose {
		return nil
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}

func (rc *rootCmd) loadConfig(cmd *cobra.Command, args []string) error {
	if rc.configFile == "" {
		return nil
	}

	cfg, err := loadConfig(rc.fs, rc.configFile)
	if err != nil {
		return err
	}
	if err = validateFilenames(cmd, cfg.Schema); err != nil {
		return err
	}
	if err = cfg.apply(rc.gens); err != nil {
		return err
	}

	for k, v := range cfg.Headers {
		if rc.headers.Get(k) == "" {
			rc.headers.Set(k, v)
		}
	}

	rc.cfg = cfg
	return nil
}

func (rc *rootCmd) run(cmd *cobra.Command, args []string) error {
	inputs := append(append([]string(nil), rc.cfg.Schema...), args...)
	if len(inputs) == 0 {
		return cmd.Help()
	}
	if len(rc.enabled()) == 0 {
		return fmt.Errorf("tsmock: no generators specified")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := rc.generate(ctx, inputs); err != nil {
		return err
	}
	if !rc.watch {
		return nil
	}

	targets, err := watchTargets(rc.fs, rc.importPaths, inputs)
	if err != nil {
		return err
	}

	ws, err := newWatchSet(targets)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return watchInputs(ctx, ws, func(ctx context.Context) {
		if err := rc.generate(ctx, inputs); err != nil {
			zap.L().Error("regenerating mocks", zap.Error(err))
		}
	})
}

func (rc *rootCmd) enabled() []*generator {
	var gens []*generator
	for _, g := range rc.gens {
		if g.enabled {
			gens = append(gens, g)
		}
	}
	return gens
}

// generate loads the inputs and runs every enabled generator concurrently.
func (rc *rootCmd) generate(ctx context.Context, inputs []string) error {
	doc, err := rc.load(ctx, inputs)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, g := range rc.enabled() {
		g := g
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = recovered(r)
				}
			}()

			zap.L().Info("running generator", zap.String("generator", g.name), zap.String("doc", doc.Name), zap.String("dir", g.outDir))
			gCtx := gen.WithContext(ctx, &genCtx{dir: g.outDir, fs: rc.fs})
			return g.Generate(gCtx, doc, g.options())
		})
	}
	return eg.Wait()
}

// load reads every input into a single Document.
func (rc *rootCmd) load(ctx context.Context, inputs []string) (*gen.Document, error) {
	var srcs []*ast.Source
	for _, in := range inputs {
		s, err := rc.sources(ctx, in)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, s...)
	}
	if len(srcs) == 0 {
		return nil, fmt.Errorf("tsmock: no schema files matched: %v", inputs)
	}

	zap.L().Debug("loading schema", zap.Int("sources", len(srcs)))
	return gen.Load(srcs[0].Name, srcs...)
}

func (rc *rootCmd) sources(ctx context.Context, input string) ([]*ast.Source, error) {
	switch {
	case isURL(input):
		u, err := url.Parse(input)
		if err != nil {
			return nil, err
		}

		src, err := rc.client.fetch(ctx, u, rc.headers)
		if err != nil {
			return nil, err
		}
		return []*ast.Source{src}, nil
	case isGlob(input):
		names, err := glob(rc.fs, input)
		if err != nil {
			return nil, err
		}

		srcs := make([]*ast.Source, 0, len(names))
		for _, name := range names {
			src, err := readSource(rc.fs, nil, name)
			if err != nil {
				return nil, err
			}
			srcs = append(srcs, src)
		}
		return srcs, nil
	default:
		src, err := readSource(rc.fs, rc.importPaths, input)
		if err != nil {
			return nil, err
		}
		return []*ast.Source{src}, nil
	}
}

// glob returns the files matching pattern, in lexical order.
func glob(fs afero.Fs, pattern string) (matches []string, err error) {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))

	err = afero.Walk(fs, filepath.FromSlash(base), func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ok, merr := doublestar.PathMatch(pattern, p)
		if merr != nil {
			return merr
		}
		if ok && schemaFile(p) {
			matches = append(matches, p)
		}
		return nil
	})
	return
}

// readSource reads a schema file, converting introspection results to SDL.
func readSource(fs afero.Fs, importPaths []string, name string) (*ast.Source, error) {
	f, err := openFile(fs, importPaths, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if filepath.Ext(name) == ".json" {
		zap.L().Debug("converting introspection result", zap.String("file", name))
		sdl, err := convertIntrospection(f)
		if err != nil {
			return nil, fmt.Errorf("tsmock: converting %s: %w", name, err)
		}
		return &ast.Source{Name: name, Input: sdl}, nil
	}

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &ast.Source{Name: name, Input: string(b)}, nil
}

// openFile is just a helper for opening files
func openFile(fs afero.Fs, importPaths []string, filename string) (afero.File, error) {
	filename, err := resolvePath(fs, importPaths, filename)
	if err != nil {
		return nil, err
	}
	return fs.Open(filename)
}

// resolvePath returns the first import path match of a relative filename.
// Absolute and unmatched names are returned unchanged.
func resolvePath(fs afero.Fs, importPaths []string, filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filename, nil
	}

	for _, iPath := range importPaths {
		fname := filepath.Join(iPath, filename)
		exists, err := afero.Exists(fs, fname)
		if err != nil {
			return "", err
		}

		if exists {
			return fname, nil
		}
	}
	return filename, nil
}

type genCtx struct {
	fs  afero.Fs
	dir string
}

func (ctx *genCtx) Open(name string) (io.WriteCloser, error) {
	return ctx.fs.OpenFile(filepath.Join(ctx.dir, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
}
