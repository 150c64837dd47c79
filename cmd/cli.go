// Package cmd implements the command line interface for tsmock.
package cmd

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gqlc/tsmock/gen"
	"github.com/gqlc/tsmock/plugin"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type option func(*CommandLine)

// WithFS configures the underlying afero.FS used to read/write files.
func WithFS(fs afero.Fs) option {
	return func(c *CommandLine) {
		c.fs = fs
	}
}

// WithHTTPClient configures the client used for fetching remote schemas.
func WithHTTPClient(client *http.Client) option {
	return func(c *CommandLine) {
		c.client = client
	}
}

type genConfig struct {
	g    gen.Generator
	name string
	opt  string
	help string
}

// CommandLine provides a convient API for adding generators to tsmock.
type CommandLine struct {
	prefix string
	fs     afero.Fs
	client *http.Client

	cmds []cmder
	gens []genConfig
}

type cmder interface {
	getCommand() *cobra.Command
}

type baseCmd struct {
	*cobra.Command
}

func (cmd *baseCmd) getCommand() *cobra.Command { return cmd.Command }

func (c *CommandLine) addCommand(cmds ...cmder) *CommandLine {
	c.cmds = append(c.cmds, cmds...)
	return c
}

func (c *CommandLine) build(args []string) *cobra.Command {
	cmd := newRootCmd(c.fs, c.client, c.generators(args))
	cmd.AddCommand(newVersionCmd().getCommand(), newGeneratorsCmd().getCommand())
	for _, cmdr := range c.cmds {
		cmd.AddCommand(cmdr.getCommand())
	}

	return cmd.Command
}

// generators returns fresh flag state for every registered generator,
// plus a plugin generator for each unknown *_out flag in args.
//
func (c *CommandLine) generators(args []string) []*generator {
	gens := make([]*generator, 0, len(c.gens))
	known := make(map[string]bool, len(c.gens))
	for _, gc := range c.gens {
		gens = append(gens, newGenerator(gc.g, gc.name, gc.opt, gc.help))
		known[gc.name] = true
	}

	if c.prefix == "" {
		return gens
	}

	for _, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "--") {
			continue
		}

		name := strings.TrimPrefix(arg, "--")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		if !strings.HasSuffix(name, "_out") || known[name] {
			continue
		}
		known[name] = true

		pname := strings.TrimSuffix(name, "_out")
		gens = append(gens, newGenerator(
			&plugin.Generator{Name: pname, Prefix: c.prefix},
			name,
			pname+"_opt",
			fmt.Sprintf("Generate with the %s%s plugin.", c.prefix, pname),
		))
	}
	return gens
}

// NewCLI returns a CommandLine implementation.
func NewCLI(opts ...option) (c *CommandLine) {
	c = new(CommandLine)

	for _, opt := range opts {
		opt(c)
	}

	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.client == nil {
		c.client = http.DefaultClient
	}

	return
}

// AllowPlugins sets the plugin prefix to be used
// when looking up plugin executables.
//
func (c *CommandLine) AllowPlugins(prefix string) { c.prefix = prefix }

// RegisterGenerator registers a generator with the compiler.
// name is the output flag, e.g. tsmock_out, and opt the options flag.
//
func (c *CommandLine) RegisterGenerator(g gen.Generator, name, opt, help string) {
	c.gens = append(c.gens, genConfig{
		g:    g,
		name: name,
		opt:  opt,
		help: help,
	})
}

func wrapPanic(err error, stack []byte) error {
	return fmt.Errorf("tsmock: recovered from unexpected panic: %w\n\n%s", err, stack)
}

func recovered(r interface{}) error {
	stack := debug.Stack()

	if rerr, ok := r.(error); ok {
		return wrapPanic(rerr, stack)
	}
	return wrapPanic(fmt.Errorf("%#v", r), stack)
}

// Run executes the compiler
func (c *CommandLine) Run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()

	cmd := c.build(args[1:])

	cmd.SetArgs(args[1:])
	return cmd.Execute()
}
