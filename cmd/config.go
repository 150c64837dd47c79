package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the contents of a tsmock config file. JSON is accepted as well,
// being a subset of YAML.
//
//	schema:
//	  - schema/**/*.graphql
//	headers:
//	  Authorization: Bearer token
//	generators:
//	  tsmock:
//	    out: ./src/mocks
//	    options:
//	      typesFile: ../types
//	      scalars:
//	        Date: date.past
//
type Config struct {
	Schema     []string                    `yaml:"schema"`
	Headers    map[string]string           `yaml:"headers"`
	Generators map[string]*GeneratorConfig `yaml:"generators"`
}

// GeneratorConfig configures a single generator, keyed by the
// name of its output flag without the _out suffix.
//
type GeneratorConfig struct {
	Out     string                 `yaml:"out"`
	Options map[string]interface{} `yaml:"options"`
}

func loadConfig(fs afero.Fs, name string) (*Config, error) {
	b, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, err
	}

	cfg := new(Config)
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("tsmock: invalid config %s: %w", name, err)
	}
	return cfg, nil
}

// apply configures gens from the config. Flags set on the command line win.
func (cfg *Config) apply(gens []*generator) error {
	byName := make(map[string]*generator, len(gens))
	for _, g := range gens {
		byName[g.name] = g
	}

	for name, gc := range cfg.Generators {
		g, ok := byName[name]
		if !ok {
			return fmt.Errorf("tsmock: unknown generator in config: %s", name)
		}
		if gc == nil {
			continue
		}

		g.fileOpts = gc.Options
		if !g.enabled && gc.Out != "" {
			g.outDir = filepath.Clean(gc.Out)
			g.enabled = true
		}
	}
	return nil
}
