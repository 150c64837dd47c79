package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func chainPreRunEs(preRunEs ...func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		for i := 0; i < len(preRunEs) && err == nil; i++ {
			err = preRunEs[i](cmd, args)
		}
		return
	}
}

func isURL(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

func isGlob(name string) bool {
	return strings.ContainsAny(name, "*?[{")
}

// validateFilenames validates that only GraphQL schema files,
// introspection results or URLs are provided.
//
func validateFilenames(cmd *cobra.Command, args []string) error {
	for _, fileName := range args {
		if isURL(fileName) || isGlob(fileName) {
			continue
		}

		if !schemaFile(fileName) {
			return fmt.Errorf("tsmock: invalid file extension: %s", fileName)
		}
	}

	return nil
}

func schemaFile(name string) bool {
	switch filepath.Ext(name) {
	case ".gql", ".graphql", ".json":
		return true
	}
	return false
}

// initGenDirs initializes each directory each generator will be outputting to.
func initGenDirs(fs afero.Fs, gens []*generator) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		for _, g := range gens {
			if !g.enabled {
				continue
			}

			zap.L().Debug("creating directory", zap.String("generator", g.name), zap.String("dir", g.outDir))
			err = fs.MkdirAll(g.outDir, 0755)
			if err != nil {
				break
			}
		}
		return
	}
}
