package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func flagNames(fs *pflag.FlagSet) (names []string) {
	fs.VisitAll(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	return
}

func TestFilterFlags(t *testing.T) {
	fs := new(pflag.FlagSet)
	fs.StringP("a_out", "a", "", "")
	fs.StringP("b_out", "b", "", "")
	fs.String("a_opt", "", "")
	fs.String("b_opt", "", "")

	assert.ElementsMatch(t, []string{"a_out", "b_out"}, flagNames(filterFlags(fs, "_out", true)))
	assert.ElementsMatch(t, []string{"a_opt", "b_opt"}, flagNames(filterFlags(fs, "_out", false)))
}
