package cmd

import (
	"fmt"
	"strings"

	"github.com/gqlc/tsmock/value"
	"github.com/spf13/cobra"
)

func newGeneratorsCmd() *baseCmd {
	var locales bool

	cmd := &cobra.Command{
		Use:   "generators [casual|faker]",
		Short: "List the value generators usable without dynamic values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if locales {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(value.Locales(), "\n"))
				return nil
			}

			lib := value.Casual
			if len(args) > 0 {
				lib = value.Library(args[0])
			}

			names := value.Generators(lib)
			if len(names) == 0 {
				return fmt.Errorf("tsmock: %w: %s", value.ErrUnknownLibrary, lib)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&locales, "locales", false, "List the supported faker locales instead")

	return &baseCmd{Command: cmd}
}
