package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/cppgen/pkg/action/check"
	"github.com/cmmoran/cppgen/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewCheckCommand())
}

func NewCheckCommand() *cobra.Command {
	options := generator.NewOptions()

	var checkCmd = &cobra.Command{
		Use:   "check",
		Short: "check generated C++ sources",
		Long:  "Regenerate a model in memory and report differences from the files on disk",
		RunE: func(c *cobra.Command, args []string) error {
			if err := loadOptions(c, options); err != nil {
				return err
			}
			diff, err := check.Check(c.Context(), options)
			if err != nil {
				return err
			}
			if diff != "" {
				fmt.Fprint(c.OutOrStdout(), diff)
				return fmt.Errorf("generated files are out of date")
			}
			return nil
		},
	}
	bindOptions(checkCmd.Flags(), options)
	return checkCmd
}
