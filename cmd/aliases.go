package cmd

import (
	"github.com/spf13/cobra"
)

// aliasesCmd represents the aliases command.
var aliasesCmd = newAliasesCmd()

func newAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Print the alias prefixes and directories computed from tsconfig",
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := loadRunArgs(cmd)
			if err != nil {
				return err
			}

			return reportStepError(workflow.Aliases(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
}
