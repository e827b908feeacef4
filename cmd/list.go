package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the specifiers that would be rewritten without writing files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := loadRunArgs(cmd)
			if err != nil {
				return err
			}

			args.Options.NoEmit = true

			return reportStepError(workflow.Run(cmd.Context(), args))
		},
	}
	cmd.Flags().String("report", "", "write the change list to a .json or .yaml file")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
