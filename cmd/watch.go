package cmd

import (
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rewrite once, then again whenever compiled files change",
		Long: `watch runs the rewrite and keeps watching the output directory. Run it next
to "tsc --watch"; every time the compiler emits files the aliases in them are
rewritten. Stop it with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := loadRunArgs(cmd)
			if err != nil {
				return err
			}

			args.Options.NoEmit = false

			return reportStepError(workflow.Watch(cmd.Context(), args))
		},
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
