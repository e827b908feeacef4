// Package cmd provides the root command and CLI setup for tspaths.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/tspaths/internal/adapter"
	"github.com/mouse-blink/tspaths/internal/config"
	"github.com/mouse-blink/tspaths/internal/controller"
	"github.com/mouse-blink/tspaths/internal/domain"
	"github.com/mouse-blink/tspaths/internal/logging"
	m "github.com/mouse-blink/tspaths/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var tsconfigAdapter adapter.TSConfigAdapter
var changeStore adapter.ChangeStore
var watcher adapter.Watcher
var generator domain.Generator
var workflow domain.Workflow
var ui controller.UI
var logLevel = new(slog.LevelVar)
var logger *slog.Logger

func init() {
	logLevel.Set(slog.LevelWarn)
	logger = logging.NewLogger(os.Stderr, logLevel)

	ui = controller.NewUI(rootCmd, controller.Interactive(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tsconfigAdapter = adapter.NewTSConfigAdapter(fsAdapter)
	changeStore = adapter.NewChangeStore(fsAdapter)
	watcher = adapter.NewWatcher(adapter.DefaultDebounce, logger)

	resolver := domain.NewResolver(fsAdapter)
	converter := domain.NewConverter(fsAdapter, resolver)
	generator = domain.NewGenerator(domain.NewRewriter(fsAdapter, converter))

	workflow = domain.NewWorkflow(
		fsAdapter,
		tsconfigAdapter,
		changeStore,
		watcher,
		generator,
		ui,
		logger,
	)
}

var configFlag string
var quietFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tspaths",
		Short: "Rewrite TypeScript path aliases in compiled output",
		Long: `tspaths replaces import specifiers that use compilerOptions.paths aliases
in compiled JavaScript and declaration files with relative paths that
Node.js and other runtimes can resolve without alias support.

Run it after tsc:
  tsc && tspaths
  tspaths -p tsconfig.build.json -o dist
  tspaths --noEmit -v      show what would change`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := loadRunArgs(cmd)
			if err != nil {
				return err
			}

			return reportStepError(workflow.Run(cmd.Context(), args))
		},
	}

	addProjectFlags(cmd)
	cmd.Flags().BoolP("noEmit", "n", false, "changes will not be emitted")
	cmd.Flags().String("report", "", "write the change list to a .json or .yaml file")

	return cmd
}

// addProjectFlags registers the flags shared by every command that reads a
// tsconfig.
func addProjectFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("project", "p", "tsconfig.json", "path to tsconfig file")
	cmd.PersistentFlags().StringP("src", "s", "", "source root path (defaults to rootDir, then baseUrl)")
	cmd.PersistentFlags().StringP("out", "o", "", "output root path (defaults to outDir)")
	cmd.PersistentFlags().String("ext", "js,d.ts", "comma separated file extensions to process")
	cmd.PersistentFlags().IntP("parallel", "j", 1, "number of files analysed in parallel")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "output logs")
	cmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress all logs")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default .tspaths.yaml in the working directory)")
}

// loadRunArgs merges flags, environment and config file, and applies the
// resulting log level.
func loadRunArgs(cmd *cobra.Command) (domain.RunArgs, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.RunArgs{}, fmt.Errorf("cannot determine working dir: %w", err)
	}

	options, err := config.Load(cwd, configFlag, cmd.Flags())
	if err != nil {
		return domain.RunArgs{}, err
	}

	logLevel.Set(logging.LevelFromVerbosity(options.Verbose, quietFlag))

	return domain.RunArgs{Options: options, Cwd: m.Path(cwd)}, nil
}

// reportStepError prefixes a failed pipeline step with its name.
func reportStepError(err error) error {
	var stepErr *domain.StepError
	if errors.As(err, &stepErr) {
		return fmt.Errorf("error during step '%s': %w", stepErr.Step, stepErr.Err)
	}

	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
