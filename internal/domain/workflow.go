package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/mouse-blink/tspaths/internal/adapter"
	"github.com/mouse-blink/tspaths/internal/controller"
	m "github.com/mouse-blink/tspaths/internal/model"
)

// DefaultProject is the tsconfig used when none is given.
const DefaultProject = "tsconfig.json"

// RunArgs holds the inputs of one invocation.
type RunArgs struct {
	Options m.Options
	// Cwd is the directory relative options are resolved from.
	Cwd m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	// Run rewrites aliased imports in the output tree once.
	Run(ctx context.Context, args RunArgs) error
	// Aliases displays the alias mappings computed from the tsconfig.
	Aliases(args RunArgs) error
	// Watch runs once and then again whenever processed output files change,
	// until ctx is cancelled.
	Watch(ctx context.Context, args RunArgs) error
}

type workflow struct {
	fsAdapter       adapter.SourceFSAdapter
	tsconfigAdapter adapter.TSConfigAdapter
	changeStore     adapter.ChangeStore
	watcher         adapter.Watcher
	generator       Generator
	ui              controller.UI
	logger          *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	tsconfigAdapter adapter.TSConfigAdapter,
	changeStore adapter.ChangeStore,
	watcher adapter.Watcher,
	generator Generator,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	return &workflow{
		fsAdapter:       fsAdapter,
		tsconfigAdapter: tsconfigAdapter,
		changeStore:     changeStore,
		watcher:         watcher,
		generator:       generator,
		ui:              ui,
		logger:          logger,
	}
}

// plan is everything computed before any file is rewritten.
type plan struct {
	options m.Options
	paths   m.ProjectPaths
	aliases []m.Alias
	files   []m.Path
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := w.ui.Start(); err != nil {
		return err
	}
	defer w.ui.Close()

	_, err := w.run(ctx, args)

	return err
}

func (w *workflow) Aliases(args RunArgs) error {
	options := withDefaults(args.Options)

	tsconfig, err := w.loadTSConfig(options, args.Cwd)
	if err != nil {
		return err
	}

	paths, err := ResolvePaths(options, tsconfig, args.Cwd)
	if err != nil {
		return err
	}

	aliases, err := ComputeAliases(paths.AliasBase, tsconfig.CompilerOptions.Paths)
	if err != nil {
		return err
	}

	w.logger.Debug("aliases", "aliases", aliases)

	return w.ui.DisplayAliases(aliases)
}

func (w *workflow) Watch(ctx context.Context, args RunArgs) error {
	if err := w.ui.Start(controller.WithWatchMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	p, err := w.run(ctx, args)
	if err != nil {
		return err
	}

	match := func(file m.Path) bool {
		return HasExtension(file, p.options.Ext)
	}

	w.logger.Info("watching for changes", "dir", p.paths.Target)

	return w.watcher.Watch(ctx, p.paths.Target, match, func() error {
		_, err := w.run(ctx, args)

		var stepErr *StepError
		if errors.As(err, &stepErr) {
			// The compiler may still be writing; the next event retries.
			w.logger.Warn("rewrite failed", "step", stepErr.Step, "error", stepErr.Err)

			return nil
		}

		return err
	})
}

func (w *workflow) run(ctx context.Context, args RunArgs) (plan, error) {
	p, err := w.prepare(args)
	if err != nil {
		return plan{}, err
	}

	changes, err := w.generator.GenerateChanges(ctx, GenerateArgs{
		Files:   p.files,
		Aliases: p.aliases,
		Paths:   p.paths,
		Threads: p.options.Parallel,
	})
	if err != nil {
		return plan{}, stepError(StepGenerateChanges, err)
	}

	for _, change := range changes {
		w.logger.Debug("file change", "file", change.File, "changes", change.Changes)
	}

	if !p.options.NoEmit {
		if err := w.changeStore.Apply(changes); err != nil {
			return plan{}, stepError(StepApplyChanges, err)
		}
	}

	if p.options.Report != "" {
		report := m.Path(absPath(string(args.Cwd), p.options.Report))
		if err := w.changeStore.ExportReport(report, changes); err != nil {
			return plan{}, stepError(StepExportReport, err)
		}
	}

	if err := w.ui.DisplayChanges(changes, !p.options.NoEmit); err != nil {
		return plan{}, err
	}

	return p, nil
}

func (w *workflow) prepare(args RunArgs) (plan, error) {
	w.fsAdapter.ResetProbeCache()

	options := withDefaults(args.Options)
	w.logger.Debug("options",
		"project", options.Project,
		"src", options.Src,
		"out", options.Out,
		"ext", options.Ext,
		"noEmit", options.NoEmit,
		"parallel", options.Parallel,
	)

	tsconfig, err := w.loadTSConfig(options, args.Cwd)
	if err != nil {
		return plan{}, err
	}

	paths, err := ResolvePaths(options, tsconfig, args.Cwd)
	if err != nil {
		return plan{}, err
	}

	w.logger.Debug("programPaths",
		"basePath", paths.BasePath,
		"aliasBase", paths.AliasBase,
		"configPath", paths.ConfigPath,
		"configFile", paths.ConfigFile,
		"srcPath", paths.Source,
		"outPath", paths.Target,
	)

	aliases, err := ComputeAliases(paths.AliasBase, tsconfig.CompilerOptions.Paths)
	if err != nil {
		return plan{}, err
	}

	w.logger.Debug("aliases", "aliases", aliases)

	files, err := DiscoverFiles(w.fsAdapter, paths.Target, options.Ext)
	if err != nil {
		return plan{}, err
	}

	w.logger.Debug("filesToProcess", "count", len(files), "files", files)

	return plan{options: options, paths: paths, aliases: aliases, files: files}, nil
}

func (w *workflow) loadTSConfig(options m.Options, cwd m.Path) (m.TSConfig, error) {
	file := m.Path(absPath(string(cwd), options.Project))

	tsconfig, err := w.tsconfigAdapter.Load(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.TSConfig{}, &StepError{
				Step: StepLoadTSConfig,
				Err:  &FileNotFoundError{Step: StepLoadTSConfig, Path: file},
			}
		}

		return m.TSConfig{}, &StepError{Step: StepLoadTSConfig, Err: fmt.Errorf("failed to load %s: %w", file, err)}
	}

	co := tsconfig.CompilerOptions
	w.logger.Debug("compilerOptions",
		"rootDir", co.RootDir,
		"outDir", co.OutDir,
		"baseUrl", co.BaseURL,
		"paths", co.Paths,
		"pathsBase", co.PathsBase,
	)

	return tsconfig, nil
}

func withDefaults(options m.Options) m.Options {
	if options.Project == "" {
		options.Project = DefaultProject
	}

	if options.Ext == "" {
		options.Ext = DefaultExtensions
	}

	if options.Parallel <= 0 {
		options.Parallel = 1
	}

	return options
}
