package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/tspaths/internal/adapter"
	m "github.com/mouse-blink/tspaths/internal/model"
)

// DefaultExtensions are the output file extensions processed when none are given.
const DefaultExtensions = "js,d.ts"

// ResolvePaths turns the program options and tsconfig into absolute paths.
// Relative options are taken from cwd.
func ResolvePaths(options m.Options, tsconfig m.TSConfig, cwd m.Path) (m.ProjectPaths, error) {
	compilerOptions := tsconfig.CompilerOptions

	out := options.Out
	if out == "" {
		out = compilerOptions.OutDir
	}

	if out == "" {
		return m.ProjectPaths{}, &StepError{
			Step: StepResolvePaths,
			Err:  errors.New("output directory must be specified using either the --out option or in tsconfig"),
		}
	}

	if compilerOptions.Paths == nil {
		return m.ProjectPaths{}, &StepError{
			Step: StepResolvePaths,
			Err:  errors.New("compilerOptions.paths must be specified in tsconfig"),
		}
	}

	project := options.Project
	if project == "" {
		project = DefaultProject
	}

	configFile := absPath(string(cwd), project)
	configPath := filepath.Dir(configFile)

	baseURL := compilerOptions.BaseURL
	if baseURL == "" {
		baseURL = "."
	}

	basePath := absPath(configPath, baseURL)

	aliasBase := basePath
	if compilerOptions.BaseURL == "" && compilerOptions.PathsBase != "" {
		aliasBase = compilerOptions.PathsBase
	}

	src := options.Src
	if src == "" {
		src = compilerOptions.RootDir
	}

	srcPath := basePath
	if src != "" {
		srcPath = absPath(string(cwd), src)
	}

	return m.ProjectPaths{
		BasePath:   m.Path(basePath),
		AliasBase:  m.Path(aliasBase),
		ConfigPath: m.Path(configPath),
		ConfigFile: m.Path(configFile),
		Source:     m.Path(srcPath),
		Target:     m.Path(absPath(string(cwd), out)),
	}, nil
}

// ComputeAliases builds one Alias per compilerOptions.paths entry, in
// declaration order. A trailing `*` is dropped from keys and directories, and
// directories are made absolute from basePath.
func ComputeAliases(basePath m.Path, paths []m.PathMapping) ([]m.Alias, error) {
	aliases := make([]m.Alias, 0, len(paths))

	for _, mapping := range paths {
		prefix := strings.TrimSuffix(mapping.Key, "*")
		if isRelativeSpecifier(prefix) {
			return nil, &StepError{
				Step: StepComputeAliases,
				Err:  fmt.Errorf("%w: alias %q must not start with a relative path", ErrInvalidAlias, mapping.Key),
			}
		}

		dirs := make([]m.Path, 0, len(mapping.Dirs))
		for _, dir := range mapping.Dirs {
			dirs = append(dirs, m.Path(absPath(string(basePath), strings.TrimSuffix(dir, "*"))))
		}

		aliases = append(aliases, m.Alias{Key: mapping.Key, Prefix: prefix, Paths: dirs})
	}

	return aliases, nil
}

// DiscoverFiles lists the files under outPath whose names end in one of the
// comma separated extensions.
func DiscoverFiles(fsAdapter adapter.SourceFSAdapter, outPath m.Path, extensions string) ([]m.Path, error) {
	exts := parseExtensions(extensions)

	pattern := "**/*." + exts[0]
	if len(exts) > 1 {
		pattern = "**/*.{" + strings.Join(exts, ",") + "}"
	}

	files, err := fsAdapter.Glob(outPath, pattern)
	if err != nil {
		return nil, &StepError{Step: StepGetFilesToProcess, Err: fmt.Errorf("failed to list %s: %w", outPath, err)}
	}

	return files, nil
}

// HasExtension reports whether file ends in one of the comma separated extensions.
func HasExtension(file m.Path, extensions string) bool {
	for _, ext := range parseExtensions(extensions) {
		if strings.HasSuffix(string(file), "."+ext) {
			return true
		}
	}

	return false
}

// parseExtensions splits a list such as "js, .d.ts" into ["js", "d.ts"],
// falling back to DefaultExtensions when nothing is left.
func parseExtensions(extensions string) []string {
	var exts []string

	for _, ext := range strings.Split(extensions, ",") {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}

	if len(exts) == 0 {
		return strings.Split(DefaultExtensions, ",")
	}

	return exts
}

func absPath(base, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(base, p)
}
