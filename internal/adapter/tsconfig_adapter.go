package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	m "github.com/mouse-blink/tspaths/internal/model"
)

// TSConfigAdapter loads tsconfig files.
type TSConfigAdapter interface {
	Load(path m.Path) (m.TSConfig, error)
}

// compilerOptionsPathsPointer locates compilerOptions.paths in the parsed document.
const compilerOptionsPathsPointer = "/compilerOptions/paths"

type rawCompilerOptions struct {
	RootDir *string `json:"rootDir"`
	OutDir  *string `json:"outDir"`
	BaseURL *string `json:"baseUrl"`
}

type rawTSConfig struct {
	Extends         string             `json:"extends"`
	CompilerOptions rawCompilerOptions `json:"compilerOptions"`
}

type tsconfigAdapter struct {
	fsAdapter SourceFSAdapter
}

// NewTSConfigAdapter constructs a TSConfigAdapter reading through fsAdapter.
func NewTSConfigAdapter(fsAdapter SourceFSAdapter) TSConfigAdapter {
	return &tsconfigAdapter{fsAdapter: fsAdapter}
}

// Load reads the tsconfig at path, which may contain comments and trailing
// commas, and applies its extends chain. Directory options are made absolute
// relative to the file that declares them.
func (a *tsconfigAdapter) Load(path m.Path) (m.TSConfig, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return m.TSConfig{}, err
	}

	opts, err := a.load(abs, map[string]struct{}{})
	if err != nil {
		return m.TSConfig{}, err
	}

	return m.TSConfig{File: m.Path(abs), CompilerOptions: opts}, nil
}

func (a *tsconfigAdapter) load(file string, seen map[string]struct{}) (m.CompilerOptions, error) {
	if _, ok := seen[file]; ok {
		return m.CompilerOptions{}, fmt.Errorf("circular extends in %s", file)
	}

	seen[file] = struct{}{}

	data, err := a.fsAdapter.ReadFile(m.Path(file))
	if err != nil {
		return m.CompilerOptions{}, err
	}

	value, err := hujson.Parse(data)
	if err != nil {
		return m.CompilerOptions{}, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	value.Standardize()

	var raw rawTSConfig
	if err := json.Unmarshal(value.Pack(), &raw); err != nil {
		return m.CompilerOptions{}, fmt.Errorf("failed to decode %s: %w", file, err)
	}

	paths, err := orderedPaths(value.Find(compilerOptionsPathsPointer))
	if err != nil {
		return m.CompilerOptions{}, fmt.Errorf("failed to decode %s: %w", file, err)
	}

	var opts m.CompilerOptions

	dir := filepath.Dir(file)

	if raw.Extends != "" {
		parent, err := a.load(a.extendsPath(dir, raw.Extends), seen)
		if err != nil {
			return m.CompilerOptions{}, fmt.Errorf("failed to load extended config of %s: %w", file, err)
		}

		opts = parent
	}

	if raw.CompilerOptions.RootDir != nil {
		opts.RootDir = absFrom(dir, *raw.CompilerOptions.RootDir)
	}

	if raw.CompilerOptions.OutDir != nil {
		opts.OutDir = absFrom(dir, *raw.CompilerOptions.OutDir)
	}

	if raw.CompilerOptions.BaseURL != nil {
		opts.BaseURL = absFrom(dir, *raw.CompilerOptions.BaseURL)
	}

	if paths != nil {
		opts.Paths = paths
		opts.PathsBase = dir
	}

	return opts, nil
}

// orderedPaths decodes a compilerOptions.paths object keeping member order,
// which decides the alias tried first. A nil value means paths is not set.
func orderedPaths(value *hujson.Value) ([]m.PathMapping, error) {
	if value == nil {
		return nil, nil
	}

	if literal, ok := value.Value.(hujson.Literal); ok && literal.Kind() == 'n' {
		return nil, nil
	}

	object, ok := value.Value.(*hujson.Object)
	if !ok {
		return nil, errors.New("compilerOptions.paths must be an object")
	}

	paths := make([]m.PathMapping, 0, len(object.Members))

	for _, member := range object.Members {
		name, ok := member.Name.Value.(hujson.Literal)
		if !ok {
			return nil, errors.New("compilerOptions.paths has an invalid key")
		}

		key := name.String()

		var dirs []string
		if err := json.Unmarshal(member.Value.Pack(), &dirs); err != nil {
			return nil, fmt.Errorf("compilerOptions.paths[%q] must be an array of strings: %w", key, err)
		}

		paths = append(paths, m.PathMapping{Key: key, Dirs: dirs})
	}

	return paths, nil
}

// extendsPath locates the file named by an extends value: relative and
// absolute values are taken from dir, anything else from node_modules.
func (a *tsconfigAdapter) extendsPath(dir, extends string) string {
	var candidate string

	if filepath.IsAbs(extends) || strings.HasPrefix(extends, "./") || strings.HasPrefix(extends, "../") {
		candidate = absFrom(dir, extends)
	} else {
		candidate = filepath.Join(dir, "node_modules", filepath.FromSlash(extends))
	}

	if a.fsAdapter.IsFile(m.Path(candidate)) {
		return candidate
	}

	if a.fsAdapter.IsDir(m.Path(candidate)) {
		return filepath.Join(candidate, "tsconfig.json")
	}

	if filepath.Ext(candidate) != ".json" {
		return candidate + ".json"
	}

	return candidate
}

func absFrom(dir, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(dir, p)
}
