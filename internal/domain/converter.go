package domain

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mouse-blink/tspaths/internal/adapter"
	m "github.com/mouse-blink/tspaths/internal/model"
)

// compiledExtensions maps source extensions to what the compiler emits for them.
var compiledExtensions = map[string]string{
	".ts":  ".js",
	".tsx": ".jsx",
	".mts": ".mjs",
	".cts": ".cjs",
}

var explicitRelativeRegex = regexp.MustCompile(`^\.+/`)

// Converter turns an aliased or relative import specifier into the relative
// specifier a runtime without alias support can load.
type Converter interface {
	// AliasToRelativePath returns the replacement for specifier as found in
	// outputFile, and false when the specifier should stay as it is.
	AliasToRelativePath(specifier string, outputFile m.Path, aliases []m.Alias, paths m.ProjectPaths, esModule bool) (string, bool)
}

type converter struct {
	fsAdapter adapter.SourceFSAdapter
	resolver  Resolver
}

// NewConverter constructs a Converter.
func NewConverter(fsAdapter adapter.SourceFSAdapter, resolver Resolver) Converter {
	return &converter{fsAdapter: fsAdapter, resolver: resolver}
}

func (c *converter) AliasToRelativePath(
	specifier string,
	outputFile m.Path,
	aliases []m.Alias,
	paths m.ProjectPaths,
	esModule bool,
) (string, bool) {
	rel, err := filepath.Rel(string(paths.Target), string(outputFile))
	if err != nil {
		return "", false
	}

	sourceFile := filepath.Join(string(paths.Source), rel)
	sourceDir := filepath.Dir(sourceFile)
	outputDir := filepath.Dir(string(outputFile))

	resolution, ok := c.resolveFirst(importCandidates(specifier, sourceDir, aliases))
	if !ok {
		return "", false
	}

	target := resolution.Imported
	if esModule {
		target = resolution.File
	}

	replacement, ok := relativeTo(sourceDir, string(target), resolution.Type)
	if !ok {
		return "", false
	}

	if !explicitRelativeRegex.MatchString(replacement) {
		replacement = "./" + replacement
	}

	replacement = toCompiledExtension(replacement)

	if strings.HasSuffix(replacement, ".jsx") &&
		!c.fsAdapter.IsFile(m.Path(filepath.Join(outputDir, filepath.FromSlash(replacement)))) {
		replacement = strings.TrimSuffix(replacement, ".jsx") + ".js"
	}

	if replacement == specifier {
		return "", false
	}

	return replacement, true
}

// relativeTo returns target relative to dir in slash form. A resolved file
// keeps its base name as found; a directory is related as a whole.
func relativeTo(dir, target string, kind m.ResolutionType) (string, bool) {
	if kind == m.ResolvedFile {
		parent, err := filepath.Rel(dir, filepath.Dir(target))
		if err != nil {
			return "", false
		}

		return path.Join(filepath.ToSlash(parent), filepath.Base(target)), true
	}

	relative, err := filepath.Rel(dir, target)
	if err != nil {
		return "", false
	}

	if relative == "." {
		return "", true
	}

	return filepath.ToSlash(relative), true
}

func (c *converter) resolveFirst(candidates []string) (m.Resolution, bool) {
	for _, candidate := range candidates {
		if resolution, ok := c.resolver.Resolve(m.Path(candidate)); ok {
			return resolution, true
		}
	}

	return m.Resolution{}, false
}

// importCandidates lists the absolute paths specifier may refer to: one for a
// relative specifier, otherwise one per directory of every matching alias.
func importCandidates(specifier, sourceDir string, aliases []m.Alias) []string {
	if isRelativeSpecifier(specifier) {
		return []string{filepath.Join(sourceDir, filepath.FromSlash(specifier))}
	}

	var candidates []string

	for _, alias := range aliases {
		if !strings.HasPrefix(specifier, alias.Prefix) {
			continue
		}

		rest := filepath.FromSlash(strings.TrimPrefix(specifier, alias.Prefix))
		for _, dir := range alias.Paths {
			candidates = append(candidates, filepath.Join(string(dir), rest))
		}
	}

	return candidates
}

func isRelativeSpecifier(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

func toCompiledExtension(specifier string) string {
	ext := path.Ext(specifier)
	if compiled, ok := compiledExtensions[ext]; ok {
		return strings.TrimSuffix(specifier, ext) + compiled
	}

	return specifier
}
